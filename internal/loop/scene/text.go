package scene

import (
	"fmt"

	"github.com/tomz197/irondome/internal/game"
)

// Title is the game's name as shown on the menu.
const Title = "IRON DOME"

// Modal is a centered message box.
type Modal struct {
	Title  string
	Lines  []string
	Prompt string
}

// Instructions explains the active control mode.
func Instructions(control game.ControlMode) []string {
	if control == game.ControlPointer {
		return []string{
			"Click anywhere to launch interceptor missiles!",
			"Intercept enemy missiles to protect the cities below.",
			"Controls: Mouse",
		}
	}
	return []string{
		"Use arrow keys to control your interceptor missile!",
		"Crash into enemy missiles to destroy them and protect the cities below.",
		"Controls: Arrow Keys or WASD",
	}
}

// HUD returns the left and right status strings.
func HUD(stats game.Stats, control game.ControlMode) (left, right string) {
	left = fmt.Sprintf("Score: %d  Hits: %d/%d  Intercepts: %d/%d",
		stats.Score, stats.Hits, game.MaxHits, stats.Intercepts, game.TargetIntercepts)
	right = fmt.Sprintf("[%s] P pause  R restart  Q quit", control)
	return left, right
}

// ModalFor returns the message box for a mode, or false during play.
func ModalFor(mode game.Mode, control game.ControlMode, stats game.Stats) (Modal, bool) {
	switch mode {
	case game.ModeMenu:
		lines := Instructions(control)
		lines = append(lines, "", "M: switch control mode")
		return Modal{Title: Title, Lines: lines, Prompt: "Press SPACE to Start Game"}, true
	case game.ModePaused:
		return Modal{
			Title:  "Game Paused",
			Lines:  []string{"R: back to menu"},
			Prompt: "Press P or SPACE to resume",
		}, true
	case game.ModeGameOver:
		return Modal{
			Title:  "Game Over!",
			Lines:  summary("Your cities were destroyed!", stats),
			Prompt: "Press SPACE to Try Again",
		}, true
	case game.ModeVictory:
		return Modal{
			Title:  "Victory!",
			Lines:  summary("You defended the cities!", stats),
			Prompt: "Press SPACE to Play Again",
		}, true
	}
	return Modal{}, false
}

func summary(headline string, stats game.Stats) []string {
	return []string{
		headline,
		fmt.Sprintf("Score: %d", stats.Score),
		fmt.Sprintf("Intercepts: %d", stats.Intercepts),
	}
}
