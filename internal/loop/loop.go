// Package loop drives a game session at a fixed frame rate: poll the
// frontend for input, update the session, hand a snapshot to the frontend.
package loop

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/irondome/internal/game"
	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// DefaultFPS is the frame rate used when Options.FPS is not set.
const DefaultFPS = 60

// Controls is one frame of frontend input.
type Controls struct {
	Quit          bool
	Primary       bool // Start, resume or leave the result screen
	Pause         bool
	Restart       bool
	ToggleControl bool
	Held          object.Directions
	Aims          []physics.Vector // Logical targets clicked this frame
}

// Frontend collects input and presents frames. Frontends that also
// implement game.UISink receive stats and mode notifications.
type Frontend interface {
	Poll() Controls
	Render(snap game.Snapshot) error
}

// Options configures a Driver.
type Options struct {
	FPS     int
	Control game.ControlMode
	Hitbox  game.Hitbox
	Audio   game.AudioSink
	Logger  *log.Logger
	Rand    *rand.Rand
}

// Driver owns a session and runs it against a frontend.
type Driver struct {
	session   *game.Session
	frontend  Frontend
	ui        game.UISink
	logger    *log.Logger
	frameTime time.Duration
}

// New creates a driver with a fresh session in the menu.
func New(frontend Frontend, opts Options) *Driver {
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	d := &Driver{
		frontend:  frontend,
		logger:    logger,
		frameTime: time.Second / time.Duration(fps),
	}
	if ui, ok := frontend.(game.UISink); ok {
		d.ui = ui
	}

	d.session = game.NewSession(
		game.WithRand(opts.Rand),
		game.WithAudio(opts.Audio),
		game.WithUI(d),
		game.WithHitbox(opts.Hitbox),
		game.WithControlMode(opts.Control),
	)
	return d
}

// Session returns the driven session.
func (d *Driver) Session() *game.Session {
	return d.session
}

// Run loops until the frontend asks to quit, rendering fails or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	lastTime := time.Now()

	for {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		quit, err := d.Step(delta)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		elapsed := time.Since(frameStart)
		if elapsed < d.frameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(d.frameTime - elapsed):
			}
		}
	}
}

// Step runs a single frame: input, update, render.
// Returns quit=true when the frontend asked to quit.
func (d *Driver) Step(delta time.Duration) (quit bool, err error) {
	controls := d.frontend.Poll()
	if controls.Quit {
		return true, nil
	}
	d.apply(controls)

	d.session.Update(delta)

	if err := d.frontend.Render(d.session.Snapshot()); err != nil {
		return false, fmt.Errorf("render frame: %w", err)
	}
	return false, nil
}

// apply translates frontend controls into session commands and input.
func (d *Driver) apply(c Controls) {
	s := d.session

	if c.ToggleControl {
		next := game.ControlPointer
		if s.Control() == game.ControlPointer {
			next = game.ControlKeyboard
		}
		if s.SetControlMode(next) {
			d.logger.Debug("control mode changed", "control", next)
		}
	}

	if c.Restart {
		s.Restart()
	}

	if c.Primary {
		switch s.Mode() {
		case game.ModeMenu:
			s.Start()
		case game.ModePaused:
			s.TogglePause()
		case game.ModeGameOver, game.ModeVictory:
			s.Restart()
		}
	} else if c.Pause {
		s.TogglePause()
	}

	d.applyHeld(game.DirUp, c.Held.Up)
	d.applyHeld(game.DirDown, c.Held.Down)
	d.applyHeld(game.DirLeft, c.Held.Left)
	d.applyHeld(game.DirRight, c.Held.Right)

	for _, aim := range c.Aims {
		s.Aim(aim.X, aim.Y)
	}
}

func (d *Driver) applyHeld(dir game.Direction, held bool) {
	switch {
	case held && !d.session.Held(dir):
		d.session.KeyDown(dir)
	case !held && d.session.Held(dir):
		d.session.KeyUp(dir)
	}
}

// StatsChanged implements game.UISink.
func (d *Driver) StatsChanged(stats game.Stats) {
	if d.ui != nil {
		d.ui.StatsChanged(stats)
	}
}

// ModeChanged implements game.UISink.
func (d *Driver) ModeChanged(from, to game.Mode, stats game.Stats) {
	d.logger.Debug("mode changed", "from", from, "to", to)
	switch to {
	case game.ModeGameOver, game.ModeVictory:
		d.logger.Info("match finished", "result", to, "score", stats.Score,
			"intercepts", stats.Intercepts, "hits", stats.Hits)
	}
	if d.ui != nil {
		d.ui.ModeChanged(from, to, stats)
	}
}
