package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/irondome/internal/audio"
	"github.com/tomz197/irondome/internal/config"
	"github.com/tomz197/irondome/internal/game"
	"github.com/tomz197/irondome/internal/loop"
	"github.com/tomz197/irondome/internal/loop/client"
	"github.com/tomz197/irondome/internal/loop/tui"
)

func main() {
	logOut, closeLog, err := config.OpenLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := config.NewLogger(logOut, "irondome")

	if err := run(logger); err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	control, ok := game.ParseControlMode(config.GetEnv("GAME_CONTROL", "keyboard"))
	if !ok {
		logger.Warn("unknown GAME_CONTROL, using keyboard")
	}

	opts := loop.Options{
		FPS:     config.GetEnvInt("GAME_FPS", loop.DefaultFPS),
		Control: control,
		Hitbox:  game.HitboxPrimitive,
		Logger:  logger,
	}

	if config.GetEnvBool("GAME_AUDIO", true) {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			opts.Audio = player
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := config.GetEnv("GAME_BACKEND", "tcell")
	logger.Info("starting", "backend", backend, "control", control, "fps", opts.FPS)
	defer logger.Info("stopped")

	switch backend {
	case "tcell":
		return runTcell(ctx, opts)
	case "ansi":
		return runANSI(ctx, opts)
	default:
		return fmt.Errorf("unknown GAME_BACKEND %q", backend)
	}
}

func runTcell(ctx context.Context, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	frontend := tui.New(screen, opts.Rand)
	frontend.Start()
	defer frontend.Stop()

	return loop.New(frontend, opts).Run(ctx)
}

func runANSI(ctx context.Context, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{})
	c.Open()
	defer c.Close()

	return loop.New(c, opts).Run(ctx)
}
