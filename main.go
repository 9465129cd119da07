package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/terminal"
	"grid-snake/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	engine, err := game.NewEngine(cfg.Board.Width, cfg.Board.Height, game.WithSeed(seed), game.WithLogger(logger))
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	logger.Printf("starting %dx%d game %s with the %s frontend", cfg.Board.Width, cfg.Board.Height, engine.ID(), cfg.Frontend)

	switch cfg.Frontend {
	case config.FrontendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("terminal: %v", err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := terminal.Run(ctx, screen, engine, cfg.TickInterval(), logger); err != nil {
			log.Fatalf("terminal: %v", err)
		}
	default:
		ui.Run(engine, cfg.Window.Width, cfg.Window.Height, cfg.TickInterval(), logger)
	}
}

// newLogger writes to the configured file. Without one the terminal
// frontend discards logs so they do not break the screen.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		return log.New(f, "snake: ", log.LstdFlags), func() { f.Close() }, nil
	}
	if cfg.Frontend == config.FrontendTerminal {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "snake: ", log.LstdFlags), func() {}, nil
}
