package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"grid-snake/game/types"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
)

type Config struct {
	Board    Board  `yaml:"board"`
	TickMs   int    `yaml:"tick_ms"`
	Seed     uint64 `yaml:"seed"` // 0 picks a time based seed
	Frontend string `yaml:"frontend"`
	Window   Window `yaml:"window"`
	LogFile  string `yaml:"log_file"`
}

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() Config {
	return Config{
		Board:    Board{Width: types.DefaultWidth, Height: types.DefaultHeight},
		TickMs:   230,
		Frontend: FrontendRaylib,
		Window:   Window{Width: 480, Height: 800},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("%w: tick_ms %d", ErrInvalid, c.TickMs)
	}
	switch c.Frontend {
	case FrontendRaylib:
		if c.Window.Width <= 0 || c.Window.Height <= 0 {
			return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
		}
	case FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	}
	return nil
}

// Parse reads command line flags. Values from -config are applied first
// and any flag given explicitly overrides them.
func Parse(name string, args []string) (Config, error) {
	def := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "Path to a YAML config file")
	width := fs.Int("width", def.Board.Width, "Board width in cells")
	height := fs.Int("height", def.Board.Height, "Board height in cells")
	tick := fs.Int("speed", def.TickMs, "Game speed in milliseconds (lower = faster)")
	seed := fs.Uint64("seed", def.Seed, "Food placement seed (0 = random)")
	frontend := fs.String("frontend", def.Frontend, "Frontend: raylib or terminal")
	logFile := fs.String("log", def.LogFile, "Write logs to this file")
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	c := def
	if *path != "" {
		var err error
		if c, err = Load(*path); err != nil {
			return c, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Board.Width = *width
		case "height":
			c.Board.Height = *height
		case "speed":
			c.TickMs = *tick
		case "seed":
			c.Seed = *seed
		case "frontend":
			c.Frontend = *frontend
		case "log":
			c.LogFile = *logFile
		}
	})

	return c, c.Validate()
}
