package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Board.Width != 15 || c.Board.Height != 25 {
		t.Errorf("expected 15x25 board, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.TickInterval() != 230*time.Millisecond {
		t.Errorf("expected 230ms ticks, got %v", c.TickInterval())
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "board:\n  width: 20\ntick_ms: 100\nfrontend: terminal\n")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Board.Width != 20 || c.Board.Height != 25 {
		t.Errorf("expected 20x25 board, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.TickMs != 100 || c.Frontend != FrontendTerminal {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeFile(t, "board: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Errorf("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Board.Width = 0 }},
		{"negative height", func(c *Config) { c.Board.Height = -1 }},
		{"zero tick", func(c *Config) { c.TickMs = 0 }},
		{"unknown frontend", func(c *Config) { c.Frontend = "web" }},
		{"no window", func(c *Config) { c.Window.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "board:\n  width: 20\n  height: 30\nseed: 9\n")
	c, err := Parse("snake", []string{"-config", path, "-height", "12", "-frontend", "terminal"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Board.Width != 20 || c.Board.Height != 12 {
		t.Errorf("expected 20x12 board, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Seed != 9 || c.Frontend != FrontendTerminal {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestParseRejectsInvalidBoard(t *testing.T) {
	if _, err := Parse("snake", []string{"-width", "0"}); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
