package terminal

import (
	"strings"
	"testing"

	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// fakeCanvas records the last rune written to each cell
type fakeCanvas struct {
	cells   map[[2]int]rune
	cleared int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]rune)}
}

func (f *fakeCanvas) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = primary
}

func (f *fakeCanvas) Clear() {
	f.cleared++
	f.cells = make(map[[2]int]rune)
}

func (f *fakeCanvas) row(y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		if r, ok := f.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func testState() game.State {
	return game.State{
		Grid:    types.Grid{Width: 4, Height: 3},
		Snake:   []types.Point{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Food:    types.Point{X: 0, Y: 2},
		HasFood: true,
		Score:   2,
	}
}

func TestDrawBoard(t *testing.T) {
	c := newFakeCanvas()
	NewRenderer().Draw(c, testState())

	if c.cleared != 1 {
		t.Errorf("expected one clear per frame, got %d", c.cleared)
	}
	want := []string{
		"┌────────┐",
		"│        │",
		"│  ▓▓██  │",
		"│●       │",
		"└────────┘",
	}
	for y, line := range want {
		if got := c.row(y, 10); got != line {
			t.Errorf("row %d: expected %q, got %q", y, line, got)
		}
	}
	if got := c.row(5, 16); !strings.HasPrefix(got, "Score: 2") {
		t.Errorf("expected score line, got %q", got)
	}
}

func TestCellOrigin(t *testing.T) {
	x, y := CellOrigin(types.Point{X: 3, Y: 4})
	if x != 7 || y != 5 {
		t.Errorf("expected (7,5), got (%d,%d)", x, y)
	}
}

func TestStatusLineOnGameOver(t *testing.T) {
	s := testState()
	s.GameOver = true
	s.Collision = types.WallCollision
	line := StatusLine(s)
	if !strings.Contains(line, "Game over (wall)") || !strings.Contains(line, "[r] restart") {
		t.Errorf("unexpected status line %q", line)
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name    string
		key     tcell.Key
		r       rune
		action  Action
		wantDir types.Direction
	}{
		{"arrow up", tcell.KeyUp, 0, ActionSteer, types.UP},
		{"arrow left", tcell.KeyLeft, 0, ActionSteer, types.LEFT},
		{"wasd", tcell.KeyRune, 'd', ActionSteer, types.RIGHT},
		{"vi", tcell.KeyRune, 'j', ActionSteer, types.DOWN},
		{"restart", tcell.KeyRune, 'r', ActionRestart, types.NONE},
		{"quit", tcell.KeyRune, 'q', ActionQuit, types.NONE},
		{"escape", tcell.KeyEscape, 0, ActionQuit, types.NONE},
		{"unmapped", tcell.KeyRune, 'x', ActionNone, types.NONE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := KeyAction(tt.key, tt.r)
			if action != tt.action || dir != tt.wantDir {
				t.Errorf("KeyAction = %v, %v; want %v, %v", action, dir, tt.action, tt.wantDir)
			}
		})
	}
}
