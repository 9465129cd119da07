package layout

import (
	"testing"

	"grid-snake/game/types"
)

func TestBoardCell(t *testing.T) {
	b := NewBoard(types.Grid{Width: 15, Height: 25}, 480, 800)
	if b.CellW != 32 || b.CellH != 32 {
		t.Fatalf("expected 32x32 cells, got %dx%d", b.CellW, b.CellH)
	}
	got := b.Cell(types.Point{X: 2, Y: 3})
	want := Rect{X: 64, Y: 96, W: 32, H: 32}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestBoardKeepsCellsVisibleOnTinyScreens(t *testing.T) {
	b := NewBoard(types.Grid{Width: 100, Height: 100}, 50, 50)
	if b.CellW != 1 || b.CellH != 1 {
		t.Errorf("expected 1x1 cells, got %dx%d", b.CellW, b.CellH)
	}
}

func TestDialogButtons(t *testing.T) {
	d := NewDialog(500, 800)
	for name, r := range map[string]Rect{"restart": d.Restart, "quit": d.Quit} {
		if r.X < d.Box.X || r.Y < d.Box.Y || r.X+r.W > d.Box.X+d.Box.W || r.Y+r.H > d.Box.Y+d.Box.H {
			t.Errorf("%s button %+v outside dialog %+v", name, r, d.Box)
		}
	}
	if d.Restart.X+d.Restart.W > d.Quit.X {
		t.Errorf("buttons overlap: %+v %+v", d.Restart, d.Quit)
	}

	cx := float32(d.Restart.X + d.Restart.W/2)
	cy := float32(d.Restart.Y + d.Restart.H/2)
	if !d.Restart.Contains(cx, cy) || d.Quit.Contains(cx, cy) {
		t.Errorf("hit test failed at (%v,%v)", cx, cy)
	}
}
