// Package layout maps grid cells and dialog buttons to screen pixels.
package layout

import (
	"grid-snake/game/types"
)

type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether the pixel (x, y) falls inside r
func (r Rect) Contains(x, y float32) bool {
	return x >= float32(r.X) && x < float32(r.X+r.W) && y >= float32(r.Y) && y < float32(r.Y+r.H)
}

// Board stretches a grid over a screen area. Cells are screenW/width
// by screenH/height pixels; leftover pixels stay on the right and bottom.
type Board struct {
	CellW, CellH int32
}

func NewBoard(grid types.Grid, screenW, screenH int32) Board {
	b := Board{
		CellW: screenW / int32(grid.Width),
		CellH: screenH / int32(grid.Height),
	}
	if b.CellW < 1 {
		b.CellW = 1
	}
	if b.CellH < 1 {
		b.CellH = 1
	}
	return b
}

// Cell returns the pixel rectangle of grid cell p
func (b Board) Cell(p types.Point) Rect {
	return Rect{
		X: int32(p.X) * b.CellW,
		Y: int32(p.Y) * b.CellH,
		W: b.CellW,
		H: b.CellH,
	}
}

// Dialog is the game-over box with its two buttons.
type Dialog struct {
	Box     Rect
	Restart Rect
	Quit    Rect
}

func NewDialog(screenW, screenH int32) Dialog {
	w := screenW * 4 / 5
	h := screenH / 4
	box := Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}

	pad := w / 20
	bw := (w - pad*3) / 2
	bh := h / 4
	by := box.Y + h - bh - pad
	return Dialog{
		Box:     box,
		Restart: Rect{X: box.X + pad, Y: by, W: bw, H: bh},
		Quit:    Rect{X: box.X + pad*2 + bw, Y: by, W: bw, H: bh},
	}
}
