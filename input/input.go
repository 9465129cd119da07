// Package input maps raw pointer positions and keys to snake directions.
package input

import (
	"grid-snake/game/types"
)

// FromTouch maps a tap at (x, y) on a w x h display to a direction.
// The top quarter steers up, the bottom quarter down. Between them the
// left third steers left and the right third right. The centre band
// maps to nothing.
func FromTouch(x, y, w, h float32) (types.Direction, bool) {
	if w <= 0 || h <= 0 {
		return types.NONE, false
	}
	top, bottom := h/4, 3*h/4
	left, right := w/3, 2*w/3

	switch {
	case y < top:
		return types.UP, true
	case y > bottom:
		return types.DOWN, true
	case x < left:
		return types.LEFT, true
	case x > right:
		return types.RIGHT, true
	default:
		return types.NONE, false
	}
}

// FromRune maps wasd and vi-style hjkl keys.
func FromRune(r rune) (types.Direction, bool) {
	switch r {
	case 'w', 'W', 'k':
		return types.UP, true
	case 's', 'S', 'j':
		return types.DOWN, true
	case 'a', 'A', 'h':
		return types.LEFT, true
	case 'd', 'D', 'l':
		return types.RIGHT, true
	default:
		return types.NONE, false
	}
}
