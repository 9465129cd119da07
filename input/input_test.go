package input

import (
	"testing"

	"grid-snake/game/types"
)

func TestFromTouch(t *testing.T) {
	const w, h = 300, 400
	tests := []struct {
		name   string
		x, y   float32
		want   types.Direction
		wantOK bool
	}{
		{"top band", 150, 10, types.UP, true},
		{"top band left corner", 5, 99, types.UP, true},
		{"bottom band", 150, 390, types.DOWN, true},
		{"bottom band right corner", 295, 301, types.DOWN, true},
		{"left third", 10, 200, types.LEFT, true},
		{"right third", 290, 200, types.RIGHT, true},
		{"top edge of middle band", 10, 100, types.LEFT, true},
		{"bottom edge of middle band", 290, 300, types.RIGHT, true},
		{"centre", 150, 200, types.NONE, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTouch(tt.x, tt.y, w, h)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FromTouch(%v, %v) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFromTouchEmptyDisplay(t *testing.T) {
	if _, ok := FromTouch(1, 1, 0, 100); ok {
		t.Errorf("expected no direction for a zero-width display")
	}
}

func TestFromRune(t *testing.T) {
	tests := map[rune]types.Direction{
		'w': types.UP, 'k': types.UP,
		's': types.DOWN, 'j': types.DOWN,
		'a': types.LEFT, 'h': types.LEFT,
		'd': types.RIGHT, 'l': types.RIGHT,
	}
	for r, want := range tests {
		if got, ok := FromRune(r); !ok || got != want {
			t.Errorf("FromRune(%q) = %v, %v; want %v", r, got, ok, want)
		}
	}
	if _, ok := FromRune('x'); ok {
		t.Errorf("expected 'x' to be unmapped")
	}
}
