package entity

import (
	"grid-snake/game/types"
)

// Snake is an ordered body, head first, plus its heading and the
// latest requested direction that has not been applied yet.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Pending   types.Direction
}

// NewSnake lays out length segments behind head, opposite to dir.
func NewSnake(head types.Point, length int, dir types.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite()
	body := make([]types.Point, 0, length)
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return &Snake{
		Body:      body,
		Direction: dir,
		Pending:   dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move prepends newHead; the tail stays in place until RemoveTail.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection records dir as pending. Reversals are kept here and
// rejected by CommitDirection.
func (s *Snake) SetDirection(dir types.Direction) {
	if !dir.Valid() {
		return
	}
	s.Pending = dir
}

// CommitDirection turns the pending direction into the heading unless
// it points straight back into the neck.
func (s *Snake) CommitDirection() types.Direction {
	if s.Pending.Valid() && s.Pending != s.Direction.Opposite() {
		s.Direction = s.Pending
	}
	return s.Direction
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
