package entity

import (
	"snake-arcade/game/types"
)

// Snake keeps its body head first, tail last
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

// NewSnake lays out length cells ending at head, trailing away from dir
func NewSnake(head types.Point, dir types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Delta()
	body := make([]types.Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Point{X: head.X - back.X*i, Y: head.Y - back.Y*i})
	}
	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

// Move pushes newHead onto the front of the body
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last cell, never shrinking below one cell
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether pos is any body cell, tail included
func (s *Snake) Contains(pos types.Point) bool {
	for _, part := range s.Body {
		if part == pos {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body safe to hand out
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
