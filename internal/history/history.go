// Package history keeps bounded undo and redo stacks of whole-canvas
// snapshots.
package history

import (
	"image"

	"github.com/example/easel/internal/raster"
)

// DefaultCapacity is the number of snapshots kept when none is configured.
const DefaultCapacity = 50

// Stack is a bounded LIFO of canvas snapshots. The oldest snapshot is
// evicted once the capacity is exceeded.
type Stack struct {
	capacity int
	undo     []*image.RGBA
	redo     []*image.RGBA
}

// New creates a stack holding at most capacity snapshots in each direction.
// Non-positive capacities fall back to DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// Capacity returns the maximum number of snapshots kept.
func (s *Stack) Capacity() int { return s.capacity }

// Len returns the number of undo snapshots.
func (s *Stack) Len() int { return len(s.undo) }

// RedoLen returns the number of redo snapshots.
func (s *Stack) RedoLen() int { return len(s.redo) }

// Push records a copy of canvas. Any redo history is discarded.
func (s *Stack) Push(canvas *image.RGBA) {
	s.undo = push(s.undo, raster.Clone(canvas), s.capacity)
	clear(s.redo)
	s.redo = s.redo[:0]
}

// Undo pops the most recent snapshot and returns it. current is kept for
// Redo. ok is false when there is nothing to undo.
func (s *Stack) Undo(current *image.RGBA) (prev *image.RGBA, ok bool) {
	if len(s.undo) == 0 {
		return nil, false
	}
	prev = s.undo[len(s.undo)-1]
	s.undo[len(s.undo)-1] = nil
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = push(s.redo, current, s.capacity)
	return prev, true
}

// Redo reverses the last Undo.
func (s *Stack) Redo(current *image.RGBA) (next *image.RGBA, ok bool) {
	if len(s.redo) == 0 {
		return nil, false
	}
	next = s.redo[len(s.redo)-1]
	s.redo[len(s.redo)-1] = nil
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = push(s.undo, current, s.capacity)
	return next, true
}

// Reset drops every snapshot.
func (s *Stack) Reset() {
	s.undo = nil
	s.redo = nil
}

func push(stack []*image.RGBA, img *image.RGBA, capacity int) []*image.RGBA {
	stack = append(stack, img)
	if len(stack) > capacity {
		// drop oldest
		stack[0] = nil
		stack = append(stack[:0], stack[1:]...)
	}
	return stack
}
