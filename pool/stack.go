// SPDX-License-Identifier: MIT

package pool

import "fmt"

// Stack is a fixed-capacity LIFO of values of type T.
//
// Layout:
//   - values holds capacity slots; slots [top, capacity) are available.
//   - Take reads values[top] and advances top; Give decrements top and writes.
//
// A fresh stack therefore hands out seed(0), seed(1), ... in order.
type Stack[T any] struct {
	values []T               // backing storage, len == capacity
	top    int               // index of the next value to hand out
	seed   func(index int) T // initial content generator
}

// New creates a Stack with the given capacity, filled with seed(i) at slot i.
// Panics with ErrBadCapacity when capacity <= 0 or seed is nil.
func New[T any](capacity int, seed func(index int) T) *Stack[T] {
	if capacity <= 0 || seed == nil {
		panic(fmt.Errorf("pool.New(%d): %w", capacity, ErrBadCapacity))
	}
	s := &Stack[T]{
		values: make([]T, capacity),
		seed:   seed,
	}
	s.Reset()

	return s
}

// Reset restores the seeded content and makes every slot available again.
func (s *Stack[T]) Reset() {
	for i := range s.values {
		s.values[i] = s.seed(i)
	}
	s.top = 0
}

// Take pops the top value. Panics with ErrEmpty when nothing is available.
func (s *Stack[T]) Take() T {
	if s.top >= len(s.values) {
		panic(fmt.Errorf("pool.Take: %w", ErrEmpty))
	}
	v := s.values[s.top]
	s.top++

	return v
}

// Give pushes v back. Panics with ErrFull when every slot is already available.
func (s *Stack[T]) Give(v T) {
	if s.top == 0 {
		panic(fmt.Errorf("pool.Give: %w", ErrFull))
	}
	s.top--
	s.values[s.top] = v
}

// Len reports how many values can still be taken.
func (s *Stack[T]) Len() int { return len(s.values) - s.top }

// Cap reports the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.values) }

// IsEmpty reports whether Take would panic.
func (s *Stack[T]) IsEmpty() bool { return s.top >= len(s.values) }

// CopyFrom overwrites s with the state of src.
// Both stacks must share the same capacity; otherwise it panics with ErrCapacityMismatch.
func (s *Stack[T]) CopyFrom(src *Stack[T]) {
	if len(s.values) != len(src.values) {
		panic(fmt.Errorf("pool.CopyFrom(%d<-%d): %w", len(s.values), len(src.values), ErrCapacityMismatch))
	}
	copy(s.values, src.values)
	s.top = src.top
	s.seed = src.seed
}

// Clone returns an independent copy of s.
func (s *Stack[T]) Clone() *Stack[T] {
	cp := &Stack[T]{
		values: make([]T, len(s.values)),
		seed:   s.seed,
	}
	cp.CopyFrom(s)

	return cp
}
