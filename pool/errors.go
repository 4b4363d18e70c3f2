// SPDX-License-Identifier: MIT

package pool

import "errors"

var (
	// ErrEmpty is raised when Take is called on an exhausted stack.
	ErrEmpty = errors.New("pool: stack is empty")

	// ErrFull is raised when Give would exceed the stack capacity.
	ErrFull = errors.New("pool: stack is full")

	// ErrCapacityMismatch is raised when copying between stacks of different capacity.
	ErrCapacityMismatch = errors.New("pool: capacity mismatch")

	// ErrBadCapacity is raised by New for a non-positive capacity.
	ErrBadCapacity = errors.New("pool: capacity must be positive")
)
