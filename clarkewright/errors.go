// SPDX-License-Identifier: MIT

package clarkewright

import "errors"

var (
	// ErrBadOptions is returned for a non-finite Lambda or a negative Neighbors.
	ErrBadOptions = errors.New("clarkewright: invalid options")

	// ErrNilSolution is returned when Run receives no solution.
	ErrNilSolution = errors.New("clarkewright: solution is nil")

	// ErrInfeasible wraps the audit of a constructed solution that violates an
	// invariant, typically a customer whose demand exceeds the capacity.
	ErrInfeasible = errors.New("clarkewright: constructed solution is infeasible")
)
