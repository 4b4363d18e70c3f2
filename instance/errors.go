// SPDX-License-Identifier: MIT

package instance

import "errors"

var (
	// ErrEndOfInput is returned by the parsers when the text ends before the grammar does.
	ErrEndOfInput = errors.New("instance: unexpected end of input")

	// ErrSyntax is returned when a token cannot be read as the number a grammar expects.
	ErrSyntax = errors.New("instance: malformed input")

	// ErrUnknownFormat is reported when no grammar accepts the input.
	ErrUnknownFormat = errors.New("instance: input matches no known format")

	// ErrBadDemand marks an instance whose customer demand is not strictly positive.
	ErrBadDemand = errors.New("instance: customer demand must be positive")

	// ErrBadCapacity marks an instance whose vehicle capacity is not strictly positive.
	ErrBadCapacity = errors.New("instance: vehicle capacity must be positive")

	// ErrDimensionMismatch signals inconsistent lengths of coordinate/demand/cost inputs.
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrBadDimension signals a declared dimension smaller than one vertex.
	ErrBadDimension = errors.New("instance: dimension must be positive")

	// ErrDepotInSubset is returned when a sub-instance customer list contains the depot.
	ErrDepotInSubset = errors.New("instance: sub-instance customers must not contain the depot")

	// ErrVertexRange is returned for a vertex id outside the customer range.
	ErrVertexRange = errors.New("instance: vertex out of range")

	// ErrDuplicateCustomer is returned when a sub-instance lists a customer twice.
	ErrDuplicateCustomer = errors.New("instance: duplicate customer")

	// ErrUnsupportedFormat is returned by Write for an unknown output Format.
	ErrUnsupportedFormat = errors.New("instance: unsupported output format")

	// ErrBadConfig is returned by Generate for a non-positive size parameter.
	ErrBadConfig = errors.New("instance: invalid generator config")

	// ErrNilProvider is returned when a nil Provider is passed.
	ErrNilProvider = errors.New("instance: nil provider")
)
