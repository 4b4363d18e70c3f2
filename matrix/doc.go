// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major cost storage used by CVRP
// instances, together with the validators applied to user supplied costs.
//
// What is here:
//   - Matrix: minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense: contiguous row-major implementation with safe accessors and an
//     unchecked MustAt for hot loops that already know their bounds.
//   - NewEuclidean: symmetric Euclidean distance matrix from coordinates,
//     optionally rounded to the nearest integer (TSPLIB EUC_2D convention).
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateZeroDiagonal, ValidateFinite.
//
// Errors:
//   - Public accessors never panic on user input. They return the sentinels of
//     errors.go wrapped with the method and coordinates, so callers match them
//     with errors.Is.
//
// Determinism:
//   - All loops run in fixed row-major order; no map iteration.
package matrix
