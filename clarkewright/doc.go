// SPDX-License-Identifier: MIT

// Package clarkewright builds an initial CVRP solution with the
// Clarke & Wright savings heuristic.
//
// Every customer starts on its own route. For each customer i the first
// Neighbors entries of its neighbor list with j > i produce a saving
//
//	s(i, j) = c(i, 0) + c(0, j) - λ·c(i, j)
//
// and the savings are scanned once in decreasing order (ties keep their
// generation order). Two routes are joined when i ends one of them, j starts
// the other and the combined load fits the vehicle.
//
// Options can be built in code from DefaultOptions or decoded from YAML:
//
//	lambda: 1.1
//	neighbors: 100
//
// Complexity: O(n·k log(n·k)) for n customers and k neighbors.
package clarkewright
