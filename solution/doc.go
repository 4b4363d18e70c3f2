// SPDX-License-Identifier: MIT

// Package solution implements the mutable representation of a CVRP solution
// and the primitive moves that local search and constructive heuristics are
// built from.
//
// Representation:
//
//	Every route is a circular doubly-linked list of customers closed through
//	the depot. Nodes live in two flat arrays indexed by plain integers:
//	routes by route id in [1, N], customers by vertex id in [0, N). Active
//	routes form a second doubly-linked list whose head pointer is held by the
//	depot node. Route ids come from a LIFO pool so freed ids are reused first.
//
//	            ┌──────── route 3 ────────┐
//	  depot ──▶ │ 0 → 7 → 2 → 9 → 0       │ ──▶ route 1 ──▶ …
//	            └─────────────────────────┘
//
// Sentinels:
//   - DummyVertex (-1): "no vertex", used for unrouted customers and for a
//     route whose chain was detached from the depot.
//   - DummyRoute (0): "no route", list terminator and route pointer of
//     unrouted customers.
//
// Bookkeeping:
//
//	Every move updates per-route load, size and cost plus the global cost by
//	an exact delta, and records the vertices whose adjacency changed. The
//	change set is cumulative; Commit clears it.
//
// Errors:
//   - Precondition violations on the mutation API (inserting a routed
//     customer, removing an unrouted one, a single-vertex reversal, ids out of
//     range) panic with an error wrapping one of the sentinels in errors.go.
//   - Audit re-derives every invariant from the raw arrays and reports each
//     violation without mutating anything.
//   - Load reports malformed input as an ordinary error.
//
// Lifecycle:
//
//	New allocates but does not produce a usable empty solution: call Reset
//	first. Clone and CopyFrom duplicate every array together with the pool.
//
// Concurrency:
//
//	A Solution is not safe for concurrent use. Many solutions may share one
//	read-only instance.
package solution
