// SPDX-License-Identifier: MIT

// Package instance models a Capacitated Vehicle Routing Problem instance:
// a vertex universe [0, N) with the depot at 0, customers in [1, N), planar
// coordinates, integer demands, a vehicle capacity, a dense symmetric cost
// matrix and, for every vertex, the full list of vertices ordered by
// increasing cost with the vertex itself in front.
//
// 🚚 What is here?
//
//   - Provider: the read-only capability consumed by solutions and
//     constructors. Implemented by *Instance and *SubInstance.
//   - Load / Parse: build an Instance from text. Three grammars are tried in a
//     fixed order (Zachariadis–Kiranoudis, Golden, X/TSPLIB); the first one
//     that parses completely wins.
//   - FromData / FromMatrix / ParseJSON / Generate: in-memory construction.
//   - NewSubInstance: a remapped view over a subset of customers.
//   - Write / Serialize: TSPLIB-style text, a compact JSON object or a cost
//     matrix dump.
//
// Validity:
//
//	An Instance is never nil. When no grammar matches, IsValid() is false,
//	Err() explains every attempt, and no derived state exists. When a
//	customer has a non-positive demand, IsValid() is false as well but costs
//	and neighbors are still computed. Callers must check IsValid before use.
//
// Costs:
//
//	Euclidean distances, rounded to the nearest integer unless
//	WithRoundedCosts(false) is passed.
//
// Concurrency:
//
//	Instances are immutable after construction and safe to share between
//	goroutines and between any number of solutions.
package instance
