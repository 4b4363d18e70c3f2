// SPDX-License-Identifier: MIT

package solution

import (
	"slices"

	"golang.org/x/exp/maps"
)

// UnstagedChanges returns the set of vertices touched since the last Commit.
// The map is owned by the solution: read it, do not modify it.
func (s *Solution) UnstagedChanges() map[int]struct{} { return s.changes }

// ChangedVertices returns the touched vertices as a sorted snapshot.
func (s *Solution) ChangedVertices() []int {
	out := maps.Keys(s.changes)
	slices.Sort(out)

	return out
}

// Commit clears the change set.
func (s *Solution) Commit() { clear(s.changes) }
