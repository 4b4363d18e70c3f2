// SPDX-License-Identifier: MIT

// Package pool provides a fixed-capacity LIFO allocator of reusable values.
//
// A Stack is seeded once at construction: slot i receives seed(i). Take hands
// out values from the top, Give returns them. Values handed back most
// recently are handed out first, so freed identifiers are reused quickly and
// the set of live identifiers stays dense.
//
// The solution package uses a Stack[int] seeded with i+1 to allocate route
// identifiers 1..N while keeping 0 free for the "no route" sentinel.
//
// Complexity:
//   - New, Reset, CopyFrom, Clone: O(capacity).
//   - Take, Give, Len, IsEmpty: O(1).
//
// Concurrency:
//   - A Stack is not safe for concurrent use.
package pool
