// SPDX-License-Identifier: MIT

package pool_test

import (
	"fmt"

	"github.com/katalvlaran/cvrp/pool"
)

// ExampleStack shows identifier allocation with reuse of released ids.
func ExampleStack() {
	ids := pool.New(3, func(i int) int { return i + 1 })

	a := ids.Take()
	b := ids.Take()
	ids.Give(a)
	c := ids.Take()

	fmt.Println(a, b, c, ids.Len())
	// Output: 1 2 1 1
}
