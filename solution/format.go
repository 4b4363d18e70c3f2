// SPDX-License-Identifier: MIT

package solution

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tour returns the closed vertex sequence of r: depot, customers, depot.
func (s *Solution) Tour(r int) []int {
	tour := make([]int, 0, s.routes[r].size+2)
	tour = append(tour, s.depot)
	for v := s.routes[r].first; v != s.depot && v != DummyVertex; v = s.customers[v].next {
		tour = append(tour, v)
	}

	return append(tour, s.depot)
}

// RouteString renders r as "[r] 0 c1 c2 … 0".
func (s *Solution) RouteString(r int) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strconv.Itoa(r))
	b.WriteString("]")
	for _, v := range s.Tour(r) {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String renders every route on its own line followed by the total cost.
func (s *Solution) String() string {
	var b strings.Builder
	_ = s.Print(&b)

	return b.String()
}

// Print writes one line per route, "[r] 0 … 0 (load) cost", then the total.
func (s *Solution) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := s.head.firstRoute; r != DummyRoute; r = s.routes[r].next {
		fmt.Fprintf(bw, "%s (%d) %s\n", s.RouteString(r), s.routes[r].load, formatCost(s.routes[r].cost))
	}
	fmt.Fprintf(bw, "Solution cost = %s\n", formatCost(s.cost))

	return bw.Flush()
}

func formatCost(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
