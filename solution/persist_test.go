// SPDX-License-Identifier: MIT

package solution_test

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/solution"
)

// sortedTours returns the tours of s in a canonical order.
func sortedTours(s *solution.Solution) [][]int {
	out := tours(s)
	slices.SortFunc(out, func(a, b []int) int { return slices.Compare(a, b) })

	return out
}

func TestSave(t *testing.T) {
	s := freshSolution(lineInstance(t, 20))
	buildRoute(s, 1, 2)
	buildRoute(s, 5, 3)

	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))
	require.Equal(t, "Route #1: 5 3\nRoute #2: 1 2\nCost 14\n", buf.String())
}

func TestLoad_RoundTrip(t *testing.T) {
	in, err := instance.Generate(instance.GenerateConfig{Customers: 40, Capacity: 100, MaxDemand: 20, Grid: 200, Seed: 5})
	require.NoError(t, err)
	s := freshSolution(in)
	for c := in.CustomersBegin(); c < in.CustomersEnd(); c += 4 {
		r := s.BuildOneCustomerRoute(c)
		for k := c + 1; k < min(c+4, in.CustomersEnd()); k++ {
			s.InsertVertexBefore(r, in.Depot(), k)
		}
	}

	path := filepath.Join(t.TempDir(), "sol.txt")
	require.NoError(t, s.SaveFile(path))

	got := freshSolution(in)
	require.NoError(t, got.LoadFile(path))
	require.Equal(t, sortedTours(s), sortedTours(got))
	require.Equal(t, s.RoutesNum(), got.RoutesNum())
	require.InDelta(t, s.Cost(), got.Cost(), 1e-6)
	requireSound(t, got)
}

func TestLoad_Format(t *testing.T) {
	s := freshSolution(lineInstance(t, 20))
	buildRoute(s, 4)

	src := strings.Join([]string{
		"Route #1: 1 2 x 3",
		"",
		"comment line",
		"Route #2:   5\t4  ",
		"Cost 123",
	}, "\n")
	require.NoError(t, s.Load(strings.NewReader(src)))

	require.Equal(t, [][]int{{0, 1, 2, 0}, {0, 5, 4, 0}}, sortedTours(s))
	require.False(t, s.IsCustomerInSolution(3), "parsing stops at the first non-integer")
	require.Equal(t, 4.0+10.0, s.Cost())
	requireSound(t, s)
}

func TestLoad_LeadingDigits(t *testing.T) {
	s := freshSolution(lineInstance(t, 20))

	require.NoError(t, s.Load(strings.NewReader("Route #1: 1 2 3x 4\nRoute #2: 5;\n")))
	require.Equal(t, [][]int{{0, 1, 2, 3, 0}, {0, 5, 0}}, sortedTours(s))
	require.False(t, s.IsCustomerInSolution(4), "reading stops after the digits of 3x")
	requireSound(t, s)

	require.NoError(t, s.Load(strings.NewReader("Route #1:+2\t4,1\n")))
	require.Equal(t, [][]int{{0, 2, 4, 0}}, sortedTours(s))

	err := s.Load(strings.NewReader("Route #1: 3 -1\n"))
	require.ErrorIs(t, err, solution.ErrVertexRange)
}

func TestLoad_Malformed(t *testing.T) {
	s := freshSolution(lineInstance(t, 20))

	err := s.Load(strings.NewReader("Route #1: 1 2\nRoute #2: 3 2\n"))
	require.ErrorIs(t, err, solution.ErrMalformed)
	require.ErrorIs(t, err, solution.ErrCustomerRouted)
	require.Contains(t, err.Error(), "line 2")
	require.Equal(t, 2, s.RoutesNum(), "lines before the error stay applied")
	require.Equal(t, []int{0, 3, 0}, s.Tour(s.FirstRoute()))

	err = s.Load(strings.NewReader("Route #1: 99\n"))
	require.ErrorIs(t, err, solution.ErrVertexRange)
	require.Equal(t, 0, s.RoutesNum())

	err = s.Load(strings.NewReader("Route #1: 0\n"))
	require.ErrorIs(t, err, solution.ErrDepot)

	err = s.Load(strings.NewReader("Route #1: 4\nRoute 5\n"))
	require.ErrorIs(t, err, solution.ErrMalformed)
	require.Equal(t, 1, s.RoutesNum())
}

func TestLoadFile_Missing(t *testing.T) {
	s := freshSolution(lineInstance(t, 20))
	buildRoute(s, 1)

	err := s.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.Equal(t, 0, s.RoutesNum(), "the solution is reset even when the file is missing")
	require.Equal(t, 0.0, s.Cost())
}
