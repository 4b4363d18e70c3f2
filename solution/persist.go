// SPDX-License-Identifier: MIT

package solution

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFile resets s and rebuilds it from the route file at path (see Load).
// When the file cannot be opened s is left reset and the error is returned.
func (s *Solution) LoadFile(path string) error {
	s.Reset()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("solution.LoadFile: %w", err)
	}
	defer f.Close()

	return s.Load(f)
}

// Load resets s and rebuilds it from r.
//
// Format: every line starting with "Route" holds, after the first ':', a
// list of customers. Optionally signed integers are read greedily from the
// front of the remaining text, skipping leading whitespace, until no digits
// follow: "1 2 3x 4" yields 1, 2, 3 and "5;" yields 5. The first customer
// opens a one-customer route and each following one is appended before the
// depot. Lines starting with "Cost" and any other line are ignored.
//
// A "Route" line without ':' or a customer out of range or already routed
// stops the load with an error wrapping ErrMalformed; routes from earlier
// lines stay applied.
func (s *Solution) Load(r io.Reader) error {
	s.Reset()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if !strings.HasPrefix(text, "Route") {
			continue
		}
		_, list, ok := strings.Cut(text, ":")
		if !ok {
			return fmt.Errorf("solution.Load: line %d: missing ':': %w", line, ErrMalformed)
		}

		route := DummyRoute
		for {
			c, rest, ok := leadingInt(list)
			if !ok {
				break
			}
			list = rest
			if err := s.loadable(c); err != nil {
				return fmt.Errorf("solution.Load: line %d: customer %d: %w: %w", line, c, ErrMalformed, err)
			}
			if route == DummyRoute {
				route = s.BuildOneCustomerRoute(c)
				continue
			}
			s.InsertVertexBefore(route, s.depot, c)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("solution.Load: %w", err)
	}

	return nil
}

// leadingInt reads an optionally signed decimal integer at the front of text,
// after any leading whitespace, and returns it with the unread remainder.
// ok is false when no digits follow or the value overflows int.
func leadingInt(text string) (v int, rest string, ok bool) {
	t := strings.TrimLeft(text, " \t\r\n\v\f")
	i := 0
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		i++
	}
	digits := i
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, text, false
	}
	v, err := strconv.Atoi(t[:i])
	if err != nil {
		return 0, text, false
	}

	return v, t[i:], true
}

// loadable reports why c cannot be added to a route, nil when it can.
func (s *Solution) loadable(c int) error {
	switch {
	case c < 0 || c >= len(s.customers):
		return ErrVertexRange
	case c == s.depot:
		return ErrDepot
	case s.customers[c].route != DummyRoute:
		return ErrCustomerRouted
	}

	return nil
}

// Save writes s in the format read by Load: "Route #k: c1 c2 …" per active
// route in list order, then "Cost <total>".
func (s *Solution) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	k := 0
	for r := s.head.firstRoute; r != DummyRoute; r = s.routes[r].next {
		k++
		fmt.Fprintf(bw, "Route #%d:", k)
		for v := s.routes[r].first; v != s.depot && v != DummyVertex; v = s.customers[v].next {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "Cost %s\n", formatCost(s.cost))

	return bw.Flush()
}

// SaveFile writes s to path, creating or truncating it.
func (s *Solution) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("solution.SaveFile: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return s.Save(f)
}
