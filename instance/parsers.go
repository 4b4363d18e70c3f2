// SPDX-License-Identifier: MIT

package instance

import "fmt"

// rawInstance is the grammar-independent result of parsing: one entry per
// vertex, depot at index 0.
type rawInstance struct {
	xs, ys   []float64
	demands  []int
	capacity int
}

func newRaw(dimension, capacity int) (*rawInstance, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("dimension %d: %w", dimension, ErrBadDimension)
	}

	return &rawInstance{
		xs:       make([]float64, 0, min(dimension, maxPrealloc)),
		ys:       make([]float64, 0, min(dimension, maxPrealloc)),
		demands:  make([]int, 0, min(dimension, maxPrealloc)),
		capacity: capacity,
	}, nil
}

// maxPrealloc caps up-front allocation so that a bogus header cannot request
// gigabytes before the body proves it exists.
const maxPrealloc = 1 << 16

func (raw *rawInstance) push(x, y float64, demand int) {
	raw.xs = append(raw.xs, x)
	raw.ys = append(raw.ys, y)
	raw.demands = append(raw.demands, demand)
}

// grammar is one supported text layout.
type grammar struct {
	name  string
	parse func(data []byte) (*rawInstance, error)
}

// grammars lists the layouts in trial order.
var grammars = []grammar{
	{name: "zachariadis-kiranoudis", parse: parseZK},
	{name: "golden", parse: parseGolden},
	{name: "x", parse: parseX},
}

// parseZK reads the Zachariadis–Kiranoudis layout:
//
//	<customers> <capacity> [<route length limit>]
//	<index> <x> <y> <demand>     (customers+1 lines, depot first)
func parseZK(data []byte) (*rawInstance, error) {
	r := newLineReader(data)

	head, err := r.record()
	if err != nil {
		return nil, err
	}
	customers, err := head.int()
	if err != nil {
		return nil, err
	}
	capacity, err := head.float()
	if err != nil {
		return nil, err
	}

	raw, err := newRaw(customers+1, int(capacity))
	if err != nil {
		return nil, err
	}
	for n := 0; n <= customers; n++ {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		if _, err = rec.int(); err != nil {
			return nil, err
		}
		x, err := rec.float()
		if err != nil {
			return nil, err
		}
		y, err := rec.float()
		if err != nil {
			return nil, err
		}
		q, err := rec.int()
		if err != nil {
			return nil, err
		}
		raw.push(x, y, q)
	}

	return raw, nil
}

// parseGolden reads the Golden et al. layout. The depot is listed last, in
// its own section, and has no demand entry:
//
//	3 header lines
//	KEY : <dimension>
//	KEY : <capacity>
//	1 line (vehicles), 4 lines (headers)
//	<index> <x> <y>              (dimension-1 customer lines)
//	1 line (demand header)
//	<index> <demand>             (dimension-1 lines)
//	1 line (depot header)
//	<x> <y>                      (depot)
func parseGolden(data []byte) (*rawInstance, error) {
	r := newLineReader(data)

	if err := r.skip(3); err != nil {
		return nil, err
	}
	dimension, err := r.keyedInt()
	if err != nil {
		return nil, err
	}
	capacity, err := r.keyedInt()
	if err != nil {
		return nil, err
	}
	raw, err := newRaw(dimension, capacity)
	if err != nil {
		return nil, err
	}
	if err = r.skip(1 + 4); err != nil {
		return nil, err
	}

	raw.push(0, 0, 0) // depot slot, filled from the depot section
	for n := 1; n < dimension; n++ {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		if _, err = rec.int(); err != nil {
			return nil, err
		}
		x, err := rec.float()
		if err != nil {
			return nil, err
		}
		y, err := rec.float()
		if err != nil {
			return nil, err
		}
		raw.push(x, y, 0)
	}

	if err = r.skip(1); err != nil {
		return nil, err
	}
	for n := 1; n < dimension; n++ {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		if _, err = rec.int(); err != nil {
			return nil, err
		}
		if raw.demands[n], err = rec.int(); err != nil {
			return nil, err
		}
	}

	if err = r.skip(1); err != nil {
		return nil, err
	}
	rec, err := r.record()
	if err != nil {
		return nil, err
	}
	if raw.xs[0], err = rec.float(); err != nil {
		return nil, err
	}
	if raw.ys[0], err = rec.float(); err != nil {
		return nil, err
	}

	return raw, nil
}

// parseX reads the X / TSPLIB CVRP layout (Uchoa et al.):
//
//	3 header lines
//	KEY : <dimension>
//	1 line (edge weight type)
//	KEY : <capacity>
//	1 line (NODE_COORD_SECTION)
//	<index> <x> <y>              (dimension lines, depot first)
//	1 line (DEMAND_SECTION)
//	<index> <demand>             (dimension lines)
func parseX(data []byte) (*rawInstance, error) {
	r := newLineReader(data)

	if err := r.skip(3); err != nil {
		return nil, err
	}
	dimension, err := r.keyedInt()
	if err != nil {
		return nil, err
	}
	if err = r.skip(1); err != nil {
		return nil, err
	}
	capacity, err := r.keyedInt()
	if err != nil {
		return nil, err
	}
	raw, err := newRaw(dimension, capacity)
	if err != nil {
		return nil, err
	}
	if err = r.skip(1); err != nil {
		return nil, err
	}

	for n := 0; n < dimension; n++ {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		if _, err = rec.int(); err != nil {
			return nil, err
		}
		x, err := rec.float()
		if err != nil {
			return nil, err
		}
		y, err := rec.float()
		if err != nil {
			return nil, err
		}
		raw.push(x, y, 0)
	}

	if err = r.skip(1); err != nil {
		return nil, err
	}
	for n := 0; n < dimension; n++ {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		if _, err = rec.int(); err != nil {
			return nil, err
		}
		if raw.demands[n], err = rec.int(); err != nil {
			return nil, err
		}
	}

	return raw, nil
}
