// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/cvrp/matrix"
)

// Format selects the text layout produced by Write.
type Format int

const (
	// FormatTSPLIB is the CVRP flavour of TSPLIB (re-readable by Load).
	FormatTSPLIB Format = iota
	// FormatJSON is {"x":[...],"y":[...],"Q":capacity,"q":[...]} over all vertices.
	FormatJSON
	// FormatCosts dumps the full cost matrix, one bracketed row per vertex.
	// Write-only.
	FormatCosts
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatTSPLIB:
		return "tsplib"
	case FormatJSON:
		return "json"
	case FormatCosts:
		return "costs"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// jsonDoc is the JSON layout of an instance. Every slice is indexed by vertex id.
type jsonDoc struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	C int       `json:"Q"`
	D []int     `json:"q"`
}

// Write dumps p to w in the requested format.
func Write(w io.Writer, p Provider, f Format) error {
	if p == nil {
		return fmt.Errorf("Write: %w", ErrNilProvider)
	}
	switch f {
	case FormatTSPLIB:
		return writeTSPLIB(w, p)
	case FormatJSON:
		return writeJSON(w, p)
	case FormatCosts:
		return writeCosts(w, p)
	default:
		return fmt.Errorf("Write(%s): %w", f, ErrUnsupportedFormat)
	}
}

// Serialize writes p into the file at path, truncating it.
func Serialize(p Provider, path string, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Serialize(%q): %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Serialize(%q): %w", path, cerr)
		}
	}()

	return Write(file, p, f)
}

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// writeTSPLIB emits 1-based TSPLIB ids: the depot is 1, vertex i is i+1.
func writeTSPLIB(w io.Writer, p Provider) error {
	bw := bufio.NewWriter(w)
	d := p.Depot()

	fmt.Fprintf(bw, "NAME : name\n")
	fmt.Fprintf(bw, "COMMENT : (comment)\n")
	fmt.Fprintf(bw, "TYPE : CVRP\n")
	fmt.Fprintf(bw, "DIMENSION : %d\n", p.VerticesNum())
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE : EUC_2D\n")
	fmt.Fprintf(bw, "CAPACITY : %d\n", p.VehicleCapacity())

	fmt.Fprintf(bw, "NODE_COORD_SECTION\n")
	fmt.Fprintf(bw, "1\t%s\t%s\n", formatCoord(p.X(d)), formatCoord(p.Y(d)))
	for i := p.CustomersBegin(); i < p.CustomersEnd(); i++ {
		fmt.Fprintf(bw, "%d\t%s\t%s\n", i+1, formatCoord(p.X(i)), formatCoord(p.Y(i)))
	}

	fmt.Fprintf(bw, "DEMAND_SECTION\n")
	fmt.Fprintf(bw, "1\t0\n")
	for i := p.CustomersBegin(); i < p.CustomersEnd(); i++ {
		fmt.Fprintf(bw, "%d\t%d\n", i+1, p.Demand(i))
	}

	fmt.Fprintf(bw, "DEPOT_SECTION\n\t1\n\t-1\nEOF\n")

	return bw.Flush()
}

func writeJSON(w io.Writer, p Provider) error {
	n := p.VerticesNum()
	doc := jsonDoc{
		X: make([]float64, 0, n),
		Y: make([]float64, 0, n),
		C: p.VehicleCapacity(),
		D: make([]int, 0, n),
	}
	for i := p.VerticesBegin(); i < p.VerticesEnd(); i++ {
		doc.X = append(doc.X, p.X(i))
		doc.Y = append(doc.Y, p.Y(i))
		doc.D = append(doc.D, p.Demand(i))
	}

	return json.NewEncoder(w).Encode(doc)
}

func writeCosts(w io.Writer, p Provider) error {
	n := p.VerticesNum()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return fmt.Errorf("Write(%s): %w", FormatCosts, err)
	}
	for i := p.VerticesBegin(); i < p.VerticesEnd(); i++ {
		for j := p.VerticesBegin(); j < p.VerticesEnd(); j++ {
			if err = m.Set(i-p.VerticesBegin(), j-p.VerticesBegin(), p.Cost(i, j)); err != nil {
				return fmt.Errorf("Write(%s): %w", FormatCosts, err)
			}
		}
	}
	_, err = io.WriteString(w, m.String())

	return err
}

// ParseJSON reads the FormatJSON layout back into an Instance.
func ParseJSON(r io.Reader, opts ...Option) (*Instance, error) {
	var doc jsonDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ParseJSON: %w: %w", ErrSyntax, err)
	}

	return FromData(doc.X, doc.Y, doc.D, doc.C, opts...)
}
