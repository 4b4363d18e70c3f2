// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxLineLen bounds a single input line (coordinate sections of huge
// instances stay far below it).
const maxLineLen = 1 << 20

// lineReader hands out input lines one at a time. Running out of lines is an
// ordinary error (ErrEndOfInput) so grammars can fail fast and let the next
// grammar try.
type lineReader struct {
	sc   *bufio.Scanner
	line int // number of lines consumed so far
}

func newLineReader(data []byte) *lineReader {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)

	return &lineReader{sc: sc}
}

// next returns the next line without its terminator.
func (r *lineReader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("line %d: %w", r.line+1, err)
		}

		return "", fmt.Errorf("line %d: %w", r.line+1, ErrEndOfInput)
	}
	r.line++

	return strings.TrimRight(r.sc.Text(), "\r"), nil
}

// skip discards n lines.
func (r *lineReader) skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := r.next(); err != nil {
			return err
		}
	}

	return nil
}

// record reads the next line as whitespace separated fields.
func (r *lineReader) record() (*record, error) {
	line, err := r.next()
	if err != nil {
		return nil, err
	}

	return &record{fields: strings.Fields(line), line: r.line}, nil
}

// keyedInt reads a "KEY : value" line and returns value as an integer.
func (r *lineReader) keyedInt() (int, error) {
	line, err := r.next()
	if err != nil {
		return 0, err
	}
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return 0, fmt.Errorf("line %d: missing ':': %w", r.line, ErrSyntax)
	}
	rec := &record{fields: strings.Fields(value), line: r.line}

	return rec.int()
}

// record is one tokenized line consumed left to right. Trailing fields that
// nobody asks for are ignored.
type record struct {
	fields []string
	line   int
	pos    int
}

func (rc *record) token() (string, error) {
	if rc.pos >= len(rc.fields) {
		return "", fmt.Errorf("line %d: field %d missing: %w", rc.line, rc.pos+1, ErrSyntax)
	}
	tok := rc.fields[rc.pos]
	rc.pos++

	return tok, nil
}

func (rc *record) int() (int, error) {
	tok, err := rc.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not an integer: %w", rc.line, tok, ErrSyntax)
	}

	return v, nil
}

func (rc *record) float() (float64, error) {
	tok, err := rc.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("line %d: %q is not a finite number: %w", rc.line, tok, ErrSyntax)
	}

	return v, nil
}
