// Package tableio reads and writes the plain ASCII numeric files that
// surround a GZT run: whitespace-separated column tables for recordings
// and one-value-per-line parameter vectors. Malformed input is reported
// with its 1-based line number before any computation starts.
package tableio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line in a numeric text file.
type ParseError struct {
	Line int // 1-based line number
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tableio: line %d: %s", e.Line, e.Msg)
}

// ReadColumns reads a whitespace-separated numeric table with exactly
// cols columns, returning one slice per column. Blank lines and lines
// starting with '#' are skipped.
func ReadColumns(r io.Reader, cols int) ([][]float64, error) {
	if cols < 1 {
		return nil, fmt.Errorf("tableio: column count must be >= 1: %d", cols)
	}

	out := make([][]float64, cols)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if len(fields) != cols {
			return nil, &ParseError{
				Line: line,
				Msg:  fmt.Sprintf("expected %d columns, got %d", cols, len(fields)),
			}
		}

		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("bad number %q", f)}
			}
			out[i] = append(out[i], v)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadVector reads a plain numeric vector: one or more whitespace-
// separated values per line, blank and '#' lines skipped.
func ReadVector(r io.Reader) ([]float64, error) {
	var out []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("bad number %q", f)}
			}
			out = append(out, v)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// WriteVector writes one value per line in shortest round-trip decimal form.
func WriteVector(w io.Writer, v []float64) error {
	bw := bufio.NewWriter(w)

	for _, x := range v {
		bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteColumns writes the given columns as a tab-separated table,
// truncated to the shortest column.
func WriteColumns(w io.Writer, cols ...[]float64) error {
	if len(cols) == 0 {
		return nil
	}

	rows := len(cols[0])
	for _, c := range cols[1:] {
		if len(c) < rows {
			rows = len(c)
		}
	}

	bw := bufio.NewWriter(w)

	for r := range rows {
		for i, c := range cols {
			if i > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(strconv.FormatFloat(c[r], 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
