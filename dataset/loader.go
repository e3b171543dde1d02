// Package dataset loads TSP distance matrices from delimited text files.
//
// The supported dialect matches the project's instance files: one matrix row
// per line, fields separated by semicolons, and a comma as the decimal
// separator (e.g. "12,5;0;3,75"). Load normalizes the decimal commas, parses
// every field as float64, and materializes a dense matrix.
//
// Validation performed here (so the search engine can assume a well-formed
// matrix): square shape, no unparsable fields, no NaN, no negative entries.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/matrix"
)

// Sentinel errors returned by the loader.
var (
	// ErrEmptyFile indicates the file contained no matrix rows.
	ErrEmptyFile = errors.New("dataset: file contains no rows")

	// ErrNotSquare indicates a row whose field count differs from the row count.
	ErrNotSquare = errors.New("dataset: matrix is not square")

	// ErrBadValue indicates a field that is unparsable, NaN, or negative.
	ErrBadValue = errors.New("dataset: invalid distance value")
)

// fieldDelimiter separates matrix entries within one line.
const fieldDelimiter = ";"

// Load reads a semicolon-delimited distance matrix from path. Decimal commas
// are normalized to dots before parsing. Returns the dense n×n matrix.
//
// Errors: os.Open failures pass through wrapped; shape and value violations
// wrap the sentinels above with row/column context.
func Load(path string) (*matrix.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}

	rows, err := parseRows(string(raw))
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	return buildDense(rows)
}

// parseRows splits the file content into float64 rows. Blank lines (common
// as a trailing newline) are skipped; everything else must parse.
func parseRows(content string) ([][]float64, error) {
	var (
		lines = strings.Split(content, "\n")
		rows  = make([][]float64, 0, len(lines))
	)

	var (
		lineNo int
		line   string
	)
	for lineNo, line = range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var (
			fields = strings.Split(line, fieldDelimiter)
			row    = make([]float64, len(fields))
			col    int
			field  string
			v      float64
			err    error
		)
		for col, field = range fields {
			// Normalize the decimal comma before parsing.
			field = strings.ReplaceAll(strings.TrimSpace(field), ",", ".")
			v, err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d (%q)", ErrBadValue, lineNo+1, col+1, field)
			}
			if math.IsNaN(v) || v < 0 {
				return nil, fmt.Errorf("%w: row %d col %d (%v)", ErrBadValue, lineNo+1, col+1, v)
			}
			row[col] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return rows, nil
}

// buildDense materializes parsed rows into a dense matrix, enforcing the
// square-shape invariant.
func buildDense(rows [][]float64) (*matrix.Dense, error) {
	var n = len(rows)

	var (
		i, j int
		row  []float64
	)
	for i, row = range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrNotSquare, i+1, len(row), n)
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
