// Package localsearch_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality under test.
package localsearch_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/matrix"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)

	// optimum4 is the true optimum cycle length of the four-city instance
	// below, confirmed by exhaustive enumeration of its 3 distinct cycles.
	optimum4 = 80.0

	// ringCost4 is the length of the identity tour [0 1 2 3] on it.
	ringCost4 = 95.0
)

// fourCity is the canonical small instance: symmetric, optimum 80 via the
// cycle [0 1 3 2] (10+25+30+15), identity tour costs 95 (10+35+30+20).
func fourCity() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

// denseFrom builds a *matrix.Dense from row data, failing the test on any
// construction error.
func denseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()

	d, err := matrix.NewDense(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	var i, j int
	for i = range rows {
		for j = range rows[i] {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// -----------------------------------------------------------------------------
// altDense is an independent matrix.Matrix implementation used to exercise
// the generic (non-*Dense) code paths.
// -----------------------------------------------------------------------------

type altDense struct{ a [][]float64 }

var _ matrix.Matrix = altDense{}

func (m altDense) Rows() int { return len(m.a) }
func (m altDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m altDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}
func (m altDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v

	return nil
}
func (m altDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return altDense{a: cp}
}

// Repeat runs fn as n sequential subtests; used for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()

	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// intsEqual compares two int slices element-wise.
func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
