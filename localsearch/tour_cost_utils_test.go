// Package localsearch_test exercises the cost model and tour utilities.
// Focus: closed-cycle semantics, rotation/reversal invariances, sentinel
// errors, and identical behavior of the Dense fast path vs the generic path.
package localsearch_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wjaskula/metatsp/localsearch"
)

// -----------------------------------------------------------------------------
// 1) TourCost - closed-cycle semantics on the four-city instance.
// -----------------------------------------------------------------------------

func TestTourCost_FourCityKnownValues(t *testing.T) {
	m := denseFrom(t, fourCity())

	got, err := localsearch.TourCost(m, []int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("TourCost: %v", err)
	}
	if got != ringCost4 {
		t.Fatalf("identity tour cost = %v, want %v", got, ringCost4)
	}

	got, err = localsearch.TourCost(m, []int{0, 1, 3, 2})
	if err != nil {
		t.Fatalf("TourCost: %v", err)
	}
	if got != optimum4 {
		t.Fatalf("optimal tour cost = %v, want %v", got, optimum4)
	}
}

// -----------------------------------------------------------------------------
// 2) Dense fast path and generic interface path must agree exactly.
// -----------------------------------------------------------------------------

func TestTourCost_DenseAndGenericAgree(t *testing.T) {
	rows := fourCity()
	d := denseFrom(t, rows)
	g := altDense{a: rows}

	tours := [][]int{{0, 1, 2, 3}, {0, 1, 3, 2}, {2, 0, 3, 1}}
	for _, tour := range tours {
		a, err := localsearch.TourCost(d, tour)
		if err != nil {
			t.Fatalf("dense TourCost(%v): %v", tour, err)
		}
		b, err := localsearch.TourCost(g, tour)
		if err != nil {
			t.Fatalf("generic TourCost(%v): %v", tour, err)
		}
		if a != b {
			t.Fatalf("path disagreement on %v: dense=%v generic=%v", tour, a, b)
		}
	}
}

// -----------------------------------------------------------------------------
// 3) Cost is invariant under cyclic rotation of the tour.
// -----------------------------------------------------------------------------

func TestTourCost_RotationInvariant(t *testing.T) {
	m := denseFrom(t, fourCity())
	base := []int{0, 1, 3, 2}

	var pivot int
	for pivot = 0; pivot < len(base); pivot++ {
		rot, err := localsearch.RotateTour(base, pivot)
		if err != nil {
			t.Fatalf("RotateTour(pivot=%d): %v", pivot, err)
		}
		c, err := localsearch.TourCost(m, rot)
		if err != nil {
			t.Fatalf("TourCost(%v): %v", rot, err)
		}
		if c != optimum4 {
			t.Fatalf("rotation pivot=%d changed cost: got %v, want %v", pivot, c, optimum4)
		}
		if !localsearch.EqualToursModuloRotation(base, rot) {
			t.Fatalf("rotation pivot=%d lost cycle identity: %v vs %v", pivot, base, rot)
		}
	}
}

// -----------------------------------------------------------------------------
// 4) On a symmetric matrix, full reversal preserves cost; on an asymmetric
// one it generally does not.
// -----------------------------------------------------------------------------

func TestTourCost_ReversalInvariance_SymmetricOnly(t *testing.T) {
	sym := denseFrom(t, fourCity())
	fwd := []int{0, 1, 2, 3}
	rev := []int{3, 2, 1, 0}

	a, err := localsearch.TourCost(sym, fwd)
	if err != nil {
		t.Fatalf("TourCost fwd: %v", err)
	}
	b, err := localsearch.TourCost(sym, rev)
	if err != nil {
		t.Fatalf("TourCost rev: %v", err)
	}
	if a != b {
		t.Fatalf("symmetric reversal changed cost: %v vs %v", a, b)
	}

	asym := denseFrom(t, [][]float64{
		{0, 1, 5},
		{5, 0, 1},
		{1, 5, 0},
	})
	cheap, err := localsearch.TourCost(asym, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("TourCost cheap direction: %v", err)
	}
	dear, err := localsearch.TourCost(asym, []int{2, 1, 0})
	if err != nil {
		t.Fatalf("TourCost dear direction: %v", err)
	}
	if cheap != 3 || dear != 15 {
		t.Fatalf("asymmetric costs: got %v/%v, want 3/15", cheap, dear)
	}
}

// -----------------------------------------------------------------------------
// 5) Sentinel errors: shape, range, missing edges, negative weights.
// -----------------------------------------------------------------------------

func TestTourCost_SentinelErrors(t *testing.T) {
	if _, err := localsearch.TourCost(nil, []int{0, 1}); !errors.Is(err, localsearch.ErrDimensionMismatch) {
		t.Fatalf("nil matrix: got %v, want ErrDimensionMismatch", err)
	}

	m := denseFrom(t, fourCity())
	if _, err := localsearch.TourCost(m, []int{0}); !errors.Is(err, localsearch.ErrDimensionMismatch) {
		t.Fatalf("short tour: got %v, want ErrDimensionMismatch", err)
	}
	if _, err := localsearch.TourCost(m, []int{0, 1, 2, 9}); !errors.Is(err, localsearch.ErrDimensionMismatch) {
		t.Fatalf("out-of-range index: got %v, want ErrDimensionMismatch", err)
	}

	rect := altDense{a: [][]float64{{0, 1, 2}, {1, 0, 2}}}
	if _, err := localsearch.TourCost(rect, []int{0, 1}); !errors.Is(err, localsearch.ErrNonSquare) {
		t.Fatalf("rectangular matrix: got %v, want ErrNonSquare", err)
	}

	inf := fourCity()
	inf[1][2] = math.Inf(1)
	if _, err := localsearch.TourCost(denseFrom(t, inf), []int{0, 1, 2, 3}); !errors.Is(err, localsearch.ErrIncompleteGraph) {
		t.Fatalf("missing edge on path: got %v, want ErrIncompleteGraph", err)
	}

	neg := fourCity()
	neg[2][3] = -1
	if _, err := localsearch.TourCost(denseFrom(t, neg), []int{0, 1, 2, 3}); !errors.Is(err, localsearch.ErrNegativeWeight) {
		t.Fatalf("negative weight: got %v, want ErrNegativeWeight", err)
	}
}

// -----------------------------------------------------------------------------
// 6) Tour utilities: permutation validation, copies, rotation errors.
// -----------------------------------------------------------------------------

func TestValidatePermutation(t *testing.T) {
	if err := localsearch.ValidatePermutation([]int{2, 0, 1}, 3); err != nil {
		t.Fatalf("valid permutation rejected: %v", err)
	}

	bad := [][]int{
		{0, 1},       // wrong length
		{0, 1, 1},    // duplicate
		{0, 1, 3},    // out of range
		{0, -1, 2},   // negative
		{0, 1, 2, 3}, // too long
	}
	for _, tour := range bad {
		if err := localsearch.ValidatePermutation(tour, 3); !errors.Is(err, localsearch.ErrDimensionMismatch) {
			t.Fatalf("ValidatePermutation(%v, 3): got %v, want ErrDimensionMismatch", tour, err)
		}
	}
	if err := localsearch.ValidatePermutation(nil, 0); !errors.Is(err, localsearch.ErrDimensionMismatch) {
		t.Fatalf("n=0: got %v, want ErrDimensionMismatch", err)
	}
}

func TestCopyTour_Independent(t *testing.T) {
	src := []int{0, 1, 2}
	cp := localsearch.CopyTour(src)
	cp[0] = 9
	if src[0] != 0 {
		t.Fatalf("CopyTour aliased its input")
	}
	if localsearch.CopyTour(nil) != nil {
		t.Fatalf("CopyTour(nil) must be nil")
	}
}

func TestRotateTour_Errors(t *testing.T) {
	if _, err := localsearch.RotateTour(nil, 0); !errors.Is(err, localsearch.ErrDimensionMismatch) {
		t.Fatalf("empty tour: got %v, want ErrDimensionMismatch", err)
	}
	if _, err := localsearch.RotateTour([]int{0, 1}, 2); !errors.Is(err, localsearch.ErrDimensionMismatch) {
		t.Fatalf("pivot out of range: got %v, want ErrDimensionMismatch", err)
	}
}
