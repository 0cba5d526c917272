package queens_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hugoMGSung/puzzlereplay/queens"
)

// TestSolutionIndex_Clamp checks that out-of-range 1-based indices resolve
// to the nearest valid boundary, never to an out-of-range access.
func TestSolutionIndex_Clamp(t *testing.T) {
	res, err := queens.Generate(8)
	if err != nil {
		t.Fatal(err)
	}
	sols := res.Solutions
	if sols.Count() != 92 {
		t.Fatalf("n=8: %d solutions; want 92", sols.Count())
	}

	cases := []struct {
		index    int
		resolved int
	}{
		{0, 1},
		{-7, 1},
		{1, 1},
		{92, 92},
		{93, 92},
		{1 << 30, 92},
	}
	for _, tc := range cases {
		sol, got := sols.At(tc.index)
		if got != tc.resolved {
			t.Errorf("At(%d) resolved to %d; want %d", tc.index, got, tc.resolved)
		}
		if !reflect.DeepEqual(sol, sols[got-1]) {
			t.Errorf("At(%d) returned the wrong solution", tc.index)
		}
	}
}

// TestSolutionIndex_Reconstruct builds the board directly from a stored
// solution, bypassing the trace.
func TestSolutionIndex_Reconstruct(t *testing.T) {
	res, err := queens.Generate(4)
	if err != nil {
		t.Fatal(err)
	}

	board, resolved, err := res.Solutions.Reconstruct(99)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if resolved != 2 {
		t.Errorf("resolved index = %d; want 2 (clamped)", resolved)
	}
	want, _ := res.Solutions.At(2)
	if !reflect.DeepEqual(board.Rows(), []int(want)) {
		t.Errorf("reconstructed rows = %v; want %v", board.Rows(), want)
	}
}

// TestSolutionIndex_Empty: n=3 has no solutions; Reconstruct must refuse.
func TestSolutionIndex_Empty(t *testing.T) {
	res, err := queens.Generate(3)
	if err != nil {
		t.Fatal(err)
	}
	if sol, idx := res.Solutions.At(1); sol != nil || idx != 0 {
		t.Errorf("At on empty index = (%v, %d); want (nil, 0)", sol, idx)
	}
	if _, _, err = res.Solutions.Reconstruct(1); !errors.Is(err, queens.ErrNoSolutions) {
		t.Errorf("Reconstruct on empty index: want ErrNoSolutions, got %v", err)
	}
}
