package queens_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hugoMGSung/puzzlereplay/queens"
	"github.com/hugoMGSung/puzzlereplay/replay"
)

// TestGenerate_Errors verifies that invalid board sizes are rejected at the
// boundary, before any trace is produced.
func TestGenerate_Errors(t *testing.T) {
	for _, n := range []int{0, -1, -8} {
		if _, err := queens.Generate(n); !errors.Is(err, queens.ErrBoardSize) {
			t.Errorf("Generate(%d): want ErrBoardSize, got %v", n, err)
		}
	}
}

// TestGenerate_SolutionCounts checks the exact known solution counts —
// correctness oracles, not tunables.
func TestGenerate_SolutionCounts(t *testing.T) {
	counts := map[int]int{
		1: 1,
		2: 0,
		3: 0,
		4: 2,
		5: 10,
		6: 4,
		7: 40,
		8: 92,
	}
	for n, want := range counts {
		res, err := queens.Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d): unexpected error: %v", n, err)
		}
		if got := res.Solutions.Count(); got != want {
			t.Errorf("Generate(%d): %d solutions; want %d", n, got, want)
		}
	}
}

// TestGenerate_FirstSolutionN4 pins the discovery order: with ascending rows
// and left-to-right columns, the first n=4 solution is [1 3 0 2].
func TestGenerate_FirstSolutionN4(t *testing.T) {
	res, err := queens.Generate(4)
	if err != nil {
		t.Fatal(err)
	}
	first, idx := res.Solutions.At(1)
	if idx != 1 {
		t.Fatalf("At(1) resolved to %d", idx)
	}
	if want := (queens.Solution{1, 3, 0, 2}); !reflect.DeepEqual(first, want) {
		t.Errorf("first solution = %v; want %v", first, want)
	}
}

// TestGenerate_SolutionsValid re-checks every recorded placement from scratch.
func TestGenerate_SolutionsValid(t *testing.T) {
	res, err := queens.Generate(6)
	if err != nil {
		t.Fatal(err)
	}
	for i, sol := range res.Solutions {
		if !sol.Valid() {
			t.Errorf("solution %d = %v is not a valid placement", i+1, sol)
		}
	}
}

// TestGenerate_TraceReplaysCleanly replays the full n=6 trace onto a fresh
// board: no step may trigger a legality violation, every StepFoundSolution
// must pause, and the trace must end with an empty board.
func TestGenerate_TraceReplaysCleanly(t *testing.T) {
	const n = 6
	res, err := queens.Generate(n)
	if err != nil {
		t.Fatal(err)
	}
	board, err := queens.NewBoard(n)
	if err != nil {
		t.Fatal(err)
	}

	pauses := 0
	for i, step := range res.Steps {
		effect, aerr := board.Apply(step)
		if aerr != nil {
			t.Fatalf("step %d %s: unexpected apply error: %v", i, step, aerr)
		}
		if effect == replay.EffectPause {
			pauses++
			if step.Kind != queens.StepFoundSolution {
				t.Errorf("step %d %s paused without being a solution", i, step)
			}
		}
	}
	if want := res.Solutions.Count(); pauses != want {
		t.Errorf("pauses = %d; want %d", pauses, want)
	}
	if !board.Empty() {
		t.Errorf("board not empty after full replay: %v", board.Rows())
	}
}

// TestGenerate_StepDiscipline checks the emission grammar: every Reject and
// Place is immediately preceded by its own Try, and Place/Remove pair up
// stack-wise with nothing left open at trace end.
func TestGenerate_StepDiscipline(t *testing.T) {
	res, err := queens.Generate(5)
	if err != nil {
		t.Fatal(err)
	}

	var open []queens.Step // currently placed, innermost last
	for i, step := range res.Steps {
		switch step.Kind {
		case queens.StepReject, queens.StepPlace:
			prev := res.Steps[i-1]
			if prev.Kind != queens.StepTry || prev.Row != step.Row || prev.Col != step.Col {
				t.Fatalf("step %d %s not preceded by its Try (got %s)", i, step, prev)
			}
			if step.Kind == queens.StepPlace {
				open = append(open, step)
			}
		case queens.StepRemove:
			if len(open) == 0 {
				t.Fatalf("step %d %s removes with nothing placed", i, step)
			}
			top := open[len(open)-1]
			if top.Row != step.Row || top.Col != step.Col {
				t.Fatalf("step %d %s does not match innermost place %s", i, step, top)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		t.Errorf("%d placements never removed; trace must end empty", len(open))
	}
}

// TestGenerate_Hooks counts hook invocations against the returned outputs.
func TestGenerate_Hooks(t *testing.T) {
	var steps, sols int
	res, err := queens.Generate(5,
		queens.WithOnStep(func(queens.Step) { steps++ }),
		queens.WithOnSolution(func(queens.Solution) { sols++ }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if steps != len(res.Steps) {
		t.Errorf("OnStep fired %d times; want %d", steps, len(res.Steps))
	}
	if sols != res.Solutions.Count() {
		t.Errorf("OnSolution fired %d times; want %d", sols, res.Solutions.Count())
	}
}

// TestGenerate_Deterministic: two runs over the same n yield identical traces.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := queens.Generate(6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := queens.Generate(6)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Steps, b.Steps) {
		t.Error("two generations produced different traces")
	}
	if !reflect.DeepEqual(a.Solutions, b.Solutions) {
		t.Error("two generations produced different solution indexes")
	}
}
