package queens

import "fmt"

// generator encapsulates state during one search run.
type generator struct {
	board     *Board      // live search state, empty again at the end
	opts      GenOptions  // observation hooks
	steps     []Step      // trace under construction
	solutions SolutionIndex
}

// Generate runs one full depth-first backtracking search over an n×n board
// and returns the complete step trace plus the index of every solution.
//
// Search order: columns left to right, candidate rows in ascending order.
// A candidate is legal iff its row and both diagonals are unused. Every
// candidate emits StepTry; an illegal one emits StepReject; a legal one
// emits StepPlace, recurses into the next column, then emits StepRemove on
// the way back. Reaching column n emits StepFoundSolution and records the
// placement. Row order is the sole source of determinism — for n=8 the
// search discovers exactly 92 solutions.
//
// Generation is eager and side-effect free: both outputs are complete and
// immutable before any replay begins, and the internal board is empty again
// when Generate returns.
//
// Returns ErrBoardSize for n ≤ 0 before any trace is produced.
func Generate(n int, opts ...Option) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, n)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	board, err := NewBoard(n)
	if err != nil {
		return nil, err
	}
	g := &generator{board: board, opts: o}
	g.search(0)

	return &Result{Steps: g.steps, Solutions: g.solutions}, nil
}

// emit appends one step to the trace and fires the observation hook.
func (g *generator) emit(kind StepKind, row, col int) {
	step := Step{Kind: kind, Row: row, Col: col}
	g.steps = append(g.steps, step)
	g.opts.OnStep(step)
}

// search places one queen per column, depth-first from column col.
func (g *generator) search(col int) {
	n := g.board.N()

	// Base case: every column holds a queen — record the solution.
	if col == n {
		sol := Solution(g.board.Rows())
		g.solutions = append(g.solutions, sol)
		g.emit(StepFoundSolution, NoSquare, NoSquare)
		g.opts.OnSolution(sol)
		return
	}

	for row := 0; row < n; row++ {
		g.emit(StepTry, row, col)
		if !g.board.CanPlace(row, col) {
			g.emit(StepReject, row, col)
			continue
		}
		// CanPlace validated the candidate; Place cannot fail here.
		_ = g.board.Place(row, col)
		g.emit(StepPlace, row, col)

		g.search(col + 1)

		_ = g.board.Remove(row, col)
		g.emit(StepRemove, row, col)
	}
}
