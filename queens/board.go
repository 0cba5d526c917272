package queens

import (
	"fmt"

	"github.com/hugoMGSung/puzzlereplay/replay"
)

// Board is the mutable N-Queens simulation state: a column→row mapping plus
// three constraint sets (used rows, "/" diagonals, "\" diagonals) that stay
// exactly consistent with the mapping at all times.
//
// The diagonal keys give O(1) legality checks without recomputing diagonals:
//
//	"/" diagonal of (row, col): row + col            ∈ [0, 2n−2]
//	"\" diagonal of (row, col): row − col + n − 1    ∈ [0, 2n−2]
//
// Place and Remove are the only mutators; each toggles the column entry and
// the three sets together, so no partially updated state is observable.
type Board struct {
	n        int
	rowByCol []int  // column → row, NoSquare when the column is empty
	usedRow  []bool // rows holding a queen
	usedAsc  []bool // "/" diagonals (row+col) under attack
	usedDesc []bool // "\" diagonals (row−col+n−1) under attack
}

// NewBoard creates an empty board of size n.
// Returns ErrBoardSize when n is not positive.
func NewBoard(n int) (*Board, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, n)
	}
	b := &Board{
		n:        n,
		rowByCol: make([]int, n),
		usedRow:  make([]bool, n),
		usedAsc:  make([]bool, 2*n-1),
		usedDesc: make([]bool, 2*n-1),
	}
	b.Reset()

	return b, nil
}

// N returns the board size.
func (b *Board) N() int { return b.n }

// Reset clears every queen and every constraint set.
func (b *Board) Reset() {
	for i := range b.rowByCol {
		b.rowByCol[i] = NoSquare
	}
	for i := range b.usedRow {
		b.usedRow[i] = false
	}
	for i := range b.usedAsc {
		b.usedAsc[i] = false
	}
	for i := range b.usedDesc {
		b.usedDesc[i] = false
	}
}

// onBoard reports whether (row, col) lies within the board.
func (b *Board) onBoard(row, col int) bool {
	return row >= 0 && row < b.n && col >= 0 && col < b.n
}

// CanPlace reports whether (row, col) is on the board and its row and both
// diagonals are currently free. Column occupancy is not consulted: the
// search visits each column once, and Place re-checks it defensively.
func (b *Board) CanPlace(row, col int) bool {
	if !b.onBoard(row, col) {
		return false
	}

	return !b.usedRow[row] && !b.usedAsc[row+col] && !b.usedDesc[row-col+b.n-1]
}

// Place puts a queen on (row, col), marking its row and diagonals used.
// Returns ErrOffBoard or ErrSquareConflict without mutating on rejection.
func (b *Board) Place(row, col int) error {
	if !b.onBoard(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %d-board", ErrOffBoard, row, col, b.n)
	}
	if b.rowByCol[col] != NoSquare || !b.CanPlace(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrSquareConflict, row, col)
	}
	b.rowByCol[col] = row
	b.usedRow[row] = true
	b.usedAsc[row+col] = true
	b.usedDesc[row-col+b.n-1] = true

	return nil
}

// Remove takes the queen off (row, col), freeing its row and diagonals.
// Returns ErrOffBoard or ErrSquareEmpty without mutating on rejection.
func (b *Board) Remove(row, col int) error {
	if !b.onBoard(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %d-board", ErrOffBoard, row, col, b.n)
	}
	if b.rowByCol[col] != row {
		return fmt.Errorf("%w: (%d,%d)", ErrSquareEmpty, row, col)
	}
	b.rowByCol[col] = NoSquare
	b.usedRow[row] = false
	b.usedAsc[row+col] = false
	b.usedDesc[row-col+b.n-1] = false

	return nil
}

// Rows returns a copy of the column→row mapping (NoSquare = empty column).
func (b *Board) Rows() []int {
	rows := make([]int, b.n)
	copy(rows, b.rowByCol)

	return rows
}

// Empty reports whether no queen is placed.
func (b *Board) Empty() bool {
	for _, row := range b.rowByCol {
		if row != NoSquare {
			return false
		}
	}

	return true
}

// Apply consumes one trace step, implementing replay.Applier[Step].
//
// Try and Reject carry no mutation. Place and Remove are validated against
// the constraint sets before committing, so a desynchronized trace surfaces
// as an error instead of corrupting the board. StepFoundSolution mutates
// nothing and returns replay.EffectPause: the replay suspends at every
// discovered solution for inspection.
func (b *Board) Apply(step Step) (replay.Effect, error) {
	switch step.Kind {
	case StepTry, StepReject:
		return replay.EffectNone, nil
	case StepPlace:
		return replay.EffectNone, b.Place(step.Row, step.Col)
	case StepRemove:
		return replay.EffectNone, b.Remove(step.Row, step.Col)
	case StepFoundSolution:
		return replay.EffectPause, nil
	default:
		return replay.EffectNone, fmt.Errorf("%w: %d", ErrUnknownStep, step.Kind)
	}
}
