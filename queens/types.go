// Package queens provides step, solution and option definitions for the
// N-Queens backtracking trace generator.
package queens

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation and board mutation.
var (
	// ErrBoardSize is returned when the board size is not positive.
	ErrBoardSize = errors.New("queens: board size must be positive")

	// ErrOffBoard is returned when a row or column is outside [0, n).
	ErrOffBoard = errors.New("queens: square outside the board")

	// ErrSquareConflict is returned when a Place targets a row or diagonal
	// that is already attacked, or a column that is already occupied.
	ErrSquareConflict = errors.New("queens: square conflicts with a placed queen")

	// ErrSquareEmpty is returned when a Remove targets a square that does not
	// hold the expected queen.
	ErrSquareEmpty = errors.New("queens: no queen on square")

	// ErrUnknownStep is returned when Apply meets a step kind it does not know.
	ErrUnknownStep = errors.New("queens: unknown step kind")

	// ErrNoSolutions is returned by Reconstruct on an empty solution index.
	ErrNoSolutions = errors.New("queens: no solutions recorded")
)

// NoSquare is the sentinel row/column carried by steps without a payload.
const NoSquare = -1

// StepKind tags one atomic event of the backtracking search.
// The set is closed: Apply matches exhaustively and rejects unknown kinds.
type StepKind uint8

const (
	// StepTry: candidate square (Row, Col) is about to be tested.
	StepTry StepKind = iota

	// StepReject: the candidate failed the row/diagonal legality check.
	// A rejected candidate is never placed or removed.
	StepReject

	// StepPlace: a queen was placed on (Row, Col).
	StepPlace

	// StepRemove: the queen on (Row, Col) was taken back while unwinding.
	StepRemove

	// StepFoundSolution: a full placement was reached; Row and Col are
	// NoSquare. The step mutates nothing but marks a replay milestone.
	StepFoundSolution
)

// String returns the canonical name of the step kind.
func (k StepKind) String() string {
	switch k {
	case StepTry:
		return "try"
	case StepReject:
		return "reject"
	case StepPlace:
		return "place"
	case StepRemove:
		return "remove"
	case StepFoundSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// Step is one immutable entry of the search trace.
// Row and Col are NoSquare for StepFoundSolution.
type Step struct {
	Kind StepKind
	Row  int
	Col  int
}

// String renders the step as "kind(row,col)" for logs and test failures.
func (s Step) String() string {
	if s.Kind == StepFoundSolution {
		return s.Kind.String()
	}

	return fmt.Sprintf("%s(%d,%d)", s.Kind, s.Row, s.Col)
}

// Solution maps column index to row index for one complete placement.
type Solution []int

// Valid re-checks the N-Queens property from scratch: no two queens share
// a row, a column (implicit in the representation) or a diagonal.
func (s Solution) Valid() bool {
	n := len(s)
	for col := 0; col < n; col++ {
		if s[col] < 0 || s[col] >= n {
			return false
		}
		for prev := 0; prev < col; prev++ {
			rowDiff := s[col] - s[prev]
			if rowDiff < 0 {
				rowDiff = -rowDiff
			}
			if rowDiff == 0 || rowDiff == col-prev {
				return false
			}
		}
	}

	return true
}

// Option configures trace generation via functional arguments.
type Option func(*GenOptions)

// GenOptions holds optional callbacks observed during generation.
type GenOptions struct {
	// OnStep is called for every emitted step, in emission order.
	OnStep func(step Step)

	// OnSolution is called for every discovered solution, in discovery order.
	// The slice is the generator's own copy; callers must not retain and
	// mutate it.
	OnSolution func(sol Solution)
}

// DefaultOptions returns GenOptions with no-op hooks.
func DefaultOptions() GenOptions {
	return GenOptions{
		OnStep:     func(Step) {},
		OnSolution: func(Solution) {},
	}
}

// WithOnStep registers a callback to run on every emitted step.
func WithOnStep(fn func(step Step)) Option {
	return func(o *GenOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnSolution registers a callback to run on every discovered solution.
func WithOnSolution(fn func(sol Solution)) Option {
	return func(o *GenOptions) {
		if fn != nil {
			o.OnSolution = fn
		}
	}
}

// Result holds the two immutable outputs of one full search:
//   - Steps: the ordered trace of every atomic event, rejected branches
//     included; the trace always ends with an empty board.
//   - Solutions: every terminal placement, in discovery order, addressable
//     by a clamped 1-based index independent of the trace.
type Result struct {
	Steps     []Step
	Solutions SolutionIndex
}
