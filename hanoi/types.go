// Package hanoi provides move and option definitions for the Tower of Hanoi
// trace generator.
package hanoi

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation, construction and replay validation.
// The last four form the trace/state divergence family: they are raised by
// Pegs.Apply and Pegs.Verify when the precomputed trace and the live stacks
// have desynchronized, which a correct engine makes structurally impossible.
var (
	// ErrDiskCount is returned when the disk count is negative or above MaxDisks.
	ErrDiskCount = errors.New("hanoi: invalid disk count")

	// ErrPegRange is returned when a peg index is outside [0, PegCount).
	ErrPegRange = errors.New("hanoi: peg index out of range")

	// ErrSamePeg is returned when source and destination pegs coincide.
	ErrSamePeg = errors.New("hanoi: source and destination pegs must differ")

	// ErrSourceEmpty is returned when a move pops from an empty peg.
	ErrSourceEmpty = errors.New("hanoi: source peg is empty")

	// ErrDiskMismatch is returned when the popped disk is not the disk the
	// trace expects at this position.
	ErrDiskMismatch = errors.New("hanoi: disk does not match trace")

	// ErrOrderViolation is returned when a disk would land on a smaller one.
	ErrOrderViolation = errors.New("hanoi: disk would cover a smaller disk")

	// ErrDiskSet is returned by Verify when the three stacks do not hold
	// exactly the disks {1..n}.
	ErrDiskSet = errors.New("hanoi: disk multiset corrupted")
)

const (
	// PegCount is fixed at three: the classic puzzle.
	PegCount = 3

	// MaxDisks bounds the disk count so the 2^n−1 trace stays allocatable.
	MaxDisks = 30
)

// Move is one immutable trace entry: disk Disk relocates from peg From to
// peg To. Disk sizes are 1-based; peg indices are 0-based.
type Move struct {
	Disk int
	From int
	To   int
}

// String renders the move as "disk:from→to" for logs and test failures.
func (m Move) String() string {
	return fmt.Sprintf("%d:%d→%d", m.Disk, m.From, m.To)
}

// Option configures trace generation via functional arguments.
type Option func(*GenOptions)

// GenOptions holds optional callbacks observed during generation.
type GenOptions struct {
	// OnMove is called for every emitted move, in emission order.
	OnMove func(move Move)
}

// DefaultOptions returns GenOptions with a no-op hook.
func DefaultOptions() GenOptions {
	return GenOptions{
		OnMove: func(Move) {},
	}
}

// WithOnMove registers a callback to run on every emitted move.
func WithOnMove(fn func(move Move)) Option {
	return func(o *GenOptions) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}
