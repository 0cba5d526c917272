package hanoi

import "fmt"

// Generate produces the canonical minimal move sequence relocating n disks
// from peg `from` to peg `to`, using the remaining peg as auxiliary.
//
// The recursion is the classic one: move n−1 disks from source to auxiliary,
// move disk n from source to destination, move n−1 disks from auxiliary to
// destination; n = 0 emits nothing. The sequence has exactly 2^n − 1 moves
// and is the unique minimal solution of the three-peg puzzle. Generation is
// eager, deterministic and side-effect free.
//
// Preconditions: 0 ≤ n ≤ MaxDisks (ErrDiskCount), pegs within [0, PegCount)
// (ErrPegRange), from ≠ to (ErrSamePeg). Violations are rejected before any
// move is produced.
func Generate(n, from, to int, opts ...Option) ([]Move, error) {
	if n < 0 || n > MaxDisks {
		return nil, fmt.Errorf("%w: got %d, want 0..%d", ErrDiskCount, n, MaxDisks)
	}
	if from < 0 || from >= PegCount || to < 0 || to >= PegCount {
		return nil, fmt.Errorf("%w: from=%d to=%d", ErrPegRange, from, to)
	}
	if from == to {
		return nil, fmt.Errorf("%w: peg %d", ErrSamePeg, from)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	moves := make([]Move, 0, (1<<uint(n))-1)
	var recurse func(disks, src, dst int)
	recurse = func(disks, src, dst int) {
		if disks == 0 {
			return
		}
		// The third peg is the one that is neither source nor destination.
		aux := PegCount - src - dst

		recurse(disks-1, src, aux)
		move := Move{Disk: disks, From: src, To: dst}
		moves = append(moves, move)
		o.OnMove(move)
		recurse(disks-1, aux, dst)
	}
	recurse(n, from, to)

	return moves, nil
}
