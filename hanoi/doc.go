// Package hanoi generates the canonical Tower of Hanoi move trace and
// maintains the peg stacks the trace is replayed onto.
//
// What
//
//   - Generate(n, from, to, opts...): the classic divide-and-conquer
//     recursion, producing exactly 2^n − 1 immutable Move records — the
//     unique minimal solution of the three-peg puzzle.
//   - Pegs: the mutable simulation state, three ordered stacks with a
//     strict size-ordering invariant. Pegs implements replay.Applier[Move]
//     with three defensive divergence checks per move, plus Verify for
//     full invariant re-derivation.
//   - WithOnMove observes generation as it runs.
//
// Why
//
//   - Precomputing the move sequence separates the recursion from its timed
//     replay: a viewer steps through the solution at any cadence while the
//     engine asserts, at every tick, that the live stacks still agree with
//     the trace.
//
// Determinism
//
//	The recursion order is fixed (n−1 to auxiliary, disk n across, n−1 to
//	destination), so the trace is fully reproducible. For n=3, 0→2 the
//	seven moves are 1:0→2, 2:0→1, 1:2→1, 3:0→2, 1:1→0, 2:1→2, 1:0→2.
//
// Complexity (n = disk count)
//
//   - Time:   O(2^n) generation; O(1) per replayed move.
//   - Memory: O(2^n) for the trace, O(n) for the stacks.
//
// Usage
//
//	moves, err := hanoi.Generate(3, 0, 2)
//	if err != nil {
//	    // ErrDiskCount, ErrPegRange or ErrSamePeg
//	}
//	pegs, _ := hanoi.NewPegs(3, 0)
//	for _, mv := range moves {
//	    if _, aerr := pegs.Apply(mv); aerr != nil {
//	        // divergence: ErrSourceEmpty, ErrDiskMismatch or ErrOrderViolation
//	    }
//	}
//
// Errors
//
//   - ErrDiskCount      n outside 0..MaxDisks.
//   - ErrPegRange       peg index outside the three pegs.
//   - ErrSamePeg        source equals destination.
//   - ErrSourceEmpty    move pops an empty peg            (divergence).
//   - ErrDiskMismatch   popped disk differs from the trace (divergence).
//   - ErrOrderViolation disk would land on a smaller one  (divergence).
//   - ErrDiskSet        Verify found a corrupted multiset.
package hanoi
