// Package queens generates the complete backtracking trace of the N-Queens
// search and maintains the board state the trace is replayed onto.
//
// What
//
//   - Generate(n, opts...): one eager depth-first search producing
//   - Result.Steps: the ordered, immutable trace of every atomic event
//     (StepTry, StepReject, StepPlace, StepRemove, StepFoundSolution),
//     rejected branches included, ending with an empty board;
//   - Result.Solutions: a SolutionIndex of every terminal placement in
//     discovery order, addressable by a clamped 1-based index.
//   - Board: the mutable simulation state — column→row mapping plus three
//     constraint sets (rows, "/" and "\" diagonals) kept exactly consistent.
//     Board implements replay.Applier[Step] with defensive re-validation.
//   - SolutionIndex.Reconstruct(i): direct solution display, bypassing the
//     trace and cursor entirely.
//   - Hooks: WithOnStep and WithOnSolution observe generation as it runs.
//
// Why
//
//   - Precomputing the trace separates the combinatorial search from its
//     timed replay, so a viewer can step through the search — including
//     dead ends — at any cadence, jump straight to a stored solution, and
//     trust that the live board always matches the trace position.
//
// Determinism
//
//	Columns are filled left to right and candidate rows tried in ascending
//	order, with no randomization. The trace and the discovery order of
//	solutions are therefore fully reproducible; n=8 yields exactly 92
//	solutions, n=4 yields 2 with [1 3 0 2] first.
//
// Complexity (n = board size)
//
//   - Time:   the full search tree, O(n!) worst case; n ≤ 12 is instant.
//   - Memory: O(trace length) for the steps, O(n) for the live board.
//
// Usage
//
//	res, err := queens.Generate(8,
//	    queens.WithOnSolution(func(sol queens.Solution) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrBoardSize
//	}
//	fmt.Println(res.Solutions.Count()) // 92
//
//	board, idx, err := res.Solutions.Reconstruct(93) // clamps to 92
//
// Errors
//
//   - ErrBoardSize       from Generate and NewBoard when n ≤ 0.
//   - ErrOffBoard        from Place/Remove outside the board.
//   - ErrSquareConflict  from Place onto an attacked square (divergence).
//   - ErrSquareEmpty     from Remove of an absent queen (divergence).
//   - ErrUnknownStep     from Apply on an unrecognized step kind.
//   - ErrNoSolutions     from Reconstruct on an empty index.
package queens
