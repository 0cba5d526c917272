// Package puzzlereplay precomputes immutable traces of combinatorial
// algorithms and replays them under external time control.
//
// 🚀 What is puzzlereplay?
//
//	A small, deterministic library behind two algorithm visualizers:
//		• queens/ — N-Queens backtracking: full step trace (tries, rejects,
//		  placements, removals, solutions) plus an addressable solution index
//		• hanoi/  — Tower of Hanoi: the canonical 2^n−1 move trace with
//		  defensively checked peg stacks
//		• replay/ — a generic tick-driven engine: start, pause, resume,
//		  reset, one trace entry per tick, auto-pause at milestones
//		• cmd/puzzlereplay — a headless CLI driver for both puzzles
//
// ✨ Why choose this shape?
//
//   - The algorithm runs once, eagerly, into an immutable trace — replay
//     never recomputes, so the live state always matches the cursor
//   - Invariants are re-checked at every applied entry; divergence fails
//     the run loudly instead of drifting silently
//   - Cadence is a pure scheduling concern: any timer can drive Tick
//
// Quick example:
//
//	res, _ := queens.Generate(8)        // 92 solutions, thousands of steps
//	board, _ := queens.NewBoard(8)
//	eng, _ := replay.NewEngine(func() ([]queens.Step, error) {
//	    return res.Steps, nil
//	}, board)
//	_ = eng.Start()                     // tick away; pauses at each solution
//
// Dive into the per-package docs for contracts, determinism guarantees and
// error catalogs.
//
//	go get github.com/hugoMGSung/puzzlereplay
package puzzlereplay
