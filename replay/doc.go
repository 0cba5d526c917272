// Package replay implements a tick-driven state machine that reapplies a
// precomputed, immutable trace onto mutable simulation state under external
// time control.
//
// What
//
//   - Engine[E]: generic over the trace entry type (a queens.Step, a
//     hanoi.Move, or any other atomic record).
//   - Lifecycle: Idle → Running → Paused/Finished, plus Failed for
//     trace/state divergence; see Phase for the transition diagram.
//   - One external Tick applies exactly one entry, atomically, and reports
//     the updated Cursor (position, length, milestone count, last entry).
//   - Appliers may return EffectPause to auto-suspend the run at milestones
//     (the queens board pauses at every discovered solution).
//   - Reset keeps the cached trace; Invalidate drops it so the next Start
//     regenerates. The two states are deliberately distinct.
//   - Run(ctx, interval) is a convenience ticker loop for headless callers.
//
// Why
//
//   - Separating "compute the algorithm once" from "replay it under a clock"
//     guarantees the live state always matches the trace position, makes the
//     cadence a pure scheduling concern, and lets the same engine drive any
//     puzzle whose steps are expressible as atomic records.
//
// Determinism
//
//	The generator is invoked at most once per cached trace and must be
//	deterministic; the engine never recomputes or mutates the trace. Replay
//	order is exactly trace order, one entry per tick.
//
// Complexity (L = trace length)
//
//   - Tick: O(1) plus the applier's cost (O(1) for both puzzles here).
//   - Memory: O(L) for the cached trace.
//
// Usage
//
//	board, _ := queens.NewBoard(8)
//	eng, err := replay.NewEngine(func() ([]queens.Step, error) {
//	    res, gerr := queens.Generate(8)
//	    if gerr != nil {
//	        return nil, gerr
//	    }
//	    return res.Steps, nil
//	}, board)
//	if err != nil {
//	    // ErrNilGenerator or ErrNilApplier
//	}
//	_ = eng.Start()
//	for {
//	    cur, rerr := eng.Run(ctx, replay.Interval(speed))
//	    if rerr != nil || cur.Phase == replay.Finished {
//	        break
//	    }
//	    // cur.Phase == replay.Paused: inspect board, then eng.Resume()
//	}
//
// Errors
//
//   - ErrNilGenerator / ErrNilApplier  from NewEngine.
//   - ErrNotRunning                    from Tick/Pause outside Running.
//   - ErrNotPaused                     from Resume outside Paused.
//   - ErrDivergence                    wrapping the applier's error; fatal to the run.
//   - ErrTickInterval                  from Run with a non-positive interval.
//   - context.Canceled / DeadlineExceeded from Run when ctx ends.
package replay
