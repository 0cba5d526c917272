// Package replay provides phase and option definitions for the
// tick-driven trace replay engine.
package replay

import (
	"errors"
)

// Sentinel errors for engine construction and lifecycle control.
var (
	// ErrNilGenerator is returned when NewEngine receives a nil trace generator.
	ErrNilGenerator = errors.New("replay: trace generator is nil")

	// ErrNilApplier is returned when NewEngine receives a nil target applier.
	ErrNilApplier = errors.New("replay: target applier is nil")

	// ErrNotRunning is returned by Tick and Pause when the engine is not in Running.
	ErrNotRunning = errors.New("replay: engine is not running")

	// ErrNotPaused is returned by Resume when the engine is not in Paused.
	ErrNotPaused = errors.New("replay: engine is not paused")

	// ErrDivergence wraps any error reported by the target applier during a tick.
	// Once raised, the run is failed permanently; only Reset or Invalidate recover.
	ErrDivergence = errors.New("replay: trace/state divergence")

	// ErrTickInterval is returned by Run when the tick interval is not positive.
	ErrTickInterval = errors.New("replay: tick interval must be positive")
)

// Phase identifies the engine's lifecycle state.
//
// The legal transitions are:
//
//	Idle ──Start──▶ Running ──Tick(end)──▶ Finished
//	Running ◀──Resume── Paused ◀──Pause/EffectPause── Running
//	Running ──Tick(apply error)──▶ Failed
//	any ──Reset──▶ Idle
type Phase uint8

const (
	// Idle: no run in progress; simulation state is at its initial configuration.
	Idle Phase = iota

	// Running: a run is active and Tick advances the cursor.
	Running

	// Paused: the cursor is retained but Tick is rejected until Resume.
	Paused

	// Finished: the cursor reached the end of the trace; the run is complete.
	Finished

	// Failed: the applier reported a divergence; no further entries are applied.
	Failed
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Effect is the applier's verdict on an applied trace entry.
type Effect uint8

const (
	// EffectNone: the entry was applied; continue normally.
	EffectNone Effect = iota

	// EffectPause: the entry marks a milestone (a discovered solution);
	// the engine transitions to Paused so the caller can inspect the state.
	EffectPause
)

// Applier is the mutable simulation state a trace is replayed onto.
//
// Apply consumes exactly one trace entry. It must either apply the entry
// atomically and return its Effect, or reject it with an error and leave
// the state untouched. An error signals trace/state divergence and fails
// the run. Reset restores the initial configuration.
type Applier[E any] interface {
	Apply(entry E) (Effect, error)
	Reset()
}

// Generator produces the complete, ordered trace for one run.
// It is invoked lazily on the first Start (and again after Invalidate)
// and must be deterministic and side-effect free.
type Generator[E any] func() ([]E, error)

// Cursor is a read-only snapshot of replay progress.
//
//   - Phase:  current lifecycle phase.
//   - Next:   index of the next trace entry to apply (0..Total).
//   - Total:  trace length for the active run.
//   - Pauses: number of EffectPause entries applied so far
//     (for the queens trace this is the solutions-found count).
//   - Last:   most recently applied entry, valid only when HasLast is true;
//     the presentation layer uses it for overlay highlighting.
//
// In Idle the cursor is the zero cursor, so a reset engine is observably
// identical to a freshly constructed one.
type Cursor[E any] struct {
	Phase   Phase
	Next    int
	Total   int
	Pauses  int
	Last    E
	HasLast bool
}

// Remaining reports how many trace entries are still unapplied.
func (c Cursor[E]) Remaining() int {
	return c.Total - c.Next
}

// Option configures engine behavior via functional arguments.
type Option[E any] func(*EngineOptions[E])

// EngineOptions holds optional callbacks for the engine.
type EngineOptions[E any] struct {
	// OnApply is called after each successfully applied entry.
	OnApply func(entry E)
}

// DefaultOptions returns EngineOptions with no-op hooks.
func DefaultOptions[E any]() EngineOptions[E] {
	return EngineOptions[E]{
		OnApply: func(E) {},
	}
}

// WithOnApply registers a callback to run after each applied entry.
func WithOnApply[E any](fn func(entry E)) Option[E] {
	return func(o *EngineOptions[E]) {
		if fn != nil {
			o.OnApply = fn
		}
	}
}
