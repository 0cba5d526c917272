package replay

import (
	"fmt"
	"sync"
)

// Engine replays a precomputed trace onto an Applier, one entry per tick.
//
// The trace is generated eagerly and in full on the first Start, then treated
// as read-only for the rest of the session. Ticks arrive from an external
// timer; each tick applies exactly one entry atomically, so the live state
// always matches the cursor position. All methods are safe for concurrent use:
// the tick source is typically a timer goroutine while lifecycle controls
// arrive from the caller.
type Engine[E any] struct {
	mu       sync.Mutex
	gen      Generator[E]
	target   Applier[E]
	opts     EngineOptions[E]
	trace    []E
	hasTrace bool
	next     int
	pauses   int
	phase    Phase
	last     E
	hasLast  bool
	failure  error
}

// NewEngine builds an engine over the given trace generator and target state.
// The generator is not invoked yet; generation happens on the first Start.
func NewEngine[E any](gen Generator[E], target Applier[E], opts ...Option[E]) (*Engine[E], error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if target == nil {
		return nil, ErrNilApplier
	}
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[E]{gen: gen, target: target, opts: o, phase: Idle}, nil
}

// Start begins (or restarts) a run from the beginning of the trace.
//
// If no trace is cached, the generator runs first; a generator error is
// returned as-is and the engine stays Idle with no partial trace retained.
// The target state is reset to its initial configuration, the cursor is
// zeroed, and the engine enters Running.
func (e *Engine[E]) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.hasTrace {
		trace, err := e.gen()
		if err != nil {
			return err
		}
		e.trace = trace
		e.hasTrace = true
	}
	e.target.Reset()
	e.next = 0
	e.pauses = 0
	e.hasLast = false
	e.failure = nil
	e.phase = Running

	return nil
}

// Tick advances the replay by exactly one trace entry.
//
// Only valid while Running: a Paused, Idle or Finished engine returns
// ErrNotRunning, and a Failed engine returns its stored divergence error.
// When the cursor has reached the trace length the engine enters Finished
// without applying anything. Otherwise the entry at the cursor is applied:
//   - an applier error fails the run permanently (wrapped in ErrDivergence);
//   - EffectPause increments the pause counter and suspends the run so the
//     caller can inspect the state before resuming.
//
// The returned cursor reflects the position after the tick.
func (e *Engine[E]) Tick() (Cursor[E], error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case Running:
		// proceed
	case Failed:
		return e.cursorLocked(), e.failure
	default:
		return e.cursorLocked(), ErrNotRunning
	}

	if e.next >= len(e.trace) {
		e.phase = Finished
		return e.cursorLocked(), nil
	}

	entry := e.trace[e.next]
	e.next++

	effect, err := e.target.Apply(entry)
	e.last = entry
	e.hasLast = true
	if err != nil {
		e.phase = Failed
		e.failure = fmt.Errorf("%w: entry %d: %w", ErrDivergence, e.next-1, err)
		return e.cursorLocked(), e.failure
	}
	e.opts.OnApply(entry)

	if effect == EffectPause {
		e.pauses++
		e.phase = Paused
	}

	return e.cursorLocked(), nil
}

// Pause suspends a Running engine; the cursor is retained.
func (e *Engine[E]) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Running {
		return ErrNotRunning
	}
	e.phase = Paused

	return nil
}

// Resume continues a Paused engine from the retained cursor.
func (e *Engine[E]) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Paused {
		return ErrNotPaused
	}
	e.phase = Running

	return nil
}

// Reset clears the cursor and restores the target state, returning to Idle.
// The cached trace is kept, so a subsequent Start skips regeneration.
// Reset is idempotent and valid in every phase.
func (e *Engine[E]) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// Invalidate performs a Reset and additionally drops the cached trace.
// Callers must invalidate whenever the generating configuration changes
// (board size, disk count), so the next Start rebuilds trace and state
// together rather than replaying a stale trace.
func (e *Engine[E]) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
	e.trace = nil
	e.hasTrace = false
}

func (e *Engine[E]) resetLocked() {
	e.target.Reset()
	e.next = 0
	e.pauses = 0
	var zero E
	e.last = zero
	e.hasLast = false
	e.failure = nil
	e.phase = Idle
}

// Generated reports whether a trace is currently cached.
// It distinguishes "never generated / invalidated" from "idle after reset
// with a cached trace", which Phase alone cannot.
func (e *Engine[E]) Generated() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.hasTrace
}

// Len returns the cached trace length, or 0 when no trace is cached.
func (e *Engine[E]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.trace)
}

// Phase returns the current lifecycle phase.
func (e *Engine[E]) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.phase
}

// Cursor returns a snapshot of the replay progress.
func (e *Engine[E]) Cursor() Cursor[E] {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cursorLocked()
}

// cursorLocked builds the snapshot; callers must hold e.mu.
func (e *Engine[E]) cursorLocked() Cursor[E] {
	if e.phase == Idle {
		return Cursor[E]{Phase: Idle}
	}

	return Cursor[E]{
		Phase:   e.phase,
		Next:    e.next,
		Total:   len(e.trace),
		Pauses:  e.pauses,
		Last:    e.last,
		HasLast: e.hasLast,
	}
}
