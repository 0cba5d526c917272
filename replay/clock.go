package replay

import (
	"context"
	"errors"
	"time"
)

// Speed-to-interval mapping. The presentation layer exposes a bounded speed
// level; the engine only needs a monotone decreasing interval with a floor.
const (
	// MinSpeed and MaxSpeed bound the user-facing speed level.
	MinSpeed = 1
	MaxSpeed = 10

	// baseInterval and speedStep define the linear mapping:
	// interval = baseInterval − speed·speedStep.
	baseInterval = 1050 * time.Millisecond
	speedStep    = 100 * time.Millisecond

	// MinInterval floors the tick interval regardless of speed level.
	MinInterval = 50 * time.Millisecond
)

// Interval maps a speed level to a tick interval. Levels outside
// [MinSpeed, MaxSpeed] are clamped, and the result never drops below
// MinInterval. The mapping is strictly monotone decreasing within bounds.
func Interval(speed int) time.Duration {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	interval := baseInterval - time.Duration(speed)*speedStep
	if interval < MinInterval {
		interval = MinInterval
	}

	return interval
}

// Run drives the engine with a periodic ticker until the run leaves Running.
//
// It returns the cursor at the moment the run stopped:
//   - Paused (auto-pause at a milestone, or an external Pause): nil error;
//     the caller may Resume and call Run again.
//   - Finished: nil error.
//   - Failed: the divergence error.
//   - ctx done: ctx.Err().
//
// Run owns no engine state; it is only a convenience loop around Tick for
// headless callers. Interactive frontends fire Tick from their own timer.
func (e *Engine[E]) Run(ctx context.Context, interval time.Duration) (Cursor[E], error) {
	if interval <= 0 {
		return e.Cursor(), ErrTickInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return e.Cursor(), ctx.Err()
		case <-ticker.C:
			cursor, err := e.Tick()
			switch {
			case err == nil:
				if cursor.Phase != Running {
					return cursor, nil
				}
			case errors.Is(err, ErrNotRunning):
				// Externally paused or reset between ticks; hand control back.
				return cursor, nil
			default:
				return cursor, err
			}
		}
	}
}
