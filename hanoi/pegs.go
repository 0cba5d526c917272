package hanoi

import (
	"fmt"

	"github.com/hugoMGSung/puzzlereplay/replay"
)

// Pegs is the mutable Tower of Hanoi simulation state: three ordered stacks
// of disk sizes. Two invariants hold continuously:
//
//   - within each stack, sizes strictly decrease from bottom to top;
//   - the multiset union of the three stacks is exactly {1..n}.
//
// The only legal mutation is "pop the top of one peg, push it onto another",
// performed by Apply after three defensive checks. The precomputed trace is
// trusted to be internally correct; the checks exist to catch trace/state
// divergence at the tick that introduces it, not to recover from it.
type Pegs struct {
	n      int
	source int
	stacks [PegCount][]int
}

// NewPegs creates the initial configuration: disks n..1 stacked bottom to
// top on the source peg, the other pegs empty.
// Returns ErrDiskCount or ErrPegRange on invalid input.
func NewPegs(n, source int) (*Pegs, error) {
	if n < 0 || n > MaxDisks {
		return nil, fmt.Errorf("%w: got %d, want 0..%d", ErrDiskCount, n, MaxDisks)
	}
	if source < 0 || source >= PegCount {
		return nil, fmt.Errorf("%w: source=%d", ErrPegRange, source)
	}
	p := &Pegs{n: n, source: source}
	p.Reset()

	return p, nil
}

// N returns the disk count.
func (p *Pegs) N() int { return p.n }

// Reset restores the initial configuration: the full tower on the source peg.
func (p *Pegs) Reset() {
	for peg := range p.stacks {
		p.stacks[peg] = p.stacks[peg][:0]
	}
	for disk := p.n; disk >= 1; disk-- {
		p.stacks[p.source] = append(p.stacks[p.source], disk)
	}
}

// Height returns the number of disks on the given peg (0 for bad indices).
func (p *Pegs) Height(peg int) int {
	if peg < 0 || peg >= PegCount {
		return 0
	}

	return len(p.stacks[peg])
}

// Snapshot returns copies of the three stacks, bottom to top, for rendering.
func (p *Pegs) Snapshot() [PegCount][]int {
	var out [PegCount][]int
	for peg, stack := range p.stacks {
		out[peg] = make([]int, len(stack))
		copy(out[peg], stack)
	}

	return out
}

// Apply performs one move, implementing replay.Applier[Move].
//
// Three checks guard the mutation, each signalling divergence between the
// precomputed trace and the live stacks:
//
//  1. ErrSourceEmpty    — the source peg holds no disk to pop;
//  2. ErrDiskMismatch   — the top disk is not the one the trace expects;
//  3. ErrOrderViolation — the destination top is smaller than the disk.
//
// On any failure the stacks are left untouched. Moves never pause the
// replay, so the effect is always replay.EffectNone.
func (p *Pegs) Apply(move Move) (replay.Effect, error) {
	if move.From < 0 || move.From >= PegCount || move.To < 0 || move.To >= PegCount {
		return replay.EffectNone, fmt.Errorf("%w: %s", ErrPegRange, move)
	}

	src := p.stacks[move.From]
	if len(src) == 0 {
		return replay.EffectNone, fmt.Errorf("%w: %s", ErrSourceEmpty, move)
	}
	top := src[len(src)-1]
	if top != move.Disk {
		return replay.EffectNone, fmt.Errorf("%w: %s, top is %d", ErrDiskMismatch, move, top)
	}
	dst := p.stacks[move.To]
	if len(dst) > 0 && dst[len(dst)-1] < move.Disk {
		return replay.EffectNone, fmt.Errorf("%w: %s onto %d", ErrOrderViolation, move, dst[len(dst)-1])
	}

	p.stacks[move.From] = src[:len(src)-1]
	p.stacks[move.To] = append(dst, move.Disk)

	return replay.EffectNone, nil
}

// Verify re-derives both standing invariants from scratch: strict size
// decrease within every stack and a disk multiset of exactly {1..n}.
// Intended for tests and post-replay assertions.
func (p *Pegs) Verify() error {
	seen := make([]bool, p.n+1)
	total := 0
	for peg, stack := range p.stacks {
		for i, disk := range stack {
			if disk < 1 || disk > p.n {
				return fmt.Errorf("%w: disk %d on peg %d", ErrDiskSet, disk, peg)
			}
			if seen[disk] {
				return fmt.Errorf("%w: disk %d duplicated", ErrDiskSet, disk)
			}
			seen[disk] = true
			total++
			if i > 0 && stack[i-1] <= disk {
				return fmt.Errorf("%w: peg %d holds %d under %d", ErrOrderViolation, peg, stack[i-1], disk)
			}
		}
	}
	if total != p.n {
		return fmt.Errorf("%w: %d disks present, want %d", ErrDiskSet, total, p.n)
	}

	return nil
}
