package queens

// SolutionIndex is the completed-enumeration side channel of one search:
// every terminal placement, in discovery order. It is addressed externally
// by a 1-based index, clamped rather than rejected, so a "jump to solution"
// control can never fault on out-of-range input. The index is independent
// of the step trace and never consulted by the replay cursor.
type SolutionIndex []Solution

// Count returns the number of recorded solutions.
func (s SolutionIndex) Count() int { return len(s) }

// clamp folds a 1-based index into [1, Count]. Zero and negative indices
// resolve to the first solution, oversized ones to the last.
func (s SolutionIndex) clamp(index int) int {
	if index < 1 {
		return 1
	}
	if index > len(s) {
		return len(s)
	}

	return index
}

// At returns the solution at the clamped 1-based index, plus the index it
// actually resolved to. On an empty index it returns (nil, 0).
func (s SolutionIndex) At(index int) (Solution, int) {
	if len(s) == 0 {
		return nil, 0
	}
	index = s.clamp(index)

	return s[index-1], index
}

// Reconstruct builds a fresh Board holding the solution at the clamped
// 1-based index, placing each column's stored row directly. The step trace
// and replay cursor are not involved: this is the direct-display path.
// Returns ErrNoSolutions when the index holds nothing.
func (s SolutionIndex) Reconstruct(index int) (*Board, int, error) {
	sol, resolved := s.At(index)
	if resolved == 0 {
		return nil, 0, ErrNoSolutions
	}

	board, err := NewBoard(len(sol))
	if err != nil {
		return nil, 0, err
	}
	for col, row := range sol {
		if perr := board.Place(row, col); perr != nil {
			// A recorded solution always satisfies the placement invariant;
			// a failure here means the index itself is corrupt.
			return nil, 0, perr
		}
	}

	return board, resolved, nil
}
