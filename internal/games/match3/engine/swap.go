package engine

// RejectReason explains why a swap was not applied.
type RejectReason uint8

const (
	RejectNone RejectReason = iota
	RejectInvalidAdjacency
	RejectNoMatch
)

// String returns a short description of the reason.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectInvalidAdjacency:
		return "invalid adjacency"
	case RejectNoMatch:
		return "no match"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of AttemptSwap.
// A rejected move leaves the board exactly as it was.
type MoveResult struct {
	Accepted bool
	Reason   RejectReason // Set when Accepted is false
	Steps    Steps        // Cascade chain, set when Accepted is true
}

// Score returns the total score delta of the move.
func (m MoveResult) Score() int {
	return m.Steps.TotalScore()
}

// Combo returns the number of cascade steps the move triggered.
func (m MoveResult) Combo() int {
	return len(m.Steps)
}

// AttemptSwap exchanges the symbols at p1 and p2 if that creates a match,
// then resolves the board. Out-of-range positions return ErrOutOfBounds.
// Non-adjacent positions and swaps that create no match are rejected
// without changing the board.
func (b *Board) AttemptSwap(p1, p2 Position) (MoveResult, error) {
	if err := b.checkBounds(p1); err != nil {
		return MoveResult{}, err
	}
	if err := b.checkBounds(p2); err != nil {
		return MoveResult{}, err
	}
	if !p1.Adjacent(p2) {
		return MoveResult{Reason: RejectInvalidAdjacency}, nil
	}

	b.swap(p1, p2)
	if !b.HasMatches() {
		b.swap(p1, p2)
		return MoveResult{Reason: RejectNoMatch}, nil
	}

	return MoveResult{Accepted: true, Steps: b.Resolve()}, nil
}

func (b *Board) swap(p1, p2 Position) {
	i, j := b.index(p1.Row, p1.Col), b.index(p2.Row, p2.Col)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}
