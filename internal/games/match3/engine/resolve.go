package engine

import "fmt"

// Rules holds the scoring constants.
type Rules struct {
	BasePoints int // Points per removed cell
	MatchBonus int // Flat bonus per non-empty removal step
}

// DefaultRules returns 10 points per cell and a 50 point bonus per step.
func DefaultRules() Rules {
	return Rules{BasePoints: 10, MatchBonus: 50}
}

// StepScore returns the score for a removal step that cleared n cells.
// The bonus is awarded once per step, however many runs were merged into it.
func (r Rules) StepScore(n int) int {
	if n <= 0 {
		return 0
	}
	return n*r.BasePoints + r.MatchBonus
}

// Step is one remove -> cascade -> fill iteration of Resolve.
type Step struct {
	Removed []Position // Cells cleared in this step, row-major
	Runs    []Run      // Runs that produced Removed
	Score   int        // Score delta for this step
	Board   [][]Symbol // Layout after cascade and fill
}

// Steps is the ordered chain produced by one Resolve.
type Steps []Step

// TotalScore sums the score deltas of every step.
func (s Steps) TotalScore() int {
	total := 0
	for _, st := range s {
		total += st.Score
	}
	return total
}

// Removed returns the total number of cells cleared across the chain.
func (s Steps) Removed() int {
	n := 0
	for _, st := range s {
		n += len(st.Removed)
	}
	return n
}

// LongestRun returns the length of the longest run in the chain.
func (s Steps) LongestRun() int {
	longest := 0
	for _, st := range s {
		for _, r := range st.Runs {
			longest = max(longest, r.Length)
		}
	}
	return longest
}

// Remove empties the given cells and returns the score delta for the step.
// Duplicate positions are counted once. Nothing is modified if any position
// is out of bounds.
func (b *Board) Remove(ps []Position) (int, error) {
	for _, p := range ps {
		if err := b.checkBounds(p); err != nil {
			return 0, fmt.Errorf("remove: %w", err)
		}
	}
	return b.remove(ps), nil
}

func (b *Board) remove(ps []Position) int {
	seen := make(map[Position]bool, len(ps))
	for _, p := range ps {
		if seen[p] {
			continue
		}
		seen[p] = true
		b.cells[b.index(p.Row, p.Col)] = Empty()
	}
	return b.rules.StepScore(len(seen))
}

// Cascade applies gravity: in every column, occupied cells slide down over
// empty ones keeping their relative order, leaving the empties at the top.
// Cells never move between columns.
func (b *Board) Cascade() {
	for col := range b.w {
		write := b.h - 1
		for row := b.h - 1; row >= 0; row-- {
			cell := b.cells[b.index(row, col)]
			if !cell.Filled {
				continue
			}
			if row != write {
				b.cells[b.index(write, col)] = cell
				b.cells[b.index(row, col)] = Empty()
			}
			write--
		}
	}
}

// Fill gives every empty cell a uniformly random symbol and returns the
// filled positions, column by column from the top. No match check is made,
// so new cells may form runs.
func (b *Board) Fill() []Position {
	var filled []Position
	for col := range b.w {
		for row := range b.h {
			i := b.index(row, col)
			if b.cells[i].Filled {
				continue
			}
			b.cells[i] = Occupied(b.randomSymbol())
			filled = append(filled, P(row, col))
		}
	}
	return filled
}

// Resolve repeats remove, cascade, fill and re-detect until no run remains.
// It returns one Step per removal; a stable board yields no steps.
// There is no iteration cap: random refills end the chain almost surely.
func (b *Board) Resolve() Steps {
	var steps Steps
	for {
		runs := b.FindRuns()
		if len(runs) == 0 {
			return steps
		}

		removed := b.matchSet(runs)
		score := b.remove(removed)
		b.Cascade()
		b.Fill()

		steps = append(steps, Step{
			Removed: removed,
			Runs:    runs,
			Score:   score,
			Board:   b.Snapshot(),
		})
	}
}
