package engine

// Orientation is the axis a run lies on.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a maximal line of at least MinRun equal symbols.
type Run struct {
	Orientation Orientation
	Start       Position // Leftmost or topmost cell
	Length      int
	Symbol      Symbol
}

// Positions lists the cells covered by the run, in scan order.
func (r Run) Positions() []Position {
	ps := make([]Position, r.Length)
	for i := range r.Length {
		if r.Orientation == Horizontal {
			ps[i] = P(r.Start.Row, r.Start.Col+i)
		} else {
			ps[i] = P(r.Start.Row+i, r.Start.Col)
		}
	}
	return ps
}

// FindRuns returns every run of MinRun or more, rows first (top to bottom,
// left to right) then columns (left to right, top to bottom).
// Overlapping horizontal and vertical runs are both reported.
func (b *Board) FindRuns() []Run {
	var runs []Run

	for row := range b.h {
		start := 0
		for col := 1; col <= b.w; col++ {
			if col < b.w && b.cells[b.index(row, col)].Matches(b.cells[b.index(row, start)]) {
				continue
			}
			if n := col - start; n >= MinRun {
				runs = append(runs, Run{
					Orientation: Horizontal,
					Start:       P(row, start),
					Length:      n,
					Symbol:      b.symbol(row, start),
				})
			}
			start = col
		}
	}

	for col := range b.w {
		start := 0
		for row := 1; row <= b.h; row++ {
			if row < b.h && b.cells[b.index(row, col)].Matches(b.cells[b.index(start, col)]) {
				continue
			}
			if n := row - start; n >= MinRun {
				runs = append(runs, Run{
					Orientation: Vertical,
					Start:       P(start, col),
					Length:      n,
					Symbol:      b.symbol(start, col),
				})
			}
			start = row
		}
	}

	return runs
}

// FindMatches returns the set of positions covered by any run, each once,
// in row-major order. The result is empty (nil) on a stable board.
func (b *Board) FindMatches() []Position {
	return b.matchSet(b.FindRuns())
}

// matchSet flattens runs into unique positions ordered row-major.
func (b *Board) matchSet(runs []Run) []Position {
	if len(runs) == 0 {
		return nil
	}

	marked := make([]bool, len(b.cells))
	count := 0
	for _, r := range runs {
		for _, p := range r.Positions() {
			i := b.index(p.Row, p.Col)
			if !marked[i] {
				marked[i] = true
				count++
			}
		}
	}

	ps := make([]Position, 0, count)
	for i, m := range marked {
		if m {
			ps = append(ps, P(i/b.w, i%b.w))
		}
	}
	return ps
}

// HasMatches reports whether any run exists on the board.
func (b *Board) HasMatches() bool {
	return len(b.FindRuns()) > 0
}
