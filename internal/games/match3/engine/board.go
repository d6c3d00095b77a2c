package engine

import (
	"fmt"
	"strings"
)

// Config describes the board to build.
type Config struct {
	Width    int
	Height   int
	Alphabet Alphabet
	Rules    Rules
}

// Board is a fixed-size grid of cells stored row-major (index = row*W + col).
// A Board is not safe for concurrent use; it belongs to a single session.
type Board struct {
	w, h     int
	cells    []Cell
	alphabet Alphabet
	rules    Rules
	rng      RNG
}

// New builds a board, fills it so that no cell completes a run with the two
// cells directly left or directly above it, then resolves any remaining
// matches. The settle steps are returned so a caller can animate them;
// usually there are none.
//
// The placement check only looks at preceding neighbours, so the resolve
// pass is still required to guarantee a match-free start.
func New(cfg Config, rng RNG) (*Board, Steps, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if err := cfg.Alphabet.validate(); err != nil {
		return nil, nil, err
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	b := &Board{
		w:        cfg.Width,
		h:        cfg.Height,
		cells:    make([]Cell, cfg.Width*cfg.Height),
		alphabet: append(Alphabet(nil), cfg.Alphabet...),
		rules:    cfg.Rules,
		rng:      rng,
	}

	for row := range b.h {
		for col := range b.w {
			b.cells[b.index(row, col)] = Occupied(b.placementSymbol(row, col))
		}
	}

	steps := b.Resolve()
	return b, steps, nil
}

// FromRows builds a board from an explicit layout without resolving it.
// NoSymbol entries become empty cells. All rows must have the same length
// and every other symbol must belong to the alphabet.
func FromRows(rows [][]Symbol, alphabet Alphabet, rules Rules, rng RNG) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidConfig)
	}
	if err := alphabet.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	h, w := len(rows), len(rows[0])
	b := &Board{
		w:        w,
		h:        h,
		cells:    make([]Cell, w*h),
		alphabet: append(Alphabet(nil), alphabet...),
		rules:    rules,
		rng:      rng,
	}

	for row, line := range rows {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, row, len(line), w)
		}
		for col, s := range line {
			if s == NoSymbol {
				continue
			}
			if !alphabet.Contains(s) {
				return nil, fmt.Errorf("%w: symbol %s at %v not in alphabet", ErrInvalidConfig, s, P(row, col))
			}
			b.cells[b.index(row, col)] = Occupied(s)
		}
	}
	return b, nil
}

// placementSymbol draws a symbol for (row, col) that does not complete a
// horizontal run with the two cells to the left or a vertical run with the
// two cells above. If every symbol is excluded (possible with a 2-symbol
// alphabet) it falls back to an unconstrained draw.
func (b *Board) placementSymbol(row, col int) Symbol {
	allowed := make([]Symbol, 0, len(b.alphabet))
	for _, s := range b.alphabet {
		if col >= 2 && b.symbol(row, col-1) == s && b.symbol(row, col-2) == s {
			continue
		}
		if row >= 2 && b.symbol(row-1, col) == s && b.symbol(row-2, col) == s {
			continue
		}
		allowed = append(allowed, s)
	}
	if len(allowed) == 0 {
		return b.randomSymbol()
	}
	return allowed[b.rng.Intn(len(allowed))]
}

func (b *Board) randomSymbol() Symbol {
	return b.alphabet[b.rng.Intn(len(b.alphabet))]
}

// index converts a row/col pair to a flat array index.
func (b *Board) index(row, col int) int {
	return row*b.w + col
}

// symbol returns the symbol at (row, col), or NoSymbol for empty cells.
// Callers must check bounds.
func (b *Board) symbol(row, col int) Symbol {
	c := b.cells[b.index(row, col)]
	if !c.Filled {
		return NoSymbol
	}
	return c.Symbol
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Alphabet returns a copy of the board's alphabet.
func (b *Board) Alphabet() Alphabet {
	return append(Alphabet(nil), b.alphabet...)
}

// Rules returns the scoring rules.
func (b *Board) Rules() Rules { return b.rules }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.h && p.Col >= 0 && p.Col < b.w
}

func (b *Board) checkBounds(p Position) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.w, b.h)
	}
	return nil
}

// CellAt returns the cell at p.
func (b *Board) CellAt(p Position) (Cell, error) {
	if err := b.checkBounds(p); err != nil {
		return Cell{}, err
	}
	return b.cells[b.index(p.Row, p.Col)], nil
}

// SymbolAt returns the symbol at (row, col). Empty cells report NoSymbol.
func (b *Board) SymbolAt(row, col int) (Symbol, error) {
	if err := b.checkBounds(P(row, col)); err != nil {
		return NoSymbol, err
	}
	return b.symbol(row, col), nil
}

// Snapshot returns a copy of the layout as rows of symbols.
func (b *Board) Snapshot() [][]Symbol {
	rows := make([][]Symbol, b.h)
	for row := range b.h {
		rows[row] = make([]Symbol, b.w)
		for col := range b.w {
			rows[row][col] = b.symbol(row, col)
		}
	}
	return rows
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Equal reports whether two boards have the same dimensions and layout.
func (b *Board) Equal(other *Board) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the layout one row per line using symbol letters.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.h * (b.w + 1))
	for row := range b.h {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range b.w {
			sb.WriteRune(b.symbol(row, col).Letter())
		}
	}
	return sb.String()
}
