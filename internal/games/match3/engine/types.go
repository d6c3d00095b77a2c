// Package engine implements the match-3 board: fill, swap validation, run
// detection, removal, gravity and refill.
// It is UI-agnostic and deterministic for a given random source.
package engine

import (
	"errors"
	"fmt"
)

// MinRun is the shortest run of equal symbols that counts as a match.
const MinRun = 3

var (
	// ErrOutOfBounds is returned for any position outside the board.
	ErrOutOfBounds = errors.New("engine: position out of bounds")

	// ErrInvalidConfig is returned when a board cannot be built from the given parameters.
	ErrInvalidConfig = errors.New("engine: invalid board config")
)

// Symbol is an opaque tile kind. Only equality is meaningful.
// The zero value is reserved and never appears on a settled board.
type Symbol uint8

// NoSymbol marks the absence of a symbol (an empty cell in snapshots).
const NoSymbol Symbol = 0

// Letter returns a printable single-character name ('A' for 1, 'B' for 2, ...).
// NoSymbol prints as '.'.
func (s Symbol) Letter() rune {
	if s == NoSymbol {
		return '.'
	}
	return 'A' + rune(s) - 1
}

// String returns the symbol's letter.
func (s Symbol) String() string {
	return string(s.Letter())
}

// SymbolFromLetter is the inverse of Letter. '.' maps to NoSymbol.
func SymbolFromLetter(r rune) (Symbol, bool) {
	if r == '.' {
		return NoSymbol, true
	}
	if r < 'A' || r > 'Z' {
		return NoSymbol, false
	}
	return Symbol(r-'A') + 1, true
}

// Alphabet is the fixed set of symbols a board draws from.
type Alphabet []Symbol

// NewAlphabet returns an alphabet of n symbols: A, B, C, ...
func NewAlphabet(n int) Alphabet {
	a := make(Alphabet, n)
	for i := range n {
		a[i] = Symbol(i + 1)
	}
	return a
}

// Contains reports whether s belongs to the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// validate checks that the alphabet is usable for filling a board.
func (a Alphabet) validate() error {
	if len(a) < 2 {
		return fmt.Errorf("%w: alphabet needs at least 2 symbols, got %d", ErrInvalidConfig, len(a))
	}
	seen := make(map[Symbol]bool, len(a))
	for _, s := range a {
		if s == NoSymbol {
			return fmt.Errorf("%w: alphabet contains the reserved zero symbol", ErrInvalidConfig)
		}
		if seen[s] {
			return fmt.Errorf("%w: duplicate symbol %s in alphabet", ErrInvalidConfig, s)
		}
		seen[s] = true
	}
	return nil
}

// Cell is a single board position: either occupied by a symbol or empty.
// Empty cells only exist transiently while a removal is being resolved.
type Cell struct {
	Filled bool
	Symbol Symbol // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell holding s.
func Occupied(s Symbol) Cell {
	return Cell{Filled: true, Symbol: s}
}

// Matches reports whether two cells can belong to the same run.
// Two empty cells never match.
func (c Cell) Matches(other Cell) bool {
	return c.Filled && other.Filled && c.Symbol == other.Symbol
}

// Position addresses a cell. Row 0 is the top row, Col 0 the leftmost column.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent reports whether p and other differ by exactly one step
// horizontally or vertically (Manhattan distance 1).
func (p Position) Adjacent(other Position) bool {
	dr := abs(p.Row - other.Row)
	dc := abs(p.Col - other.Col)
	return dr+dc == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RNG is the random source used for filling. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}
