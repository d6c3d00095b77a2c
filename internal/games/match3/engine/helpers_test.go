package engine_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// layout parses rows of letters ('A'..'E', '.' for empty) into symbols.
func layout(t *testing.T, lines ...string) [][]engine.Symbol {
	t.Helper()
	rows := make([][]engine.Symbol, len(lines))
	for i, line := range lines {
		for _, r := range line {
			s, ok := engine.SymbolFromLetter(r)
			if !ok {
				t.Fatalf("bad layout rune %q in %q", r, line)
			}
			rows[i] = append(rows[i], s)
		}
	}
	return rows
}

// fromLines builds an unresolved board over a 5-symbol alphabet.
func fromLines(t *testing.T, seed int64, lines ...string) *engine.Board {
	t.Helper()
	b, err := engine.FromRows(layout(t, lines...), engine.NewAlphabet(5), engine.DefaultRules(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return b
}

// newBoard builds a resolved random board.
func newBoard(t *testing.T, seed int64, w, h, symbols int) (*engine.Board, engine.Steps) {
	t.Helper()
	cfg := engine.Config{
		Width:    w,
		Height:   h,
		Alphabet: engine.NewAlphabet(symbols),
		Rules:    engine.DefaultRules(),
	}
	b, steps, err := engine.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return b, steps
}

func samePositions(a, b []engine.Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
