package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func TestNewBoardIsStable(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		b, steps := newBoard(t, seed, 8, 8, 5)

		if m := b.FindMatches(); len(m) != 0 {
			t.Fatalf("seed %d: new board has matches %v", seed, m)
		}
		if !b.Full() {
			t.Fatalf("seed %d: new board has empty cells", seed)
		}
		for i, st := range steps {
			if len(st.Removed) == 0 {
				t.Errorf("seed %d: settle step %d removed nothing", seed, i)
			}
		}
	}
}

func TestNewBoardSmallAlphabet(t *testing.T) {
	b, _ := newBoard(t, 3, 6, 6, 3)
	if b.HasMatches() {
		t.Errorf("3-symbol board should settle:\n%s", b)
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	b1, _ := newBoard(t, 12345, 8, 8, 5)
	b2, _ := newBoard(t, 12345, 8, 8, 5)

	if !b1.Equal(b2) {
		t.Errorf("same seed should produce same board:\n%s\nvs\n%s", b1, b2)
	}

	b3, _ := newBoard(t, 54321, 8, 8, 5)
	if b1.Equal(b3) {
		t.Error("different seeds produced identical boards")
	}
}

func TestNewBoardInvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		cfg  engine.Config
		rng  engine.RNG
	}{
		{"zero width", engine.Config{Width: 0, Height: 5, Alphabet: engine.NewAlphabet(5)}, rng},
		{"negative height", engine.Config{Width: 5, Height: -1, Alphabet: engine.NewAlphabet(5)}, rng},
		{"single symbol", engine.Config{Width: 5, Height: 5, Alphabet: engine.NewAlphabet(1)}, rng},
		{"duplicate symbol", engine.Config{Width: 5, Height: 5, Alphabet: engine.Alphabet{1, 2, 2}}, rng},
		{"reserved symbol", engine.Config{Width: 5, Height: 5, Alphabet: engine.Alphabet{0, 1, 2}}, rng},
		{"nil rng", engine.Config{Width: 5, Height: 5, Alphabet: engine.NewAlphabet(5)}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := engine.New(tc.cfg, tc.rng)
			if !errors.Is(err, engine.ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestFromRowsValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alpha := engine.NewAlphabet(3)

	if _, err := engine.FromRows(nil, alpha, engine.DefaultRules(), rng); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("empty layout: got %v", err)
	}

	ragged := [][]engine.Symbol{{1, 2, 3}, {1, 2}}
	if _, err := engine.FromRows(ragged, alpha, engine.DefaultRules(), rng); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("ragged layout: got %v", err)
	}

	foreign := [][]engine.Symbol{{1, 2, 5}}
	if _, err := engine.FromRows(foreign, alpha, engine.DefaultRules(), rng); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("foreign symbol: got %v", err)
	}
}

func TestSymbolAt(t *testing.T) {
	b := fromLines(t, 1, "ABC", "CAB")

	s, err := b.SymbolAt(1, 2)
	if err != nil {
		t.Fatalf("SymbolAt() failed: %v", err)
	}
	if s.Letter() != 'B' {
		t.Errorf("SymbolAt(1, 2) = %s, want B", s)
	}

	for _, p := range []engine.Position{engine.P(-1, 0), engine.P(0, -1), engine.P(2, 0), engine.P(0, 3)} {
		if _, err := b.SymbolAt(p.Row, p.Col); !errors.Is(err, engine.ErrOutOfBounds) {
			t.Errorf("SymbolAt%v error = %v, want ErrOutOfBounds", p, err)
		}
		if _, err := b.CellAt(p); !errors.Is(err, engine.ErrOutOfBounds) {
			t.Errorf("CellAt%v error = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	b := fromLines(t, 1, "ABC", "CAB")

	snap := b.Snapshot()
	snap[0][0] = engine.Symbol(3)

	if s, _ := b.SymbolAt(0, 0); s.Letter() != 'A' {
		t.Error("mutating a snapshot must not change the board")
	}
}

func TestPositionAdjacent(t *testing.T) {
	tests := []struct {
		a, b     engine.Position
		expected bool
	}{
		{engine.P(0, 0), engine.P(0, 1), true},
		{engine.P(0, 0), engine.P(1, 0), true},
		{engine.P(2, 2), engine.P(1, 2), true},
		{engine.P(0, 0), engine.P(1, 1), false},
		{engine.P(0, 0), engine.P(0, 0), false},
		{engine.P(0, 0), engine.P(0, 2), false},
	}
	for _, tc := range tests {
		if got := tc.a.Adjacent(tc.b); got != tc.expected {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestSymbolLetters(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		s, ok := engine.SymbolFromLetter(r)
		if !ok || s.Letter() != r {
			t.Errorf("round trip failed for %c", r)
		}
	}
	if _, ok := engine.SymbolFromLetter('?'); ok {
		t.Error("'?' should not parse")
	}
	if engine.NoSymbol.Letter() != '.' {
		t.Error("NoSymbol should print as '.'")
	}
}
