package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func TestCascadeSingleColumn(t *testing.T) {
	b := fromLines(t, 3, "A", ".", "B", ".", "C")

	b.Cascade()
	if got := b.String(); got != ".\n.\nA\nB\nC" {
		t.Fatalf("after Cascade() got\n%s", got)
	}

	filled := b.Fill()
	want := []engine.Position{engine.P(0, 0), engine.P(1, 0)}
	if !samePositions(filled, want) {
		t.Errorf("Fill() filled %v, want %v", filled, want)
	}
	if !b.Full() {
		t.Error("board should be full after Fill()")
	}

	// Bottom three are untouched.
	for row, letter := range []rune{'A', 'B', 'C'} {
		s, err := b.SymbolAt(row+2, 0)
		if err != nil {
			t.Fatalf("SymbolAt() failed: %v", err)
		}
		if s.Letter() != letter {
			t.Errorf("row %d = %s, want %c", row+2, s, letter)
		}
	}
}

func TestCascadeKeepsColumnsIndependent(t *testing.T) {
	b := fromLines(t, 1,
		"AB.",
		".CD",
		"E.A",
	)

	b.Cascade()
	want := "...\nABD\nECA"
	if got := b.String(); got != want {
		t.Errorf("Cascade() got\n%s\nwant\n%s", got, want)
	}
}

func TestCascadeConservesSymbols(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := range 50 {
		b, _ := newBoard(t, int64(trial), 7, 9, 5)

		var remove []engine.Position
		for row := range b.Height() {
			for col := range b.Width() {
				if rng.Intn(3) == 0 {
					remove = append(remove, engine.P(row, col))
				}
			}
		}
		if _, err := b.Remove(remove); err != nil {
			t.Fatalf("Remove() failed: %v", err)
		}

		before := columns(b)
		b.Cascade()
		after := b.Snapshot()

		for col, kept := range before {
			empties := b.Height() - len(kept)
			for row := range b.Height() {
				got := after[row][col]
				if row < empties {
					if got != engine.NoSymbol {
						t.Fatalf("trial %d col %d: expected empty at row %d, got %s", trial, col, row, got)
					}
					continue
				}
				if want := kept[row-empties]; got != want {
					t.Fatalf("trial %d col %d row %d: got %s, want %s", trial, col, row, got, want)
				}
			}
		}
	}
}

// columns returns, per column, the occupied symbols from top to bottom.
func columns(b *engine.Board) [][]engine.Symbol {
	snap := b.Snapshot()
	cols := make([][]engine.Symbol, b.Width())
	for col := range b.Width() {
		for row := range b.Height() {
			if s := snap[row][col]; s != engine.NoSymbol {
				cols[col] = append(cols[col], s)
			}
		}
	}
	return cols
}

func TestRemoveScoring(t *testing.T) {
	b := fromLines(t, 1, "ABC", "CAB")

	score, err := b.Remove([]engine.Position{engine.P(0, 0), engine.P(0, 1), engine.P(0, 0)})
	if err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if score != 2*10+50 {
		t.Errorf("score = %d, want %d (duplicates counted once)", score, 2*10+50)
	}

	score, err = b.Remove(nil)
	if err != nil {
		t.Fatalf("Remove(nil) failed: %v", err)
	}
	if score != 0 {
		t.Errorf("empty removal should score 0, got %d", score)
	}
}

func TestRemoveOutOfBoundsLeavesBoard(t *testing.T) {
	b := fromLines(t, 1, "ABC", "CAB")
	before := b.String()

	_, err := b.Remove([]engine.Position{engine.P(0, 0), engine.P(5, 5)})
	if !errors.Is(err, engine.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if b.String() != before {
		t.Error("failed Remove() must not modify the board")
	}
}

func TestRulesStepScore(t *testing.T) {
	rules := engine.Rules{BasePoints: 5, MatchBonus: 20}

	tests := []struct {
		removed int
		want    int
	}{
		{0, 0},
		{3, 35},
		{5, 45},
		{9, 65},
	}
	for _, tc := range tests {
		if got := rules.StepScore(tc.removed); got != tc.want {
			t.Errorf("StepScore(%d) = %d, want %d", tc.removed, got, tc.want)
		}
	}
}

func TestResolveClearsMatches(t *testing.T) {
	b := fromLines(t, 11,
		"ABCD",
		"BCDA",
		"AAAB",
		"CDBC",
	)

	steps := b.Resolve()
	if len(steps) == 0 {
		t.Fatal("Resolve() should produce at least one step")
	}

	first := steps[0]
	want := []engine.Position{engine.P(2, 0), engine.P(2, 1), engine.P(2, 2)}
	if !samePositions(first.Removed, want) {
		t.Errorf("first step removed %v, want %v", first.Removed, want)
	}
	if first.Score != 3*10+50 {
		t.Errorf("first step score = %d, want 80", first.Score)
	}

	// Column 3 never had a removal in the first step and must still read D,A,B,C
	// unless a later cascade hit it.
	if len(steps) == 1 {
		for row, letter := range []rune{'D', 'A', 'B', 'C'} {
			s, _ := b.SymbolAt(row, 3)
			if s.Letter() != letter {
				t.Errorf("column 3 row %d = %s, want %c", row, s, letter)
			}
		}
	}

	if m := b.FindMatches(); len(m) != 0 {
		t.Errorf("board should be stable after Resolve(), found %v", m)
	}
	if !b.Full() {
		t.Error("board should be full after Resolve()")
	}

	for i, st := range steps {
		if st.Score != b.Rules().StepScore(len(st.Removed)) {
			t.Errorf("step %d score %d does not match %d removed cells", i, st.Score, len(st.Removed))
		}
		for _, row := range st.Board {
			for _, s := range row {
				if s == engine.NoSymbol {
					t.Errorf("step %d snapshot contains an empty cell", i)
				}
			}
		}
	}
}

func TestResolveStableBoardNoSteps(t *testing.T) {
	b := fromLines(t, 1, "ABA", "BAB", "ABC")
	before := b.String()

	if steps := b.Resolve(); len(steps) != 0 {
		t.Errorf("stable board produced %d steps", len(steps))
	}
	if b.String() != before {
		t.Error("Resolve() on a stable board must not change it")
	}
}

func TestStepsAggregates(t *testing.T) {
	steps := engine.Steps{
		{Removed: make([]engine.Position, 3), Score: 80, Runs: []engine.Run{{Length: 3}}},
		{Removed: make([]engine.Position, 5), Score: 100, Runs: []engine.Run{{Length: 5}, {Length: 3}}},
	}

	if got := steps.TotalScore(); got != 180 {
		t.Errorf("TotalScore() = %d, want 180", got)
	}
	if got := steps.Removed(); got != 8 {
		t.Errorf("Removed() = %d, want 8", got)
	}
	if got := steps.LongestRun(); got != 5 {
		t.Errorf("LongestRun() = %d, want 5", got)
	}
}
