package engine_test

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func TestFindMatches(t *testing.T) {
	P := engine.P
	tests := []struct {
		name     string
		lines    []string
		expected []engine.Position
	}{
		{
			name:     "no runs",
			lines:    []string{"ABA", "BAB", "ABC"},
			expected: nil,
		},
		{
			name:     "row of four returns all four",
			lines:    []string{"AAAA"},
			expected: []engine.Position{P(0, 0), P(0, 1), P(0, 2), P(0, 3)},
		},
		{
			name:     "run ending at last column",
			lines:    []string{"BAAA"},
			expected: []engine.Position{P(0, 1), P(0, 2), P(0, 3)},
		},
		{
			name:     "run ending at last row",
			lines:    []string{"B", "C", "C", "C"},
			expected: []engine.Position{P(1, 0), P(2, 0), P(3, 0)},
		},
		{
			name:     "pair is not a match",
			lines:    []string{"AABB", "CCDD"},
			expected: nil,
		},
		{
			name: "two separate runs",
			lines: []string{
				"AAAB",
				"CDEB",
				"CDEB",
			},
			expected: []engine.Position{P(0, 0), P(0, 1), P(0, 2), P(0, 3), P(1, 3), P(2, 3)},
		},
		{
			name:     "empty cells never match",
			lines:    []string{"...", "...", "..."},
			expected: nil,
		},
		{
			name:     "empty cell breaks a run",
			lines:    []string{"AA.AA"},
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := fromLines(t, 1, tc.lines...)
			got := b.FindMatches()
			if !samePositions(got, tc.expected) {
				t.Errorf("FindMatches() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestFindMatchesDeduplicatesOverlap(t *testing.T) {
	// (0,0) belongs to both the top row run and the left column run.
	b := fromLines(t, 1,
		"AAAB",
		"ACBC",
		"ABCB",
	)

	matches := b.FindMatches()
	if len(matches) != 5 {
		t.Fatalf("expected 5 unique positions, got %d: %v", len(matches), matches)
	}

	count := 0
	for _, p := range matches {
		if p == engine.P(0, 0) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("shared corner reported %d times, want 1", count)
	}

	runs := b.FindRuns()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Orientation != engine.Horizontal || runs[1].Orientation != engine.Vertical {
		t.Errorf("runs should be reported rows first: %+v", runs)
	}
}

func TestFindRunsCross(t *testing.T) {
	b := fromLines(t, 1,
		"BAB",
		"AAA",
		"BAB",
	)

	runs := b.FindRuns()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Length != 3 || r.Symbol != engine.Symbol(1) {
			t.Errorf("unexpected run %+v", r)
		}
	}
	if got := len(b.FindMatches()); got != 5 {
		t.Errorf("cross should cover 5 cells, got %d", got)
	}
}

func TestFindMatchesIdempotent(t *testing.T) {
	b, _ := newBoard(t, 7, 8, 8, 5)

	first := b.FindMatches()
	second := b.FindMatches()
	if len(first) != 0 || len(second) != 0 {
		t.Fatalf("stable board should have no matches: %v / %v", first, second)
	}
	if !samePositions(first, second) {
		t.Error("FindMatches() should be idempotent")
	}
}

func TestRunPositions(t *testing.T) {
	r := engine.Run{Orientation: engine.Vertical, Start: engine.P(1, 2), Length: 3}
	want := []engine.Position{engine.P(1, 2), engine.P(2, 2), engine.P(3, 2)}
	if got := r.Positions(); !samePositions(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}
