package engine_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func TestAttemptSwapNoMatchScenario(t *testing.T) {
	b := fromLines(t, 1,
		"ABA",
		"BAB",
		"ABC",
	)
	before := b.String()

	res, err := b.AttemptSwap(engine.P(2, 2), engine.P(1, 2))
	if err != nil {
		t.Fatalf("AttemptSwap() failed: %v", err)
	}
	if res.Accepted {
		t.Fatal("swap should be rejected")
	}
	if res.Reason != engine.RejectNoMatch {
		t.Errorf("Reason = %v, want %v", res.Reason, engine.RejectNoMatch)
	}
	if b.String() != before {
		t.Errorf("board changed after rejected swap:\n%s", b.String())
	}
}

func TestAttemptSwapInvalidAdjacency(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 engine.Position
	}{
		{"diagonal", engine.P(0, 0), engine.P(1, 1)},
		{"same cell", engine.P(1, 1), engine.P(1, 1)},
		{"two apart in row", engine.P(0, 0), engine.P(0, 2)},
		{"two apart in column", engine.P(0, 1), engine.P(2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := fromLines(t, 1, "ABA", "BAB", "ABC")
			before := b.String()

			res, err := b.AttemptSwap(tc.p1, tc.p2)
			if err != nil {
				t.Fatalf("AttemptSwap() failed: %v", err)
			}
			if res.Accepted || res.Reason != engine.RejectInvalidAdjacency {
				t.Errorf("got %+v, want InvalidAdjacency rejection", res)
			}
			if b.String() != before {
				t.Error("board changed after invalid swap")
			}
		})
	}
}

func TestAttemptSwapOutOfBounds(t *testing.T) {
	b := fromLines(t, 1, "ABA", "BAB", "ABC")
	before := b.String()

	cases := [][2]engine.Position{
		{engine.P(-1, 0), engine.P(0, 0)},
		{engine.P(2, 2), engine.P(2, 3)},
		{engine.P(3, 0), engine.P(2, 0)},
	}
	for _, c := range cases {
		_, err := b.AttemptSwap(c[0], c[1])
		if !errors.Is(err, engine.ErrOutOfBounds) {
			t.Errorf("AttemptSwap(%v, %v) error = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if b.String() != before {
		t.Error("board changed after out-of-bounds swap")
	}
}

func TestAttemptSwapRowOfFour(t *testing.T) {
	// Swapping (0,2) with (1,2) turns the top row into AAAA.
	b := fromLines(t, 5,
		"AABA",
		"CDAE",
	)

	res, err := b.AttemptSwap(engine.P(0, 2), engine.P(1, 2))
	if err != nil {
		t.Fatalf("AttemptSwap() failed: %v", err)
	}
	if !res.Accepted {
		t.Fatalf("swap should be accepted, got %v", res.Reason)
	}

	first := res.Steps[0]
	want := []engine.Position{engine.P(0, 0), engine.P(0, 1), engine.P(0, 2), engine.P(0, 3)}
	if !samePositions(first.Removed, want) {
		t.Errorf("removed %v, want %v", first.Removed, want)
	}
	if first.Score != 4*10+50 {
		t.Errorf("first step score = %d, want 90", first.Score)
	}
	if res.Score() != res.Steps.TotalScore() || res.Combo() != len(res.Steps) {
		t.Error("MoveResult helpers disagree with Steps")
	}
	if m := b.FindMatches(); len(m) != 0 {
		t.Errorf("board not stable after swap: %v", m)
	}
}

func TestAttemptSwapPostconditions(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		b, _ := newBoard(t, seed, 8, 8, 5)

		accepted := 0
		for row := range b.Height() {
			for col := range b.Width() {
				for _, other := range []engine.Position{engine.P(row, col+1), engine.P(row+1, col)} {
					if !b.InBounds(other) {
						continue
					}
					before := b.String()

					res, err := b.AttemptSwap(engine.P(row, col), other)
					if err != nil {
						t.Fatalf("seed %d: AttemptSwap() failed: %v", seed, err)
					}

					if !res.Accepted {
						if b.String() != before {
							t.Fatalf("seed %d: rejected swap changed the board", seed)
						}
						continue
					}

					accepted++
					if len(res.Steps) == 0 {
						t.Fatalf("seed %d: accepted swap with no steps", seed)
					}
					if m := b.FindMatches(); len(m) != 0 {
						t.Fatalf("seed %d: matches remain after swap: %v", seed, m)
					}
					if !b.Full() {
						t.Fatalf("seed %d: board has empty cells after swap", seed)
					}
				}
			}
		}
		if accepted == 0 {
			t.Logf("seed %d: no legal swap found", seed)
		}
	}
}
