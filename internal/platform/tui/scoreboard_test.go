package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/storage"
)

func TestScoreboardShowsScoresAndRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, s := range []int{150, 300} {
		if _, err := store.SaveScore("scripted", s); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	if _, err := store.SaveRun(storage.RunRecord{GameID: "scripted", Seed: 4242, Score: 300, BestCombo: 3}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("score rows = %d, want 2", got)
	}
	if first := m.table.Rows()[0][1]; first != "300" {
		t.Errorf("top score = %s, want 300", first)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("view should show the scores title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(ScoreboardModel)
	if !m.showRuns {
		t.Fatal("r should switch to recent runs")
	}
	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][4] != "4242" {
		t.Errorf("run rows = %v, want one row with seed 4242", rows)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("view should show the runs title")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty store should show the placeholder")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd == nil {
		t.Error("esc should go back to the menu")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
