package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "moves" or "endless"
	Score     int
	MovesLeft int // -1 in endless mode
	Board     [][]engine.Symbol
	Cursor    engine.Position
	Selected  *engine.Position // nil when nothing is selected
	Message   string
	Stats     Stats
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.play.active():
		state = StateResolving
	case g.gameOver:
		state = StateGameOver
	}

	var selected *engine.Position
	if g.hasSelected {
		p := g.selected
		selected = &p
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		MovesLeft: g.MovesLeft(),
		Board:     g.board.Snapshot(),
		Cursor:    g.cursor,
		Selected:  selected,
		Message:   g.message,
		Stats:     g.stats,
		State:     state,
	}
}
