// Package match3 implements the match-3 game session: cursor and selection
// handling, move budget, score, status messages and paced playback of
// cascade chains. All board rules live in the engine subpackage.
package match3

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMoves   Mode = "moves"
	ModeEndless Mode = "endless"
)

// Status messages shown under the board.
const (
	MsgReady    = "Ready!"
	MsgMatch    = "Match!"
	MsgNoMatch  = "No Match"
	MsgGameOver = "Game Over!"
)

// Events reported in core.StepResult.
const (
	EventMatch    = "match"
	EventCombo    = "combo"
	EventNoMatch  = "no_match"
	EventGameOver = "game_over"
)

// Stats accumulates per-game chain statistics.
type Stats struct {
	Swaps        int // Accepted swaps
	Cascades     int // Cascade steps across all swaps
	BestCombo    int // Most steps triggered by one swap
	LongestRun   int // Longest single run cleared
	CellsCleared int
}

// Game implements the match-3 session on top of engine.Board.
type Game struct {
	mode Mode
	cfg  config.Match3Config
	rng  *rand.Rand
	tick uint64

	board     *engine.Board
	score     int
	movesLeft int
	stats     Stats

	cursor      engine.Position
	selected    engine.Position
	hasSelected bool

	message      string
	messageTicks int

	play playback

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "match3",
		Title:       "Match-3",
		Description: "Swap tiles to line up three or more before the moves run out",
	}, factory(ModeMoves))
	registry.Register(registry.GameInfo{
		ID:          "match3_endless",
		Title:       "Match-3 (Endless)",
		Description: "Match-3 without a move limit",
	}, factory(ModeEndless))
}

// factory loads the YAML config, applies the difficulty preset and builds a game.
func factory(mode Mode) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadMatch3(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParseDifficultyPreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyMatch3Preset(&cfg, preset)
		return New(cfg, mode)
	}
}

// New creates a game with the given config. Reset must be called before Step.
func New(cfg config.Match3Config, mode Mode) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch mode {
	case ModeMoves, ModeEndless:
	default:
		return nil, fmt.Errorf("match3: unknown mode %q", mode)
	}
	return &Game{mode: mode, cfg: cfg}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "match3_endless"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Reset initializes/restarts the game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.movesLeft = g.cfg.Gameplay.Moves
	g.stats = Stats{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.hasSelected = false
	g.play = playback{}

	// Matches cleared while dealing are not scored; every game starts at 0.
	board, _, err := engine.New(g.engineConfig(), g.rng)
	if err != nil {
		// The config was validated in New, so this is a programming error.
		panic(fmt.Sprintf("match3: %v", err))
	}
	g.board = board
	g.cursor = engine.P(board.Height()/2, board.Width()/2)

	g.setMessage(MsgReady)
	g.checkScreenSize()
}

func (g *Game) engineConfig() engine.Config {
	return engine.Config{
		Width:    g.cfg.Board.Width,
		Height:   g.cfg.Board.Height,
		Alphabet: engine.NewAlphabet(g.cfg.Board.Symbols),
		Rules: engine.Rules{
			BasePoints: g.cfg.Scoring.BasePoints,
			MatchBonus: g.cfg.Scoring.MatchBonus,
		},
	}
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.Width*cellWidth + 2
	minH := g.cfg.Board.Height + hudHeight + footerHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []string

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 && !g.gameOver {
			g.message = ""
		}
	}

	// Pending playback swallows input until the chain has been shown.
	if g.play.active() {
		g.play.advance(g.cfg.Timing.StepDelayTicks)
		if !g.play.active() && g.gameOver {
			g.setMessage(MsgGameOver)
			events = append(events, EventGameOver)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.gameOver {
		// Restart is handled by the platform
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionBack) {
		g.hasSelected = false
	}
	if in.Has(core.ActionConfirm) {
		events = append(events, g.confirm()...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor moves the cursor one cell, stopping at the board edges.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, g.board.Height()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, g.board.Width()-1)
}

// confirm selects the cursor cell or swaps it with the current selection.
// Confirming the selected cell deselects it; confirming a cell that is not
// next to the selection moves the selection there.
func (g *Game) confirm() []string {
	switch {
	case !g.hasSelected:
		g.selected = g.cursor
		g.hasSelected = true
		return nil
	case g.selected == g.cursor:
		g.hasSelected = false
		return nil
	case !g.selected.Adjacent(g.cursor):
		g.selected = g.cursor
		return nil
	}

	from := g.selected
	g.hasSelected = false
	return g.trySwap(from, g.cursor)
}

// trySwap asks the engine for the swap and applies the outcome to the session.
func (g *Game) trySwap(p1, p2 engine.Position) []string {
	before := g.board.Snapshot()

	res, err := g.board.AttemptSwap(p1, p2)
	if err != nil {
		// Cursor and selection are clamped to the board.
		panic(fmt.Sprintf("match3: %v", err))
	}
	if !res.Accepted {
		g.setMessage(MsgNoMatch)
		return []string{EventNoMatch}
	}

	g.score += res.Score()
	g.recordStats(res)

	events := []string{EventMatch}
	if res.Combo() > 1 {
		g.setMessage(fmt.Sprintf("Combo x%d!", res.Combo()))
		events = append(events, EventCombo)
	} else {
		g.setMessage(MsgMatch)
	}

	if g.mode == ModeMoves {
		g.movesLeft--
		if g.movesLeft <= 0 {
			g.movesLeft = 0
			g.gameOver = true
		}
	}

	// Show the swapped layout first, then each step of the chain.
	before[p1.Row][p1.Col], before[p2.Row][p2.Col] = before[p2.Row][p2.Col], before[p1.Row][p1.Col]
	g.play.start(before, res.Steps, g.cfg.Timing.StepDelayTicks)

	if g.gameOver && !g.play.active() {
		g.setMessage(MsgGameOver)
		events = append(events, EventGameOver)
	}
	return events
}

func (g *Game) recordStats(res engine.MoveResult) {
	g.stats.Swaps++
	g.stats.Cascades += res.Combo()
	g.stats.BestCombo = max(g.stats.BestCombo, res.Combo())
	g.stats.LongestRun = max(g.stats.LongestRun, res.Steps.LongestRun())
	g.stats.CellsCleared += res.Steps.Removed()
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTicks = g.cfg.Timing.MessageTicks
}

// State returns the current game state.
// A finished game is only reported once its last chain has been shown.
func (g *Game) State() core.GameState {
	busy := g.play.active()
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver && !busy,
		Paused:   g.paused || g.tooSmall,
		Busy:     busy,
	}
}

// displayScore is the score as far as playback has shown it. It climbs
// step by step while a chain plays and equals the real score otherwise.
func (g *Game) displayScore() int {
	return g.score - g.play.pendingScore()
}

// Endless reports whether the game runs without a move limit.
func (g *Game) Endless() bool {
	return g.mode == ModeEndless
}

// Stats returns the chain statistics collected so far.
func (g *Game) Stats() Stats {
	return g.stats
}

// RunSummary reports the chain statistics for storage.
func (g *Game) RunSummary() core.RunSummary {
	return core.RunSummary{
		MovesUsed:  g.stats.Swaps,
		Cascades:   g.stats.Cascades,
		BestCombo:  g.stats.BestCombo,
		LongestRun: g.stats.LongestRun,
	}
}

// Resize adapts to a new terminal size without dealing a new board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// MovesUsed returns the number of accepted swaps.
func (g *Game) MovesUsed() int {
	return g.stats.Swaps
}

// MovesLeft returns the remaining move budget, or -1 in endless mode.
func (g *Game) MovesLeft() int {
	if g.mode == ModeEndless {
		return -1
	}
	return g.movesLeft
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter: Select/Swap | Esc: Cancel | P: Pause | Q: Quit"
}
