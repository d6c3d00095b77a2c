package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// playback replays a resolved chain one step at a time.
// The board already holds the final layout; playback only decides what is drawn.
type playback struct {
	view      [][]engine.Symbol // Layout currently shown, nil when idle
	highlight []engine.Position // Cells about to be removed
	steps     engine.Steps      // Steps not yet shown
	ticks     int               // Ticks spent on the current step
}

// start queues a chain. view is the layout right after the swap.
// With no delay there is nothing to show and playback stays idle.
func (p *playback) start(view [][]engine.Symbol, steps engine.Steps, delay int) {
	*p = playback{}
	if delay <= 0 || len(steps) == 0 {
		return
	}
	p.view = view
	p.steps = steps
	p.highlight = steps[0].Removed
}

// active reports whether a chain is still being shown.
func (p *playback) active() bool {
	return p.view != nil
}

// advance moves playback forward by one tick.
func (p *playback) advance(delay int) {
	if !p.active() {
		return
	}
	p.ticks++
	if p.ticks < delay {
		return
	}

	p.view = p.steps[0].Board
	p.steps = p.steps[1:]
	p.ticks = 0
	if len(p.steps) == 0 {
		*p = playback{}
		return
	}
	p.highlight = p.steps[0].Removed
}

// pendingScore is the score of the steps not shown yet.
func (p *playback) pendingScore() int {
	return p.steps.TotalScore()
}

// highlighted reports whether pos is marked for removal in the shown step.
func (p *playback) highlighted(pos engine.Position) bool {
	for _, h := range p.highlight {
		if h == pos {
			return true
		}
	}
	return false
}
