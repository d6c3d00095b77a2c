package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	cellWidth    = 3 // Columns per tile: marker, glyph, marker
	hudHeight    = 3 // Title, score line, spacer
	footerHeight = 2 // Message line, controls line
)

// tileStyle is how one symbol is drawn.
type tileStyle struct {
	glyph rune
	color core.Color
}

var tileStyles = []tileStyle{
	{'●', core.ColorBrightRed},
	{'▲', core.ColorBrightGreen},
	{'◆', core.ColorBrightYellow},
	{'■', core.ColorBrightBlue},
	{'▼', core.ColorBrightMagenta},
	{'◉', core.ColorBrightCyan},
	{'✚', core.ColorOrange},
}

func styleOf(s engine.Symbol) tileStyle {
	if s == engine.NoSymbol {
		return tileStyle{' ', core.ColorDefault}
	}
	return tileStyles[core.Wrap(int(s)-1, len(tileStyles))]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.board.Width()*cellWidth + 2
	boardH := g.board.Height() + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	if g.message != "" {
		dst.DrawTextCentered(boardY+boardH, g.message, g.messageColor())
	}
	dst.DrawTextCentered(g.screenH-1, g.Controls(), core.ColorGray)

	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title, score and remaining moves.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.displayScore()))

	movesStr := "Endless"
	if g.mode == ModeMoves {
		movesStr = fmt.Sprintf("Moves: %d", g.movesLeft)
	}
	movesX := max(boardX+boardW-len(movesStr), boardX)
	color := core.ColorDefault
	if g.mode == ModeMoves && g.movesLeft <= 5 {
		color = core.ColorRed
	}
	dst.DrawTextColor(movesX, 1, movesStr, color)
}

// renderBoard draws the frame and tiles. While a chain is playing back the
// intermediate layout is drawn instead of the live board.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, g.board.Width()*cellWidth+2, g.board.Height()+2), core.ColorGray)

	view := g.play.view
	if view == nil {
		view = g.board.Snapshot()
	}

	for row := range view {
		for col, sym := range view[row] {
			pos := engine.P(row, col)
			x := boardX + 1 + col*cellWidth
			y := boardY + 1 + row

			st := styleOf(sym)
			if g.play.highlighted(pos) {
				st = tileStyle{'✱', core.ColorBrightWhite}
			}
			dst.SetColor(x+1, y, st.glyph, st.color)

			switch {
			case g.hasSelected && pos == g.selected:
				dst.SetColor(x, y, '<', core.ColorYellow)
				dst.SetColor(x+2, y, '>', core.ColorYellow)
			case pos == g.cursor && !g.gameOver:
				dst.SetColor(x, y, '[', core.ColorWhite)
				dst.SetColor(x+2, y, ']', core.ColorWhite)
			}
		}
	}
}

func (g *Game) messageColor() core.Color {
	switch g.message {
	case MsgNoMatch:
		return core.ColorRed
	case MsgGameOver:
		return core.ColorBrightRed
	case MsgReady:
		return core.ColorCyan
	default:
		return core.ColorBrightYellow
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.State().GameOver {
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Best combo: x%d", g.stats.BestCombo),
			"Press R to restart",
		)
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
