package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Visual characters for rendering. Each board cell is two columns wide so
// tiles look square in a terminal.
const (
	TileFilled = '█'
	TileEmpty  = '·'
	tileWidth  = 2
)

// cellColors maps palette cells to screen colors.
var cellColors = map[Cell]core.Color{
	CellRed:     core.ColorRed,
	CellLime:    core.ColorBrightGreen,
	CellBlue:    core.ColorBlue,
	CellYellow:  core.ColorYellow,
	CellMagenta: core.ColorMagenta,
	CellCyan:    core.ColorCyan,
	CellOrange:  core.ColorOrange,
}

// ScreenColor returns the screen color a cell is drawn with.
func ScreenColor(c Cell) core.Color {
	if color, ok := cellColors[c]; ok {
		return color
	}
	return core.ColorDefault
}

// Layout returns the screen rectangle of the board frame (border included)
// for a screen of the given size.
func (g *Game) Layout(screen core.Rect) core.Rect {
	w := g.state.Board.Width()*tileWidth + 2
	h := g.state.Board.Height() + 2
	// One extra row above the frame for the title.
	frame := screen.Centered(w, h+1)
	return core.NewRect(frame.X, frame.Y+1, w, h)
}

// Render draws the board, then the falling piece over it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	frame := g.Layout(dst.Bounds())
	if frame.Right() > dst.Width() || frame.Bottom() > dst.Height() {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", frame.W, frame.Bottom()))
		return
	}

	title := fmt.Sprintf("Tetris  game %d", g.generation)
	dst.DrawText(frame.X+(frame.W-len(title))/2, frame.Y-1, title)
	dst.DrawBox(frame, core.ColorGray)

	originX, originY := frame.X+1, frame.Y+1
	board := g.state.Board
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			c, _ := board.CellAt(x, y)
			drawTile(dst, originX+x*tileWidth, originY+y, c)
		}
	}

	for _, p := range g.state.Cells() {
		if !board.InBounds(p.X, p.Y) {
			continue
		}
		drawTile(dst, originX+p.X*tileWidth, originY+p.Y, g.state.Color)
	}
}

// drawTile draws one board cell at screen position (sx, sy).
func drawTile(dst *core.Screen, sx, sy int, c Cell) {
	if c == CellEmpty {
		dst.SetColored(sx, sy, ' ', core.ColorGray)
		dst.SetColored(sx+1, sy, TileEmpty, core.ColorGray)
		return
	}
	color := ScreenColor(c)
	for i := 0; i < tileWidth; i++ {
		dst.SetColored(sx+i, sy, TileFilled, color)
	}
}
