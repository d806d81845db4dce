package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	PuckChar   = '●'
	NetChar    = '│'
)

// Fixed board positions of the menu text and the score counters.
const (
	headlineY = 100.0
	messageY  = 300.0
	scoreY    = 50.0
	scoreX    = 40.0
)

// Render draws a frame onto a character screen. The board is scaled to fill
// the whole screen.
func Render(dst *core.Screen, f Frame) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	switch f.State {
	case StatePlaying:
		drawCourt(dst, f)
	default:
		drawMenu(dst, f)
	}
}

func drawCourt(dst *core.Screen, f Frame) {
	w, h := dst.Width(), dst.Height()

	dst.DrawVLine(w/2, 0, h, 2, NetChar, core.ColorNet)

	drawPaddle(dst, f.Left)
	drawPaddle(dst, f.Right)

	dst.SetColor(cellX(f.Puck.X, w), cellY(f.Puck.Y, h), PuckChar, core.ColorPuck)

	left := fmt.Sprintf("%d", f.Left.Score)
	right := fmt.Sprintf("%d", f.Right.Score)
	row := cellY(scoreY, h)
	dst.DrawText(cellX(scoreX, w), row, left, core.ColorScore)
	dst.DrawText(cellX(BoardWidth-scoreX, w)-len(right)+1, row, right, core.ColorScore)
}

func drawPaddle(dst *core.Screen, p PaddleView) {
	w, h := dst.Width(), dst.Height()

	top := cellY(p.Y-p.Height/2, h)
	bottom := core.Clamp(int(math.Ceil((p.Y+p.Height/2)/BoardHeight*float64(h))), top+1, h)

	// Paddles hug the side walls; one column is enough at terminal scale.
	x := 0
	if p.Side == SideRight {
		x = w - 1
	}
	dst.DrawRect(core.NewRect(x, top, 1, bottom-top), PaddleChar, core.ColorPaddle)
}

func drawMenu(dst *core.Screen, f Frame) {
	w, h := dst.Width(), dst.Height()

	dst.DrawTextCentered(cellY(headlineY, h), f.Headline(), core.ColorTitle)
	dst.DrawTextCentered(cellY(messageY, h), f.Message(), core.ColorText)

	if f.State == StateGameOver {
		score := fmt.Sprintf("%d - %d", f.Left.Score, f.Right.Score)
		dst.DrawTextCentered(cellY(messageY, h)+1, score, core.ColorScore)
	}

	for _, b := range Buttons(f.State) {
		label, color := b.Label, core.ColorText
		if f.Hover == b.Button {
			label, color = "> "+b.Label+" <", core.ColorHighlight
		}
		center := b.Box.Center()
		x := cellX(center.X, w) - len([]rune(label))/2
		dst.DrawText(x, cellY(center.Y, h), label, color)
	}
}

// cellX maps a board x to a screen column.
func cellX(x float64, w int) int {
	return core.Clamp(int(x/BoardWidth*float64(w)), 0, w-1)
}

// cellY maps a board y to a screen row.
func cellY(y float64, h int) int {
	return core.Clamp(int(y/BoardHeight*float64(h)), 0, h-1)
}

// CellToBoard maps a screen cell to the board position at its center.
// Presenters use it to turn mouse coordinates into pointer input.
func CellToBoard(col, row, w, h int) core.Point {
	if w <= 0 || h <= 0 {
		return core.Point{}
	}
	return core.Point{
		X: (float64(col) + 0.5) / float64(w) * BoardWidth,
		Y: (float64(row) + 0.5) / float64(h) * BoardHeight,
	}
}
