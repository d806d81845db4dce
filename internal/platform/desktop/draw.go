package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Colors
var (
	colBackground = color.Black
	colForeground = color.White
	colNet        = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colHighlight  = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// Text sizes in pixels
const (
	headlineSize = 50.0
	messageSize  = 25.0
	scoreSize    = 30.0
	buttonSize   = 50.0
	hoverSize    = 55.0
)

// Fixed board positions of text.
const (
	headlineY = 100.0
	messageY  = 300.0
	scoreY    = 50.0
	scoreX    = 40.0
)

var face = text.NewGoXFace(basicfont.Face7x13)

// faceHeight is the pixel height of the unscaled face.
const faceHeight = 13.0

func drawFrame(screen *ebiten.Image, f pong.Frame) {
	screen.Fill(colBackground)

	if f.State == pong.StatePlaying {
		drawCourt(screen, f)
		return
	}
	drawMenu(screen, f)
}

func drawCourt(screen *ebiten.Image, f pong.Frame) {
	for y := float32(0); y < pong.BoardHeight; y += 30 {
		vector.FillRect(screen, pong.BoardWidth/2-1, y, 2, 15, colNet, false)
	}

	for _, p := range []pong.PaddleView{f.Left, f.Right} {
		vector.FillRect(screen,
			float32(p.X-p.Width/2), float32(p.Y-p.Height/2),
			float32(p.Width), float32(p.Height),
			colForeground, false)
	}

	vector.FillCircle(screen, float32(f.Puck.X), float32(f.Puck.Y), float32(f.Puck.Diameter/2), colForeground, true)

	drawText(screen, fmt.Sprintf("%d", f.Left.Score), scoreX, scoreY, scoreSize, colForeground)
	drawText(screen, fmt.Sprintf("%d", f.Right.Score), pong.BoardWidth-scoreX, scoreY, scoreSize, colForeground)
}

func drawMenu(screen *ebiten.Image, f pong.Frame) {
	drawText(screen, f.Headline(), pong.BoardWidth/2, headlineY, headlineSize, colForeground)
	drawText(screen, f.Message(), pong.BoardWidth/2, messageY, messageSize, colForeground)

	for _, b := range pong.Buttons(f.State) {
		size, clr := labelStyle(b.Button == f.Hover)
		c := b.Box.Center()
		drawText(screen, b.Label, c.X, c.Y, size, clr)
	}
}

// labelStyle returns the size and color of a menu label.
func labelStyle(hovered bool) (float64, color.Color) {
	if hovered {
		return hoverSize, colHighlight
	}
	return buttonSize, colForeground
}

// drawText draws str centered on (cx, cy) at the given pixel height.
func drawText(screen *ebiten.Image, str string, cx, cy, size float64, clr color.Color) {
	if str == "" {
		return
	}
	scale := size / faceHeight

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
