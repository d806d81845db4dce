package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// inputSource is the subset of Ebitengine input the window reads each tick.
type inputSource interface {
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	ClickJustPressed() bool
}

// held maps keys to paddle actions that apply while the key is down.
var held = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyW, core.ActionLeftUp},
	{ebiten.KeyS, core.ActionLeftDown},
	{ebiten.KeyArrowUp, core.ActionRightUp},
	{ebiten.KeyArrowDown, core.ActionRightDown},
}

// pressed maps keys to one-shot actions.
var pressed = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionConfirm},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// readInput builds the input frame for one tick. The logical screen matches
// the board, so cursor coordinates are already in board units.
func readInput(src inputSource) core.InputFrame {
	in := core.NewInputFrame()
	for _, h := range held {
		if src.KeyPressed(h.key) {
			in.Set(h.action)
		}
	}
	for _, p := range pressed {
		if src.KeyJustPressed(p.key) {
			in.Set(p.action)
		}
	}

	x, y := src.Cursor()
	in.SetPointer(core.Point{X: float64(x), Y: float64(y)})
	if src.ClickJustPressed() {
		in.Set(core.ActionClick)
	}
	return in
}

// ebitenInput reads the live Ebitengine input state.
type ebitenInput struct{}

func (ebitenInput) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (ebitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenInput) Cursor() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) ClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
