// Package pong implements a classic two-player Pong game.
// Player 1 controls the left paddle with W/S, player 2 the right paddle with
// the arrow keys. The first player to WinScore points wins.
//
// All geometry is expressed in board units on a fixed BoardWidth x BoardHeight
// playfield with y growing downward. Paddles and the puck store their
// position as an offset from the board center.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Board dimensions and match rules
const (
	BoardWidth  = 800.0
	BoardHeight = 600.0
	WinScore    = 21
)

// boardCenter returns the center of the playfield.
func boardCenter() core.Point {
	return core.Point{X: BoardWidth / 2, Y: BoardHeight / 2}
}
