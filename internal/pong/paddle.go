package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle geometry and movement settings
const (
	PaddleHeight = 100.0
	PaddleWidth  = 10.0
	PaddleSpeed  = 5.0  // Units per tick
	PaddleMargin = 10.0 // Closest a paddle edge may get to the top or bottom wall
	PaddleInset  = 10.0 // Distance from the side wall to the paddle center
)

// Side identifies a player's half of the board.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Direction is a vertical paddle movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// Zone is the part of a paddle face that the puck struck.
// Each zone returns the puck at a fixed angle, see Angle.
type Zone int

const (
	ZoneTop Zone = iota
	ZoneTopMiddle
	ZoneTopBottom
	ZoneMiddle
	ZoneBottomTop
	ZoneBottomMiddle
	ZoneBottom
)

// zoneAngles holds the return angle in degrees for each zone.
// Negative angles send the puck upward.
var zoneAngles = [...]float64{
	ZoneTop:          -45,
	ZoneTopMiddle:    -30,
	ZoneTopBottom:    -15,
	ZoneMiddle:       0,
	ZoneBottomTop:    15,
	ZoneBottomMiddle: 30,
	ZoneBottom:       45,
}

// zoneBands splits the paddle face into eighths from top to bottom.
// The two central eighths share ZoneMiddle.
var zoneBands = [...]Zone{
	ZoneTop,
	ZoneTopMiddle,
	ZoneTopBottom,
	ZoneMiddle,
	ZoneMiddle,
	ZoneBottomTop,
	ZoneBottomMiddle,
	ZoneBottom,
}

// zoneBandHeight is the height of one band on the paddle face.
const zoneBandHeight = PaddleHeight / float64(len(zoneBands))

// Angle returns the outgoing bounce angle for the zone in degrees.
func (z Zone) Angle() float64 {
	if z < ZoneTop || z > ZoneBottom {
		return 0
	}
	return zoneAngles[z]
}

// String returns a human-readable name for the zone.
func (z Zone) String() string {
	switch z {
	case ZoneTop:
		return "Top"
	case ZoneTopMiddle:
		return "TopMiddle"
	case ZoneTopBottom:
		return "TopBottom"
	case ZoneMiddle:
		return "Middle"
	case ZoneBottomTop:
		return "BottomTop"
	case ZoneBottomMiddle:
		return "BottomMiddle"
	case ZoneBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Paddle is a player's bat: a fixed-size vertical rectangle that slides
// along its side wall and keeps the player's score.
type Paddle struct {
	side  Side
	y     float64 // Offset of the paddle center from the board center
	score int
}

// NewPaddle creates a centered paddle with no points on the given side.
func NewPaddle(side Side) *Paddle {
	return &Paddle{side: side}
}

// Reset clears the score and recenters the paddle.
func (p *Paddle) Reset() {
	p.score = 0
	p.y = 0
}

// Move slides the paddle one step up or down.
// A step that would bring the paddle edge within PaddleMargin of the wall
// is ignored.
func (p *Paddle) Move(dir Direction) {
	next := p.y + PaddleSpeed
	if dir == DirUp {
		next = p.y - PaddleSpeed
	}

	centerY := boardCenter().Y + next
	switch dir {
	case DirUp:
		if centerY-PaddleHeight/2 < PaddleMargin {
			return
		}
	case DirDown:
		if centerY+PaddleHeight/2 > BoardHeight-PaddleMargin {
			return
		}
	}

	p.y = next
}

// AwardPoint gives the paddle's player one point.
func (p *Paddle) AwardPoint() {
	p.score++
}

// ZoneForImpact returns the zone of the paddle face at the puck's
// vertical position. Bands include their upper edge and exclude their lower
// one; anything past the last band counts as ZoneBottom, anything above the
// paddle as ZoneTop.
func (p *Paddle) ZoneForImpact(puckY float64) Zone {
	band := int(math.Floor((puckY - p.Top()) / zoneBandHeight))
	band = core.Clamp(band, 0, len(zoneBands)-1)
	return zoneBands[band]
}

// Side returns which side of the board the paddle guards.
func (p *Paddle) Side() Side {
	return p.side
}

// Score returns the paddle's points.
func (p *Paddle) Score() int {
	return p.score
}

// Offset returns the paddle center's vertical offset from the board center.
func (p *Paddle) Offset() float64 {
	return p.y
}

// Width returns the paddle width.
func (p *Paddle) Width() float64 {
	return PaddleWidth
}

// Height returns the paddle height.
func (p *Paddle) Height() float64 {
	return PaddleHeight
}

// X returns the absolute x of the paddle center.
func (p *Paddle) X() float64 {
	if p.side == SideLeft {
		return PaddleInset
	}
	return BoardWidth - PaddleInset
}

// Y returns the absolute y of the paddle center.
func (p *Paddle) Y() float64 {
	return boardCenter().Y + p.y
}

// Top returns the absolute y of the paddle's top edge.
func (p *Paddle) Top() float64 {
	return p.Y() - PaddleHeight/2
}

// Bottom returns the absolute y of the paddle's bottom edge.
func (p *Paddle) Bottom() float64 {
	return p.Y() + PaddleHeight/2
}

// Bounds returns the paddle rectangle in board units.
func (p *Paddle) Bounds() core.Box {
	return core.BoxFromCenter(p.X(), p.Y(), PaddleWidth, PaddleHeight)
}
