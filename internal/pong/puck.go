package pong

import (
	"math"
	"math/rand"
)

// Puck settings
const (
	PuckDiameter = 20.0
	PuckSpeed    = 5.0  // Velocity magnitude in units per tick
	WallMargin   = 10.0 // Distance from top/bottom wall that counts as a hit
)

// paddleReach is how far in front of a paddle center the puck registers a hit,
// in multiples of the paddle width.
const paddleReach = 1.5

// Puck is the ball in play. It travels at a constant speed and only changes
// direction when it bounces.
type Puck struct {
	x, y        float64 // Offset from the board center
	vx, vy      float64
	movingRight bool
	rng         *rand.Rand
}

// NewPuck creates a centered puck launched at a random angle drawn from rng.
func NewPuck(rng *rand.Rand) *Puck {
	p := &Puck{rng: rng}
	p.Reset()
	return p
}

// Reset recenters the puck and launches it at a new random angle.
// Angles within 45 degrees of straight up or down are redrawn.
func (p *Puck) Reset() {
	p.x, p.y = 0, 0

	angle := p.launchAngle()
	p.movingRight = angle <= math.Pi/2 || angle >= 3*math.Pi/2
	p.vx = PuckSpeed * math.Cos(angle)
	p.vy = PuckSpeed * math.Sin(angle)
}

// launchAngle draws a launch angle in radians from [0, 2pi).
func (p *Puck) launchAngle() float64 {
	for {
		angle := p.rng.Float64() * 2 * math.Pi
		if !isSteep(angle) {
			return angle
		}
	}
}

// isSteep reports whether a launch angle in radians lies in one of the
// excluded near-vertical bands [45, 135] or [225, 315] degrees.
func isSteep(angle float64) bool {
	deg := angle * 180 / math.Pi
	return (deg >= 45 && deg <= 135) || (deg >= 225 && deg <= 315)
}

// Move advances the puck by one tick of velocity.
func (p *Puck) Move() {
	p.x += p.vx
	p.y += p.vy
}

// HasHitSide reports whether the puck center left the board through the
// left or right edge.
func (p *Puck) HasHitSide() bool {
	x := p.X()
	return x > BoardWidth || x < 0
}

// HasHitTopOrBottom reports whether the puck is within WallMargin of the
// top or bottom wall.
func (p *Puck) HasHitTopOrBottom() bool {
	y := p.Y()
	return y > BoardHeight-WallMargin || y < WallMargin
}

// HasHitPaddle reports whether the puck is level with the paddle and has
// reached its face. Only the paddle the puck travels toward should be tested.
func (p *Puck) HasHitPaddle(paddle *Paddle) bool {
	y := p.Y()
	if y < paddle.Top() || y > paddle.Bottom() {
		return false
	}

	reach := paddleReach * paddle.Width()
	if p.movingRight {
		return p.X() >= paddle.X()-reach
	}
	return p.X() <= paddle.X()+reach
}

// BounceOffPaddle sends the puck back across the board at the given angle in
// degrees. Angles are expressed for a puck leaving the right paddle; a puck
// leaving the left paddle gets the horizontally mirrored angle.
func (p *Puck) BounceOffPaddle(angle float64) {
	if !p.movingRight {
		angle = mirrorAngle(angle)
	}

	rad := angle * math.Pi / 180
	p.vx = -PuckSpeed * math.Cos(rad)
	p.vy = PuckSpeed * math.Sin(rad)
	p.movingRight = !p.movingRight
}

// mirrorAngle reflects an angle in degrees across the vertical axis.
func mirrorAngle(angle float64) float64 {
	return 180 - angle
}

// BounceOffTopOrBottom reverses the vertical direction of travel.
func (p *Puck) BounceOffTopOrBottom() {
	p.vy = -p.vy
}

// X returns the absolute x of the puck center.
func (p *Puck) X() float64 {
	return boardCenter().X + p.x
}

// Y returns the absolute y of the puck center.
func (p *Puck) Y() float64 {
	return boardCenter().Y + p.y
}

// Velocity returns the per-tick x and y speed.
func (p *Puck) Velocity() (vx, vy float64) {
	return p.vx, p.vy
}

// Speed returns the velocity magnitude.
func (p *Puck) Speed() float64 {
	return math.Hypot(p.vx, p.vy)
}

// MovingRight reports whether the puck travels toward the right paddle.
func (p *Puck) MovingRight() bool {
	return p.movingRight
}

// Diameter returns the puck diameter.
func (p *Puck) Diameter() float64 {
	return PuckDiameter
}
