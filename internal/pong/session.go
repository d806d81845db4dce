package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// State is the screen the game is on.
type State int

const (
	StateStartMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStartMenu:
		return "StartMenu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session holds everything that changes while a match is played.
type Session struct {
	State State
	Left  *Paddle
	Right *Paddle
	Puck  *Puck

	tick   uint64
	events []Event
}

// NewSession creates a session on the start menu. The seed drives every
// puck launch angle, so equal seeds and inputs replay identically.
func NewSession(seed int64) *Session {
	return &Session{
		State: StateStartMenu,
		Left:  NewPaddle(SideLeft),
		Right: NewPaddle(SideRight),
		Puck:  NewPuck(rand.New(rand.NewSource(seed))), //nolint:gosec // gameplay randomness
	}
}

// Restart clears both scores, recenters the paddles and relaunches the puck.
// The state is left unchanged.
func (s *Session) Restart() {
	s.Left.Reset()
	s.Right.Reset()
	s.Puck.Reset()
}

// Ticks returns the number of ticks played so far.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Paddle returns the paddle on the given side.
func (s *Session) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

// Winner returns the side that reached WinScore, if any.
func (s *Session) Winner() (Side, bool) {
	switch {
	case s.Left.Score() >= WinScore:
		return SideLeft, true
	case s.Right.Score() >= WinScore:
		return SideRight, true
	default:
		return SideLeft, false
	}
}

// Tick advances the session by one frame and returns what to draw.
//
// On the menus a click on a visible button (or the confirm key for the
// primary button) is acted on. While playing, paddles move for held keys,
// then the puck moves and at most one of miss, paddle hit or wall hit is
// resolved. Reaching WinScore ends the match on the same tick.
func Tick(s *Session, in core.InputFrame) Frame {
	s.tick++
	s.events = nil

	exit := false
	switch s.State {
	case StateStartMenu, StateGameOver:
		exit = s.handleMenu(in)
	case StatePlaying:
		s.play(in)
	}

	return s.frame(in, exit)
}

// handleMenu dispatches menu input and reports whether exit was pressed.
func (s *Session) handleMenu(in core.InputFrame) bool {
	pressed := ButtonNone
	if p, ok := in.Pointer(); ok && in.Has(core.ActionClick) {
		pressed = ButtonAt(s.State, p)
	}
	if pressed == ButtonNone && in.Has(core.ActionConfirm) {
		pressed = primaryButton(s.State)
	}

	switch pressed {
	case ButtonStart:
		s.setState(StatePlaying)
	case ButtonRestart:
		s.Restart()
		s.setState(StatePlaying)
	case ButtonExit:
		s.emit(Event{Kind: EventExit})
		return true
	}
	return false
}

func (s *Session) play(in core.InputFrame) {
	movePaddle(s.Left, in, core.ActionLeftUp, core.ActionLeftDown)
	movePaddle(s.Right, in, core.ActionRightUp, core.ActionRightDown)

	s.Puck.Move()

	target := s.Left
	if s.Puck.MovingRight() {
		target = s.Right
	}

	switch {
	case s.Puck.HasHitSide():
		s.emitCue(CueMiss)
		// The puck crossed the edge it was heading to, so the player
		// defending the other edge scores.
		scorer := s.Right
		if s.Puck.MovingRight() {
			scorer = s.Left
		}
		scorer.AwardPoint()
		s.emit(Event{Kind: EventScored, Side: scorer.Side()})
		s.Puck.Reset()
	case s.Puck.HasHitPaddle(target):
		s.emitCue(CuePaddleHit)
		s.Puck.BounceOffPaddle(target.ZoneForImpact(s.Puck.Y()).Angle())
	case s.Puck.HasHitTopOrBottom():
		s.emitCue(CueWallHit)
		s.Puck.BounceOffTopOrBottom()
	}

	if _, ok := s.Winner(); ok {
		s.setState(StateGameOver)
	}
}

func movePaddle(p *Paddle, in core.InputFrame, up, down core.Action) {
	if in.Has(up) {
		p.Move(DirUp)
	}
	if in.Has(down) {
		p.Move(DirDown)
	}
}

func (s *Session) setState(next State) {
	if s.State == next {
		return
	}
	s.State = next
	s.emit(Event{Kind: EventStateChanged, State: next})
}

func (s *Session) emit(e Event) {
	e.Tick = s.tick
	s.events = append(s.events, e)
}

// emitCue queues a sound event. Unknown cues are a programming error.
func (s *Session) emitCue(c Cue) {
	if !c.Valid() {
		panic(fmt.Sprintf("pong: unknown sound cue %d", int(c)))
	}
	s.emit(Event{Kind: EventSound, Cue: c})
}
