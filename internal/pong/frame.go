package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// PaddleView is a read-only copy of a paddle for rendering.
type PaddleView struct {
	Side          Side
	X, Y          float64 // Absolute center
	Width, Height float64
	Score         int
}

// PuckView is a read-only copy of the puck for rendering.
type PuckView struct {
	X, Y        float64 // Absolute center
	Diameter    float64
	MovingRight bool
}

// Frame is everything a presenter needs to draw one tick and play its sounds.
// It shares no memory with the session that produced it.
type Frame struct {
	Tick        uint64
	State       State
	Left, Right PaddleView
	Puck        PuckView
	Winner      Side
	HasWinner   bool
	Hover       Button // Button under the pointer, ButtonNone if none
	Events      []Event
	Exit        bool // Exit was pressed; the presenter should terminate
}

// Scores returns the left and right scores.
func (f Frame) Scores() (left, right int) {
	return f.Left.Score, f.Right.Score
}

// Cues returns the sounds to play for this frame, in order.
func (f Frame) Cues() []Cue {
	var cues []Cue
	for _, e := range f.Events {
		if e.Kind == EventSound {
			cues = append(cues, e.Cue)
		}
	}
	return cues
}

// Headline returns the large menu text for the frame, empty while playing.
func (f Frame) Headline() string {
	switch f.State {
	case StateStartMenu:
		return "Pong"
	case StateGameOver:
		return "Game Over!!!"
	default:
		return ""
	}
}

// Message returns the line shown under the headline.
func (f Frame) Message() string {
	switch f.State {
	case StateStartMenu:
		return fmt.Sprintf("First to %d points wins!", WinScore)
	case StateGameOver:
		if !f.HasWinner {
			return ""
		}
		if f.Winner == SideLeft {
			return "Player 1 (Left) has won"
		}
		return "Player 2 (Right) has won"
	default:
		return ""
	}
}

// Frame builds a frame of the current session without advancing it.
// Presenters use it to draw before the first tick.
func (s *Session) Frame() Frame {
	return s.frame(core.InputFrame{}, false)
}

func (s *Session) frame(in core.InputFrame, exit bool) Frame {
	pointer, ok := in.Pointer()
	winner, hasWinner := s.Winner()

	var events []Event
	if len(s.events) > 0 {
		events = make([]Event, len(s.events))
		copy(events, s.events)
	}

	return Frame{
		Tick:      s.tick,
		State:     s.State,
		Left:      paddleView(s.Left),
		Right:     paddleView(s.Right),
		Puck:      PuckView{X: s.Puck.X(), Y: s.Puck.Y(), Diameter: s.Puck.Diameter(), MovingRight: s.Puck.MovingRight()},
		Winner:    winner,
		HasWinner: hasWinner,
		Hover:     HoveredButton(s.State, pointer, ok),
		Events:    events,
		Exit:      exit,
	}
}

func paddleView(p *Paddle) PaddleView {
	return PaddleView{
		Side:   p.Side(),
		X:      p.X(),
		Y:      p.Y(),
		Width:  p.Width(),
		Height: p.Height(),
		Score:  p.Score(),
	}
}
