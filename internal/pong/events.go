package pong

import "fmt"

// Cue is a sound the presenter should play.
type Cue int

const (
	CuePaddleHit Cue = iota + 1
	CueWallHit
	CueMiss
)

// Valid reports whether c is one of the known cues.
func (c Cue) Valid() bool {
	return c >= CuePaddleHit && c <= CueMiss
}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "PaddleHit"
	case CueWallHit:
		return "WallHit"
	case CueMiss:
		return "Miss"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// EventKind classifies an Event.
type EventKind int

const (
	EventSound        EventKind = iota // Cue is set
	EventScored                        // Side is the scoring player
	EventStateChanged                  // State is the new state
	EventExit                          // Player pressed exit
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventSound:
		return "Sound"
	case EventScored:
		return "Scored"
	case EventStateChanged:
		return "StateChanged"
	case EventExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Event is a side effect produced during a tick for the presenter to act on.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Cue   Cue
	Side  Side
	State State
}

// String returns a compact description, used in logs and simulation output.
func (e Event) String() string {
	switch e.Kind {
	case EventSound:
		return fmt.Sprintf("#%d sound %s", e.Tick, e.Cue)
	case EventScored:
		return fmt.Sprintf("#%d scored %s", e.Tick, e.Side)
	case EventStateChanged:
		return fmt.Sprintf("#%d state %s", e.Tick, e.State)
	default:
		return fmt.Sprintf("#%d %s", e.Tick, e.Kind)
	}
}
