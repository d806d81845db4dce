package tui

import (
	"io"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// bellQueue is the number of cues buffered before new ones are dropped.
const bellQueue = 8

// Bell plays sound cues as terminal bells on its own goroutine.
// A miss rings twice; hits ring once.
type Bell struct {
	w    io.Writer
	cues chan pong.Cue
	done chan struct{}
	once sync.Once
}

// NewBell starts a bell writing to w. A nil writer gives a silent bell.
func NewBell(w io.Writer) *Bell {
	b := &Bell{
		w:    w,
		cues: make(chan pong.Cue, bellQueue),
		done: make(chan struct{}),
	}
	go b.run()
	return b
}

// Play queues a cue without blocking. Cues are dropped while the queue is full.
func (b *Bell) Play(c pong.Cue) {
	if b == nil {
		return
	}
	select {
	case <-b.done:
		return
	default:
	}

	select {
	case b.cues <- c:
	default:
	}
}

// Close stops the bell goroutine. It is safe to call more than once.
func (b *Bell) Close() {
	if b == nil {
		return
	}
	b.once.Do(func() {
		close(b.done)
	})
}

func (b *Bell) run() {
	for {
		select {
		case <-b.done:
			return
		case c := <-b.cues:
			if b.w == nil {
				continue
			}
			//nolint:errcheck // Best-effort sound, the game continues regardless
			io.WriteString(b.w, bellFor(c))
		}
	}
}

// bellFor returns the bytes that sound a cue.
func bellFor(c pong.Cue) string {
	if c == pong.CueMiss {
		return strings.Repeat("\a", 2)
	}
	return "\a"
}
