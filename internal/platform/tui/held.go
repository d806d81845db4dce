package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// opposite pairs the two directions of each paddle.
var opposite = map[core.Action]core.Action{
	core.ActionLeftUp:    core.ActionLeftDown,
	core.ActionLeftDown:  core.ActionLeftUp,
	core.ActionRightUp:   core.ActionRightDown,
	core.ActionRightDown: core.ActionRightUp,
}

type heldKey struct {
	last  time.Time
	fresh bool // Pressed since the last Apply
}

// HeldKeys turns terminal key presses into held paddle actions.
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held until window has passed since its last press. Every press is seen
// by at least one tick.
type HeldKeys struct {
	window time.Duration
	keys   map[core.Action]*heldKey
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		keys:   make(map[core.Action]*heldKey),
	}
}

// Press records a press of a paddle action at now. Pressing one direction
// releases the opposite direction of the same paddle.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if _, ok := opposite[a]; !ok {
		return
	}
	delete(h.keys, opposite[a])
	h.keys[a] = &heldKey{last: now, fresh: true}
}

// Apply sets every action still held at now on the frame and forgets
// expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, k := range h.keys {
		if !k.fresh && now.Sub(k.last) > h.window {
			delete(h.keys, a)
			continue
		}
		k.fresh = false
		frame.Set(a)
	}
}

// Reset releases all keys.
func (h *HeldKeys) Reset() {
	clear(h.keys)
}
