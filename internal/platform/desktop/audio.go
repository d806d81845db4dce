package desktop

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-pong/internal/platform/sfx"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// speaker plays cue clips on an Ebitengine audio context.
// Players are fire-and-forget; Play never blocks the tick.
type speaker struct {
	ctx    *audio.Context
	bank   sfx.Bank
	logger *log.Logger
}

func newSpeaker(volume float64, logger *log.Logger) *speaker {
	return &speaker{
		ctx:    audio.NewContext(sfx.SampleRate),
		bank:   sfx.NewBank(volume),
		logger: logger,
	}
}

func (s *speaker) Play(c pong.Cue) {
	if s == nil {
		return
	}
	clip, ok := s.bank[c]
	if !ok {
		s.logger.Warn("no clip for cue", "cue", c)
		return
	}
	s.ctx.NewPlayerFromBytes(clip).Play()
}
