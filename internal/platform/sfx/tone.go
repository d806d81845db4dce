// Package sfx synthesizes the short chiptune blips played for sound cues.
// Samples are 16-bit signed little-endian stereo PCM, the format Ebitengine's
// audio context consumes.
package sfx

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// SampleRate is the sample rate of every generated clip.
const SampleRate = 44100

// bytesPerFrame is one stereo frame of two 16-bit samples.
const bytesPerFrame = 4

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
)

// Tone describes a single blip. The pitch slides linearly from Freq to
// EndFreq; a zero EndFreq holds Freq.
type Tone struct {
	Wave     Wave
	Freq     float64
	EndFreq  float64
	Duration time.Duration
}

// cueTones maps each cue to its blip.
var cueTones = map[pong.Cue]Tone{
	pong.CuePaddleHit: {Wave: WaveSquare, Freq: 440, Duration: 60 * time.Millisecond},
	pong.CueWallHit:   {Wave: WaveTriangle, Freq: 330, Duration: 50 * time.Millisecond},
	pong.CueMiss:      {Wave: WaveSquare, Freq: 220, EndFreq: 110, Duration: 300 * time.Millisecond},
}

// ToneFor returns the blip of a cue.
func ToneFor(c pong.Cue) (Tone, bool) {
	t, ok := cueTones[c]
	return t, ok
}

// Render synthesizes a tone at the given volume (0.0 - 1.0).
// A short linear fade-out avoids a click at the end.
func Render(t Tone, volume float64) []byte {
	frames := int(t.Duration.Seconds() * SampleRate)
	buf := make([]byte, frames*bytesPerFrame)
	if frames == 0 {
		return buf
	}

	end := t.EndFreq
	if end == 0 {
		end = t.Freq
	}
	volume = math.Max(0, math.Min(1, volume))
	fade := max(frames/10, 1)

	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := t.Freq + (end-t.Freq)*progress
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		amp := volume
		if left := frames - i; left <= fade {
			amp *= float64(left-1) / float64(fade)
		}

		v := int16(oscillate(t.Wave, phase) * amp * math.MaxInt16)
		o := i * bytesPerFrame
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v)
		buf[o+3] = byte(v >> 8)
	}
	return buf
}

// oscillate returns the wave value in [-1, 1] at phase in [0, 1).
func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		if phase < 0.5 {
			return 1
		}
		return -1
	}
}

// Bank holds the rendered clip of every cue.
type Bank map[pong.Cue][]byte

// NewBank renders all cue tones at the given volume.
func NewBank(volume float64) Bank {
	b := make(Bank, len(cueTones))
	for c, t := range cueTones {
		b[c] = Render(t, volume)
	}
	return b
}
