package sfx

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

func sample(buf []byte, frame int) int16 {
	o := frame * bytesPerFrame
	return int16(uint16(buf[o]) | uint16(buf[o+1])<<8)
}

func TestRenderLength(t *testing.T) {
	buf := Render(Tone{Freq: 440, Duration: 100 * time.Millisecond}, 0.5)
	if want := 4410 * bytesPerFrame; len(buf) != want {
		t.Errorf("len(Render()) = %d, expected %d", len(buf), want)
	}
}

func TestRenderStereoAndVolume(t *testing.T) {
	buf := Render(Tone{Wave: WaveSquare, Freq: 440, Duration: 50 * time.Millisecond}, 0.5)

	peak := int16(0)
	for i := 0; i < len(buf)/bytesPerFrame; i++ {
		l := sample(buf, i)
		r := int16(uint16(buf[i*4+2]) | uint16(buf[i*4+3])<<8)
		if l != r {
			t.Fatalf("frame %d channels differ: %d vs %d", i, l, r)
		}
		if l > peak {
			peak = l
		}
	}
	if peak < 16000 || peak > 16384 {
		t.Errorf("peak = %d, expected about half scale", peak)
	}
}

func TestRenderFadesOut(t *testing.T) {
	buf := Render(Tone{Wave: WaveSquare, Freq: 440, Duration: 50 * time.Millisecond}, 1)
	last := len(buf)/bytesPerFrame - 1
	if v := sample(buf, last); v != 0 {
		t.Errorf("last sample = %d, expected 0", v)
	}
}

func TestRenderSilent(t *testing.T) {
	buf := Render(Tone{Freq: 440, Duration: 10 * time.Millisecond}, 0)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d at zero volume", i, b)
		}
	}
}

func TestOscillate(t *testing.T) {
	tests := []struct {
		wave  Wave
		phase float64
		want  float64
	}{
		{WaveSquare, 0.25, 1},
		{WaveSquare, 0.75, -1},
		{WaveTriangle, 0, -1},
		{WaveTriangle, 0.5, 1},
		{WaveTriangle, 0.25, 0},
	}
	for _, tt := range tests {
		if got := oscillate(tt.wave, tt.phase); got != tt.want {
			t.Errorf("oscillate(%v, %v) = %v, expected %v", tt.wave, tt.phase, got, tt.want)
		}
	}
}

func TestNewBankCoversCues(t *testing.T) {
	bank := NewBank(0.4)
	for _, c := range []pong.Cue{pong.CuePaddleHit, pong.CueWallHit, pong.CueMiss} {
		if len(bank[c]) == 0 {
			t.Errorf("bank missing clip for %v", c)
		}
		if _, ok := ToneFor(c); !ok {
			t.Errorf("ToneFor(%v) missing", c)
		}
	}
}
