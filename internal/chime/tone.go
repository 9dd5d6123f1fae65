// Package chime plays the short completion chime.
package chime

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a sine partial with a fast attack and exponential decay.
type Tone struct {
	sr    beep.SampleRate
	freq  float64
	gain  float64
	decay float64
	total int
	pos   int
}

func NewTone(sr beep.SampleRate, freq, gain, decay float64, d time.Duration) *Tone {
	return &Tone{
		sr:    sr,
		freq:  freq,
		gain:  gain,
		decay: decay,
		total: sr.N(d),
	}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		sec := float64(t.pos) / float64(t.sr)

		// 5ms linear attack avoids a click at note onset
		attack := math.Min(1, sec/0.005)
		envelope := attack * math.Exp(-sec*t.decay)

		v := t.gain * envelope * math.Sin(2*math.Pi*t.freq*sec)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

// Notes returns the two-note chime: E5 then A5, slightly overlapping.
func Notes(sr beep.SampleRate) beep.Streamer {
	first := NewTone(sr, 659.25, 0.35, 6, 450*time.Millisecond)
	second := NewTone(sr, 880.00, 0.30, 4, 700*time.Millisecond)
	gap := beep.Silence(sr.N(90 * time.Millisecond))

	mixer := &beep.Mixer{}
	mixer.Add(first)
	mixer.Add(beep.Seq(gap, second))
	return beep.Take(sr.N(900*time.Millisecond), mixer)
}
