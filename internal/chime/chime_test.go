package chime

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestTone(t *testing.T) {
	tone := NewTone(testRate, 440, 0.5, 5, 100*time.Millisecond)
	samples := drain(t, tone)

	if want := testRate.N(100 * time.Millisecond); len(samples) != want {
		t.Errorf("expected %d samples, got %d", want, len(samples))
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 0.5 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, s)
		}
	}
	if samples[0][0] != 0 {
		t.Errorf("expected silent onset, got %f", samples[0][0])
	}
	if err := tone.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	n, ok := tone.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("expected exhausted tone, got n=%d ok=%v", n, ok)
	}
}

func TestNotes(t *testing.T) {
	samples := drain(t, Notes(testRate))

	if want := testRate.N(900 * time.Millisecond); len(samples) != want {
		t.Errorf("expected %d samples, got %d", want, len(samples))
	}
	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 0.65 {
		t.Errorf("expected audible peak within headroom, got %f", peak)
	}
}

func TestLevelTap(t *testing.T) {
	tap := newLevelTap(NewTone(testRate, 440, 0.8, 1, 50*time.Millisecond), 0.5)

	if tap.level() != 0 {
		t.Errorf("expected silent tap before streaming, got %f", tap.level())
	}

	buf := make([][2]float64, 1024)
	tap.Stream(buf)
	first := tap.level()
	if first <= 0 || first > 1 {
		t.Errorf("expected level in (0, 1], got %f", first)
	}

	drain(t, tap)
	if tap.level() != 0 {
		t.Errorf("expected level reset once the source ends, got %f", tap.level())
	}
}

func TestPlayer_Disabled(t *testing.T) {
	p := NewPlayer(44100, -1)

	if p.Enabled() {
		t.Fatal("expected player disabled before Init")
	}
	p.Play()
	p.Stop()
	if p.Level() != 0 {
		t.Errorf("expected silence from a disabled player, got %f", p.Level())
	}
}
