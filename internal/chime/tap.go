package chime

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and keeps a decaying peak of what passed
// through it so the renderer can react to the chime while it rings.
type levelTap struct {
	Source  beep.Streamer
	release float64

	mu   sync.RWMutex
	peak float64
}

func newLevelTap(src beep.Streamer, release float64) *levelTap {
	return &levelTap{
		Source:  src,
		release: release,
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)

	var block float64
	for i := 0; i < n; i++ {
		mono := (samples[i][0] + samples[i][1]) * 0.5
		block = math.Max(block, math.Abs(mono))
	}

	t.mu.Lock()
	t.peak = math.Max(block, t.peak*t.release)
	if !ok {
		t.peak = 0
	}
	t.mu.Unlock()

	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// level returns the current peak in [0, 1].
func (t *levelTap) level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return math.Min(1, t.peak)
}
