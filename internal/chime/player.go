package chime

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog/log"
)

// Player owns the speaker. A Player whose device failed to open stays usable:
// Play becomes a no-op and Level reports silence.
type Player struct {
	sr     beep.SampleRate
	volume float64

	mu      sync.Mutex
	enabled bool
	tap     *levelTap
}

func NewPlayer(sampleRate int, volume float64) *Player {
	return &Player{
		sr:     beep.SampleRate(sampleRate),
		volume: volume,
	}
}

// Init opens the audio device. The error is informational; callers may keep
// the Player and run without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		return err
	}
	p.enabled = true
	return nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play starts the chime, cutting off any chime still ringing.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	tap := newLevelTap(Notes(p.sr), 0.85)
	vol := &effects.Volume{Streamer: tap, Base: 2, Volume: p.volume}
	p.tap = tap

	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		log.Debug().Msg("chime finished")
	})))
}

// Stop silences any chime in flight.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.tap = nil
}

// Level is the current chime loudness in [0, 1].
func (p *Player) Level() float64 {
	p.mu.Lock()
	tap := p.tap
	p.mu.Unlock()

	if tap == nil {
		return 0
	}
	return tap.level()
}
