// Package animation holds the heart animation state machine.
//
// A State moves Splash -> Building -> Pulsing. Every input, the timer tick
// included, is a Command fed to State.Apply.
package animation

import (
	"math"

	"github.com/iburimskiy/heart-curve/internal/config"
	"github.com/iburimskiy/heart-curve/internal/heart"
)

type Phase int

const (
	PhaseSplash Phase = iota
	PhaseBuilding
	PhasePulsing
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseBuilding:
		return "building"
	case PhasePulsing:
		return "pulsing"
	}
	return "unknown"
}

type Command int

const (
	CommandNone Command = iota
	CommandTick
	CommandStart
	CommandTogglePause
	CommandRestart
	CommandSpeedUp
	CommandSpeedDown
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandTick:
		return "tick"
	case CommandStart:
		return "start"
	case CommandTogglePause:
		return "toggle-pause"
	case CommandRestart:
		return "restart"
	case CommandSpeedUp:
		return "speed-up"
	case CommandSpeedDown:
		return "speed-down"
	case CommandQuit:
		return "quit"
	}
	return "unknown"
}

// Frame is the curve parameter set produced by one animation tick.
type Frame struct {
	Phase      Phase
	K          float64
	Amplitude  float64
	AlphaScale float64
}

// Result reports what a command changed so the caller can update the display.
type Result struct {
	// Frame is set when a Building or Pulsing tick produced new parameters.
	Frame *Frame
	// SplashGlow is set for ticks taken on the splash screen.
	SplashGlow *float64
	// Completed fires on the first Pulsing tick of each build cycle.
	Completed bool
	// Started is set by the command that dismissed the splash screen.
	Started bool
	// Cleared asks the display to drop the curve and message.
	Cleared      bool
	PauseChanged bool
	FPSChanged   bool
	Quit         bool
}

// State is the single mutable record behind the animation. It is owned by the
// game loop and never touched concurrently.
type State struct {
	frameIndex int
	paused     bool
	fps        int
	started    bool
	completed  bool
	splashTick int
}

func NewState() *State {
	return &State{fps: config.InitialFPS}
}

// Phase is derived from started and frameIndex.
func (s *State) Phase() Phase {
	switch {
	case !s.started:
		return PhaseSplash
	case s.frameIndex < config.BuildFrames:
		return PhaseBuilding
	default:
		return PhasePulsing
	}
}

func (s *State) FrameIndex() int { return s.frameIndex }
func (s *State) Paused() bool    { return s.paused }
func (s *State) FPS() int        { return s.fps }
func (s *State) Started() bool   { return s.started }

// Completed reports whether the current build cycle has reached Pulsing.
func (s *State) Completed() bool { return s.completed }

// Interval is the tick interval for the current phase.
func (s *State) Interval() int {
	if !s.started {
		return 1000 / config.SplashFPS
	}
	return 1000 / s.fps
}

// Apply runs one command against the state.
func (s *State) Apply(cmd Command) Result {
	switch cmd {
	case CommandTick:
		return s.tick()
	case CommandStart:
		if s.started {
			return Result{}
		}
		s.started = true
		s.frameIndex = 0
		s.completed = false
		s.paused = false
		return Result{Started: true, FPSChanged: true}
	case CommandTogglePause:
		if !s.started {
			return Result{}
		}
		s.paused = !s.paused
		return Result{PauseChanged: true}
	case CommandRestart:
		if !s.started {
			return Result{}
		}
		s.frameIndex = 0
		s.completed = false
		s.paused = false
		return Result{Cleared: true}
	case CommandSpeedUp:
		return s.setFPS(s.fps + 1)
	case CommandSpeedDown:
		return s.setFPS(s.fps - 1)
	case CommandQuit:
		return Result{Quit: true}
	}
	return Result{}
}

func (s *State) setFPS(fps int) Result {
	if fps < config.MinFPS {
		fps = config.MinFPS
	}
	if fps > config.MaxFPS {
		fps = config.MaxFPS
	}
	if fps == s.fps {
		return Result{}
	}
	s.fps = fps
	return Result{FPSChanged: true}
}

func (s *State) tick() Result {
	if !s.started {
		s.splashTick = (s.splashTick + 1) % config.SplashPeriod
		glow := SplashGlow(s.splashTick)
		return Result{SplashGlow: &glow}
	}
	if s.paused {
		return Result{}
	}

	var res Result
	frame := &Frame{Phase: s.Phase()}

	if s.frameIndex < config.BuildFrames {
		t := float64(s.frameIndex) / float64(max(1, config.BuildFrames-1))
		frame.K = config.KFinal * heart.Ease(t)
		frame.Amplitude = config.BaseAmplitude
		frame.AlphaScale = 0.4 + 0.6*t
		s.completed = false
	} else {
		pulseIdx := s.frameIndex - config.BuildFrames
		breath := math.Sin(2 * math.Pi * float64(pulseIdx) / config.BreathPeriod)
		frame.K = config.KFinal
		frame.Amplitude = config.BaseAmplitude + config.BreathDepth*breath
		frame.AlphaScale = 1
		if !s.completed {
			s.completed = true
			res.Completed = true
		}
	}

	s.frameIndex++
	if s.frameIndex >= config.BuildFrames+config.PulseFrames {
		s.frameIndex = config.BuildFrames
	}

	res.Frame = frame
	return res
}

// SplashGlow is the start button halo intensity for a splash tick.
func SplashGlow(tick int) float64 {
	return math.Max(0, 0.08+0.14*math.Sin(2*math.Pi*float64(tick)/config.SplashPeriod))
}
