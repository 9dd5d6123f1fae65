// Package game runs the heart curve animation inside an ebiten window.
package game

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/heart-curve/internal/animation"
	"github.com/iburimskiy/heart-curve/internal/config"
	"github.com/iburimskiy/heart-curve/internal/control"
	"github.com/iburimskiy/heart-curve/internal/heart"
)

const (
	completionMessage = "Made with <3 and Mathematics"
	pausedMessage     = "Paused - press SPACE to continue"
)

// Chime is the completion sound. A nil Chime is allowed.
type Chime interface {
	Play()
	Stop()
	Level() float64
}

type game struct {
	state *animation.State
	clock *animation.Clock
	input *control.Handler
	chime Chime

	view    viewport
	palette palette
	art     *artwork

	// curve
	xs       heart.Domain
	ys       []float64
	hasCurve bool
	frame    animation.Frame
	version  int
	kText    string

	// splash
	splashGlow  float64
	hoverSpring harmonica.Spring
	hoverPos    float64
	hoverVel    float64

	// status message
	message      string
	messageAlpha float64
	msgSpring    harmonica.Spring
	msgPos       float64
	msgVel       float64

	// input edge detection
	prevKey    map[ebiten.Key]bool
	lastCursor [2]int
}

// NewGame builds the animation. It does not touch the graphics driver, so it is
// safe to call before ebiten.RunGame.
func NewGame(chime Chime) (*game, error) {
	pal, err := newPalette()
	if err != nil {
		return nil, err
	}
	state := animation.NewState()
	return &game{
		state:       state,
		clock:       animation.NewClock(state.Interval()),
		input:       control.NewHandler(),
		chime:       chime,
		view:        newViewport(config.WindowWidth, config.WindowHeight),
		palette:     pal,
		xs:          heart.NewDomain(config.NumPoints, config.DomainBound),
		kText:       formatK(0),
		hoverSpring: harmonica.NewSpring(harmonica.FPS(60), 9.0, 1.0),
		msgSpring:   harmonica.NewSpring(harmonica.FPS(60), 5.0, 1.0),
		prevKey:     map[ebiten.Key]bool{},
		lastCursor:  [2]int{-1, -1},
	}, nil
}

func (g *game) Update() error {
	for _, ev := range g.pollEvents() {
		if g.handleEvent(ev) {
			return ebiten.Termination
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if g.step(dt) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// step advances the tick clock by dt and eases the cosmetic springs. It
// reports whether the game should quit.
func (g *game) step(dt time.Duration) bool {
	for n := g.clock.Advance(dt); n > 0; n-- {
		if g.apply(animation.CommandTick).Quit {
			return true
		}
	}

	hoverTarget := 0.0
	if g.input.Hovered() {
		hoverTarget = 1
	}
	g.hoverPos, g.hoverVel = g.hoverSpring.Update(g.hoverPos, g.hoverVel, hoverTarget)
	g.msgPos, g.msgVel = g.msgSpring.Update(g.msgPos, g.msgVel, g.messageAlpha)
	return false
}

// handleEvent resolves one input event and reports whether to quit.
func (g *game) handleEvent(ev control.Event) bool {
	cmd, hoverChanged := g.input.Handle(ev, g.state.Started())
	if hoverChanged {
		log.Debug().Bool("hovered", g.input.Hovered()).Msg("start button hover")
	}
	if cmd == animation.CommandNone {
		return false
	}
	return g.apply(cmd).Quit
}

// apply feeds cmd to the state machine and mirrors the result onto the display.
func (g *game) apply(cmd animation.Command) animation.Result {
	res := g.state.Apply(cmd)

	if res.SplashGlow != nil {
		g.splashGlow = *res.SplashGlow
	}

	if res.Started {
		log.Info().Int("fps", g.state.FPS()).Msg("animation started")
		g.clock.SetInterval(g.state.Interval())
		g.clock.Reset()
	} else if res.FPSChanged {
		log.Info().Int("fps", g.state.FPS()).Msg("speed changed")
		g.clock.SetInterval(g.state.Interval())
	}

	if res.Cleared {
		log.Info().Msg("animation restarted")
		g.hasCurve = false
		g.version++
		g.kText = formatK(0)
		g.setMessage("", 0)
		if g.chime != nil {
			g.chime.Stop()
		}
	}

	if res.PauseChanged {
		log.Debug().Bool("paused", g.state.Paused()).Msg("pause toggled")
		switch {
		case g.state.Paused():
			g.setMessage(pausedMessage, 0.6)
		case g.state.Completed():
			g.setMessage(completionMessage, 0.7)
		default:
			g.setMessage("", 0)
		}
	}

	if res.Frame != nil {
		g.frame = *res.Frame
		g.ys = heart.EvaluateInto(g.ys, g.xs, g.frame.K, g.frame.Amplitude)
		g.hasCurve = true
		g.version++
		g.kText = formatK(g.frame.K)
	}

	if res.Completed {
		log.Info().Int("frame", g.state.FrameIndex()).Msg("heart complete")
		g.setMessage(completionMessage, 0.7)
		if g.chime != nil {
			g.chime.Play()
		}
	}

	if res.Quit {
		log.Info().Msg("quit requested")
	}
	return res
}

func (g *game) setMessage(text string, alpha float64) {
	g.message = text
	g.messageAlpha = alpha
	if text == "" {
		g.msgPos, g.msgVel = 0, 0
	}
}
