// Package control maps pointer and keyboard events onto animation commands.
package control

import (
	"github.com/iburimskiy/heart-curve/internal/animation"
	"github.com/iburimskiy/heart-curve/internal/config"
)

type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEnter
	KeyR
	KeyUp
	KeyDown
	KeyQ
	KeyEscape
)

type EventKind int

const (
	EventKey EventKind = iota
	EventClick
	EventMove
)

// Event is one input event. X and Y are normalized figure coordinates with
// the origin at the bottom-left corner.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y float64
}

// Rect is an axis-aligned region in normalized figure coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// CenteredRect builds a Rect from its center and half extents.
func CenteredRect(cx, cy, halfW, halfH float64) Rect {
	return Rect{MinX: cx - halfW, MinY: cy - halfH, MaxX: cx + halfW, MaxY: cy + halfH}
}

// StartButton is the hit region of the splash screen start button.
var StartButton = CenteredRect(config.ButtonCenterX, config.ButtonCenterY, config.ButtonHalfWidth, config.ButtonHalfHeight)

// Handler resolves events against the start button and tracks hover.
type Handler struct {
	Button  Rect
	hovered bool
}

func NewHandler() *Handler {
	return &Handler{Button: StartButton}
}

func (h *Handler) Hovered() bool { return h.hovered }

// Handle returns the command for ev. hoverChanged reports a pointer crossing
// the button edge before the splash screen is dismissed.
func (h *Handler) Handle(ev Event, started bool) (cmd animation.Command, hoverChanged bool) {
	switch ev.Kind {
	case EventClick:
		if !started && h.Button.Contains(ev.X, ev.Y) {
			return animation.CommandStart, false
		}
	case EventMove:
		if started {
			if h.hovered {
				h.hovered = false
				return animation.CommandNone, true
			}
			return animation.CommandNone, false
		}
		over := h.Button.Contains(ev.X, ev.Y)
		if over != h.hovered {
			h.hovered = over
			return animation.CommandNone, true
		}
	case EventKey:
		return resolveKey(ev.Key, started), false
	}
	return animation.CommandNone, false
}

func resolveKey(k Key, started bool) animation.Command {
	switch k {
	case KeyQ, KeyEscape:
		return animation.CommandQuit
	case KeySpace, KeyEnter:
		if !started {
			return animation.CommandStart
		}
		return animation.CommandTogglePause
	}
	if !started {
		return animation.CommandNone
	}
	switch k {
	case KeyR:
		return animation.CommandRestart
	case KeyUp:
		return animation.CommandSpeedUp
	case KeyDown:
		return animation.CommandSpeedDown
	}
	return animation.CommandNone
}
