package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/heart-curve/internal/control"
)

var keyBindings = []struct {
	key   ebiten.Key
	event control.Key
}{
	{ebiten.KeySpace, control.KeySpace},
	{ebiten.KeyEnter, control.KeyEnter},
	{ebiten.KeyNumpadEnter, control.KeyEnter},
	{ebiten.KeyR, control.KeyR},
	{ebiten.KeyArrowUp, control.KeyUp},
	{ebiten.KeyArrowDown, control.KeyDown},
	{ebiten.KeyQ, control.KeyQ},
	{ebiten.KeyEscape, control.KeyEscape},
}

// pollEvents turns this update's raw input into control events.
func (g *game) pollEvents() []control.Event {
	var events []control.Event

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	fx, fy := g.view.screenToFigure(float64(mouseX), float64(mouseY))

	if mouseX != g.lastCursor[0] || mouseY != g.lastCursor[1] {
		g.lastCursor = [2]int{mouseX, mouseY}
		events = append(events, control.Event{Kind: control.EventMove, X: fx, Y: fy})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, control.Event{Kind: control.EventClick, X: fx, Y: fy})
	}

	for _, b := range keyBindings {
		if justPressed(b.key) {
			events = append(events, control.Event{Kind: control.EventKey, Key: b.event})
		}
	}
	return events
}
