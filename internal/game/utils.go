package game

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/heart-curve/internal/config"
)

type palette struct {
	background  colorful.Color
	heart       colorful.Color
	heartGlow   colorful.Color
	title       colorful.Color
	titleShadow colorful.Color
	formula     colorful.Color
	kValue      colorful.Color
	axis        colorful.Color
	grid        colorful.Color
	info        colorful.Color
	credit      colorful.Color
	message     colorful.Color
	buttonFace  colorful.Color
	buttonHover colorful.Color
	buttonGlow  colorful.Color
	buttonEdge  colorful.Color
	buttonText  colorful.Color
	splashSub   colorful.Color
	splashHint  colorful.Color
}

func newPalette() (palette, error) {
	var p palette
	entries := []struct {
		dst *colorful.Color
		hex string
	}{
		{&p.background, config.ColorBackground},
		{&p.heart, config.ColorHeart},
		{&p.heartGlow, config.ColorHeartGlow},
		{&p.title, config.ColorTitle},
		{&p.titleShadow, config.ColorTitleShadow},
		{&p.formula, config.ColorFormula},
		{&p.kValue, config.ColorKValue},
		{&p.axis, config.ColorAxis},
		{&p.grid, config.ColorGrid},
		{&p.info, config.ColorInfo},
		{&p.credit, config.ColorCredit},
		{&p.message, config.ColorMessage},
		{&p.buttonFace, config.ColorButtonFace},
		{&p.buttonHover, config.ColorButtonHover},
		{&p.buttonGlow, config.ColorButtonGlow},
		{&p.buttonEdge, config.ColorButtonEdge},
		{&p.buttonText, config.ColorButtonText},
		{&p.splashSub, config.ColorSplashSub},
		{&p.splashHint, config.ColorSplashHint},
	}
	for _, e := range entries {
		c, err := colorful.Hex(e.hex)
		if err != nil {
			return palette{}, fmt.Errorf("palette colour %q: %w", e.hex, err)
		}
		*e.dst = c
	}
	return p, nil
}

// withAlpha converts c to a premultiplied color.RGBA with opacity a.
func withAlpha(c colorful.Color, a float64) color.RGBA {
	a = clamp01(a)
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{
		R: uint8(float64(r)*a + 0.5),
		G: uint8(float64(g)*a + 0.5),
		B: uint8(float64(b)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatK formats the live k readout.
func formatK(k float64) string {
	return fmt.Sprintf("k = %.2f", k)
}
