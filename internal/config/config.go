package config

import "math"

const (
	WindowWidth  = 1000
	WindowHeight = 900
	WindowTitle  = "Mathematical Valentine - heart curve"

	// Axes rectangle in normalized figure coordinates (origin bottom-left)
	AxesLeft   = 0.08
	AxesRight  = 0.95
	AxesBottom = 0.14
	AxesTop    = 0.84

	// Data bounds shown inside the axes
	ViewXMin = -2.1
	ViewXMax = 2.1
	ViewYMin = -1.5
	ViewYMax = 2.8

	// Curve parameters
	NumPoints     = 3000
	KFinal        = 50.0
	BaseAmplitude = 0.9
	BreathDepth   = 0.035
	BreathPeriod  = 20

	// Animation timing
	BuildFrames  = 100
	PulseFrames  = 60
	SplashPeriod = 30
	InitialFPS   = 3
	SplashFPS    = 15
	MinFPS       = 1
	MaxFPS       = 30

	// Start button, normalized figure coordinates
	ButtonCenterX    = 0.5
	ButtonCenterY    = 0.46
	ButtonHalfWidth  = 0.13
	ButtonHalfHeight = 0.045
	ButtonGlowPad    = 0.03

	// Glow layers: stroke width in pixels and base alpha
	GlowOuterWidth = 8.0
	GlowOuterAlpha = 0.10
	GlowInnerWidth = 4.0
	GlowInnerAlpha = 0.25
	CoreWidth      = 1.8
	CoreAlpha      = 0.95

	// Chime
	ChimeSampleRate = 44100
	ChimeVolume     = -1.5
)

// Domain bound: 3 - x^2 >= 0
var DomainBound = math.Sqrt(3)

// Palette, hex strings parsed at start-up
const (
	ColorBackground  = "#0a0a0a"
	ColorHeart       = "#ff1744"
	ColorHeartGlow   = "#ff4444"
	ColorTitle       = "#ff1744"
	ColorTitleShadow = "#660000"
	ColorFormula     = "#bbbbbb"
	ColorKValue      = "#ff6e7f"
	ColorAxis        = "#333333"
	ColorGrid        = "#1a1a1a"
	ColorInfo        = "#444444"
	ColorCredit      = "#333333"
	ColorMessage     = "#ff6e7f"
	ColorButtonFace  = "#cc1133"
	ColorButtonHover = "#ff2255"
	ColorButtonGlow  = "#ff1744"
	ColorButtonEdge  = "#ff4466"
	ColorButtonText  = "#ffffff"
	ColorSplashSub   = "#ff6e7f"
	ColorSplashHint  = "#555555"
)
