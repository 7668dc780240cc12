package config

import (
	"image/color"
	"time"
)

const (
	WindowTitle = "Cursor Overlay"

	// Trail
	MaxTrail       = 14
	MaxTrailAgeMs  = 200
	TrailEpsilon   = 0.1
	TrailThickStep = 0.5

	// Ripples
	RippleMaxLife   = 30
	RippleGrowth    = 2.0
	RippleMinRadius = 0.5
	RippleInset     = 1.2
	CircleSegments  = 24

	// Frame pacing
	ActiveSleep = 12 * time.Millisecond
	IdleSleep   = 33 * time.Millisecond
	HiddenSleep = 100 * time.Millisecond

	HiddenBlankEvery  = 60
	MaintenanceEvery  = 600
	RippleSlackFactor = 3

	// Tray
	TrayIconPath     = "cursor_overlay.bmp"
	TrayIconSize     = 256
	TrayTooltip      = "Mouse Overlay"
	TrayToggleLabel  = "Show overlay"
	TraySoundLabel   = "Click sound"
	TrayAboutLabel   = "About"
	TrayQuitLabel    = "Quit"
	AboutText        = "Draws a fading trail behind the pointer and a ripple on every click."
	ClickToneHz      = 1800
	ClickDuration    = 25 * time.Millisecond
	ClickVolume      = 0.15
	ClickSampleRate  = 44100
	ClickBufferRatio = 20 // speaker buffer = 1s / ratio
)

var (
	ColorMain = color.NRGBA{R: 243, G: 186, B: 236, A: 255}
	ColorAux  = color.NRGBA{R: 125, G: 232, B: 243, A: 255}
)
