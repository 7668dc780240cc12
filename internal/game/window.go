package game

import (
	"image"
	"math"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
)

// ConfigureWindow turns the ebiten window into a borderless, always-on-top
// overlay covering bounds, given in display pixels. Click-through is best
// effort: where the platform lacks it the overlay still runs.
func ConfigureWindow(bounds image.Rectangle, icon image.Image) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = windowScale(runtime.GOOS, m.DeviceScaleFactor())
	}
	win := windowRect(bounds, scale)
	logging.Logger().Info("overlay window", "display", bounds, "scale", scale, "window", win)

	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(win.Dx(), win.Dy())
	ebiten.SetWindowPosition(win.Min.X, win.Min.Y)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	if icon != nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	// The scheduler paces the loop itself.
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(false)
}

// windowScale is the number of display pixels per ebiten window unit.
// Display bounds and pointer positions are physical pixels except on macOS,
// where both are already in points.
func windowScale(goos string, deviceScale float64) float64 {
	if goos == "darwin" || deviceScale <= 0 {
		return 1
	}
	return deviceScale
}

// windowRect converts display pixel bounds to window units. The size is
// rounded up so the window never falls short of the display edge.
func windowRect(bounds image.Rectangle, scale float64) image.Rectangle {
	x := int(math.Round(float64(bounds.Min.X) / scale))
	y := int(math.Round(float64(bounds.Min.Y) / scale))
	w := int(math.Ceil(float64(bounds.Dx())/scale - 1e-9))
	h := int(math.Ceil(float64(bounds.Dy())/scale - 1e-9))
	return image.Rect(x, y, x+w, y+h)
}

// RunOptions returns the options for a transparent overlay window.
func RunOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	}
}
