package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cursor-overlay/internal/audio"
	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/game"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
	"github.com/iburimskiy/cursor-overlay/internal/platform"
	"github.com/iburimskiy/cursor-overlay/internal/scheduler"
	"github.com/iburimskiy/cursor-overlay/internal/tray"
)

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(); err != nil {
		logging.Logger().Error("overlay failed", "err", err)
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
			logging.Logger().Debug("error dialog", "err", derr)
		}
		os.Exit(1)
	}
}

func run() error {
	log := logging.Logger()

	bounds, err := platform.PrimaryBounds()
	if err != nil {
		return fmt.Errorf("locate primary display: %w", err)
	}
	log.Info("primary display", "bounds", bounds)

	icon := tray.ResolveIcon(config.TrayIconPath)
	game.ConfigureWindow(bounds, icon)

	state := scheduler.NewState()
	clicker := audio.NewClicker()
	defer clicker.Close()

	var controls game.Controls
	if t, err := tray.Start(icon, state, clicker); err != nil {
		log.Warn("running without tray", "err", err)
	} else {
		defer t.Close()
		controls = t
	}

	pointer := platform.NewGlobalPointer(bounds.Min)
	defer pointer.Close()

	g := game.New(game.Options{
		State:    state,
		Source:   pointer,
		Controls: controls,
		Clicker:  clicker,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	})
	if err := ebiten.RunGameWithOptions(g, game.RunOptions()); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run overlay: %w", err)
	}
	log.Info("overlay stopped")
	return nil
}
