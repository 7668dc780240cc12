// Package tray exposes the overlay controls in the system tray: a
// visibility checkbox, a click sound checkbox, an about box and quit.
package tray

import (
	"fmt"
	"image"
	"runtime"
	"sync/atomic"

	"fyne.io/systray"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
	"github.com/iburimskiy/cursor-overlay/internal/scheduler"
)

// Sound is the click feedback switch driven by the tray.
type Sound interface {
	SetEnabled(on bool) error
	Enabled() bool
}

type menu struct {
	toggle *systray.MenuItem
	sound  *systray.MenuItem
	about  *systray.MenuItem
	quit   *systray.MenuItem
}

// Tray is a running tray icon. Menu clicks queue up on the systray side and
// are applied by Poll from the frame loop.
type Tray struct {
	items atomic.Pointer[menu]
	sound Sound
	end   func()
}

// Start shows the tray icon. It fails only when the icon cannot be encoded,
// in which case the overlay runs without a tray.
func Start(icon image.Image, st *scheduler.State, sound Sound) (*Tray, error) {
	data, err := Encode(icon, runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("start tray: %w", err)
	}

	t := &Tray{sound: sound}
	visible := st.Visible
	onReady := func() {
		systray.SetIcon(data)
		systray.SetTooltip(config.TrayTooltip)
		m := &menu{
			toggle: systray.AddMenuItemCheckbox(config.TrayToggleLabel, "", visible),
			sound:  systray.AddMenuItemCheckbox(config.TraySoundLabel, "", sound != nil && sound.Enabled()),
			about:  systray.AddMenuItem(config.TrayAboutLabel, ""),
		}
		systray.AddSeparator()
		m.quit = systray.AddMenuItem(config.TrayQuitLabel, "")
		t.items.Store(m)
		logging.Logger().Info("tray ready")
	}
	onExit := func() {
		logging.Logger().Info("tray closed")
	}

	start, end := systray.RunWithExternalLoop(onReady, onExit)
	t.end = end
	start()
	return t, nil
}

// Poll applies every pending menu click to st without blocking.
func (t *Tray) Poll(st *scheduler.State) {
	m := t.items.Load()
	if m == nil {
		return
	}
	for {
		select {
		case <-m.toggle.ClickedCh:
			setChecked(m.toggle, st.ToggleVisible())
		case <-m.sound.ClickedCh:
			t.toggleSound(m.sound)
		case <-m.about.ClickedCh:
			go showAbout()
		case <-m.quit.ClickedCh:
			st.Quit()
		default:
			return
		}
	}
}

func (t *Tray) toggleSound(item *systray.MenuItem) {
	if t.sound == nil {
		item.Disable()
		return
	}
	on := !t.sound.Enabled()
	if err := t.sound.SetEnabled(on); err != nil {
		logging.Logger().Warn("click sound unavailable", "err", err)
		item.Disable()
	}
	setChecked(item, t.sound.Enabled())
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// showAbout blocks until the dialog is dismissed, so it runs on its own
// goroutine and touches no overlay state.
func showAbout() {
	if err := zenity.Info(config.AboutText, zenity.Title(config.WindowTitle), zenity.InfoIcon); err != nil {
		logging.Logger().Debug("about dialog", "err", err)
	}
}

// Close removes the tray icon.
func (t *Tray) Close() {
	if t.end != nil {
		t.end()
	}
}
