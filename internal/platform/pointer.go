package platform

import (
	"image"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"

	"github.com/iburimskiy/cursor-overlay/internal/geom"
	"github.com/iburimskiy/cursor-overlay/internal/input"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
)

const hookStopTimeout = 500 * time.Millisecond

// GlobalPointer samples the desktop pointer regardless of which window has
// focus. Position is polled through robotgo on every Sample; button state
// comes from a gohook listener goroutine and is latched between samples.
type GlobalPointer struct {
	origin geom.Point
	start  time.Time
	latch  input.Latch

	left, right uint16
	done        chan struct{}
	stopOnce    sync.Once
}

// NewGlobalPointer starts the button listener. Positions are reported
// relative to origin, the top-left corner of the overlay window.
func NewGlobalPointer(origin image.Point) *GlobalPointer {
	p := &GlobalPointer{
		origin: geom.Pt(float64(origin.X), float64(origin.Y)),
		start:  time.Now(),
		left:   hook.MouseMap["left"],
		right:  hook.MouseMap["right"],
		done:   make(chan struct{}),
	}
	go p.listen(hook.Start())
	return p
}

func (p *GlobalPointer) listen(events chan hook.Event) {
	defer close(p.done)
	logging.Logger().Info("pointer hook started")
	for ev := range events {
		b := p.button(ev.Button)
		if b == 0 {
			continue
		}
		// gohook reports a physical press as MouseHold and the release as
		// MouseDown.
		switch ev.Kind {
		case hook.MouseHold:
			p.latch.Press(b)
		case hook.MouseDown, hook.MouseUp:
			p.latch.Release(b)
		}
	}
	logging.Logger().Info("pointer hook stopped")
}

func (p *GlobalPointer) button(code uint16) input.Buttons {
	switch code {
	case p.left:
		return input.ButtonLeft
	case p.right:
		return input.ButtonRight
	}
	return 0
}

// Sample implements input.Source.
func (p *GlobalPointer) Sample() input.Sample {
	x, y := robotgo.Location()
	held, fresh := p.latch.Take()
	return input.Sample{
		Pos:     geom.Pt(float64(x), float64(y)).Sub(p.origin),
		Buttons: held,
		Pressed: fresh,
		Now:     time.Since(p.start).Milliseconds(),
	}
}

// Close stops the listener and waits briefly for it to drain.
func (p *GlobalPointer) Close() {
	p.stopOnce.Do(func() {
		hook.End()
		select {
		case <-p.done:
		case <-time.After(hookStopTimeout):
			logging.Logger().Warn("pointer hook did not stop in time")
		}
	})
}
