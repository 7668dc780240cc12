// Package game binds the overlay scheduler to the ebiten run loop.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cursor-overlay/internal/input"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
	"github.com/iburimskiy/cursor-overlay/internal/render"
	"github.com/iburimskiy/cursor-overlay/internal/scheduler"
)

// Controls is a control surface polled once per tick, such as the tray menu.
type Controls interface {
	Poll(st *scheduler.State)
}

// Clicker plays feedback for spawned ripples.
type Clicker interface {
	Play()
}

// Options wires the collaborators of a Game. Controls and Clicker may be nil.
type Options struct {
	State    *scheduler.State
	Source   input.Source
	Controls Controls
	Clicker  Clicker
	Width    int
	Height   int
	// Sleep paces the loop; defaults to time.Sleep.
	Sleep func(time.Duration)
}

type game struct {
	state    *scheduler.State
	sched    *scheduler.Scheduler
	source   input.Source
	controls Controls
	clicker  Clicker
	sleep    func(time.Duration)

	width, height int

	pending scheduler.Decision
	drawn   bool
	checked bool
}

// New creates the overlay game.
func New(opts Options) ebiten.Game {
	return newGame(opts)
}

func newGame(opts Options) *game {
	g := &game{
		state:    opts.State,
		sched:    scheduler.New(),
		source:   opts.Source,
		controls: opts.Controls,
		clicker:  opts.Clicker,
		sleep:    opts.Sleep,
		width:    opts.Width,
		height:   opts.Height,
		drawn:    true,
	}
	if g.state == nil {
		g.state = scheduler.NewState()
	}
	if g.sleep == nil {
		g.sleep = time.Sleep
	}
	return g
}

func (g *game) Update() error {
	if !g.checked {
		g.checked = true
		if !ebiten.IsWindowMousePassthrough() {
			logging.Logger().Warn("click-through unsupported, overlay may intercept the pointer")
		}
	}
	if ebiten.IsWindowBeingClosed() {
		g.state.Quit()
	}
	return g.step()
}

// step runs one tick. The sleep chosen by the previous tick happens first,
// after that tick's frame has been presented.
func (g *game) step() error {
	if g.controls != nil {
		g.controls.Poll(g.state)
	}
	if !g.state.Running {
		logging.Logger().Info("quit requested")
		return ebiten.Termination
	}

	g.sleep(g.pending.Sleep)

	d := g.sched.Tick(g.state, g.source.Sample())
	if g.state.Visible && g.clicker != nil {
		for range d.Spawned {
			g.clicker.Play()
		}
	}
	g.pending = d
	g.drawn = false
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.frame(&screenSurface{dst: screen})
}

// frame applies the pending decision once. The screen is not cleared
// between frames, so skipping leaves the last presented frame visible.
func (g *game) frame(surf render.Surface) {
	if g.drawn {
		return
	}
	g.drawn = true
	g.sched.Present(g.pending, surf)
}

// Layout keeps the logical screen at display pixel size. The window itself
// is sized in device-independent units, so on a scaled display ebiten maps one
// screen pixel to one display pixel.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width > 0 && g.height > 0 {
		return g.width, g.height
	}
	return outsideWidth, outsideHeight
}
