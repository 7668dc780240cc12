package game

import (
	"image"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/geom"
	"github.com/iburimskiy/cursor-overlay/internal/input"
	"github.com/iburimskiy/cursor-overlay/internal/render"
	"github.com/iburimskiy/cursor-overlay/internal/scheduler"
)

// scriptSource replays samples, repeating the last one when exhausted.
type scriptSource struct {
	samples []input.Sample
	i       int
}

func (s *scriptSource) Sample() input.Sample {
	smp := s.samples[min(s.i, len(s.samples)-1)]
	s.i++
	return smp
}

type funcControls func(st *scheduler.State)

func (f funcControls) Poll(st *scheduler.State) { f(st) }

type countClicker struct{ n int }

func (c *countClicker) Play() { c.n++ }

func newTestGame(src input.Source, opts Options) (*game, *[]time.Duration) {
	var slept []time.Duration
	opts.Source = src
	opts.Sleep = func(d time.Duration) { slept = append(slept, d) }
	return newGame(opts), &slept
}

func TestStepSleepsAfterPresent(t *testing.T) {
	src := &scriptSource{samples: []input.Sample{
		{Pos: geom.Pt(0, 0), Now: 0},
		{Pos: geom.Pt(0, 0), Now: 10},
		{Pos: geom.Pt(0, 0), Now: 20},
	}}
	g, slept := newTestGame(src, Options{})

	for i := 0; i < 3; i++ {
		require.NoError(t, g.step())
	}
	// Nothing pending before the first tick, then active, then idle.
	assert.Equal(t, []time.Duration{0, config.ActiveSleep, config.IdleSleep}, *slept)
}

func TestFrameAppliesDecisionOnce(t *testing.T) {
	src := &scriptSource{samples: []input.Sample{{Pos: geom.Pt(5, 5), Now: 0}, {Pos: geom.Pt(9, 9), Now: 12}}}
	g, _ := newTestGame(src, Options{})
	var rec render.Recorder

	g.frame(&rec)
	assert.Empty(t, rec.Ops, "no tick yet")

	require.NoError(t, g.step())
	g.frame(&rec)
	g.frame(&rec)
	assert.Equal(t, 1, rec.Count(render.OpPresent))

	require.NoError(t, g.step())
	g.frame(&rec)
	assert.Equal(t, 2, rec.Count(render.OpPresent))
	assert.Equal(t, 2, rec.Count(render.OpLine))
}

func TestStepQuitTerminates(t *testing.T) {
	src := &scriptSource{samples: []input.Sample{{}}}
	quit := false
	controls := funcControls(func(st *scheduler.State) {
		if quit {
			st.Quit()
		}
	})
	g, slept := newTestGame(src, Options{Controls: controls})

	require.NoError(t, g.step())
	quit = true
	assert.ErrorIs(t, g.step(), ebiten.Termination)
	assert.Len(t, *slept, 1, "no tick runs after quit")
}

func TestStepToggleAppliesBeforeDecision(t *testing.T) {
	src := &scriptSource{samples: []input.Sample{
		{Pos: geom.Pt(0, 0), Now: 0},
		{Pos: geom.Pt(50, 0), Now: 10},
	}}
	toggle := false
	controls := funcControls(func(st *scheduler.State) {
		if toggle {
			st.ToggleVisible()
			toggle = false
		}
	})
	g, _ := newTestGame(src, Options{Controls: controls})
	var rec render.Recorder

	require.NoError(t, g.step())
	g.frame(&rec)
	rec.Reset()

	toggle = true
	require.NoError(t, g.step())
	assert.Equal(t, scheduler.ActionBlank, g.pending.Action)
	g.frame(&rec)
	assert.Equal(t, []render.OpKind{render.OpClear, render.OpPresent}, []render.OpKind{rec.Ops[0].Kind, rec.Ops[1].Kind})
	assert.Len(t, rec.Ops, 2)
}

func TestStepClicksOnlyWhenVisible(t *testing.T) {
	src := &scriptSource{samples: []input.Sample{
		{Buttons: input.ButtonLeft, Now: 0},
		{Now: 10},
		{Buttons: input.ButtonLeft | input.ButtonRight, Now: 20},
		{Now: 30},
		{Buttons: input.ButtonLeft, Now: 40},
	}}
	clicker := &countClicker{}
	st := scheduler.NewState()
	g, _ := newTestGame(src, Options{State: st, Clicker: clicker})

	for i := 0; i < 4; i++ {
		require.NoError(t, g.step())
	}
	// Left and right on the same tick click twice.
	assert.Equal(t, 3, clicker.n)

	st.Visible = false
	require.NoError(t, g.step())
	assert.Equal(t, 3, clicker.n)
}

func TestWindowScale(t *testing.T) {
	assert.Equal(t, 1.5, windowScale("windows", 1.5))
	assert.Equal(t, 2.0, windowScale("linux", 2))
	assert.Equal(t, 1.0, windowScale("darwin", 2))
	assert.Equal(t, 1.0, windowScale("windows", 0))
}

func TestWindowRectScaledDisplay(t *testing.T) {
	display := image.Rect(0, 0, 2880, 1620)
	assert.Equal(t, image.Rect(0, 0, 1920, 1080), windowRect(display, 1.5))
	assert.Equal(t, display, windowRect(display, 1))

	// Odd sizes round up so the window still covers the display.
	assert.Equal(t, image.Rect(0, 0, 1281, 720), windowRect(image.Rect(0, 0, 1921, 1080), 1.5))
}

func TestLayoutKeepsDisplayPixels(t *testing.T) {
	// On a 150% display the window is 1920x1080 units but the logical
	// screen stays at the physical size, so one screen pixel is one
	// display pixel and pointer coordinates need no scaling.
	g := newGame(Options{Width: 2880, Height: 1620, Source: &scriptSource{}})
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 2880, w)
	assert.Equal(t, 1620, h)
}

func TestLayout(t *testing.T) {
	g := newGame(Options{Width: 1920, Height: 1080, Source: &scriptSource{}})
	w, h := g.Layout(800, 600)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	g = newGame(Options{Source: &scriptSource{}})
	w, h = g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
