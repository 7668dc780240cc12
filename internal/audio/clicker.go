// Package audio plays a short click whenever a ripple is spawned. The
// feature is off until enabled from the tray.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/cursor-overlay/internal/config"
	"github.com/iburimskiy/cursor-overlay/internal/logging"
)

// Clicker owns the speaker. The speaker is initialized on first enable so a
// machine without audio output never touches it.
type Clicker struct {
	mu          sync.Mutex
	enabled     bool
	ready       bool
	sr          beep.SampleRate
	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewClicker returns a disabled clicker.
func NewClicker() *Clicker {
	return &Clicker{
		sr:          beep.SampleRate(config.ClickSampleRate),
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// SetEnabled turns click feedback on or off. Enabling initializes the
// speaker on first use; if that fails the clicker stays disabled.
func (c *Clicker) SetEnabled(on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if on && !c.ready {
		if err := c.initSpeaker(c.sr, c.sr.N(time.Second/config.ClickBufferRatio)); err != nil {
			c.enabled = false
			return fmt.Errorf("init speaker: %w", err)
		}
		c.ready = true
	}
	c.enabled = on
	return nil
}

// Enabled reports whether clicks are played.
func (c *Clicker) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Play starts one click. It returns immediately; the speaker mixes
// overlapping clicks.
func (c *Clicker) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	c.play(newClickTone(c.sr, config.ClickToneHz, c.sr.N(config.ClickDuration), config.ClickVolume))
}

// Close stops anything still playing.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	logging.Logger().Debug("speaker cleared")
}
