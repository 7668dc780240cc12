package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickToneLength(t *testing.T) {
	tone := newClickTone(beep.SampleRate(44100), 1800, 1000, 0.2)
	buf := make([][2]float64, 512)

	total := 0
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		total += n
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, math.Abs(buf[i][0]), 0.2)
			assert.Equal(t, buf[i][0], buf[i][1])
		}
	}
	assert.Equal(t, 1000, total)
	assert.NoError(t, tone.Err())
}

func TestClickToneDecays(t *testing.T) {
	tone := newClickTone(beep.SampleRate(8000), 2000, 400, 1)
	buf := make([][2]float64, 400)
	n, ok := tone.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 400, n)

	// 2kHz at 8kHz peaks every fourth sample.
	assert.Zero(t, buf[0][0])
	assert.Greater(t, buf[1][0], buf[101][0])
	assert.Greater(t, buf[101][0], buf[301][0])
}

func newFakeClicker(initErr error) (*Clicker, *int, *int) {
	inits, plays := 0, 0
	c := NewClicker()
	c.initSpeaker = func(beep.SampleRate, int) error {
		inits++
		return initErr
	}
	c.play = func(...beep.Streamer) { plays++ }
	return c, &inits, &plays
}

func TestClickerDisabledByDefault(t *testing.T) {
	c, inits, plays := newFakeClicker(nil)
	c.Play()
	assert.False(t, c.Enabled())
	assert.Zero(t, *inits)
	assert.Zero(t, *plays)
}

func TestClickerEnableInitializesOnce(t *testing.T) {
	c, inits, plays := newFakeClicker(nil)
	require.NoError(t, c.SetEnabled(true))
	c.Play()
	require.NoError(t, c.SetEnabled(false))
	c.Play()
	require.NoError(t, c.SetEnabled(true))
	c.Play()

	assert.True(t, c.Enabled())
	assert.Equal(t, 1, *inits)
	assert.Equal(t, 2, *plays)
}

func TestClickerInitFailureStaysDisabled(t *testing.T) {
	errNoDevice := errors.New("no output device")
	c, _, plays := newFakeClicker(errNoDevice)

	err := c.SetEnabled(true)
	require.ErrorIs(t, err, errNoDevice)
	assert.False(t, c.Enabled())
	c.Play()
	assert.Zero(t, *plays)

	// Close without a speaker does nothing.
	assert.NotPanics(t, c.Close)
}
