package audio

import (
	"math"

	"github.com/faiface/beep"
)

// clickTone is a short sine burst with a linear decay envelope. It ends by
// itself once total samples have been produced.
type clickTone struct {
	step   float64
	phase  float64
	volume float64
	pos    int
	total  int
}

func newClickTone(sr beep.SampleRate, freq float64, total int, volume float64) *clickTone {
	return &clickTone{
		step:   2 * math.Pi * freq / float64(sr),
		volume: volume,
		total:  total,
	}
}

func (t *clickTone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := math.Sin(t.phase) * env * t.volume
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.step
		t.pos++
		n++
	}
	return n, true
}

func (t *clickTone) Err() error { return nil }
