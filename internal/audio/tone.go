// Package audio plays the game's sound cues as synthesized tones.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sampleRate is the output rate for every tone.
const sampleRate = beep.SampleRate(44100)

// Gain envelope: each tone starts at startGain and decays exponentially to endGain.
const (
	startGain = 0.1
	endGain   = 0.001
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Tone is a single decaying note.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
	Wave     Wave
}

// tone generates a waveform with an exponential decay envelope.
type tone struct {
	freq     float64
	wave     Wave
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewTone creates a streamer for t at the given sample rate.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  t.Freq,
		wave:  t.Wave,
		total: rate.N(t.Duration),
		rate:  rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.total {
			return i, true
		}

		val := waveAt(o.wave, o.phase) * gainAt(o.position, o.total)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// waveAt returns the wave value in [-1, 1] at phase in [0, 1).
func waveAt(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// gainAt returns the envelope gain at sample pos of total.
func gainAt(pos, total int) float64 {
	if total <= 0 {
		return 0
	}
	frac := float64(pos) / float64(total)
	return startGain * math.Pow(endGain/startGain, frac)
}
