// =======================
// audio/chime.go
// =======================

// Package audio plays the short chime heard when a day is clicked.
package audio

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeDuration = 180 * time.Millisecond
	baseFreq      = 523.25 // C5
)

// Major pentatonic steps in semitones; days walk up the scale.
var pentatonic = []int{0, 2, 4, 7, 9}

// Chime renders and plays click tones. A disabled Chime is silent.
type Chime struct {
	enabled bool
	volume  float64
}

// NewChime initializes the speaker when enabled. If the speaker cannot start
// the returned Chime is silent and the error is reported for logging.
func NewChime(enabled bool, volume float64) (*Chime, error) {
	c := &Chime{volume: volume}
	if !enabled {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("speaker init: %w", err)
	}
	c.enabled = true
	return c, nil
}

// Enabled reports whether Play produces sound.
func (c *Chime) Enabled() bool {
	return c.enabled
}

// Frequency returns the pitch for the day at idx.
func Frequency(idx int) float64 {
	if idx < 0 {
		idx = 0
	}
	octave := idx / len(pentatonic)
	step := pentatonic[idx%len(pentatonic)] + 12*(octave%3)
	return baseFreq * math.Pow(2, float64(step)/12)
}

// Tone builds the chime streamer for idx without touching the speaker.
func (c *Chime) Tone(idx int) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, Frequency(idx))
	if err != nil {
		return nil, err
	}
	n := sampleRate.N(chimeDuration)
	shaped := &decay{streamer: beep.Take(n, sine), total: n}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: c.volume}, nil
}

// Play starts the chime for idx and returns immediately.
func (c *Chime) Play(idx int) {
	if !c.enabled {
		return
	}
	tone, err := c.Tone(idx)
	if err != nil {
		log.Printf("audio: tone for %d: %v", idx, err)
		return
	}
	speaker.Play(tone)
}

// decay applies a short attack and an exponential release.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	attack := d.total / 20
	for i := 0; i < n; i++ {
		var gain float64
		if d.position < attack {
			gain = float64(d.position) / float64(attack)
		} else {
			gain = math.Exp(-4 * float64(d.position-attack) / float64(d.total-attack))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }
