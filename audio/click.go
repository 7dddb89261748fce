// Package audio provides a speaker-backed stand-in for controller rumble.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 880.0
)

// ErrNotInitialized is returned by Pulse before Init succeeded.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// ClickActuator turns haptic pulses into short sine ticks. It satisfies
// swing.HapticActuator for the mouse and for controllers without rumble.
type ClickActuator struct {
	mu          sync.Mutex
	initialized bool
	freq        float64
	play        func(beep.Streamer)
}

// NewClickActuator creates an actuator ticking at 880 Hz. Call Init before
// the first pulse.
func NewClickActuator() *ClickActuator {
	return &ClickActuator{freq: clickFreq, play: func(s beep.Streamer) { speaker.Play(s) }}
}

// Init sets up the speaker. Calling it again is a no-op.
func (c *ClickActuator) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.initialized = true
	return nil
}

// Pulse plays one tick of length d at a volume scaled by intensity.
func (c *ClickActuator) Pulse(intensity float64, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return ErrNotInitialized
	}
	s, err := c.tone(intensity, d)
	if err != nil {
		return err
	}
	c.play(s)
	return nil
}

// tone builds the tick streamer: a sine of length d, attenuated on a log2
// scale so intensity 1 is full volume and 0 is silent.
func (c *ClickActuator) tone(intensity float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return nil, fmt.Errorf("click tone: %w", err)
	}
	s := beep.Take(sampleRate.N(d), sine)
	if intensity <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(intensity, 1))}, nil
}
