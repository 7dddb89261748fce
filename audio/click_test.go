package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += k
		if !ok || k == 0 {
			return n, peak
		}
	}
}

func TestClickToneLength(t *testing.T) {
	c := NewClickActuator()
	s, err := c.tone(1, 50*time.Millisecond)
	require.NoError(t, err)

	n, peak := drain(s)
	assert.Equal(t, sampleRate.N(50*time.Millisecond), n)
	assert.Greater(t, peak, 0.5)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestClickToneIntensity(t *testing.T) {
	c := NewClickActuator()

	loud, err := c.tone(1, 20*time.Millisecond)
	require.NoError(t, err)
	quiet, err := c.tone(0.25, 20*time.Millisecond)
	require.NoError(t, err)
	silent, err := c.tone(0, 20*time.Millisecond)
	require.NoError(t, err)

	_, loudPeak := drain(loud)
	_, quietPeak := drain(quiet)
	_, silentPeak := drain(silent)

	assert.InDelta(t, loudPeak*0.25, quietPeak, 1e-6)
	assert.Zero(t, silentPeak)
}

func TestClickPulseRequiresInit(t *testing.T) {
	c := NewClickActuator()
	assert.ErrorIs(t, c.Pulse(1, 50*time.Millisecond), ErrNotInitialized)
}

func TestClickPulsePlays(t *testing.T) {
	c := NewClickActuator()
	var played []beep.Streamer
	c.play = func(s beep.Streamer) { played = append(played, s) }
	c.initialized = true

	require.NoError(t, c.Pulse(1, 50*time.Millisecond))
	require.Len(t, played, 1)
	n, _ := drain(played[0])
	assert.Equal(t, sampleRate.N(50*time.Millisecond), n)
}
