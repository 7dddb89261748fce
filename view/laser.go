package view

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const laserEase = 0.08 // seconds to settle on a new length

// laser smooths a device's visible ray length between hit distances.
type laser struct {
	tween  *gween.Tween
	target float64
	shown  float64
	primed bool
}

// update retargets the laser when the length changes and returns the length
// to draw this frame.
func (l *laser) update(target float64, dt float32) float64 {
	if !l.primed {
		l.primed = true
		l.target, l.shown = target, target
		return l.shown
	}
	if math.Abs(target-l.target) > 1e-3 {
		l.tween = gween.New(float32(l.shown), float32(target), laserEase, ease.OutCubic)
		l.target = target
	}
	if l.tween != nil {
		v, done := l.tween.Update(dt)
		l.shown = float64(v)
		if done {
			l.tween = nil
			l.shown = l.target
		}
	}
	return l.shown
}
