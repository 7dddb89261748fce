package swing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vec3Tween animates a point between two positions with one gween tween per
// axis. There is no global animation manager; owners call Update each frame.
type Vec3Tween struct {
	tweens [3]*gween.Tween
	value  Vec3
	Done   bool
}

// NewVec3Tween creates a tween from one point to another over duration
// seconds using the easing function.
func NewVec3Tween(from, to Vec3, duration float32, fn ease.TweenFunc) *Vec3Tween {
	t := &Vec3Tween{value: from}
	t.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	t.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	t.tweens[2] = gween.New(float32(from.Z), float32(to.Z), duration, fn)
	return t
}

// Update advances the tween by dt seconds and returns the current point.
func (t *Vec3Tween) Update(dt float32) Vec3 {
	if t.Done {
		return t.value
	}
	x, doneX := t.tweens[0].Update(dt)
	y, doneY := t.tweens[1].Update(dt)
	z, doneZ := t.tweens[2].Update(dt)
	t.value = Vec3{float64(x), float64(y), float64(z)}
	t.Done = doneX && doneY && doneZ
	return t.value
}

// Value returns the most recent point.
func (t *Vec3Tween) Value() Vec3 {
	return t.value
}
