package view

import (
	"math"

	"github.com/phanxgames/swing"
)

const (
	fovY      = 75 * math.Pi / 180
	nearPlane = 0.05
)

// Projector maps between world space and a W×H screen as seen from the rig.
type Projector struct {
	Rig  *swing.Rig
	W, H int
}

// ToNDC converts screen pixels to the normalized coordinates swing.Rig uses:
// origin at the center, y up, scaled by half the screen height.
func (p Projector) ToNDC(sx, sy float64) (x, y float64) {
	hh := float64(p.H) / 2
	return (sx - float64(p.W)/2) / hh, (hh - sy) / hh
}

// ToScreen is the inverse of ToNDC.
func (p Projector) ToScreen(x, y float64) (sx, sy float64) {
	hh := float64(p.H) / 2
	return float64(p.W)/2 + x*hh, hh - y*hh
}

// Ray returns the world ray through a screen pixel.
func (p Projector) Ray(sx, sy float64) swing.Ray {
	x, y := p.ToNDC(sx, sy)
	return p.Rig.PickRay(x, y, fovY)
}

// Project maps a world point to screen pixels. ok is false behind the near
// plane.
func (p Projector) Project(w swing.Vec3) (sx, sy, depth float64, ok bool) {
	x, y, depth, ok := p.Rig.Project(w, fovY, nearPlane)
	if !ok {
		return 0, 0, depth, false
	}
	sx, sy = p.ToScreen(x, y)
	return sx, sy, depth, true
}

// Scale returns the on-screen size in pixels of a world length at depth.
func (p Projector) Scale(length, depth float64) float64 {
	return length / (depth * math.Tan(fovY/2)) * float64(p.H) / 2
}

// clipSegment shortens a segment so both ends lie in front of the near
// plane. ok is false when the whole segment is behind it.
func (p Projector) clipSegment(a, b swing.Vec3) (swing.Vec3, swing.Vec3, bool) {
	fwd := p.Rig.Forward()
	da := a.Sub(p.Rig.Position).Dot(fwd) - nearPlane*2
	db := b.Sub(p.Rig.Position).Dot(fwd) - nearPlane*2
	switch {
	case da <= 0 && db <= 0:
		return a, b, false
	case da <= 0:
		a = a.Lerp(b, da/(da-db))
	case db <= 0:
		b = b.Lerp(a, db/(db-da))
	}
	return a, b, true
}
