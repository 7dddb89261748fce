package swing

import "math"

// HitShape is a world-space collision target for ray casts.
type HitShape interface {
	// Intersect returns the distance along r to the first contact.
	Intersect(r Ray) (t float64, ok bool)
}

// HitSphere is a sphere hit area.
type HitSphere struct {
	Center Vec3
	Radius float64
}

// Intersect reports the nearest non-negative crossing of the sphere surface.
// A ray starting inside the sphere hits at distance 0.
func (s HitSphere) Intersect(r Ray) (float64, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// HitCapsule is a segment from A to B swept by Radius. Used for pendulum arms.
type HitCapsule struct {
	A, B   Vec3
	Radius float64
}

// Intersect finds the closest approach between the ray and the capsule's
// core segment and reports a hit when it lies within Radius. The returned
// distance is backed off from the closest approach by the chord half-length,
// which is exact for the cylindrical body and close enough for the caps.
func (c HitCapsule) Intersect(r Ray) (float64, bool) {
	t, d := raySegmentClosest(r, c.A, c.B)
	if d > c.Radius {
		return 0, false
	}
	t -= math.Sqrt(c.Radius*c.Radius - d*d)
	if t < 0 {
		t = 0
	}
	return t, true
}

// HitPoint is a dimensionless point made hittable by a tolerance radius.
type HitPoint struct {
	At        Vec3
	Tolerance float64
}

// Intersect reports the distance to the ray's closest approach when the point
// lies within Tolerance of the ray.
func (p HitPoint) Intersect(r Ray) (float64, bool) {
	t := p.At.Sub(r.Origin).Dot(r.Dir)
	if t < 0 {
		return 0, false
	}
	if r.At(t).Dist(p.At) > p.Tolerance {
		return 0, false
	}
	return t, true
}

// raySegmentClosest returns the ray parameter t (>= 0) and the distance at the
// closest approach between ray r and segment ab.
func raySegmentClosest(r Ray, a, b Vec3) (t, dist float64) {
	u := r.Dir
	v := b.Sub(a)
	w := r.Origin.Sub(a)

	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	uw := u.Dot(w)
	vw := v.Dot(w)
	if uu < 1e-12 {
		return 0, math.Inf(1)
	}

	var s float64 // segment parameter in [0, 1]
	den := uu*vv - uv*uv
	if den < 1e-12 || vv < 1e-12 {
		// Parallel or degenerate segment: project the segment start.
		s = 0
		t = -uw / uu
	} else {
		t = (uv*vw - vv*uw) / den
		s = (uu*vw - uv*uw) / den
	}

	if s < 0 || s > 1 {
		s = math.Max(0, math.Min(1, s))
		// Re-project the clamped segment point onto the ray.
		p := a.Add(v.Scale(s))
		t = p.Sub(r.Origin).Dot(u) / uu
	}
	if t < 0 {
		t = 0
		// Re-project the ray origin onto the segment.
		if vv > 1e-12 {
			s = math.Max(0, math.Min(1, vw/vv))
		}
	}
	pr := r.At(t)
	ps := a.Add(v.Scale(s))
	return t, pr.Dist(ps)
}
