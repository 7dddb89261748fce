package swing

import "math"

// Vec3 is a 3D vector used for positions and directions. The coordinate
// system is right-handed with Y up; an unrotated viewpoint looks down -Z.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp moves v toward o by the fraction t. t = 1 returns o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Ray is a half-line with a unit-length direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay builds a ray, normalizing dir.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectHorizontal returns the distance at which the ray crosses the
// plane y = height. ok is false when the ray is parallel to the plane or the
// crossing lies behind the origin.
func (r Ray) IntersectHorizontal(height float64) (t float64, ok bool) {
	if math.Abs(r.Dir.Y) < 1e-9 {
		return 0, false
	}
	t = (height - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Pose is a device's world-space position and forward direction.
type Pose struct {
	Position Vec3
	Forward  Vec3
}

// Ray returns the pointing ray for the pose.
func (p Pose) Ray() Ray {
	return NewRay(p.Position, p.Forward)
}
