package swing

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Rig is the viewpoint: the camera group that locomotion moves around.
// Yaw 0 looks down -Z; positive yaw turns left. Pitch is clamped to ±π/2.
type Rig struct {
	Position Vec3
	Yaw      float64
	Pitch    float64

	teleport *Vec3Tween
}

// NewRig creates a rig at pos looking down -Z.
func NewRig(pos Vec3) *Rig {
	return &Rig{Position: pos}
}

// Forward returns the unit view direction, including pitch.
func (r *Rig) Forward() Vec3 {
	sy, cy := math.Sincos(r.Yaw)
	sp, cp := math.Sincos(r.Pitch)
	return Vec3{-sy * cp, sp, -cy * cp}
}

// Right returns the horizontal unit vector to the right of the view.
func (r *Rig) Right() Vec3 {
	sy, cy := math.Sincos(r.Yaw)
	return Vec3{cy, 0, -sy}
}

// Up returns the unit vector completing the view basis.
func (r *Rig) Up() Vec3 {
	return r.Right().Cross(r.Forward())
}

// flatForward returns the view direction projected onto the ground plane.
func (r *Rig) flatForward() Vec3 {
	sy, cy := math.Sincos(r.Yaw)
	return Vec3{-sy, 0, -cy}
}

// Look applies a mouse-look delta in pixels.
func (r *Rig) Look(dx, dy, sensitivity float64) {
	r.Yaw -= dx * sensitivity
	r.Pitch -= dy * sensitivity
	r.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, r.Pitch))
}

// Move translates the rig along its view direction and horizontal right
// vector.
func (r *Rig) Move(axes Axes, speed float64) {
	if axes.Forward != 0 {
		r.Position = r.Position.Add(r.Forward().Scale(axes.Forward * speed))
	}
	if axes.Right != 0 {
		r.Position = r.Position.Add(r.Right().Scale(axes.Right * speed))
	}
}

// Thumbstick applies one controller's stick. The left hand turns, the right
// hand moves along the ground. Axes within Config.DeadZone are ignored.
func (r *Rig) Thumbstick(hand DeviceID, stick Vec2, cfg Config) {
	x, y := stick.X, stick.Y
	if math.Abs(x) <= cfg.DeadZone {
		x = 0
	}
	if math.Abs(y) <= cfg.DeadZone {
		y = 0
	}
	if x == 0 && y == 0 {
		return
	}
	switch hand {
	case DeviceLeft:
		r.Yaw -= x * cfg.TurnSpeed
	case DeviceRight:
		move := r.Right().Scale(x * cfg.StickSpeed).Add(r.flatForward().Scale(-y * cfg.StickSpeed))
		r.Position = r.Position.Add(move)
	}
}

// TeleportTo moves the rig's horizontal position to (x, z), keeping its
// height. A positive duration eases the move over that many seconds.
func (r *Rig) TeleportTo(x, z float64, duration float64) {
	dest := Vec3{x, r.Position.Y, z}
	if duration <= 0 {
		r.teleport = nil
		r.Position = dest
		return
	}
	r.teleport = NewVec3Tween(r.Position, dest, float32(duration), ease.OutQuad)
}

// Teleporting reports whether an eased teleport is in progress.
func (r *Rig) Teleporting() bool {
	return r.teleport != nil
}

// update applies one frame of locomotion input. Called from Scene.Update().
// While an eased teleport is in flight the tween owns the position, so
// keyboard and right-stick movement are ignored; turning still applies.
func (r *Rig) update(in FrameInput, dt float64, cfg Config) {
	moving := true
	if r.teleport != nil {
		p := r.teleport.Update(float32(dt))
		r.Position.X, r.Position.Z = p.X, p.Z
		if r.teleport.Done {
			r.teleport = nil
		} else {
			moving = false
		}
	}

	if moving {
		r.Move(in.Move, cfg.MoveSpeed)
	}
	if in.Look.X != 0 || in.Look.Y != 0 {
		r.Look(in.Look.X, in.Look.Y, cfg.LookSensitivity)
	}
	r.Thumbstick(DeviceLeft, in.Sticks[DeviceLeft], cfg)
	if moving {
		r.Thumbstick(DeviceRight, in.Sticks[DeviceRight], cfg)
	}
}

// --- Projection ---

// PickRay returns the world ray through a point in normalized device
// coordinates (x right, y up, both in [-1, 1] across the vertical extent)
// for a perspective view with vertical field of view fovY radians.
// ndcX is scaled by the viewport height, so callers pass
// (px - w/2) / (h/2) for both axes.
func (r *Rig) PickRay(ndcX, ndcY, fovY float64) Ray {
	tan := math.Tan(fovY / 2)
	dir := r.Forward().
		Add(r.Right().Scale(ndcX * tan)).
		Add(r.Up().Scale(ndcY * tan))
	return NewRay(r.Position, dir)
}

// Project maps a world point into the same normalized coordinates PickRay
// takes. ok is false for points at or behind the near distance.
func (r *Rig) Project(p Vec3, fovY, near float64) (ndcX, ndcY, depth float64, ok bool) {
	rel := p.Sub(r.Position)
	depth = rel.Dot(r.Forward())
	if depth <= near {
		return 0, 0, depth, false
	}
	tan := math.Tan(fovY / 2)
	ndcX = rel.Dot(r.Right()) / (depth * tan)
	ndcY = rel.Dot(r.Up()) / (depth * tan)
	return ndcX, ndcY, depth, true
}
