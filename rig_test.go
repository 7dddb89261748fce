package swing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRigBasis(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		forward    Vec3
		right      Vec3
	}{
		{"default", 0, 0, V3(0, 0, -1), V3(1, 0, 0)},
		{"turned left", math.Pi / 2, 0, V3(-1, 0, 0), V3(0, 0, -1)},
		{"looking up", 0, math.Pi / 2, V3(0, 1, 0), V3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Rig{Yaw: tt.yaw, Pitch: tt.pitch}
			assertVec(t, tt.forward, r.Forward(), 1e-12)
			assertVec(t, tt.right, r.Right(), 1e-12)
			assert.InDelta(t, 0, r.Up().Dot(r.Forward()), 1e-12)
			assert.InDelta(t, 1, r.Up().Len(), 1e-12)
		})
	}
	assertVec(t, V3(0, 1, 0), (&Rig{}).Up(), 1e-12)
}

func TestRigLook(t *testing.T) {
	r := NewRig(V3(0, 1.6, 5))
	r.Look(100, 0, 0.002)
	assert.InDelta(t, -0.2, r.Yaw, 1e-12, "moving right turns right")

	r.Look(0, -100, 0.002)
	assert.InDelta(t, 0.2, r.Pitch, 1e-12, "moving up looks up")

	r.Look(0, -1e6, 0.002)
	assert.Equal(t, math.Pi/2, r.Pitch)
	r.Look(0, 1e6, 0.002)
	assert.Equal(t, -math.Pi/2, r.Pitch)
}

func TestRigMove(t *testing.T) {
	r := NewRig(V3(0, 1.6, 5))
	r.Move(Axes{Forward: 1}, 0.1)
	assertVec(t, V3(0, 1.6, 4.9), r.Position, 1e-12)

	r.Move(Axes{Right: -1}, 0.1)
	assertVec(t, V3(-0.1, 1.6, 4.9), r.Position, 1e-12)

	// Keyboard movement follows pitch.
	r.Pitch = math.Pi / 2
	r.Move(Axes{Forward: 1}, 0.1)
	assertVec(t, V3(-0.1, 1.7, 4.9), r.Position, 1e-12)
}

func TestRigThumbstick(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		hand    DeviceID
		stick   Vec2
		wantPos Vec3
		wantYaw float64
	}{
		{"dead zone", DeviceRight, Vec2{0.05, -0.09}, V3(0, 0, 0), 0},
		{"left turns", DeviceLeft, Vec2{1, -1}, V3(0, 0, 0), -0.03},
		{"right forward", DeviceRight, Vec2{0, -1}, V3(0, 0, -0.05), 0},
		{"right strafe", DeviceRight, Vec2{1, 0.05}, V3(0.05, 0, 0), 0},
		{"mouse ignored", DeviceMouse, Vec2{1, 1}, V3(0, 0, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig(Vec3{})
			r.Thumbstick(tt.hand, tt.stick, cfg)
			assertVec(t, tt.wantPos, r.Position, 1e-12)
			assert.InDelta(t, tt.wantYaw, r.Yaw, 1e-12)
		})
	}
}

func TestRigThumbstickIgnoresPitch(t *testing.T) {
	r := NewRig(Vec3{})
	r.Pitch = 1
	r.Thumbstick(DeviceRight, Vec2{0, -1}, DefaultConfig())
	assert.Zero(t, r.Position.Y)
	assertVec(t, V3(0, 0, -0.05), r.Position, 1e-12)
}

func TestRigTeleportInstant(t *testing.T) {
	r := NewRig(V3(0, 1.6, 5))
	r.TeleportTo(2, -1, 0)
	assert.False(t, r.Teleporting())
	assert.Equal(t, V3(2, 1.6, -1), r.Position)
}

func TestRigPickRay(t *testing.T) {
	r := NewRig(V3(0, 1.6, 5))
	fov := math.Pi / 2

	center := r.PickRay(0, 0, fov)
	assert.Equal(t, r.Position, center.Origin)
	assertVec(t, V3(0, 0, -1), center.Dir, 1e-12)

	// tan(45°) = 1: the top edge is 45 degrees up.
	top := r.PickRay(0, 1, fov)
	assertVec(t, V3(0, math.Sqrt2/2, -math.Sqrt2/2), top.Dir, 1e-12)
}

func TestRigProjectRoundTrip(t *testing.T) {
	r := NewRig(V3(1, 1.6, 5))
	r.Yaw, r.Pitch = 0.3, -0.2
	fov := 75 * math.Pi / 180

	for _, ndc := range []Vec2{{0, 0}, {0.5, -0.25}, {-1, 1}} {
		p := r.PickRay(ndc.X, ndc.Y, fov).At(4)
		x, y, depth, ok := r.Project(p, fov, 0.01)
		assert.True(t, ok)
		assert.InDelta(t, ndc.X, x, 1e-9)
		assert.InDelta(t, ndc.Y, y, 1e-9)
		assert.Greater(t, depth, 0.0)
	}

	_, _, _, ok := r.Project(r.Position.Sub(r.Forward()), fov, 0.01)
	assert.False(t, ok, "behind the viewpoint")
}

func TestRigUpdate(t *testing.T) {
	r := NewRig(V3(0, 1.6, 5))
	var in FrameInput
	in.Move = Axes{Forward: 1}
	in.Look = Vec2{X: 10}
	in.Sticks[DeviceLeft] = Vec2{X: 1}
	r.update(in, 0.016, DefaultConfig())

	assert.InDelta(t, 4.9, r.Position.Z, 1e-12)
	assert.InDelta(t, -0.02-0.03, r.Yaw, 1e-12)
}

func TestRigMovementWaitsForEasedTeleport(t *testing.T) {
	cfg := DefaultConfig()
	moved := NewRig(V3(0, 1.6, 5))
	still := NewRig(V3(0, 1.6, 5))
	moved.TeleportTo(2, -1, 0.1)
	still.TeleportTo(2, -1, 0.1)

	var in FrameInput
	in.Move = Axes{Forward: 1, Right: 1}
	in.Sticks[DeviceRight] = Vec2{X: 1, Y: -1}
	in.Sticks[DeviceLeft] = Vec2{X: 1}

	for i := 1; i <= 6; i++ {
		moved.update(in, 0.016, cfg)
		still.update(FrameInput{}, 0.016, cfg)
		assert.True(t, moved.Teleporting())
		assert.Equal(t, still.Position, moved.Position, "frame %d", i)
		assert.InDelta(t, -float64(i)*cfg.TurnSpeed, moved.Yaw, 1e-12, "turning still applies")
	}

	for still.Teleporting() {
		still.update(FrameInput{}, 0.016, cfg)
	}
	assert.InDelta(t, 2, still.Position.X, 1e-6)
	assert.InDelta(t, -1, still.Position.Z, 1e-6)

	// Once the tween is done movement applies again.
	moved.update(in, 0.016, cfg)
	require.False(t, moved.Teleporting())
	before := moved.Position
	moved.update(in, 0.016, cfg)
	assert.NotEqual(t, before, moved.Position)
}
