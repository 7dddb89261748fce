package view

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/swing"
)

const (
	aimSpeed = 0.04 // radians per tick at full stick
	aimLimit = 1.2  // max hand yaw/pitch offset from the view, radians

	handSide    = 0.25
	handDrop    = 0.4
	handForward = 0.3
)

// GamepadActuator rumbles one gamepad. It satisfies swing.HapticActuator.
type GamepadActuator struct {
	ID ebiten.GamepadID
}

// Pulse implements swing.HapticActuator.
func (g GamepadActuator) Pulse(intensity float64, d time.Duration) error {
	ebiten.VibrateGamepad(g.ID, &ebiten.VibrateGamepadOptions{
		Duration:        d,
		StrongMagnitude: intensity,
		WeakMagnitude:   intensity,
	})
	return nil
}

// controllerInput is one tick of raw gamepad state.
type controllerInput struct {
	stick swing.Vec2 // left stick, y down
	aim   swing.Vec2 // right stick, y down

	selectPressed, selectReleased bool
	teleport                      bool
}

func readGamepad(id ebiten.GamepadID) controllerInput {
	return controllerInput{
		stick: swing.Vec2{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		},
		aim: swing.Vec2{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		},
		selectPressed:  inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight),
		selectReleased: inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomRight),
		teleport:       inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom),
	}
}

// Controller drives one tracked-controller device from a gamepad. The hand
// floats at a fixed offset from the viewpoint and is aimed with the right
// stick.
type Controller struct {
	Device  swing.DeviceID
	Gamepad ebiten.GamepadID
	Bound   bool

	aimYaw, aimPitch float64
}

// controllerFrame is what one controller contributes to a frame.
type controllerFrame struct {
	pose    swing.PoseInput
	stick   swing.Vec2
	actions deviceActions
}

func (c *Controller) frame(in controllerInput, rig *swing.Rig, deadZone float64) controllerFrame {
	if math.Abs(in.aim.X) > deadZone {
		c.aimYaw -= in.aim.X * aimSpeed
	}
	if math.Abs(in.aim.Y) > deadZone {
		c.aimPitch -= in.aim.Y * aimSpeed
	}
	c.aimYaw = clamp(c.aimYaw, -aimLimit, aimLimit)
	c.aimPitch = clamp(c.aimPitch, -aimLimit, aimLimit)

	return controllerFrame{
		pose: swing.PoseInput{
			Valid:     true,
			Connected: true,
			Pose:      handPose(rig, c.Device, c.aimYaw, c.aimPitch),
		},
		stick: in.stick,
		actions: deviceActions{
			grab:     in.selectPressed,
			release:  in.selectReleased,
			teleport: in.teleport,
		},
	}
}

// handPose places a hand below and to the side of the viewpoint, pointing
// along the view turned by the aim offsets.
func handPose(rig *swing.Rig, hand swing.DeviceID, yaw, pitch float64) swing.Pose {
	side := handSide
	if hand == swing.DeviceLeft {
		side = -side
	}
	flat := swing.V3(-math.Sin(rig.Yaw), 0, -math.Cos(rig.Yaw))
	pos := rig.Position.
		Add(rig.Right().Scale(side)).
		Add(flat.Scale(handForward)).
		Add(swing.V3(0, -handDrop, 0))

	aim := swing.Rig{Yaw: rig.Yaw + yaw, Pitch: clamp(rig.Pitch+pitch, -math.Pi/2, math.Pi/2)}
	return swing.Pose{Position: pos, Forward: aim.Forward()}
}

// bindGamepads assigns connected standard-layout gamepads to controllers in
// ID order. It returns the controllers whose binding changed.
func bindGamepads(ctrls []*Controller, ids []ebiten.GamepadID, standard func(ebiten.GamepadID) bool) []*Controller {
	var usable []ebiten.GamepadID
	for _, id := range ids {
		if standard(id) {
			usable = append(usable, id)
		}
	}
	var changed []*Controller
	for i, c := range ctrls {
		bound := i < len(usable)
		switch {
		case bound && (!c.Bound || c.Gamepad != usable[i]):
			c.Bound, c.Gamepad = true, usable[i]
			changed = append(changed, c)
		case !bound && c.Bound:
			c.Bound = false
			changed = append(changed, c)
		}
	}
	return changed
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
