package swing

import "time"

// HapticActuator drives a device's rumble motor (or any stand-in feedback).
type HapticActuator interface {
	// Pulse fires a single vibration. intensity is in [0, 1].
	Pulse(intensity float64, d time.Duration) error
}

// Device is one input source: the mouse or a VR controller. Pose and
// connection state are written by the input adapter each frame; hover, hold
// and laser state are owned by the scene and only readable here.
type Device struct {
	ID         DeviceID
	Handedness string // "left", "right", or "" for the mouse
	Connected  bool
	Pose       Pose

	// MaxRange limits the hover ray.
	MaxRange float64
	// Follow selects where a held entity is pulled.
	Follow FollowMode
	// Actuator is nil when the device has no haptics.
	Actuator HapticActuator

	hovered       EntityID
	hoverDistance float64
	held          EntityID
	grabHeight    float64
	laserLength   float64
}

func newDevice(id DeviceID, cfg Config) Device {
	d := Device{
		ID:          id,
		MaxRange:    cfg.ControllerRange,
		Follow:      FollowDevice,
		hovered:     NoEntity,
		held:        NoEntity,
		laserLength: cfg.LaserDefault,
	}
	switch id {
	case DeviceMouse:
		d.MaxRange = cfg.MouseRange
		d.Follow = FollowDragPlane
	case DeviceLeft:
		d.Handedness = "left"
	case DeviceRight:
		d.Handedness = "right"
	}
	return d
}

// Hovered returns the entity under the device's ray, or NoEntity.
func (d *Device) Hovered() EntityID {
	return d.hovered
}

// HoverDistance returns the ray distance to the hovered entity. Only
// meaningful while Hovered() != NoEntity.
func (d *Device) HoverDistance() float64 {
	return d.hoverDistance
}

// Held returns the entity this device holds, or NoEntity.
func (d *Device) Held() EntityID {
	return d.held
}

// LaserLength is the length of the device's visible ray: the last hit
// distance, or the configured default when nothing is hit.
func (d *Device) LaserLength() float64 {
	return d.laserLength
}

// Ray returns the device's pointing ray.
func (d *Device) Ray() Ray {
	return d.Pose.Ray()
}
