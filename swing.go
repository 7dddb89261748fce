package swing

import (
	"math"
	"strconv"
)

// Color represents an RGBA color with components in [0, 1].
type Color struct {
	R float64 `toml:"r" yaml:"r"`
	G float64 `toml:"g" yaml:"g"`
	B float64 `toml:"b" yaml:"b"`
	A float64 `toml:"a" yaml:"a"`
}

// ColorBlack is the default emissive value (no glow).
var ColorBlack = Color{0, 0, 0, 1}

// ColorRed is the default hover highlight.
var ColorRed = Color{1, 0, 0, 1}

// Vec2 is a 2D vector used for thumbstick axes and look deltas.
type Vec2 struct {
	X, Y float64
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// EntityID identifies a manipulable entity. IDs are dense indices into the
// scene's registry, assigned once at construction.
type EntityID int

// NoEntity marks the absence of an entity (nothing hovered, nothing held).
const NoEntity EntityID = -1

// DeviceID identifies an input source. Devices are processed every frame in
// ascending ID order.
type DeviceID uint8

const (
	DeviceMouse DeviceID = iota // desktop mouse + keyboard
	DeviceLeft                  // left VR controller
	DeviceRight                 // right VR controller

	// NumDevices is the fixed number of device slots in a scene.
	NumDevices = 3
)

// NoDevice marks an entity that no device holds.
const NoDevice DeviceID = 255

var deviceNames = [NumDevices]string{"mouse", "left", "right"}

// String returns the lowercase device name ("mouse", "left", "right").
func (d DeviceID) String() string {
	if int(d) < NumDevices {
		return deviceNames[d]
	}
	if d == NoDevice {
		return "none"
	}
	return "device(" + strconv.Itoa(int(d)) + ")"
}

// ParseDeviceID maps a device name back to its ID.
func ParseDeviceID(name string) (DeviceID, bool) {
	for i, n := range deviceNames {
		if n == name {
			return DeviceID(i), true
		}
	}
	return NoDevice, false
}

func (d DeviceID) bit() uint8 {
	return 1 << d
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventHoverEnter EventType = iota // a device's ray starts targeting a free entity
	EventHoverLeave                  // a device's ray stops targeting an entity
	EventGrab                        // a device takes hold of an entity
	EventRelease                     // a device lets go of its entity
	EventTeleport                    // the viewpoint jumps along a device's ray

	numEventTypes
)

var eventNames = [numEventTypes]string{"hover-enter", "hover-leave", "grab", "release", "teleport"}

func (e EventType) String() string {
	if e < numEventTypes {
		return eventNames[e]
	}
	return "event(" + strconv.Itoa(int(e)) + ")"
}

// FollowMode selects where a held entity is pulled each frame.
type FollowMode uint8

const (
	// FollowDevice pulls the entity toward the device's world position.
	FollowDevice FollowMode = iota
	// FollowDragPlane pulls the entity toward the point where the device ray
	// crosses the horizontal plane at grab height, lifted by Config.DragLift.
	FollowDragPlane
)
