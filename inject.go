package swing

type syntheticKind uint8

const (
	synthPose syntheticKind = iota
	synthGrab
	synthRelease
	synthTeleport
)

// syntheticEvent represents a single injected device action.
type syntheticEvent struct {
	kind   syntheticKind
	device DeviceID
	pose   Pose
}

// InjectPose queues a pose for a device. The device is connected when the
// event is consumed if it is not already. Injected poses override the pose
// from FrameInput for that frame.
func (s *Scene) InjectPose(id DeviceID, pose Pose) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthPose, device: id, pose: pose})
}

// InjectGrab queues a grab attempt. The event is consumed on the next
// frame, before hover is resolved, so it acts on the previous frame's hover.
func (s *Scene) InjectGrab(id DeviceID) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthGrab, device: id})
}

// InjectRelease queues a release.
func (s *Scene) InjectRelease(id DeviceID) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthRelease, device: id})
}

// InjectTeleport queues a teleport along the device's ray.
func (s *Scene) InjectTeleport(id DeviceID) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthTeleport, device: id})
}

// InjectDrag queues a grab at from, frames-2 poses linearly interpolated
// toward to, and a release at to. The hand keeps its forward direction.
// The sequence consumes frames+2 frames. Minimum frames is 2.
func (s *Scene) InjectDrag(id DeviceID, from, to Pose, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPose(id, from)
	s.InjectGrab(id)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectPose(id, Pose{Position: from.Position.Lerp(to.Position, t), Forward: from.Forward.Lerp(to.Forward, t)})
	}
	s.InjectPose(id, to)
	s.InjectRelease(id)
}

// Pending returns the number of queued synthetic events.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (s *Scene) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if int(evt.device) >= NumDevices {
		s.log.Debug("synthetic event dropped: bad device", "device", evt.device)
		return true
	}
	switch evt.kind {
	case synthPose:
		if !s.devices[evt.device].Connected {
			s.Connect(evt.device, s.devices[evt.device].Actuator)
		}
		s.devices[evt.device].Pose = evt.pose
	case synthGrab:
		s.Grab(evt.device)
	case synthRelease:
		s.Release(evt.device)
	case synthTeleport:
		s.Teleport(evt.device)
	}
	return true
}
