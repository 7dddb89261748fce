package swing

// --- Handler registry ---

type handler struct {
	id uint32
	fn func(InteractionEvent)
}

type handlerRegistry struct {
	byType [numEventTypes][]handler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= numEventTypes {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			// Build a new slice: fire may be ranging over the old one.
			h.reg.byType[h.event] = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

func (s *Scene) on(event EventType, fn func(InteractionEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.byType[event] = append(s.handlers.byType[event], handler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// OnHoverEnter registers a callback fired when a device starts hovering an
// entity.
func (s *Scene) OnHoverEnter(fn func(InteractionEvent)) CallbackHandle {
	return s.on(EventHoverEnter, fn)
}

// OnHoverLeave registers a callback fired when a device stops hovering an
// entity, including when the entity is grabbed.
func (s *Scene) OnHoverLeave(fn func(InteractionEvent)) CallbackHandle {
	return s.on(EventHoverLeave, fn)
}

// OnGrab registers a callback fired after a successful grab.
func (s *Scene) OnGrab(fn func(InteractionEvent)) CallbackHandle {
	return s.on(EventGrab, fn)
}

// OnRelease registers a callback fired after a successful release.
func (s *Scene) OnRelease(fn func(InteractionEvent)) CallbackHandle {
	return s.on(EventRelease, fn)
}

// OnTeleport registers a callback fired when the rig teleports.
func (s *Scene) OnTeleport(fn func(InteractionEvent)) CallbackHandle {
	return s.on(EventTeleport, fn)
}

func (s *Scene) fire(ev InteractionEvent) {
	ev.Frame = s.frame
	for _, h := range s.handlers.byType[ev.Type] {
		h.fn(ev)
	}
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}

// --- Queries ---

// IsHeld reports whether any device holds id.
func (s *Scene) IsHeld(id EntityID) bool {
	return s.holder[id] != NoDevice
}

// Holder returns the device holding id, or NoDevice.
func (s *Scene) Holder(id EntityID) DeviceID {
	return s.holder[id]
}

// IsHovered reports whether any device hovers id.
func (s *Scene) IsHovered(id EntityID) bool {
	return s.hoverMask[id] != 0
}

// --- Hover resolution ---

// resolveHover casts the device's ray and updates its hover target, the
// entity highlight, the laser length, and fires a haptic pulse when the
// target changes.
func (s *Scene) resolveHover(d *Device) {
	if !d.Connected {
		if d.hovered != NoEntity {
			s.setHover(d, NoEntity, 0)
		}
		return
	}

	// A holding device doesn't hover; its laser reaches the held entity.
	if d.held != NoEntity {
		s.setHover(d, NoEntity, 0)
		d.laserLength = d.Pose.Position.Dist(s.registry.Position(d.held))
		return
	}

	ray := d.Ray()
	s.hitBuf = s.registry.Intersect(ray, d.MaxRange, s.hitBuf[:0])

	for i := range s.hitBuf {
		hit := &s.hitBuf[i]
		if s.holder[hit.Entity] != NoDevice {
			continue
		}
		s.setHover(d, hit.Entity, hit.Distance)
		d.laserLength = hit.Distance
		return
	}

	s.setHover(d, NoEntity, 0)
	d.laserLength = s.cfg.LaserDefault
}

// setHover moves a device's hover to id (NoEntity clears it). Highlights are
// shared: an entity stays highlighted while any device still hovers it.
func (s *Scene) setHover(d *Device, id EntityID, dist float64) {
	if id == d.hovered {
		d.hoverDistance = dist
		return
	}

	if prev := d.hovered; prev != NoEntity {
		d.hovered = NoEntity
		s.hoverMask[prev] &^= d.ID.bit()
		if s.hoverMask[prev] == 0 {
			s.registry.SetHighlight(prev, nil)
		}
		s.fire(InteractionEvent{Type: EventHoverLeave, Device: d.ID, Entity: prev, Position: s.registry.Position(prev)})
	}

	d.hovered = id
	d.hoverDistance = dist
	if id == NoEntity {
		return
	}

	s.hoverMask[id] |= d.ID.bit()
	hl := s.cfg.HighlightColor
	s.registry.SetHighlight(id, &hl)
	s.fire(InteractionEvent{Type: EventHoverEnter, Device: d.ID, Entity: id, Position: s.registry.Position(id), Distance: dist})
	s.pulse(d)
}

// pulse fires the hover haptic on a device. Missing or failing actuators are
// skipped.
func (s *Scene) pulse(d *Device) {
	if d.Actuator == nil {
		s.log.Debug("haptics not available", "device", d.ID)
		return
	}
	if err := d.Actuator.Pulse(s.cfg.HapticIntensity, s.cfg.HapticDuration()); err != nil {
		s.log.Debug("haptic pulse failed", "device", d.ID, "err", err)
	}
}

// --- Grab / release ---

// Grab tries to take hold of the entity the device is hovering. It fails,
// without changing any state, when the device is disconnected, already holds
// something, hovers nothing, or the target is held by another device.
func (s *Scene) Grab(id DeviceID) bool {
	d := s.Device(id)
	switch {
	case !d.Connected:
		s.log.Debug("grab ignored: device not connected", "device", id)
		return false
	case d.held != NoEntity:
		s.log.Debug("grab ignored: device already holding", "device", id, "entity", d.held)
		return false
	case d.hovered == NoEntity:
		s.log.Debug("grab ignored: nothing hovered", "device", id)
		return false
	}

	target := d.hovered
	if owner := s.holder[target]; owner != NoDevice {
		s.log.Debug("grab ignored: entity held", "device", id, "entity", target, "holder", owner)
		return false
	}

	// Held entities leave hover candidacy for every device.
	for i := range s.devices {
		if s.devices[i].hovered == target {
			s.setHover(&s.devices[i], NoEntity, 0)
		}
	}

	pos := s.registry.Position(target)
	s.holder[target] = id
	d.held = target
	d.grabHeight = pos.Y
	s.log.Debug("grabbed", "device", id, "entity", target)
	s.fire(InteractionEvent{Type: EventGrab, Device: id, Entity: target, Position: pos})
	return true
}

// Release lets go of the device's held entity. A device that holds nothing
// changes nothing.
func (s *Scene) Release(id DeviceID) bool {
	d := s.Device(id)
	target := d.held
	if target == NoEntity {
		s.log.Debug("release ignored: device holds nothing", "device", id)
		return false
	}

	s.holder[target] = NoDevice
	d.held = NoEntity
	s.integrator.Released(target)
	s.log.Debug("released", "device", id, "entity", target)
	s.fire(InteractionEvent{Type: EventRelease, Device: id, Entity: target, Position: s.registry.Position(target)})
	return true
}

// --- Held-entity synchronization ---

// syncHeld pulls every held entity toward its device by Config.GrabLerp.
func (s *Scene) syncHeld() {
	for i := range s.devices {
		d := &s.devices[i]
		if d.held == NoEntity {
			continue
		}
		pos := s.registry.Position(d.held)
		target, ok := s.followTarget(d)
		if !ok {
			continue
		}
		s.registry.SetPosition(d.held, pos.Lerp(target, s.cfg.GrabLerp))
	}
}

// followTarget returns the point a held entity is pulled toward.
func (s *Scene) followTarget(d *Device) (Vec3, bool) {
	if d.Follow == FollowDragPlane {
		ray := d.Ray()
		t, ok := ray.IntersectHorizontal(d.grabHeight)
		if !ok {
			return Vec3{}, false
		}
		p := ray.At(t)
		p.Y += s.cfg.DragLift
		return p, true
	}
	return d.Pose.Position, true
}

// --- Teleport ---

// Teleport moves the rig's horizontal position to Config.TeleportDistance
// along the device's ray, keeping the current eye height.
func (s *Scene) Teleport(id DeviceID) bool {
	d := s.Device(id)
	if !d.Connected {
		s.log.Debug("teleport ignored: device not connected", "device", id)
		return false
	}
	dest := d.Ray().At(s.cfg.TeleportDistance)
	s.rig.TeleportTo(dest.X, dest.Z, s.cfg.TeleportDuration)
	dest.Y = s.rig.Position.Y
	s.fire(InteractionEvent{Type: EventTeleport, Device: id, Entity: NoEntity, Position: dest})
	return true
}
