package ecs

import (
	"github.com/phanxgames/swing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for swing interaction events.
var InteractionEventType = events.NewEventType[swing.InteractionEvent]()

// InteractionData is the mirrored hold/hover state of one swing entity.
type InteractionData struct {
	Entity    swing.EntityID
	Holder    swing.DeviceID // swing.NoDevice when free
	HoverMask uint8          // bit per hovering device
}

// Interaction is the component attached to mirrored entities.
var Interaction = donburi.NewComponentType[InteractionData]()

var interactionQuery = donburi.NewQuery(filter.Contains(Interaction))

// DonburiStore is a swing.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world  donburi.World
	mirror map[swing.EntityID]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, mirror: make(map[swing.EntityID]donburi.Entity)}
}

// EmitEvent implements swing.EntityStore.
func (s *DonburiStore) EmitEvent(event swing.InteractionEvent) {
	if event.Entity != swing.NoEntity {
		s.apply(event)
	}
	InteractionEventType.Publish(s.world, event)
}

func (s *DonburiStore) apply(event swing.InteractionEvent) {
	data := Interaction.Get(s.entry(event.Entity))
	bit := uint8(1) << event.Device
	switch event.Type {
	case swing.EventHoverEnter:
		data.HoverMask |= bit
	case swing.EventHoverLeave:
		data.HoverMask &^= bit
	case swing.EventGrab:
		data.Holder = event.Device
	case swing.EventRelease:
		data.Holder = swing.NoDevice
	}
}

func (s *DonburiStore) entry(id swing.EntityID) *donburi.Entry {
	if e, ok := s.mirror[id]; ok && s.world.Valid(e) {
		return s.world.Entry(e)
	}
	e := s.world.Create(Interaction)
	entry := s.world.Entry(e)
	Interaction.SetValue(entry, InteractionData{Entity: id, Holder: swing.NoDevice})
	s.mirror[id] = e
	return entry
}

// Held returns every mirrored swing entity that currently has a holder.
func Held(world donburi.World) []swing.EntityID {
	var ids []swing.EntityID
	interactionQuery.Each(world, func(entry *donburi.Entry) {
		if d := Interaction.Get(entry); d.Holder != swing.NoDevice {
			ids = append(ids, d.Entity)
		}
	})
	return ids
}
