package swing

import (
	"fmt"
	"log/slog"
	"os"
)

// newLogger returns the scene's default logger: silent unless debug is on,
// then debug-level text lines on stderr.
func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("pkg", "swing")
}

// SetDebugMode enables or disables debug mode. When enabled, every ignored
// transition is logged and interaction invariants are checked after each
// frame.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if !s.customLog {
		s.log = newLogger(enabled)
	}
}

// SetLogger replaces the scene's logger. Passing nil restores the default.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		s.customLog = false
		s.log = newLogger(s.debug)
		return
	}
	s.customLog = true
	s.log = l
}

// CheckInvariants verifies that hold and hover bookkeeping agree:
// every holder points back at its entity, no entity has two holders, and no
// held entity is hovered or highlighted by hover.
func (s *Scene) CheckInvariants() error {
	var holds [NumDevices]EntityID
	for i := range s.devices {
		holds[i] = s.devices[i].held
	}
	for id, owner := range s.holder {
		eid := EntityID(id)
		if owner == NoDevice {
			for i, h := range holds {
				if h == eid {
					return fmt.Errorf("device %s holds free entity %d", DeviceID(i), eid)
				}
			}
			continue
		}
		if int(owner) >= NumDevices {
			return fmt.Errorf("entity %d has invalid holder %d", eid, owner)
		}
		if holds[owner] != eid {
			return fmt.Errorf("entity %d held by %s, which holds %d", eid, owner, holds[owner])
		}
		if s.hoverMask[id] != 0 {
			return fmt.Errorf("held entity %d is hovered (mask %03b)", eid, s.hoverMask[id])
		}
	}
	for i := range s.devices {
		d := &s.devices[i]
		if d.held != NoEntity && s.holder[d.held] != d.ID {
			return fmt.Errorf("device %s holds %d, but its holder is %s", d.ID, d.held, s.holder[d.held])
		}
		if d.hovered != NoEntity && s.hoverMask[d.hovered]&d.ID.bit() == 0 {
			return fmt.Errorf("device %s hover of %d missing from mask", d.ID, d.hovered)
		}
	}
	return nil
}
