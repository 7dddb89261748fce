package swing

import "math"

const (
	defaultPivotRadius = 0.05
	defaultArmRadius   = 0.02
	defaultBobRadius   = 0.3
)

// Pendulum is a pivot/arm/bob hierarchy. The pivot is the entity position;
// the arm and bob hang below it, rotated about Z by Angle.
type Pendulum struct {
	Name string

	// Transform
	Pivot  Vec3
	Length float64

	// Angular state, advanced by PendulumIntegrator.
	Angle        float64
	Velocity     float64
	Acceleration float64

	// Collision radii
	PivotRadius float64
	ArmRadius   float64
	BobRadius   float64

	// Emissive is the bob's current glow; baseEmissive is restored when a
	// highlight is cleared.
	Emissive     Color
	baseEmissive Color
	highlighted  bool
}

// NewPendulum creates a pendulum hanging from pivot with the given arm length
// and starting angle.
func NewPendulum(name string, pivot Vec3, length, angle float64) *Pendulum {
	return &Pendulum{
		Name:         name,
		Pivot:        pivot,
		Length:       length,
		Angle:        angle,
		PivotRadius:  defaultPivotRadius,
		ArmRadius:    defaultArmRadius,
		BobRadius:    defaultBobRadius,
		Emissive:     ColorBlack,
		baseEmissive: ColorBlack,
	}
}

// SetBaseEmissive sets the stored original emissive. The current emissive
// follows unless the bob is highlighted.
func (p *Pendulum) SetBaseEmissive(c Color) {
	p.baseEmissive = c
	if !p.highlighted {
		p.Emissive = c
	}
}

// BaseEmissive returns the color restored when a highlight clears.
func (p *Pendulum) BaseEmissive() Color {
	return p.baseEmissive
}

// Highlighted reports whether a hover highlight is applied.
func (p *Pendulum) Highlighted() bool {
	return p.highlighted
}

// Bob returns the bob's world position.
func (p *Pendulum) Bob() Vec3 {
	sin, cos := math.Sincos(p.Angle)
	return p.Pivot.Add(Vec3{p.Length * sin, -p.Length * cos, 0})
}

// MeshRegistry stores pendulums as individually meshed objects. Each of the
// three parts is its own collision target.
type MeshRegistry struct {
	pendulums []*Pendulum
}

// NewMeshRegistry creates a registry over the given pendulums. Entity IDs
// follow slice order.
func NewMeshRegistry(pendulums ...*Pendulum) *MeshRegistry {
	return &MeshRegistry{pendulums: pendulums}
}

// Pendulum returns the pendulum for id.
func (m *MeshRegistry) Pendulum(id EntityID) *Pendulum {
	return m.pendulums[id]
}

// Pendulums returns all pendulums. The returned slice MUST NOT be mutated.
func (m *MeshRegistry) Pendulums() []*Pendulum {
	return m.pendulums
}

// Len implements Registry.
func (m *MeshRegistry) Len() int {
	return len(m.pendulums)
}

// Position implements Registry.
func (m *MeshRegistry) Position(id EntityID) Vec3 {
	return m.pendulums[id].Pivot
}

// SetPosition implements Registry.
func (m *MeshRegistry) SetPosition(id EntityID, pos Vec3) {
	m.pendulums[id].Pivot = pos
}

// SetHighlight implements Registry. The highlight lands on the bob's emissive.
func (m *MeshRegistry) SetHighlight(id EntityID, c *Color) {
	p := m.pendulums[id]
	if c == nil {
		p.Emissive = p.baseEmissive
		p.highlighted = false
		return
	}
	p.Emissive = *c
	p.highlighted = true
}

// Intersect implements Registry. Every part of every pendulum is tested.
func (m *MeshRegistry) Intersect(r Ray, far float64, buf []Intersection) []Intersection {
	buf = buf[:0]
	for i, p := range m.pendulums {
		id := EntityID(i)
		bob := p.Bob()
		buf = appendHit(buf, r, far, id, PartPivot, HitSphere{Center: p.Pivot, Radius: p.PivotRadius})
		buf = appendHit(buf, r, far, id, PartArm, HitCapsule{A: p.Pivot, B: bob, Radius: p.ArmRadius})
		buf = appendHit(buf, r, far, id, PartBob, HitSphere{Center: bob, Radius: p.BobRadius})
	}
	sortIntersections(buf)
	return buf
}

func appendHit(buf []Intersection, r Ray, far float64, id EntityID, part Part, shape HitShape) []Intersection {
	t, ok := shape.Intersect(r)
	if !ok || t > far {
		return buf
	}
	return append(buf, Intersection{
		Entity:   id,
		Part:     part,
		Index:    int(id),
		Distance: t,
		Point:    r.At(t),
	})
}
