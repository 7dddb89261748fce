package swing

import "math"

// Integrator advances the free entities of a scene once per frame.
type Integrator interface {
	// Step advances every entity for which held returns false.
	Step(dt float64, held func(EntityID) bool)
	// Released is called after a device lets go of id.
	Released(id EntityID)
}

// ReleaseMode decides what a pendulum keeps when it is let go.
type ReleaseMode string

const (
	// ReleaseResetMotion zeroes velocity and acceleration; the pendulum
	// restarts from rest at the angle it was frozen at.
	ReleaseResetMotion ReleaseMode = "reset"
	// ReleaseKeepMotion resumes with the velocity it had when grabbed.
	ReleaseKeepMotion ReleaseMode = "keep"
)

// PendulumIntegrator is an explicit-Euler damped pendulum solver over a
// MeshRegistry:
//
//	acc = -(g / L) * sin(angle)
//	vel = (vel + acc*dt) * damping
//	angle += vel * dt
//
// There is no small-angle approximation and no coupling between pendulums.
type PendulumIntegrator struct {
	Meshes  *MeshRegistry
	Gravity float64
	Damping float64
	Release ReleaseMode
}

// NewPendulumIntegrator returns an integrator with the settings from cfg.
func NewPendulumIntegrator(meshes *MeshRegistry, cfg Config) *PendulumIntegrator {
	return &PendulumIntegrator{
		Meshes:  meshes,
		Gravity: cfg.Gravity,
		Damping: cfg.Damping,
		Release: cfg.Release,
	}
}

// Configure picks up gravity, damping and release mode from cfg.
func (pi *PendulumIntegrator) Configure(cfg Config) {
	pi.Gravity = cfg.Gravity
	pi.Damping = cfg.Damping
	pi.Release = cfg.Release
}

// Step implements Integrator. Held pendulums are skipped entirely.
func (pi *PendulumIntegrator) Step(dt float64, held func(EntityID) bool) {
	for i, p := range pi.Meshes.pendulums {
		if held != nil && held(EntityID(i)) {
			continue
		}
		stepPendulum(p, pi.Gravity, pi.Damping, dt)
	}
}

// Released implements Integrator.
func (pi *PendulumIntegrator) Released(id EntityID) {
	if pi.Release == ReleaseKeepMotion {
		return
	}
	p := pi.Meshes.pendulums[id]
	p.Velocity = 0
	p.Acceleration = 0
}

func stepPendulum(p *Pendulum, gravity, damping, dt float64) {
	if p.Length <= 0 {
		return
	}
	p.Acceleration = -(gravity / p.Length) * math.Sin(p.Angle)
	p.Velocity += p.Acceleration * dt
	p.Velocity *= damping
	p.Angle += p.Velocity * dt
}

// StaticIntegrator never moves anything. Graph nodes only move when grabbed.
type StaticIntegrator struct{}

// Step implements Integrator.
func (StaticIntegrator) Step(float64, func(EntityID) bool) {}

// Released implements Integrator.
func (StaticIntegrator) Released(EntityID) {}
