package swing

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data to callbacks and the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	Device   DeviceID
	Entity   EntityID // NoEntity for EventTeleport
	Position Vec3     // entity position, or the rig's destination for EventTeleport
	Distance float64  // hover ray distance (EventHoverEnter only)
	Frame    uint64
}

// PoseInput is one device's pose for a frame. Entries with Valid == false
// leave the device untouched.
type PoseInput struct {
	Valid     bool
	Connected bool
	Pose      Pose
}

// Axes holds keyboard movement state, each in {-1, 0, 1}.
type Axes struct {
	Forward float64
	Right   float64
}

// FrameInput is everything the input adapter collected for one frame.
type FrameInput struct {
	// Dt is the measured frame time in seconds. Ignored when
	// Config.FixedStep is set.
	Dt     float64
	Poses  [NumDevices]PoseInput
	Move   Axes
	Look   Vec2             // mouse-look delta in pixels
	Sticks [NumDevices]Vec2 // thumbstick axes per device, Y down
}

// Scene is the top-level object that owns the entity registry, devices,
// interaction state, integrator and viewpoint rig.
type Scene struct {
	cfg        Config
	registry   Registry
	integrator Integrator
	graph      *Graph
	rig        *Rig

	devices   [NumDevices]Device
	holder    []DeviceID // per entity, NoDevice when free
	hoverMask []uint8    // per entity, bit per hovering device

	handlers    handlerRegistry
	store       EntityStore
	injectQueue []syntheticEvent
	runner      *ScriptRunner

	log       *slog.Logger
	customLog bool
	debug     bool

	hitBuf []Intersection
	frame  uint64
}

// NewScene creates a scene over reg. A nil integrator means nothing moves
// unless grabbed.
func NewScene(cfg Config, reg Registry, integrator Integrator) (*Scene, error) {
	if reg == nil {
		panic("swing: nil registry")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	if integrator == nil {
		integrator = StaticIntegrator{}
	}
	n := reg.Len()
	s := &Scene{
		cfg:        cfg,
		registry:   reg,
		integrator: integrator,
		rig:        NewRig(Vec3{0, cfg.EyeHeight, 5}),
		holder:     make([]DeviceID, n),
		hoverMask:  make([]uint8, n),
		log:        newLogger(false),
	}
	for i := range s.holder {
		s.holder[i] = NoDevice
	}
	for i := range s.devices {
		s.devices[i] = newDevice(DeviceID(i), cfg)
	}
	return s, nil
}

// NewPendulumScene builds the pendulum variant: Config.PendulumCount
// pendulums in a row at height 2, two units in front of the origin.
func NewPendulumScene(cfg Config) (*Scene, *MeshRegistry, error) {
	pendulums := make([]*Pendulum, cfg.PendulumCount)
	start := -float64(cfg.PendulumCount-1) * cfg.PendulumSpacing / 2
	for i := range pendulums {
		pivot := Vec3{start + float64(i)*cfg.PendulumSpacing, 2, -2}
		pendulums[i] = NewPendulum(fmt.Sprintf("pendulum%d", i), pivot, cfg.ArmLength, cfg.InitialAngle)
	}
	meshes := NewMeshRegistry(pendulums...)
	s, err := NewScene(cfg, meshes, NewPendulumIntegrator(meshes, cfg))
	if err != nil {
		return nil, nil, err
	}
	return s, meshes, nil
}

// NewGraphScene builds the graph variant: Config.GraphNodes points placed at
// random (seeded by Config.Seed) in a single point cloud, joined by
// Config.GraphLinks links.
func NewGraphScene(cfg Config) (*Scene, *PointCloud, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	points, pairs := RandomLayout(rng, cfg.GraphNodes, cfg.GraphLinks, Vec3{0, 1.6, -3}, cfg.GraphExtent)
	colors := make([]Color, len(points))
	for i := range colors {
		colors[i] = Color{0.4 + 0.6*rng.Float64(), 0.4 + 0.6*rng.Float64(), 0.4 + 0.6*rng.Float64(), 1}
	}
	cloud := NewPointCloud(points, colors, cfg.PointTolerance)
	s, err := NewScene(cfg, cloud, StaticIntegrator{})
	if err != nil {
		return nil, nil, err
	}
	s.SetGraph(NewGraph(cloud, pairs))
	return s, cloud, nil
}

// Config returns the scene's settings.
func (s *Scene) Config() Config {
	return s.cfg
}

// SetConfig swaps in new tunables at runtime, e.g. after the settings file
// changed. The scene layout (entity counts, spacing, arm length, seed) was
// fixed when the scene was built and keeps its current values.
func (s *Scene) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("set config: %w", err)
	}
	cfg.PendulumCount = s.cfg.PendulumCount
	cfg.PendulumSpacing = s.cfg.PendulumSpacing
	cfg.ArmLength = s.cfg.ArmLength
	cfg.InitialAngle = s.cfg.InitialAngle
	cfg.GraphNodes = s.cfg.GraphNodes
	cfg.GraphLinks = s.cfg.GraphLinks
	cfg.GraphExtent = s.cfg.GraphExtent
	cfg.PointTolerance = s.cfg.PointTolerance
	cfg.Seed = s.cfg.Seed
	s.cfg = cfg

	for i := range s.devices {
		d := &s.devices[i]
		if d.ID == DeviceMouse {
			d.MaxRange = cfg.MouseRange
		} else {
			d.MaxRange = cfg.ControllerRange
		}
	}
	if c, ok := s.integrator.(interface{ Configure(Config) }); ok {
		c.Configure(cfg)
	}
	s.log.Debug("config updated")
	return nil
}

// Registry returns the entity registry.
func (s *Scene) Registry() Registry {
	return s.registry
}

// Rig returns the viewpoint rig.
func (s *Scene) Rig() *Rig {
	return s.rig
}

// Graph returns the link graph, or nil for scenes without links.
func (s *Scene) Graph() *Graph {
	return s.graph
}

// SetGraph attaches link data that is recomputed after every position write.
func (s *Scene) SetGraph(g *Graph) {
	s.graph = g
}

// Device returns the device in slot id.
func (s *Scene) Device(id DeviceID) *Device {
	if int(id) >= NumDevices {
		panic("swing: device id out of range")
	}
	return &s.devices[id]
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// Connect marks a device as paired and attaches its haptics (nil for none).
func (s *Scene) Connect(id DeviceID, actuator HapticActuator) {
	d := s.Device(id)
	d.Connected = true
	d.Actuator = actuator
	s.log.Debug("device connected", "device", id, "haptics", actuator != nil)
}

// Disconnect unpairs a device. Anything it holds is released and its hover
// is cleared.
func (s *Scene) Disconnect(id DeviceID) {
	d := s.Device(id)
	if d.held != NoEntity {
		s.Release(id)
	}
	s.setHover(d, NoEntity, 0)
	d.Connected = false
	d.laserLength = s.cfg.LaserDefault
	s.log.Debug("device disconnected", "device", id)
}

// SetPose updates a device's world pose.
func (s *Scene) SetPose(id DeviceID, pose Pose) {
	s.Device(id).Pose = pose
}

// Update runs one frame: synthetic input, poses, locomotion, hover for every
// device, held-entity synchronization, derived link data, and the motion
// integrator, in that order.
func (s *Scene) Update(in FrameInput) {
	dt := s.stepSize(in.Dt)

	if s.runner != nil {
		s.runner.step(s)
	}

	for i := range in.Poses {
		p := in.Poses[i]
		if !p.Valid {
			continue
		}
		id := DeviceID(i)
		if p.Connected != s.devices[i].Connected {
			if p.Connected {
				s.Connect(id, s.devices[i].Actuator)
			} else {
				s.Disconnect(id)
			}
		}
		s.devices[i].Pose = p.Pose
	}
	s.processInjected()

	s.rig.update(in, dt, s.cfg)

	for i := range s.devices {
		s.resolveHover(&s.devices[i])
	}

	s.syncHeld()
	if s.graph != nil {
		s.graph.UpdateLinks()
	}

	s.integrator.Step(dt, s.IsHeld)

	s.frame++
	if s.debug {
		if err := s.CheckInvariants(); err != nil {
			s.log.Error("interaction invariant violated", "frame", s.frame, "err", err)
		}
	}
}

// stepSize picks the integration step for this frame.
func (s *Scene) stepSize(measured float64) float64 {
	if s.cfg.FixedStep || measured <= 0 {
		return s.cfg.StepSize
	}
	if measured > s.cfg.MaxStep {
		return s.cfg.MaxStep
	}
	return measured
}
