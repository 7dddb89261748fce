// Package swing is the interaction core of an immersive physics playground:
// a handful of manipulable entities (swinging pendulums or a node graph)
// that a desktop mouse and up to two tracked VR controllers can point at,
// highlight, grab, drag and release.
//
// The package is renderer-agnostic. Frontends (the Ebitengine window in
// swing/view, the terminal viewer in swing/term) translate their input into
// a [FrameInput], call [Scene.Update] once per frame, and draw from the
// registry and device state afterwards.
//
// # Quick start
//
//	scene, meshes, err := swing.NewPendulumScene(swing.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	scene.Connect(swing.DeviceMouse, nil)
//	scene.OnGrab(func(ev swing.InteractionEvent) {
//		fmt.Println(ev.Device, "grabbed", meshes.Pendulum(ev.Entity).Name)
//	})
//
//	// every frame
//	in := swing.FrameInput{Dt: dt}
//	in.Poses[swing.DeviceMouse] = swing.PoseInput{Valid: true, Connected: true, Pose: pose}
//	scene.Update(in)
//
// # Entities
//
// Entities are dense [EntityID] values owned by a [Registry]. Two
// representations are provided: [MeshRegistry] keeps each pendulum as its own
// pivot/arm/bob hierarchy, and [PointCloud] keeps every graph node in one
// shared position buffer with a parallel color buffer. Hits on either are
// resolved back to the owning entity before the interaction core sees them.
// A [Graph] derives link segments from node positions after every frame.
//
// # Interaction
//
// Every frame each connected [Device] casts a ray from its [Pose]. The first
// hit that no device holds becomes the device's hover target: it is tinted
// with Config.HighlightColor and the device's [HapticActuator] pulses once
// per target change. [Scene.Grab] binds the hovered entity to the device;
// while held the entity is pulled toward the device by Config.GrabLerp each
// frame and skipped by the [Integrator]. [Scene.Release] returns it to the
// simulation. An entity has at most one holder at any time.
//
// Events are delivered to callbacks registered with [Scene.OnHoverEnter],
// [Scene.OnHoverLeave], [Scene.OnGrab], [Scene.OnRelease] and
// [Scene.OnTeleport], and to an optional [EntityStore] (see swing/ecs for
// the Donburi adapter).
//
// # Locomotion
//
// The [Rig] is the viewpoint. Keyboard axes and mouse-look move it on the
// desktop; controller thumbsticks turn (left hand) and move (right hand) it
// in VR. [Scene.Teleport] jumps or eases (via [gween]) the rig along a
// device ray.
//
// # Scripting
//
// Synthetic device events can be queued with [Scene.InjectPose],
// [Scene.InjectGrab] and friends, or played from a YAML file with
// [LoadScript] and [Scene.SetScriptRunner].
//
// # Configuration and debugging
//
// [Config] holds every tunable; [LoadConfig] reads TOML or YAML on top of
// [DefaultConfig]; [Scene.SetConfig] swaps tunables while running.
// [Scene.SetDebugMode] turns on structured debug logs for
// ignored transitions and checks the hold/hover invariants after each
// frame.
//
// [gween]: https://github.com/tanema/gween
package swing
