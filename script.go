package swing

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned by LoadScript for a script with no steps.
var ErrEmptyScript = errors.New("script has no steps")

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action   string     `yaml:"action"`
	Device   string     `yaml:"device,omitempty"`
	Position [3]float64 `yaml:"position,omitempty"`
	Forward  [3]float64 `yaml:"forward,omitempty"`
	Frames   int        `yaml:"frames,omitempty"`
}

// script is the top-level YAML structure.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected device events across frames for demos and
// automated runs. Attach to a Scene via SetScriptRunner.
//
//	steps:
//	  - {action: pose, device: right, position: [0, 1.5, 0], forward: [0, 0, -1]}
//	  - {action: grab, device: right}
//	  - {action: wait, frames: 30}
//	  - {action: release, device: right}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML script and returns a ScriptRunner ready to be
// attached to a Scene via SetScriptRunner.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "pose", "grab", "release", "teleport":
			if _, ok := ParseDeviceID(st.Device); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown device %q", i, st.Device)
			}
		case "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the scene. The runner's step
// method is called at the start of Scene.Update each frame.
func (s *Scene) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	dev, _ := ParseDeviceID(st.Device)
	switch st.Action {
	case "pose":
		s.InjectPose(dev, Pose{
			Position: Vec3{st.Position[0], st.Position[1], st.Position[2]},
			Forward:  Vec3{st.Forward[0], st.Forward[1], st.Forward[2]},
		})
	case "grab":
		s.InjectGrab(dev)
	case "release":
		s.InjectRelease(dev)
	case "teleport":
		s.InjectTeleport(dev)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
