package swing

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a scene. Start from DefaultConfig and
// override fields, or load a TOML/YAML file on top of the defaults with
// LoadConfig.
type Config struct {
	// Interaction
	GrabLerp        float64 `toml:"grab_lerp" yaml:"grab_lerp"`               // interpolation factor per frame, (0, 1]
	DragLift        float64 `toml:"drag_lift" yaml:"drag_lift"`               // height added above the drag plane
	ControllerRange float64 `toml:"controller_range" yaml:"controller_range"` // max ray distance for VR controllers
	MouseRange      float64 `toml:"mouse_range" yaml:"mouse_range"`           // max ray distance for the mouse
	LaserDefault    float64 `toml:"laser_default" yaml:"laser_default"`       // laser length when nothing is hit
	HighlightColor  Color   `toml:"highlight_color" yaml:"highlight_color"`
	HapticIntensity float64 `toml:"haptic_intensity" yaml:"haptic_intensity"` // [0, 1]
	HapticMillis    float64 `toml:"haptic_ms" yaml:"haptic_ms"`

	// Pendulum physics
	Gravity      float64     `toml:"gravity" yaml:"gravity"`
	ArmLength    float64     `toml:"arm_length" yaml:"arm_length"`
	Damping      float64     `toml:"damping" yaml:"damping"`
	InitialAngle float64     `toml:"initial_angle" yaml:"initial_angle"`
	Release      ReleaseMode `toml:"release" yaml:"release"`
	FixedStep    bool        `toml:"fixed_step" yaml:"fixed_step"` // use StepSize instead of the measured frame time
	StepSize     float64     `toml:"step_size" yaml:"step_size"`
	MaxStep      float64     `toml:"max_step" yaml:"max_step"` // clamp for measured frame time

	// Scene layout
	PendulumCount   int     `toml:"pendulum_count" yaml:"pendulum_count"`
	PendulumSpacing float64 `toml:"pendulum_spacing" yaml:"pendulum_spacing"`
	GraphNodes      int     `toml:"graph_nodes" yaml:"graph_nodes"`
	GraphLinks      int     `toml:"graph_links" yaml:"graph_links"`
	GraphExtent     float64 `toml:"graph_extent" yaml:"graph_extent"`
	PointTolerance  float64 `toml:"point_tolerance" yaml:"point_tolerance"`
	Seed            uint64  `toml:"seed" yaml:"seed"`

	// Locomotion
	EyeHeight        float64 `toml:"eye_height" yaml:"eye_height"`
	MoveSpeed        float64 `toml:"move_speed" yaml:"move_speed"`             // keyboard, units per frame
	LookSensitivity  float64 `toml:"look_sensitivity" yaml:"look_sensitivity"` // radians per pixel
	TurnSpeed        float64 `toml:"turn_speed" yaml:"turn_speed"`             // thumbstick yaw, radians per frame
	StickSpeed       float64 `toml:"stick_speed" yaml:"stick_speed"`           // thumbstick move, units per frame
	DeadZone         float64 `toml:"dead_zone" yaml:"dead_zone"`
	TeleportDistance float64 `toml:"teleport_distance" yaml:"teleport_distance"`
	TeleportDuration float64 `toml:"teleport_duration" yaml:"teleport_duration"` // seconds; 0 jumps instantly
}

// DefaultConfig returns the stock demo settings.
func DefaultConfig() Config {
	return Config{
		GrabLerp:        0.8,
		DragLift:        0.5,
		ControllerRange: 10,
		MouseRange:      1000,
		LaserDefault:    10,
		HighlightColor:  ColorRed,
		HapticIntensity: 1.0,
		HapticMillis:    50,

		Gravity:      9.81,
		ArmLength:    2,
		Damping:      0.995,
		InitialAngle: math.Pi / 4,
		Release:      ReleaseResetMotion,
		FixedStep:    true,
		StepSize:     0.016,
		MaxStep:      0.05,

		PendulumCount:   5,
		PendulumSpacing: 1.5,
		GraphNodes:      30,
		GraphLinks:      40,
		GraphExtent:     2,
		PointTolerance:  DefaultPointTolerance,
		Seed:            1,

		EyeHeight:        1.6,
		MoveSpeed:        0.1,
		LookSensitivity:  0.002,
		TurnSpeed:        0.03,
		StickSpeed:       0.05,
		DeadZone:         0.1,
		TeleportDistance: 3,
	}
}

// HapticDuration returns the hover pulse length.
func (c Config) HapticDuration() time.Duration {
	return time.Duration(c.HapticMillis * float64(time.Millisecond))
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.GrabLerp <= 0 || c.GrabLerp > 1:
		return fmt.Errorf("%w: grab_lerp %v not in (0, 1]", ErrInvalidConfig, c.GrabLerp)
	case c.ControllerRange <= 0 || c.MouseRange <= 0:
		return fmt.Errorf("%w: ray ranges must be positive", ErrInvalidConfig)
	case c.HapticIntensity < 0 || c.HapticIntensity > 1:
		return fmt.Errorf("%w: haptic_intensity %v not in [0, 1]", ErrInvalidConfig, c.HapticIntensity)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping %v not in (0, 1]", ErrInvalidConfig, c.Damping)
	case c.ArmLength <= 0:
		return fmt.Errorf("%w: arm_length must be positive", ErrInvalidConfig)
	case c.StepSize <= 0 || c.MaxStep <= 0:
		return fmt.Errorf("%w: step sizes must be positive", ErrInvalidConfig)
	case c.Release != ReleaseResetMotion && c.Release != ReleaseKeepMotion:
		return fmt.Errorf("%w: release %q must be %q or %q", ErrInvalidConfig, c.Release, ReleaseResetMotion, ReleaseKeepMotion)
	case c.PendulumCount < 0 || c.GraphNodes < 0 || c.GraphLinks < 0:
		return fmt.Errorf("%w: entity counts must not be negative", ErrInvalidConfig)
	case c.DeadZone < 0 || c.DeadZone >= 1:
		return fmt.Errorf("%w: dead_zone %v not in [0, 1)", ErrInvalidConfig, c.DeadZone)
	case c.TeleportDuration < 0:
		return fmt.Errorf("%w: teleport_duration must not be negative", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file over
// DefaultConfig and validates the result. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := decodeConfig(filepath.Ext(path), data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}
