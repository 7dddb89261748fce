// Package cli holds the flag parsing and scene bootstrap shared by the
// example binaries.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"

	"github.com/phanxgames/swing"
	"github.com/phanxgames/swing/audio"
)

// Scene variants.
const (
	VariantPendulums = "pendulums"
	VariantGraph     = "graph"
)

// ErrUnknownVariant is returned by Build for a variant other than
// VariantPendulums or VariantGraph.
var ErrUnknownVariant = errors.New("unknown scene variant")

// Options are the command-line settings every example accepts.
type Options struct {
	Config  string
	Variant string
	Script  string
	Debug   bool
	HUD     bool
	Audio   bool
	Watch   bool
}

// Parse reads flags from args (without the program name).
func Parse(name string, args []string, defaultVariant string) (Options, error) {
	var o Options
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&o.Config, "config", "c", "", "TOML or YAML settings file")
	fs.StringVar(&o.Variant, "variant", defaultVariant, "scene to build: pendulums or graph")
	fs.StringVar(&o.Script, "script", "", "YAML script of synthetic input to play")
	fs.BoolVarP(&o.Debug, "debug", "d", false, "log ignored interactions and check invariants every frame")
	fs.BoolVar(&o.HUD, "hud", true, "show the FPS and device overlay")
	fs.BoolVar(&o.Audio, "audio", false, "click through the speaker when the pointer hovers something")
	fs.BoolVarP(&o.Watch, "watch", "w", false, "reload the --config file when it changes")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	for _, p := range []*string{&o.Config, &o.Script} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return o, fmt.Errorf("%s: %w", *p, err)
		}
		*p = expanded
	}
	if o.Watch && o.Config == "" {
		return o, errors.New("--watch needs --config")
	}
	return o, nil
}

// Build loads the settings, builds the scene variant, and attaches the
// script, if any.
func Build(o Options) (*swing.Scene, error) {
	cfg := swing.DefaultConfig()
	if o.Config != "" {
		var err error
		if cfg, err = swing.LoadConfig(o.Config); err != nil {
			return nil, err
		}
	}

	var (
		scene *swing.Scene
		err   error
	)
	switch o.Variant {
	case VariantPendulums:
		scene, _, err = swing.NewPendulumScene(cfg)
	case VariantGraph:
		scene, _, err = swing.NewGraphScene(cfg)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, o.Variant)
	}
	if err != nil {
		return nil, err
	}
	scene.SetDebugMode(o.Debug)

	if o.Script != "" {
		data, err := os.ReadFile(o.Script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := swing.LoadScript(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.Script, err)
		}
		scene.SetScriptRunner(runner)
	}
	return scene, nil
}

// Watcher starts a ConfigWatcher when --watch was given, or returns nil.
func Watcher(o Options) (*ConfigWatcher, error) {
	if !o.Watch {
		return nil, nil
	}
	return WatchConfig(o.Config)
}

// OnFrame returns a per-frame hook applying reloaded settings, or nil
// without a watcher.
func (cw *ConfigWatcher) OnFrame() func(*swing.Scene) {
	if cw == nil {
		return nil
	}
	return func(s *swing.Scene) { cw.Apply(s) }
}

// MouseActuator returns the audio click for the pointer when enabled, or nil
// when disabled or the speaker can't be opened.
func MouseActuator(o Options) swing.HapticActuator {
	if !o.Audio {
		return nil
	}
	click := audio.NewClickActuator()
	if err := click.Init(); err != nil {
		slog.Warn("audio disabled", "err", err)
		return nil
	}
	return click
}
