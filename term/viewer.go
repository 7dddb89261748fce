package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/swing"
)

const (
	moveFrames = 6  // frames one movement key press keeps moving
	lookStep   = 30 // look delta in pixels per arrow key press
)

// Options configures a Viewer.
type Options struct {
	// Tick is the frame period. Defaults to 16ms.
	Tick time.Duration
	// MouseActuator gives the pointer haptics, e.g. an audio click.
	MouseActuator swing.HapticActuator
	// OnFrame, if set, runs at the start of every Step.
	OnFrame func(*swing.Scene)
}

type actions struct {
	grab, release, toggle, teleport bool
}

// Viewer draws a scene into a tcell screen and feeds it mouse and keyboard
// input as the swing.DeviceMouse device.
type Viewer struct {
	screen tcell.Screen
	scene  *swing.Scene
	opts   Options
	proj   cellProjector

	cursorX, cursorY int
	buttonDown       bool

	move      swing.Axes
	moveLeft  int
	look      swing.Vec2
	requested actions

	depth []float64
}

// New creates a viewer over an initialized screen and connects the mouse
// device.
func New(screen tcell.Screen, scene *swing.Scene, opts Options) *Viewer {
	if opts.Tick <= 0 {
		opts.Tick = 16 * time.Millisecond
	}
	v := &Viewer{
		screen: screen,
		scene:  scene,
		opts:   opts,
		proj:   cellProjector{rig: scene.Rig()},
	}
	screen.EnableMouse()
	screen.HideCursor()
	v.resize()
	v.cursorX, v.cursorY = v.proj.cols/2, v.proj.rows/2
	scene.Connect(swing.DeviceMouse, opts.MouseActuator)
	return v
}

// resize fits the projection to the screen, keeping the last row for the
// status line.
func (v *Viewer) resize() {
	w, h := v.screen.Size()
	v.proj.cols, v.proj.rows = w, max(h-1, 1)
	v.depth = make([]float64, v.proj.cols*v.proj.rows)
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.cursorX, v.cursorY = ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !v.buttonDown && ev.Modifiers()&tcell.ModCtrl != 0 {
			v.requested.grab = true
		}
		if !pressed && v.buttonDown {
			v.requested.release = true
		}
		v.buttonDown = pressed
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.look.Y -= lookStep
	case tcell.KeyDown:
		v.look.Y += lookStep
	case tcell.KeyLeft:
		v.look.X -= lookStep
	case tcell.KeyRight:
		v.look.X += lookStep
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'w':
			v.startMove(swing.Axes{Forward: 1})
		case 's':
			v.startMove(swing.Axes{Forward: -1})
		case 'a':
			v.startMove(swing.Axes{Right: -1})
		case 'd':
			v.startMove(swing.Axes{Right: 1})
		case 't':
			v.requested.teleport = true
		case ' ':
			v.requested.toggle = true
		}
	}
	return true
}

// Terminals report key presses but not releases, so a press moves for a few
// frames.
func (v *Viewer) startMove(a swing.Axes) {
	v.move = a
	v.moveLeft = moveFrames
}

// Step runs one scene frame with the input gathered since the last one.
func (v *Viewer) Step(dt float64) {
	if v.opts.OnFrame != nil {
		v.opts.OnFrame(v.scene)
	}
	cx := min(max(v.cursorX, 0), v.proj.cols-1)
	cy := min(max(v.cursorY, 0), v.proj.rows-1)
	ray := v.proj.Ray(cx, cy)

	in := swing.FrameInput{Dt: dt, Look: v.look}
	in.Poses[swing.DeviceMouse] = swing.PoseInput{
		Valid:     true,
		Connected: true,
		Pose:      swing.Pose{Position: ray.Origin, Forward: ray.Dir},
	}
	if v.moveLeft > 0 {
		in.Move = v.move
		v.moveLeft--
	}
	v.look = swing.Vec2{}

	v.scene.Update(in)

	req := v.requested
	v.requested = actions{}
	id := swing.DeviceMouse
	if req.toggle {
		if v.scene.Device(id).Held() != swing.NoEntity {
			req.release = true
		} else {
			req.grab = true
		}
	}
	if req.release {
		v.scene.Release(id)
	}
	if req.grab {
		v.scene.Grab(id)
	}
	if req.teleport {
		v.scene.Teleport(id)
	}
}

// pumpEvents forwards screen events until the screen is finalized or done
// is closed. events is closed only in the first case.
func (v *Viewer) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Run polls events and steps and draws the scene every tick until the user
// quits or ctx is done. The caller owns the screen and calls Fini.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go v.pumpEvents(events, done)

	ticker := time.NewTicker(v.opts.Tick)
	defer ticker.Stop()
	dt := v.opts.Tick.Seconds()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Step(dt)
			v.Draw()
		}
	}
}
