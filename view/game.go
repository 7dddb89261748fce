package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/swing"
)

// Options configures a Game.
type Options struct {
	Width, Height int
	// ShowHUD draws the FPS and device overlay.
	ShowHUD bool
	// MouseActuator gives the desktop device haptics, e.g. an audio click.
	MouseActuator swing.HapticActuator
	// OnFrame, if set, runs at the start of every tick before input is read.
	OnFrame func(*swing.Scene)
}

// Game implements ebiten.Game over a swing scene.
type Game struct {
	scene *swing.Scene
	opts  Options

	render  renderer
	desktop DesktopAdapter
	ctrls   []*Controller
	lasers  [swing.NumDevices]laser
	hud     hud

	gamepadIDs []ebiten.GamepadID
}

// New creates a Game drawing scene. The registry decides what is drawn:
// pendulums for a *swing.MeshRegistry, points and links for a
// *swing.PointCloud.
func New(scene *swing.Scene, opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	g := &Game{
		scene: scene,
		opts:  opts,
		ctrls: []*Controller{{Device: swing.DeviceLeft}, {Device: swing.DeviceRight}},
	}
	g.render.proj = Projector{Rig: scene.Rig(), W: opts.Width, H: opts.Height}
	g.render.graph = scene.Graph()
	switch reg := scene.Registry().(type) {
	case *swing.MeshRegistry:
		g.render.meshes = reg
	case *swing.PointCloud:
		g.render.cloud = reg
	}
	scene.Connect(swing.DeviceMouse, opts.MouseActuator)
	return g
}

// Scene returns the scene being driven.
func (g *Game) Scene() *swing.Scene {
	return g.scene
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	if g.opts.OnFrame != nil {
		g.opts.OnFrame(g.scene)
	}
	g.syncGamepads()

	in := swing.FrameInput{Dt: dt}
	var actions [swing.NumDevices]deviceActions

	df := g.desktop.frame(readDesktop(), g.render.proj)
	in.Poses[swing.DeviceMouse] = df.pose
	in.Move = df.move
	in.Look = df.look
	actions[swing.DeviceMouse] = df.actions

	deadZone := g.scene.Config().DeadZone
	for _, c := range g.ctrls {
		if !c.Bound {
			continue
		}
		cf := c.frame(readGamepad(c.Gamepad), g.scene.Rig(), deadZone)
		in.Poses[c.Device] = cf.pose
		in.Sticks[c.Device] = cf.stick
		actions[c.Device] = cf.actions
	}

	g.scene.Update(in)
	applyActions(g.scene, actions)

	for id := range g.lasers {
		g.render.lengths[id] = g.lasers[id].update(g.scene.Device(swing.DeviceID(id)).LaserLength(), float32(dt))
	}

	if g.opts.ShowHUD {
		g.hud.update(dt, g.scene)
	}
	return nil
}

// applyActions runs the transitions the adapters requested, after hover has
// been resolved for this frame.
func applyActions(scene *swing.Scene, actions [swing.NumDevices]deviceActions) {
	for i, a := range actions {
		id := swing.DeviceID(i)
		if a.release {
			scene.Release(id)
		}
		if a.grab {
			scene.Grab(id)
		}
		if a.teleport {
			scene.Teleport(id)
		}
	}
}

// syncGamepads binds newly connected gamepads and disconnects removed ones.
func (g *Game) syncGamepads() {
	g.gamepadIDs = ebiten.AppendGamepadIDs(g.gamepadIDs[:0])
	for _, c := range bindGamepads(g.ctrls, g.gamepadIDs, ebiten.IsStandardGamepadLayoutAvailable) {
		if c.Bound {
			g.scene.Connect(c.Device, GamepadActuator{ID: c.Gamepad})
		} else {
			g.scene.Disconnect(c.Device)
		}
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.render.draw(screen, g.scene)
	if g.opts.ShowHUD {
		g.hud.draw(screen)
	}
}

// Layout implements ebiten.Game. The projection follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.render.proj.W, g.render.proj.H = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs g until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
