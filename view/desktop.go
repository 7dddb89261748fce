package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/swing"
)

// desktopInput is one tick of raw mouse and keyboard state.
type desktopInput struct {
	cursorX, cursorY float64

	leftPressed, leftReleased bool
	rightDown                 bool

	grabKeyDown, grabKeyReleased bool
	teleport                     bool

	forward, back, left, right bool
}

func readDesktop() desktopInput {
	mx, my := ebiten.CursorPosition()
	return desktopInput{
		cursorX:         float64(mx),
		cursorY:         float64(my),
		leftPressed:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		leftReleased:    inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		rightDown:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		grabKeyDown:     ebiten.IsKeyPressed(ebiten.KeyV),
		grabKeyReleased: inpututil.IsKeyJustReleased(ebiten.KeyV),
		teleport:        inpututil.IsKeyJustPressed(ebiten.KeyT),
		forward:         ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		back:            ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		left:            ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		right:           ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// deviceActions are the transitions an adapter requests after the scene
// update.
type deviceActions struct {
	grab, release, teleport bool
}

// desktopFrame is what the desktop adapter contributes to one frame.
type desktopFrame struct {
	pose    swing.PoseInput
	move    swing.Axes
	look    swing.Vec2
	actions deviceActions
}

// DesktopAdapter turns the mouse into the swing.DeviceMouse device: a ray
// from the viewpoint through the cursor.
type DesktopAdapter struct {
	lastX, lastY float64
	looking      bool
}

func (a *DesktopAdapter) frame(in desktopInput, proj Projector) desktopFrame {
	ray := proj.Ray(in.cursorX, in.cursorY)
	f := desktopFrame{
		pose: swing.PoseInput{
			Valid:     true,
			Connected: true,
			Pose:      swing.Pose{Position: ray.Origin, Forward: ray.Dir},
		},
	}

	if in.forward {
		f.move.Forward++
	}
	if in.back {
		f.move.Forward--
	}
	if in.right {
		f.move.Right++
	}
	if in.left {
		f.move.Right--
	}

	// Right-drag looks around; the first tick only anchors the cursor.
	if in.rightDown {
		if a.looking {
			f.look = swing.Vec2{X: in.cursorX - a.lastX, Y: in.cursorY - a.lastY}
		}
		a.looking = true
	} else {
		a.looking = false
	}
	a.lastX, a.lastY = in.cursorX, in.cursorY

	f.actions.grab = in.grabKeyDown && in.leftPressed
	f.actions.release = in.grabKeyReleased || in.leftReleased
	f.actions.teleport = in.teleport
	return f
}
