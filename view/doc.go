// Package view is the Ebitengine frontend for swing scenes.
//
// It draws a perspective view of the scene from the rig with vector
// primitives, turns mouse and keyboard into the desktop device, and maps up
// to two standard-layout gamepads onto the left and right controllers,
// rumbling them on hover.
//
//	scene, _, _ := swing.NewPendulumScene(swing.DefaultConfig())
//	g := view.New(scene, view.Options{Width: 1280, Height: 720})
//	if err := view.Run(g, "swing"); err != nil {
//		log.Fatal(err)
//	}
//
// Desktop controls: WASD or arrow keys move, right-drag looks around, hold V
// and left-click to grab what the cursor points at, release V or the mouse
// button to let go, T teleports three units forward.
//
// Gamepad controls: the right stick aims the hand, the left stick turns
// (left hand) or walks (right hand), the right trigger grabs while held, and
// A teleports along the hand ray.
package view
