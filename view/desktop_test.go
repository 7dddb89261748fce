package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phanxgames/swing"
)

func TestDesktopPoseFollowsCursor(t *testing.T) {
	var a DesktopAdapter
	p := testProjector()

	f := a.frame(desktopInput{cursorX: 400, cursorY: 300}, p)
	assert.True(t, f.pose.Valid)
	assert.True(t, f.pose.Connected)
	assert.Equal(t, p.Rig.Position, f.pose.Pose.Position)
	assert.InDelta(t, -1, f.pose.Pose.Forward.Z, 1e-12)

	f = a.frame(desktopInput{cursorX: 800, cursorY: 300}, p)
	assert.Greater(t, f.pose.Pose.Forward.X, 0.0, "cursor right aims right")
}

func TestDesktopMoveAxes(t *testing.T) {
	var a DesktopAdapter
	p := testProjector()
	tests := []struct {
		name string
		in   desktopInput
		want swing.Axes
	}{
		{"none", desktopInput{}, swing.Axes{}},
		{"forward", desktopInput{forward: true}, swing.Axes{Forward: 1}},
		{"back left", desktopInput{back: true, left: true}, swing.Axes{Forward: -1, Right: -1}},
		{"opposites cancel", desktopInput{left: true, right: true}, swing.Axes{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.frame(tt.in, p).move)
		})
	}
}

func TestDesktopLookAnchorsOnFirstTick(t *testing.T) {
	var a DesktopAdapter
	p := testProjector()

	f := a.frame(desktopInput{cursorX: 100, cursorY: 100, rightDown: true}, p)
	assert.Equal(t, swing.Vec2{}, f.look)

	f = a.frame(desktopInput{cursorX: 110, cursorY: 95, rightDown: true}, p)
	assert.Equal(t, swing.Vec2{X: 10, Y: -5}, f.look)

	f = a.frame(desktopInput{cursorX: 200, cursorY: 200}, p)
	assert.Equal(t, swing.Vec2{}, f.look)

	f = a.frame(desktopInput{cursorX: 300, cursorY: 300, rightDown: true}, p)
	assert.Equal(t, swing.Vec2{}, f.look, "re-anchors after the button was up")
}

func TestDesktopGrabRelease(t *testing.T) {
	var a DesktopAdapter
	p := testProjector()
	tests := []struct {
		name string
		in   desktopInput
		want deviceActions
	}{
		{"click without V", desktopInput{leftPressed: true}, deviceActions{}},
		{"V held, click", desktopInput{grabKeyDown: true, leftPressed: true}, deviceActions{grab: true}},
		{"V released", desktopInput{grabKeyReleased: true}, deviceActions{release: true}},
		{"mouse released", desktopInput{grabKeyDown: true, leftReleased: true}, deviceActions{release: true}},
		{"teleport", desktopInput{teleport: true}, deviceActions{teleport: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.frame(tt.in, p).actions)
		})
	}
}
