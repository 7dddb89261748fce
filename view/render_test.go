package view

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/swing"
)

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, toRGBA(swing.ColorRed))
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, toRGBA(swing.Color{R: 2, G: 0.5, B: -1, A: 1}))
}

func TestGlow(t *testing.T) {
	c := glow(bobBase, swing.ColorRed)
	assert.Equal(t, color.RGBA{255, 140, 166, 255}, toRGBA(c))
	assert.Equal(t, toRGBA(bobBase), toRGBA(glow(bobBase, swing.ColorBlack)))
}

func TestHUDText(t *testing.T) {
	scene, _, err := swing.NewPendulumScene(swing.DefaultConfig())
	require.NoError(t, err)
	scene.Connect(swing.DeviceMouse, nil)

	text := hudText(scene, 60, 60)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "FPS: 60.0", lines[0])
	assert.Equal(t, "mouse hover - hold -", lines[2])
	assert.Equal(t, "left  -", lines[3])
}

func TestNewGamePicksRegistry(t *testing.T) {
	scene, meshes, err := swing.NewPendulumScene(swing.DefaultConfig())
	require.NoError(t, err)
	g := New(scene, Options{})
	assert.Same(t, meshes, g.render.meshes)
	assert.Nil(t, g.render.cloud)
	assert.True(t, scene.Device(swing.DeviceMouse).Connected)
	assert.Equal(t, 1280, g.opts.Width)

	graphScene, cloud, err := swing.NewGraphScene(swing.DefaultConfig())
	require.NoError(t, err)
	g = New(graphScene, Options{Width: 640, Height: 480})
	assert.Same(t, cloud, g.render.cloud)
	assert.NotNil(t, g.render.graph)

	w, h := g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, 768, g.render.proj.H)
}

func TestApplyActions(t *testing.T) {
	scene, _, err := swing.NewPendulumScene(swing.DefaultConfig())
	require.NoError(t, err)

	var in swing.FrameInput
	bob := scene.Registry().(*swing.MeshRegistry).Pendulum(2).Bob()
	in.Poses[swing.DeviceRight] = swing.PoseInput{
		Valid: true, Connected: true,
		Pose: swing.Pose{Position: bob.Add(swing.V3(0, 0, 2)), Forward: swing.V3(0, 0, -1)},
	}
	scene.Update(in)

	var actions [swing.NumDevices]deviceActions
	actions[swing.DeviceRight].grab = true
	applyActions(scene, actions)
	assert.Equal(t, swing.DeviceRight, scene.Holder(2))

	actions[swing.DeviceRight] = deviceActions{release: true}
	applyActions(scene, actions)
	assert.False(t, scene.IsHeld(2))
}
