package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/swing"
)

func testProjector() Projector {
	return Projector{Rig: swing.NewRig(swing.V3(0, 1.6, 5)), W: 800, H: 600}
}

func TestProjectorNDC(t *testing.T) {
	p := testProjector()
	tests := []struct {
		name   string
		sx, sy float64
		x, y   float64
	}{
		{"center", 400, 300, 0, 0},
		{"top center", 400, 0, 0, 1},
		{"bottom right", 800, 600, 400.0 / 300, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := p.ToNDC(tt.sx, tt.sy)
			assert.InDelta(t, tt.x, x, 1e-12)
			assert.InDelta(t, tt.y, y, 1e-12)
			sx, sy := p.ToScreen(x, y)
			assert.InDelta(t, tt.sx, sx, 1e-9)
			assert.InDelta(t, tt.sy, sy, 1e-9)
		})
	}
}

func TestProjectorRayAndProject(t *testing.T) {
	p := testProjector()

	center := p.Ray(400, 300)
	assert.InDelta(t, -1, center.Dir.Z, 1e-12)

	sx, sy, depth, ok := p.Project(swing.V3(0, 1.6, 0))
	require.True(t, ok)
	assert.InDelta(t, 400, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)
	assert.InDelta(t, 5, depth, 1e-12)

	// A pixel's ray lands back on the same pixel.
	hit := p.Ray(123, 456).At(3)
	sx, sy, _, ok = p.Project(hit)
	require.True(t, ok)
	assert.InDelta(t, 123, sx, 1e-6)
	assert.InDelta(t, 456, sy, 1e-6)

	_, _, _, ok = p.Project(swing.V3(0, 1.6, 6))
	assert.False(t, ok)
}

func TestProjectorScale(t *testing.T) {
	p := testProjector()
	// At depth d the half-height of the screen spans d*tan(fov/2) units.
	d := 4.0
	half := d * math.Tan(fovY/2)
	assert.InDelta(t, 300, p.Scale(half, d), 1e-9)
}

func TestProjectorClipSegment(t *testing.T) {
	p := testProjector()

	a, b, ok := p.clipSegment(swing.V3(0, 0, 0), swing.V3(1, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, swing.V3(0, 0, 0), a)
	assert.Equal(t, swing.V3(1, 0, 0), b)

	_, _, ok = p.clipSegment(swing.V3(0, 0, 6), swing.V3(1, 0, 7))
	assert.False(t, ok, "fully behind")

	a, b, ok = p.clipSegment(swing.V3(0, 0, 0), swing.V3(0, 0, 10))
	require.True(t, ok)
	assert.Equal(t, swing.V3(0, 0, 0), a)
	assert.InDelta(t, 5-2*nearPlane, b.Z, 1e-9)
}
