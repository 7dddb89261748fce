package swing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendulumBob(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vec3
	}{
		{"at rest", 0, V3(0, 0, -2)},
		{"horizontal", math.Pi / 2, V3(2, 2, -2)},
		{"quarter", math.Pi / 4, V3(math.Sqrt2, 2-math.Sqrt2, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPendulum("p", V3(0, 2, -2), 2, tt.angle)
			assertVec(t, tt.want, p.Bob(), 1e-12)
		})
	}
}

func TestMeshRegistryIntersectOrder(t *testing.T) {
	near := NewPendulum("near", V3(0, 2, -2), 2, 0)
	far := NewPendulum("far", V3(0, 2, -5), 2, 0)
	reg := NewMeshRegistry(far, near)

	hits := reg.Intersect(NewRay(V3(0, 0, 0), towardNegZ), 10, nil)
	require.NotEmpty(t, hits)

	assert.Equal(t, EntityID(1), hits[0].Entity, "nearest pendulum first")
	assert.Equal(t, PartBob, hits[0].Part)
	assert.InDelta(t, 1.7, hits[0].Distance, 1e-9)
	assertVec(t, V3(0, 0, -1.7), hits[0].Point, 1e-9)

	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i-1].Distance, hits[i].Distance)
	}
	assert.Equal(t, EntityID(0), hits[len(hits)-1].Entity)
}

func TestMeshRegistryIntersectFar(t *testing.T) {
	reg := NewMeshRegistry(NewPendulum("p", V3(0, 2, -20), 2, 0))
	hits := reg.Intersect(NewRay(V3(0, 0, 0), towardNegZ), 10, nil)
	assert.Empty(t, hits)

	hits = reg.Intersect(NewRay(V3(0, 0, 0), towardNegZ), 1000, hits)
	assert.NotEmpty(t, hits)
}

func TestMeshRegistryIntersectArmOnly(t *testing.T) {
	reg := NewMeshRegistry(NewPendulum("p", V3(0, 2, -2), 2, 0))
	// Level with the middle of the arm: the bob and pivot are out of reach.
	hits := reg.Intersect(NewRay(V3(0, 1, 0), towardNegZ), 10, nil)
	require.Len(t, hits, 1)
	assert.Equal(t, PartArm, hits[0].Part)
	assert.InDelta(t, 1.98, hits[0].Distance, 1e-9)
}

func TestMeshRegistryHighlightRestore(t *testing.T) {
	p := NewPendulum("p", V3(0, 2, -2), 2, 0)
	base := Color{0.1, 0.2, 0.3, 1}
	p.SetBaseEmissive(base)
	reg := NewMeshRegistry(p)

	reg.SetHighlight(0, &ColorRed)
	assert.Equal(t, ColorRed, p.Emissive)
	assert.True(t, p.Highlighted())

	// Changing the base while highlighted keeps the highlight.
	other := Color{0.5, 0.5, 0.5, 1}
	p.SetBaseEmissive(other)
	assert.Equal(t, ColorRed, p.Emissive)

	reg.SetHighlight(0, nil)
	assert.Equal(t, other, p.Emissive)
	assert.False(t, p.Highlighted())
}

func TestMeshRegistryPosition(t *testing.T) {
	reg := NewMeshRegistry(NewPendulum("a", V3(1, 2, 3), 2, 0))
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, V3(1, 2, 3), reg.Position(0))

	reg.SetPosition(0, V3(4, 5, 6))
	assert.Equal(t, V3(4, 5, 6), reg.Pendulum(0).Pivot)
	assertVec(t, V3(4, 3, 6), reg.Pendulum(0).Bob(), 1e-12)
}
