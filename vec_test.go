package swing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got Vec3, eps float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "X")
	assert.InDelta(t, want.Y, got.Y, eps, "Y")
	assert.InDelta(t, want.Z, got.Z, eps, "Z")
}

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	assert.Equal(t, V3(5, -3, 9), a.Add(b))
	assert.Equal(t, V3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, 4.0-10+18, a.Dot(b))
	assert.InDelta(t, math.Sqrt(14), a.Len(), 1e-12)
	assert.InDelta(t, 5, V3(0, 0, 0).Dist(V3(3, 4, 0)), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	x, y, z := V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Scale(-1), y.Cross(x))
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	assertVec(t, V3(0.6, 0, 0.8), n, 1e-12)
	assert.InDelta(t, 1, n.Len(), 1e-12)

	assert.Equal(t, Vec3{}, Vec3{}.Normalize(), "zero vector unchanged")
}

func TestVec3Lerp(t *testing.T) {
	a, b := V3(0, 0, 0), V3(10, -10, 4)
	tests := []struct {
		name string
		t    float64
		want Vec3
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"half", 0.5, V3(5, -5, 2)},
		{"grab factor", 0.8, V3(8, -8, 3.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, a.Lerp(b, tt.t), 1e-12)
		})
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(V3(1, 1, 1), V3(0, 0, -5))
	assertVec(t, V3(0, 0, -1), r.Dir, 1e-12)
	assertVec(t, V3(1, 1, -2), r.At(3), 1e-12)
}

func TestRayIntersectHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		height float64
		wantT  float64
		wantOK bool
	}{
		{"straight down", NewRay(V3(0, 5, 0), V3(0, -1, 0)), 2, 3, true},
		{"diagonal", NewRay(V3(0, 2, 0), V3(1, -1, 0)), 0, 2 * math.Sqrt2, true},
		{"parallel", NewRay(V3(0, 2, 0), V3(0, 0, -1)), 0, 0, false},
		{"behind origin", NewRay(V3(0, 2, 0), V3(0, 1, 0)), 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectHorizontal(tt.height)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantT, got, 1e-9)
		})
	}
}
