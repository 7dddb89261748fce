package swing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestVec3Tween(t *testing.T) {
	tw := NewVec3Tween(V3(0, 0, 0), V3(10, 20, -30), 1, ease.Linear)
	assert.Equal(t, V3(0, 0, 0), tw.Value())

	mid := tw.Update(0.5)
	assertVec(t, V3(5, 10, -15), mid, 1e-4)
	assert.False(t, tw.Done)

	end := tw.Update(0.5)
	assertVec(t, V3(10, 20, -30), end, 1e-4)
	assert.True(t, tw.Done)

	// Further updates hold the final value.
	assert.Equal(t, end, tw.Update(1))
	assert.Equal(t, end, tw.Value())
}

func TestVec3TweenEased(t *testing.T) {
	tw := NewVec3Tween(V3(0, 0, 0), V3(1, 0, 0), 1, ease.OutQuad)
	p := tw.Update(0.5)
	assert.Greater(t, p.X, 0.5, "out-quad front-loads the motion")
	assert.Less(t, p.X, 1.0)
}
