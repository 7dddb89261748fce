package swing

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphLinksFollowNodes(t *testing.T) {
	pc := newTestCloud()
	g := NewGraph(pc, [][2]EntityID{{0, 1}, {1, 2}})

	links := g.Links()
	require.Len(t, links, 2)
	assert.Equal(t, pc.Position(0), links[0].From)
	assert.Equal(t, pc.Position(1), links[0].To)

	pc.SetPosition(1, V3(9, 9, 9))
	g.UpdateLinks()
	assert.Equal(t, V3(9, 9, 9), g.Links()[0].To)
	assert.Equal(t, V3(9, 9, 9), g.Links()[1].From)
}

func TestRandomLayout(t *testing.T) {
	center := V3(0, 1.6, -3)
	rng := rand.New(rand.NewPCG(1, 2))
	points, pairs := RandomLayout(rng, 30, 40, center, 2)

	require.Len(t, points, 30)
	require.Len(t, pairs, 40)

	for _, p := range points {
		d := p.Sub(center)
		assert.LessOrEqual(t, d.X, 2.0)
		assert.GreaterOrEqual(t, d.X, -2.0)
		assert.LessOrEqual(t, d.Y, 2.0)
		assert.GreaterOrEqual(t, d.Y, -2.0)
		assert.LessOrEqual(t, d.Z, 2.0)
		assert.GreaterOrEqual(t, d.Z, -2.0)
	}

	seen := map[[2]EntityID]bool{}
	for _, pr := range pairs {
		assert.Less(t, pr[0], pr[1], "ordered, no self links")
		assert.False(t, seen[pr], "duplicate link %v", pr)
		seen[pr] = true
	}
}

func TestRandomLayoutDeterministic(t *testing.T) {
	p1, l1 := RandomLayout(rand.New(rand.NewPCG(7, 7)), 10, 5, Vec3{}, 1)
	p2, l2 := RandomLayout(rand.New(rand.NewPCG(7, 7)), 10, 5, Vec3{}, 1)
	assert.Equal(t, p1, p2)
	assert.Equal(t, l1, l2)
}

func TestRandomLayoutCapsLinks(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	_, pairs := RandomLayout(rng, 4, 100, Vec3{}, 1)
	assert.Len(t, pairs, 6)

	_, pairs = RandomLayout(rng, 1, 10, Vec3{}, 1)
	assert.Empty(t, pairs)
}
