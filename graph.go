package swing

import "math/rand/v2"

// Link is a non-interactive edge between two entities. From and To are
// derived from the endpoints every frame.
type Link struct {
	A, B     EntityID
	From, To Vec3
}

// Graph derives link segments from a registry's node positions.
type Graph struct {
	nodes Registry
	links []Link
}

// NewGraph creates a graph over nodes with the given endpoint pairs and
// computes the initial link segments.
func NewGraph(nodes Registry, pairs [][2]EntityID) *Graph {
	g := &Graph{nodes: nodes, links: make([]Link, len(pairs))}
	for i, p := range pairs {
		g.links[i] = Link{A: p[0], B: p[1]}
	}
	g.UpdateLinks()
	return g
}

// Links returns the current link segments. The returned slice MUST NOT be
// mutated by the caller.
func (g *Graph) Links() []Link {
	return g.links
}

// UpdateLinks recomputes every link's endpoints from the current node
// positions.
func (g *Graph) UpdateLinks() {
	for i := range g.links {
		l := &g.links[i]
		l.From = g.nodes.Position(l.A)
		l.To = g.nodes.Position(l.B)
	}
}

// RandomLayout places n points uniformly in a cube of half-size extent around
// center and picks up to m distinct links between different nodes. Positions
// are never relaxed afterwards.
func RandomLayout(rng *rand.Rand, n, m int, center Vec3, extent float64) ([]Vec3, [][2]EntityID) {
	points := make([]Vec3, n)
	for i := range points {
		points[i] = center.Add(Vec3{
			(rng.Float64()*2 - 1) * extent,
			(rng.Float64()*2 - 1) * extent,
			(rng.Float64()*2 - 1) * extent,
		})
	}
	if n < 2 {
		return points, nil
	}
	maxLinks := n * (n - 1) / 2
	if m > maxLinks {
		m = maxLinks
	}
	seen := make(map[[2]EntityID]bool, m)
	pairs := make([][2]EntityID, 0, m)
	for len(pairs) < m {
		a := EntityID(rng.IntN(n))
		b := EntityID(rng.IntN(n))
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := [2]EntityID{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		pairs = append(pairs, key)
	}
	return points, pairs
}
