package swing

// DefaultPointTolerance is the hit radius around each point of a PointCloud.
const DefaultPointTolerance = 0.1

// PointCloud stores every entity as one element of a shared position buffer
// and a parallel color buffer, the layout a renderer uploads as a single
// batched draw. Positions and Colors are xyz / rgb triples.
type PointCloud struct {
	Positions []float64
	Colors    []float64
	Tolerance float64

	base     []float64  // original colors, restored when a highlight clears
	entityOf []EntityID // buffer index -> entity
	indexOf  []int      // entity -> buffer index

	posVersion   uint64
	colorVersion uint64
}

// NewPointCloud builds a cloud with one point per entity. colors may be nil
// (white) or must match points in length.
func NewPointCloud(points []Vec3, colors []Color, tolerance float64) *PointCloud {
	if colors != nil && len(colors) != len(points) {
		panic("swing: point cloud colors must match points")
	}
	if tolerance <= 0 {
		tolerance = DefaultPointTolerance
	}
	n := len(points)
	pc := &PointCloud{
		Positions: make([]float64, 3*n),
		Colors:    make([]float64, 3*n),
		Tolerance: tolerance,
		base:      make([]float64, 3*n),
		entityOf:  make([]EntityID, n),
		indexOf:   make([]int, n),
	}
	for i, p := range points {
		pc.Positions[3*i] = p.X
		pc.Positions[3*i+1] = p.Y
		pc.Positions[3*i+2] = p.Z
		c := Color{1, 1, 1, 1}
		if colors != nil {
			c = colors[i]
		}
		pc.base[3*i] = c.R
		pc.base[3*i+1] = c.G
		pc.base[3*i+2] = c.B
		pc.entityOf[i] = EntityID(i)
		pc.indexOf[i] = i
	}
	copy(pc.Colors, pc.base)
	return pc
}

// Len implements Registry.
func (pc *PointCloud) Len() int {
	return len(pc.entityOf)
}

// EntityAt resolves a buffer index back to its entity.
func (pc *PointCloud) EntityAt(index int) EntityID {
	return pc.entityOf[index]
}

// IndexOf returns the buffer index of an entity.
func (pc *PointCloud) IndexOf(id EntityID) int {
	return pc.indexOf[id]
}

// Position implements Registry.
func (pc *PointCloud) Position(id EntityID) Vec3 {
	i := 3 * pc.indexOf[id]
	return Vec3{pc.Positions[i], pc.Positions[i+1], pc.Positions[i+2]}
}

// SetPosition implements Registry. The shared buffer is written in place and
// the position version is bumped so the renderer re-uploads it.
func (pc *PointCloud) SetPosition(id EntityID, p Vec3) {
	i := 3 * pc.indexOf[id]
	pc.Positions[i] = p.X
	pc.Positions[i+1] = p.Y
	pc.Positions[i+2] = p.Z
	pc.posVersion++
}

// Color returns the current color of an entity's point.
func (pc *PointCloud) Color(id EntityID) Color {
	i := 3 * pc.indexOf[id]
	return Color{pc.Colors[i], pc.Colors[i+1], pc.Colors[i+2], 1}
}

// BaseColor returns the stored original color of an entity's point.
func (pc *PointCloud) BaseColor(id EntityID) Color {
	i := 3 * pc.indexOf[id]
	return Color{pc.base[i], pc.base[i+1], pc.base[i+2], 1}
}

// SetHighlight implements Registry.
func (pc *PointCloud) SetHighlight(id EntityID, c *Color) {
	i := 3 * pc.indexOf[id]
	if c == nil {
		copy(pc.Colors[i:i+3], pc.base[i:i+3])
	} else {
		pc.Colors[i] = c.R
		pc.Colors[i+1] = c.G
		pc.Colors[i+2] = c.B
	}
	pc.colorVersion++
}

// PositionVersion increments on every position write.
func (pc *PointCloud) PositionVersion() uint64 {
	return pc.posVersion
}

// ColorVersion increments on every color write.
func (pc *PointCloud) ColorVersion() uint64 {
	return pc.colorVersion
}

// Intersect implements Registry. Every point within Tolerance of the ray is
// a candidate; the index is resolved back to its entity.
func (pc *PointCloud) Intersect(r Ray, far float64, buf []Intersection) []Intersection {
	buf = buf[:0]
	for idx := range pc.entityOf {
		p := Vec3{pc.Positions[3*idx], pc.Positions[3*idx+1], pc.Positions[3*idx+2]}
		t, ok := HitPoint{At: p, Tolerance: pc.Tolerance}.Intersect(r)
		if !ok || t > far {
			continue
		}
		buf = append(buf, Intersection{
			Entity:   pc.entityOf[idx],
			Part:     PartPoint,
			Index:    idx,
			Distance: t,
			Point:    r.At(t),
		})
	}
	sortIntersections(buf)
	return buf
}
