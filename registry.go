package swing

import "sort"

// Part names the piece of an entity a ray hit.
type Part uint8

const (
	PartPoint Part = iota // a point in a batched point cloud
	PartPivot             // pendulum pivot
	PartArm               // pendulum arm
	PartBob               // pendulum bob
)

// Intersection is one ray contact, already resolved to its owning entity.
type Intersection struct {
	Entity   EntityID
	Part     Part
	Index    int // buffer index for batched representations, otherwise the entity index
	Distance float64
	Point    Vec3
}

// Registry owns the manipulable entities and their collidable representation.
// The interaction core depends only on this interface; MeshRegistry (one
// object hierarchy per entity) and PointCloud (one shared point buffer) are
// the two implementations.
type Registry interface {
	// Len returns the fixed number of entities.
	Len() int
	// Position returns the entity's world position.
	Position(id EntityID) Vec3
	// SetPosition moves the entity. Batched implementations write the shared
	// buffer and mark it dirty.
	SetPosition(id EntityID, p Vec3)
	// SetHighlight applies an override color, or restores the stored original
	// color when c is nil.
	SetHighlight(id EntityID, c *Color)
	// Intersect appends every contact within far to buf[:0], sorted nearest
	// first. Ties keep registration order.
	Intersect(r Ray, far float64, buf []Intersection) []Intersection
}

// sortIntersections orders hits by distance. The sort is stable so equal
// distances keep the order they were found in.
func sortIntersections(hits []Intersection) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
}
