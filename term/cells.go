package term

import (
	"math"

	"github.com/phanxgames/swing"
)

const (
	fovY      = 70 * math.Pi / 180
	nearPlane = 0.05

	// cellAspect is the height of a character cell in cell widths.
	cellAspect = 2
)

// cellProjector maps between world space and a grid of character cells.
// Internally it works in half-cell units so vertical and horizontal scales
// agree.
type cellProjector struct {
	rig        *swing.Rig
	cols, rows int
}

func (p cellProjector) half() (w, h float64) {
	return float64(p.cols), float64(p.rows) * cellAspect
}

// Ray returns the world ray through the center of a cell.
func (p cellProjector) Ray(cx, cy int) swing.Ray {
	w, h := p.half()
	px := float64(cx) + 0.5
	py := (float64(cy) + 0.5) * cellAspect
	x := (px - w/2) / (h / 2)
	y := (h/2 - py) / (h / 2)
	return p.rig.PickRay(x, y, fovY)
}

// Cell maps a world point to the cell containing it. ok is false behind the
// near plane or outside the grid.
func (p cellProjector) Cell(v swing.Vec3) (cx, cy int, depth float64, ok bool) {
	x, y, depth, ok := p.rig.Project(v, fovY, nearPlane)
	if !ok {
		return 0, 0, depth, false
	}
	w, h := p.half()
	px := w/2 + x*h/2
	py := h/2 - y*h/2
	if math.IsNaN(px) || math.IsNaN(py) || px < 0 || py < 0 || px >= w || py >= h {
		return 0, 0, depth, false
	}
	return int(px), int(py / cellAspect), depth, true
}

// Radius returns how many cells wide a world length appears at depth.
func (p cellProjector) Radius(length, depth float64) float64 {
	_, h := p.half()
	return length / (depth * math.Tan(fovY/2)) * h / 2
}
