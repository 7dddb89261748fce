package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/swing"
)

var (
	floorStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	armStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	linkStyle   = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	laserStyle  = [swing.NumDevices]tcell.Style{
		tcell.StyleDefault,
		tcell.StyleDefault.Foreground(tcell.ColorRed),
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
	bobBase = swing.Color{R: 0.55, G: 0.55, B: 0.65, A: 1}
)

const (
	bobRune   = 'O'
	pointRune = '*'
	armRune   = '|'
	linkRune  = '.'
	floorRune = '·'
	laserRune = '-'
)

func toColor(c swing.Color) tcell.Color {
	ch := func(v float64) int32 { return int32(math.Max(0, math.Min(1, v))*255 + 0.5) }
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}

// Draw renders the scene and the status line and shows the screen.
func (v *Viewer) Draw() {
	v.screen.Clear()
	for i := range v.depth {
		v.depth[i] = math.Inf(1)
	}

	v.floor()
	switch reg := v.scene.Registry().(type) {
	case *swing.MeshRegistry:
		v.pendulums(reg)
	case *swing.PointCloud:
		v.points(reg)
	}
	v.lasers()

	if v.cursorX >= 0 && v.cursorX < v.proj.cols && v.cursorY >= 0 && v.cursorY < v.proj.rows {
		r, _, _, _ := v.screen.GetContent(v.cursorX, v.cursorY)
		v.screen.SetContent(v.cursorX, v.cursorY, r, nil, cursorStyle)
	}
	v.status()
	v.screen.Show()
}

// put draws a rune unless something nearer already covers the cell.
func (v *Viewer) put(cx, cy int, depth float64, r rune, st tcell.Style) {
	if cx < 0 || cy < 0 || cx >= v.proj.cols || cy >= v.proj.rows {
		return
	}
	i := cy*v.proj.cols + cx
	if depth >= v.depth[i] {
		return
	}
	v.depth[i] = depth
	v.screen.SetContent(cx, cy, r, nil, st)
}

// line samples a world segment densely enough to leave no gaps between
// cells.
func (v *Viewer) line(a, b swing.Vec3, r rune, st tcell.Style) {
	ax, ay, _, okA := v.proj.Cell(a)
	bx, by, _, okB := v.proj.Cell(b)
	steps := 64
	if okA && okB {
		steps = max(abs(ax-bx), abs(ay-by)*cellAspect, 1) * 2
	}
	for i := 0; i <= steps; i++ {
		p := a.Lerp(b, float64(i)/float64(steps))
		if cx, cy, depth, ok := v.proj.Cell(p); ok {
			v.put(cx, cy, depth, r, st)
		}
	}
}

// disc fills the cells covered by a sphere's silhouette.
func (v *Viewer) disc(c swing.Vec3, radius float64, r rune, st tcell.Style) {
	cx, cy, depth, ok := v.proj.Cell(c)
	if !ok {
		return
	}
	rad := v.proj.Radius(radius, depth)
	depth -= radius
	ry := int(rad / cellAspect)
	rx := int(rad)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			fy := float64(dy * cellAspect)
			if float64(dx*dx)+fy*fy > rad*rad {
				continue
			}
			v.put(cx+dx, cy+dy, depth, r, st)
		}
	}
	v.put(cx, cy, depth, r, st)
}

func (v *Viewer) floor() {
	for x := -10; x <= 10; x += 2 {
		for z := -10; z <= 10; z += 2 {
			if cx, cy, depth, ok := v.proj.Cell(swing.V3(float64(x), 0, float64(z))); ok {
				v.put(cx, cy, depth+1e6, floorRune, floorStyle)
			}
		}
	}
}

func (v *Viewer) pendulums(reg *swing.MeshRegistry) {
	for _, p := range reg.Pendulums() {
		bob := p.Bob()
		v.line(p.Pivot, bob, armRune, armStyle)
		st := tcell.StyleDefault.Foreground(toColor(swing.Color{
			R: bobBase.R + p.Emissive.R,
			G: bobBase.G + p.Emissive.G,
			B: bobBase.B + p.Emissive.B,
			A: 1,
		}))
		v.disc(bob, p.BobRadius, bobRune, st)
	}
}

func (v *Viewer) points(cloud *swing.PointCloud) {
	if g := v.scene.Graph(); g != nil {
		for _, l := range g.Links() {
			v.line(l.From, l.To, linkRune, linkStyle)
		}
	}
	for i := 0; i < cloud.Len(); i++ {
		id := swing.EntityID(i)
		st := tcell.StyleDefault.Foreground(toColor(cloud.Color(id)))
		v.disc(cloud.Position(id), cloud.Tolerance*0.6, pointRune, st)
	}
}

// lasers draws the rays of connected controllers, e.g. during scripted runs.
func (v *Viewer) lasers() {
	for id := swing.DeviceLeft; id < swing.NumDevices; id++ {
		d := v.scene.Device(id)
		if !d.Connected {
			continue
		}
		ray := d.Ray()
		v.line(ray.Origin, ray.At(d.LaserLength()), laserRune, laserStyle[id])
	}
}

func (v *Viewer) status() {
	row := v.proj.rows
	for x := 0; x < v.proj.cols; x++ {
		v.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
	for x, r := range []rune(statusText(v.scene)) {
		if x >= v.proj.cols {
			break
		}
		v.screen.SetContent(x, row, r, nil, statusStyle)
	}
}

func statusText(scene *swing.Scene) string {
	d := scene.Device(swing.DeviceMouse)
	return fmt.Sprintf(" hover %s hold %s frame %d | ^click grab  spc toggle  wasd  t tp  q quit",
		label(d.Hovered()), label(d.Held()), scene.Frame())
}

func label(id swing.EntityID) string {
	if id == swing.NoEntity {
		return "-"
	}
	return fmt.Sprint(int(id))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
