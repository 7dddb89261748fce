package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/swing"
)

var (
	clearColor = color.RGBA{0x12, 0x12, 0x1c, 0xff}
	floorColor = color.RGBA{0x2a, 0x2a, 0x3a, 0xff}
	armColor   = color.RGBA{0xb0, 0xb0, 0xc0, 0xff}
	linkColor  = color.RGBA{0x60, 0x70, 0x90, 0xff}
	laserColor = [swing.NumDevices]color.RGBA{
		{0xff, 0xff, 0xff, 0xff},
		{0x40, 0xa0, 0xff, 0xff},
		{0x40, 0xff, 0x80, 0xff},
	}
	bobBase = swing.Color{R: 0.55, G: 0.55, B: 0.65, A: 1}
)

// toRGBA converts a [0, 1] color, clamping each channel.
func toRGBA(c swing.Color) color.RGBA {
	ch := func(v float64) uint8 { return uint8(clamp(v, 0, 1)*255 + 0.5) }
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), ch(c.A)}
}

// glow adds an emissive color on top of a base color.
func glow(base, emissive swing.Color) swing.Color {
	return swing.Color{R: base.R + emissive.R, G: base.G + emissive.G, B: base.B + emissive.B, A: base.A}
}

// renderer draws a scene with vector primitives.
type renderer struct {
	proj   Projector
	meshes *swing.MeshRegistry
	cloud  *swing.PointCloud
	graph  *swing.Graph

	lengths [swing.NumDevices]float64 // smoothed laser lengths
}

func (r *renderer) line(dst *ebiten.Image, a, b swing.Vec3, width float32, clr color.Color) {
	a, b, ok := r.proj.clipSegment(a, b)
	if !ok {
		return
	}
	ax, ay, _, okA := r.proj.Project(a)
	bx, by, _, okB := r.proj.Project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

func (r *renderer) sphere(dst *ebiten.Image, c swing.Vec3, radius float64, clr color.Color) {
	sx, sy, depth, ok := r.proj.Project(c)
	if !ok {
		return
	}
	px := r.proj.Scale(radius, depth)
	if px < 1 {
		px = 1
	}
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(px), clr, true)
}

func (r *renderer) floor(dst *ebiten.Image) {
	for i := -10; i <= 10; i += 2 {
		f := float64(i)
		r.line(dst, swing.V3(f, 0, -10), swing.V3(f, 0, 10), 1, floorColor)
		r.line(dst, swing.V3(-10, 0, f), swing.V3(10, 0, f), 1, floorColor)
	}
}

func (r *renderer) pendulums(dst *ebiten.Image) {
	for _, p := range r.meshes.Pendulums() {
		bob := p.Bob()
		r.line(dst, p.Pivot, bob, 2, armColor)
		r.sphere(dst, p.Pivot, p.PivotRadius, armColor)
		r.sphere(dst, bob, p.BobRadius, toRGBA(glow(bobBase, p.Emissive)))
	}
}

func (r *renderer) points(dst *ebiten.Image) {
	if r.graph != nil {
		for _, l := range r.graph.Links() {
			r.line(dst, l.From, l.To, 1, linkColor)
		}
	}
	for i := 0; i < r.cloud.Len(); i++ {
		id := swing.EntityID(i)
		r.sphere(dst, r.cloud.Position(id), r.cloud.Tolerance*0.6, toRGBA(r.cloud.Color(id)))
	}
}

// lasers draws each connected controller's ray with its smoothed length.
func (r *renderer) lasers(dst *ebiten.Image, scene *swing.Scene) {
	for id := swing.DeviceLeft; id < swing.NumDevices; id++ {
		d := scene.Device(id)
		if !d.Connected {
			continue
		}
		ray := d.Ray()
		r.line(dst, ray.Origin, ray.At(r.lengths[id]), 2, laserColor[id])
		r.sphere(dst, ray.Origin, 0.04, laserColor[id])
	}
}

func (r *renderer) draw(dst *ebiten.Image, scene *swing.Scene) {
	dst.Fill(clearColor)
	r.floor(dst)
	if r.meshes != nil {
		r.pendulums(dst)
	}
	if r.cloud != nil {
		r.points(dst)
	}
	r.lasers(dst, scene)
}
