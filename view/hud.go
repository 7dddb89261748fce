package view

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/swing"
)

// hud is the text overlay: FPS/TPS and per-device interaction state,
// refreshed about twice a second.
type hud struct {
	img        *ebiten.Image
	lastUpdate float64
}

func (h *hud) update(dt float64, scene *swing.Scene) {
	if h.img == nil {
		h.img = ebiten.NewImage(260, 96)
	}
	h.lastUpdate += dt
	if h.lastUpdate < 0.5 {
		return
	}
	h.lastUpdate = 0

	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, hudText(scene, ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (h *hud) draw(dst *ebiten.Image) {
	if h.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	dst.DrawImage(h.img, &op)
}

func hudText(scene *swing.Scene, fps, tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	for id := swing.DeviceID(0); id < swing.NumDevices; id++ {
		d := scene.Device(id)
		if !d.Connected {
			fmt.Fprintf(&b, "%-5s -\n", id)
			continue
		}
		fmt.Fprintf(&b, "%-5s hover %s hold %s\n", id, entityLabel(d.Hovered()), entityLabel(d.Held()))
	}
	return b.String()
}

func entityLabel(id swing.EntityID) string {
	if id == swing.NoEntity {
		return "-"
	}
	return fmt.Sprint(int(id))
}
