package ebiten

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ringfall/pkg/engine/tube"
	"ringfall/pkg/game/renderer"
	"ringfall/pkg/game/session"
)

var backgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}

// cellSprite is one projected cell, ready to paint.
type cellSprite struct {
	x, y  float32
	w, h  float32
	z     float64
	color color.RGBA
}

// Draw renders the frame: the projected tube, the HUD, and any menu
// overlay (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	status := e.session.Status()
	if status == session.StatusPlaying || status == session.StatusPaused {
		e.drawTube(screen)
		e.drawHUD(screen)
	}
	if e.currentMenu != nil {
		e.drawMenu(screen)
	}
}

// drawTube projects every visible cell through the mapper and paints
// them back to front so near cells cover far ones.
func (e *EbitenRenderer) drawTube(screen *ebiten.Image) {
	g := e.session.Grid()

	sprites := make([]cellSprite, 0, g.Segments()*g.Rows())
	for row := 0; row < g.Rows(); row++ {
		for seg := 0; seg < g.Segments(); seg++ {
			cell := g.Cell(seg, row)
			_, _, z := e.session.Mapper().TubeToWorld(float64(seg), float64(row))
			if !cell.Occupied && z < 0 {
				// Empty far-side cells would only clutter the view.
				continue
			}
			c := cell.Color
			if !cell.Occupied {
				c = color.RGBA{R: 34, G: 36, B: 46, A: 255}
			}
			sprites = append(sprites, e.project(seg, row, c))
		}
	}
	if p := e.session.Active(); p != nil {
		for _, pos := range p.Blocks() {
			if pos.Row >= g.Rows() {
				continue
			}
			seg := tube.Normalize(pos.Segment, g.Segments())
			sprites = append(sprites, e.project(seg, pos.Row, p.Color()))
		}
	}

	sort.Slice(sprites, func(i, j int) bool { return sprites[i].z < sprites[j].z })
	for _, s := range sprites {
		vector.DrawFilledRect(screen, s.x-s.w/2, s.y-s.h/2, s.w, s.h, s.color, false)
	}
}

// project maps one tube cell to screen space. Depth shrinks and darkens
// the cell; the width follows the projected distance to the next
// segment so the curvature reads correctly.
func (e *EbitenRenderer) project(seg, row int, c color.RGBA) cellSprite {
	m := e.session.Mapper()
	x, y, z := m.TubeToWorld(float64(seg), float64(row))

	cx := float64(e.windowWidth) * 0.42
	cy := float64(e.windowHeight) * 0.5
	rowPx := (float64(e.windowHeight) - 120) / e.tubeHeight
	radiusPx := float64(e.windowWidth) * 0.2

	nx := x / e.tubeRadius
	nz := z / e.tubeRadius
	depth := (nz + 1) / 2
	tilt := rowPx * 0.45

	sx := cx + nx*radiusPx
	sy := cy - y*rowPx - nz*tilt

	// Projected horizontal span between the two neighboring half
	// segments at this angle.
	xl, _, _ := m.TubeToWorld(float64(seg)-0.5, float64(row))
	xr, _, _ := m.TubeToWorld(float64(seg)+0.5, float64(row))
	w := (xr - xl) / e.tubeRadius * radiusPx
	if w < 0 {
		w = -w
	}
	if w < 3 {
		w = 3
	}
	h := rowPx * (0.55 + 0.35*depth)

	dim := 0.35 + 0.65*depth
	shaded := color.RGBA{
		R: uint8(float64(c.R) * dim),
		G: uint8(float64(c.G) * dim),
		B: uint8(float64(c.B) * dim),
		A: c.A,
	}

	return cellSprite{
		x:     float32(sx),
		y:     float32(sy),
		w:     float32(w * 0.92),
		h:     float32(h * 0.92),
		z:     z,
		color: shaded,
	}
}

// drawHUD paints the score block to the right of the tube.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	lines := renderer.HUDLines(e.session.State())

	x := float64(e.windowWidth) * 0.72
	y := float64(e.windowHeight) * 0.2
	face := e.getMonoFontFace()

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*baseFontSize*1.6)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 214, G: 214, B: 224, A: 255})
		text.Draw(screen, line, face, op)
	}
}
