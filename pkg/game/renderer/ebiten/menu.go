package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
)

var (
	menuDimColor       = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	menuTitleColor     = color.RGBA{R: 228, G: 130, B: 255, A: 255}
	menuItemColor      = color.RGBA{R: 205, G: 205, B: 215, A: 255}
	menuStaticColor    = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	menuSelectedColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	menuHighlightColor = color.RGBA{R: 90, G: 50, B: 110, A: 200}
	menuHelpColor      = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

const menuLineHeight = baseFontSize * 2

// drawMenu paints the current menu centered over a dimmed screen.
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image) {
	m := e.currentMenu
	w := float32(e.windowWidth)
	h := float32(e.windowHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, menuDimColor, false)

	cx := float64(e.windowWidth) / 2
	items := m.Items()

	// Title, items and a help line, centered vertically as one block.
	blockHeight := titleFontSize + menuLineHeight*float64(len(items)+2)
	y := (float64(e.windowHeight) - blockHeight) / 2

	e.drawCenteredText(screen, m.Title(), e.getTitleFontFace(), cx, y, menuTitleColor)
	y += titleFontSize + menuLineHeight

	for i, item := range items {
		if i == m.Selected() {
			tw, th := text.Measure(item.Label, e.getBoldFontFace(), 0)
			vector.DrawFilledRect(screen,
				float32(cx-tw/2)-12, float32(y)-6,
				float32(tw)+24, float32(th)+12,
				menuHighlightColor, false)
			e.drawCenteredText(screen, item.Label, e.getBoldFontFace(), cx, y, menuSelectedColor)
		} else if item.Selectable {
			e.drawCenteredText(screen, item.Label, e.getUIFontFace(), cx, y, menuItemColor)
		} else {
			e.drawCenteredText(screen, item.Label, e.getUIFontFace(), cx, y, menuStaticColor)
		}
		y += menuLineHeight
	}

	help := items[m.Selected()].Help
	if help == "" {
		help = gotext.Get("up/down to select, enter to activate, q to quit")
	}
	y += menuLineHeight / 2
	e.drawCenteredText(screen, help, e.getUIFontFace(), cx, y, menuHelpColor)
}

// drawCenteredText draws one line horizontally centered on cx with its
// top edge at y.
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, c color.Color) {
	tw, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-tw/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
