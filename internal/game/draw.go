package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sorry-card/internal/card"
	"github.com/iburimskiy/sorry-card/internal/config"
)

var (
	gradientTop    = color.RGBA{R: 251, G: 207, B: 232, A: 255}
	gradientBottom = color.RGBA{R: 216, G: 180, B: 254, A: 255}
	panelColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
	popupColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	yesColor       = color.RGBA{R: 52, G: 211, B: 153, A: 255}
	noColor        = color.RGBA{R: 244, G: 63, B: 94, A: 255}
	shadowColor    = color.RGBA{R: 0, G: 0, B: 0, A: 40}
	headingColor   = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	bodyColor      = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	ribbonColor    = color.RGBA{R: 244, G: 114, B: 182, A: 255}
)

const (
	gradientBand = 4
	panelRadius  = 24
	buttonRadius = 16
)

func newRibbonImage() *ebiten.Image {
	w, h := float32(config.ParticleWidth), float32(config.ParticleHeight)
	r := w / 2
	img := ebiten.NewImage(config.ParticleWidth, config.ParticleHeight)
	vector.DrawFilledRect(img, 0, r, w, h-2*r, color.White, true)
	vector.DrawFilledCircle(img, r, r, r, color.White, true)
	vector.DrawFilledCircle(img, r, h-r, r, color.White, true)
	return img
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	h := g.layout.viewport.Height
	w := float32(g.layout.viewport.Width)
	for y := 0.0; y < h; y += gradientBand {
		ratio := y / h
		c := color.RGBA{
			R: mix(gradientTop.R, gradientBottom.R, ratio),
			G: mix(gradientTop.G, gradientBottom.G, ratio),
			B: mix(gradientTop.B, gradientBottom.B, ratio),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(y), w, gradientBand, c, false)
	}
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// fillRoundRect fills r with circular corners of the given radius.
func fillRoundRect(dst *ebiten.Image, r card.Rect, radius float64, clr color.Color) {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		return
	}
	x, y := float32(r.Left), float32(r.Top)
	w, h, rad := float32(r.Width), float32(r.Height), float32(radius)

	vector.DrawFilledRect(dst, x+rad, y, w-2*rad, h, clr, true)
	vector.DrawFilledRect(dst, x, y+rad, rad, h-2*rad, clr, true)
	vector.DrawFilledRect(dst, x+w-rad, y+rad, rad, h-2*rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+h-rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+h-rad, rad, clr, true)
}

// scaleRect scales r about its center.
func scaleRect(r card.Rect, s float64) card.Rect {
	c := r.Center()
	w, h := r.Width*s, r.Height*s
	return card.Rect{Left: c.X - w/2, Top: c.Y - h/2, Width: w, Height: h}
}

func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, cy, scale float64, clr color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, s, face, op)
}

func drawLines(dst *ebiten.Image, s string, face *text.GoTextFace, cx, top, width, scale float64, clr color.Color, alpha float32) float64 {
	lineH := face.Size * 1.4 * scale
	y := top
	for _, line := range wrapText(s, width/scale, faceAdvance(face)) {
		drawCentered(dst, line, face, cx, y+lineH/2, scale, clr, alpha)
		y += lineH
	}
	return y
}

func (g *Game) drawButton(screen *ebiten.Image, r card.Rect, label string, clr color.RGBA) {
	fillRoundRect(screen, r.Translate(card.Offset{X: 0, Y: 4}), buttonRadius, shadowColor)
	fillRoundRect(screen, r, buttonRadius, clr)
	c := r.Center()
	drawCentered(screen, label, g.faces.button, c.X, c.Y, r.Height/config.ButtonHeight, color.White, 1)
}

func (g *Game) drawPrompt(screen *ebiten.Image) {
	l := g.layout
	cx := l.card.Center().X
	drawCentered(screen, g.cfg.Title(), g.faces.title, cx, l.titleY, 1, headingColor, 1)
	drawLines(screen, g.cfg.Prompt, g.faces.body, cx, l.promptY, l.textWide, 1, bodyColor, 1)

	g.drawButton(screen, scaleRect(l.yes, g.yesScale.Position()), "Yes", yesColor)
	g.drawButton(screen, g.noBounds(), "No", noColor)
}

func (g *Game) drawRibbons(screen *ebiten.Image) {
	if g.burst == nil {
		return
	}
	g.poses = g.burst.Poses(g.poses[:0])
	for i, p := range g.poses {
		if p.Done || p.Scale <= 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-config.ParticleWidth/2, -config.ParticleHeight/2)
		op.GeoM.Scale(p.Scale, p.Scale)
		op.GeoM.Rotate(p.Rotation * math.Pi / 180)
		op.GeoM.Translate(p.At.X, p.At.Y)

		// small hue spread around the ribbon pink
		r, gr, b := hsvToRgb(330+float64(i%5)*6, 0.53, 0.96)
		op.ColorScale.ScaleWithColor(color.RGBA{R: r, G: gr, B: b, A: ribbonColor.A})
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.ribbon, op)
	}
}

func (g *Game) drawPopup(screen *ebiten.Image) {
	scale := g.popup.Position()
	alpha := float32(clamp01((scale - popupStartScale) / (1 - popupStartScale)))
	l := g.layout

	box := scaleRect(l.card, scale*0.9)
	shadow := color.RGBA{A: uint8(float32(shadowColor.A) * alpha)}
	fill := color.NRGBA{R: popupColor.R, G: popupColor.G, B: popupColor.B, A: uint8(255 * alpha)}
	fillRoundRect(screen, box.Translate(card.Offset{X: 0, Y: 6}), panelRadius, shadow)
	fillRoundRect(screen, box, panelRadius, fill)

	// title glows with the chime
	glow := g.chime.level() * 6
	h, s, v := 330.0, 0.1+clamp01(glow)*0.7, 0.15+clamp01(glow)*0.8
	r, gr, b := hsvToRgb(h, s, v)
	cx := box.Center().X
	drawCentered(screen, g.cfg.PartyTitle, g.faces.party, cx, box.Top+box.Height*0.3, scale, color.RGBA{R: r, G: gr, B: b, A: 255}, alpha)
	drawLines(screen, g.cfg.PartyMessage, g.faces.body, cx, box.Top+box.Height*0.48, box.Width-2*config.CardMargin, scale, bodyColor, alpha)
}
