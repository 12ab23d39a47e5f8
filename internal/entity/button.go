package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"heartcatch/internal/geom"
)

// DrawButton draws a pill-shaped button with a centred label.
func DrawButton(screen *ebiten.Image, r geom.Rect, label string, fill color.RGBA, face text.Face) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	rad := h / 2

	vector.DrawFilledRect(screen, x+rad, y, w-2*rad, h, fill, true)
	vector.DrawFilledCircle(screen, x+rad, y+rad, rad, fill, true)
	vector.DrawFilledCircle(screen, x+w-rad, y+rad, rad, fill, true)

	c := r.Center()
	DrawTextCentered(screen, label, face, c.X, c.Y, ColButtonFg)
}

// DrawTextCentered draws one or more lines centred on (x, y).
func DrawTextCentered(screen *ebiten.Image, msg string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	m := face.Metrics()
	op.LineSpacing = m.HLineGap + m.HAscent + m.HDescent
	text.Draw(screen, msg, face, op)
}
