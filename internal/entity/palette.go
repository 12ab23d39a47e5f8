// Package entity draws the game's pieces with ebiten's vector package.
// Shapes are built from paths, not sprites, so everything scales with the
// window.
package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- Colors ---
var (
	ColBg       = color.RGBA{0xff, 0xf0, 0xf5, 0xff}
	ColHeart    = color.RGBA{0xff, 0x47, 0x57, 0xff}
	ColBand     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColText     = color.RGBA{0x5a, 0x1e, 0x32, 0xff}
	ColYes      = color.RGBA{0xff, 0x47, 0x57, 0xff}
	ColNo       = color.RGBA{0xa4, 0xb0, 0xbe, 0xff}
	ColButtonFg = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// fillPath fills a closed path with a flat colour.
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, path, &vector.FillOptions{FillRule: vector.FillRuleNonZero}, op)
}
