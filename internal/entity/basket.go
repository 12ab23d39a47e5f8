package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"heartcatch/internal/catch"
)

// DrawBasket draws the player as a bowl hanging from its top edge with a
// white band across the rim.
func DrawBasket(screen *ebiten.Image, p catch.Player) {
	x, y := float32(p.X), float32(p.Y)
	w, h := float32(p.Width), float32(p.Height)

	// 1. Bowl
	var path vector.Path
	path.MoveTo(x, y)
	path.LineTo(x+w, y)
	path.CubicTo(x+w, y+h, x, y+h, x, y)
	path.Close()
	fillPath(screen, &path, p.Color)

	// 2. Band
	vector.DrawFilledRect(screen, x+10, y+10, w-20, 5, ColBand, true)
}
