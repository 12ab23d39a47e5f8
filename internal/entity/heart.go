package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"heartcatch/internal/catch"
)

// DrawHeart draws a heart filling the falling object's box.
func DrawHeart(screen *ebiten.Image, h catch.Heart) {
	s := float32(h.Size)
	cx := float32(h.X) + s/2
	y := float32(h.Y)

	var path vector.Path
	path.MoveTo(cx, y+s/4)
	path.CubicTo(cx, y, cx-s/2, y, cx-s/2, y+s/4)
	path.CubicTo(cx-s/2, y+s/2, cx, y+s*0.8, cx, y+s)
	path.CubicTo(cx, y+s*0.8, cx+s/2, y+s/2, cx+s/2, y+s/4)
	path.CubicTo(cx+s/2, y, cx, y, cx, y+s/4)
	path.Close()

	fillPath(screen, &path, ColHeart)
}
