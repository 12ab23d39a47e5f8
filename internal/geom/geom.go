// Package geom holds the small amount of 2D math shared by the game core
// and both renderers. Units are surface units (pixels in the window build).
package geom

import "github.com/solarlune/resolv"

// TouchSlop is how far a box is grown before a collision test so that boxes
// sharing only an edge still count as overlapping.
const TouchSlop = 1e-6

// pointerSize is the side of the box a pointer position covers: one pixel.
const pointerSize = 1

type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Shape is r as a resolv collision rectangle.
func (r Rect) Shape() resolv.IShape {
	return resolv.NewRectangle(r.X, r.Y, r.W, r.H)
}

// Contains hit-tests the pixel at p against r. The pixel box is pulled in
// from its edges, so the left/top edges of r are inside and the right/bottom
// edges are not.
func (r Rect) Contains(p Point) bool {
	hit := Rect{
		X: p.X + TouchSlop,
		Y: p.Y + TouchSlop,
		W: pointerSize - 2*TouchSlop,
		H: pointerSize - 2*TouchSlop,
	}
	return r.Shape().IsIntersecting(hit.Shape())
}

// Expand grows r by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Overlaps is a closed AABB test: boxes that only touch along an edge
// still count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	return r.Shape().IsIntersecting(o.Expand(TouchSlop).Shape())
}

// Clamp restricts v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
