package proposal

import "heartcatch/internal/geom"

// Rand is the randomness placement needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

const (
	DefaultAttempts = 50
	DefaultMargin   = 20
)

// Place picks a random top-left position for a box of the given size inside
// viewport, keeping it clear of avoid grown by margin. It tries at most
// attempts positions and reports whether one was clear. When none was, the
// last position tried is returned so the caller can still move the box.
func Place(viewport, size geom.Size, avoid geom.Rect, margin float64, attempts int, rng Rand) (geom.Rect, bool) {
	maxX := geom.Clamp(viewport.W-size.W, 0, viewport.W)
	maxY := geom.Clamp(viewport.H-size.H, 0, viewport.H)
	keepOut := avoid.Expand(margin + geom.TouchSlop).Shape()

	var r geom.Rect
	for i := 0; i < attempts; i++ {
		r = geom.Rect{
			X: rng.Float64() * maxX,
			Y: rng.Float64() * maxY,
			W: size.W,
			H: size.H,
		}
		if !r.Shape().IsIntersecting(keepOut) {
			return r, true
		}
	}
	return r, false
}
