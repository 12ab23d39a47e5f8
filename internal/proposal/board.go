// Package proposal is the question screen: a "Yes" button that accepts and
// a "No" button that jumps away from the pointer.
package proposal

import "heartcatch/internal/geom"

type Options struct {
	Viewport geom.Size
	Button   geom.Size
	Gap      float64 // horizontal gap between the two buttons at rest
	Margin   float64 // keep-out distance around Yes when No moves
	Attempts int
}

func DefaultOptions(viewport geom.Size) Options {
	return Options{
		Viewport: viewport,
		Button:   geom.Size{W: 110, H: 44},
		Gap:      20,
		Margin:   DefaultMargin,
		Attempts: DefaultAttempts,
	}
}

// Board is the state of the two buttons.
type Board struct {
	opts Options
	rng  Rand

	Yes geom.Rect
	No  geom.Rect

	// Free is set once No has left its laid-out spot.
	Free     bool
	Accepted bool
	Evasions int
	Misses   int // evasions that fell back to an overlapping spot

	hovering bool
}

// NewBoard lays the buttons out side by side below the vertical centre.
func NewBoard(opts Options, rng Rand) *Board {
	cx := opts.Viewport.W / 2
	y := opts.Viewport.H/2 + opts.Button.H

	return &Board{
		opts: opts,
		rng:  rng,
		Yes: geom.Rect{
			X: cx - opts.Gap/2 - opts.Button.W,
			Y: y,
			W: opts.Button.W,
			H: opts.Button.H,
		},
		No: geom.Rect{
			X: cx + opts.Gap/2,
			Y: y,
			W: opts.Button.W,
			H: opts.Button.H,
		},
	}
}

// Visible reports whether the buttons are still shown.
func (b *Board) Visible() bool { return !b.Accepted }

// PointerMove fires an evasion when the pointer enters No.
func (b *Board) PointerMove(p geom.Point) {
	if b.Accepted {
		return
	}
	inside := b.No.Contains(p)
	if inside && !b.hovering {
		b.evade()
		// No is somewhere new: the next move over it is a fresh enter,
		// even if it landed under the pointer.
		b.hovering = false
		return
	}
	b.hovering = inside
}

// TouchStart evades on No and accepts on Yes. It reports acceptance.
func (b *Board) TouchStart(p geom.Point) bool {
	if b.Accepted {
		return false
	}
	switch {
	case b.No.Contains(p):
		b.evade()
		return false
	case b.Yes.Contains(p):
		return b.accept()
	}
	return false
}

// Click accepts when p is on Yes. Clicks on No are ignored.
func (b *Board) Click(p geom.Point) bool {
	if b.Accepted || !b.Yes.Contains(p) {
		return false
	}
	return b.accept()
}

func (b *Board) accept() bool {
	b.Accepted = true
	b.hovering = false
	return true
}

func (b *Board) evade() {
	r, ok := Place(b.opts.Viewport, b.No.Size(), b.Yes, b.opts.Margin, b.opts.Attempts, b.rng)
	if !ok {
		b.Misses++
	}
	b.No = r
	b.Free = true
	b.Evasions++
}
