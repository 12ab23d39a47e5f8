package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"heartcatch/internal/confetti"
	"heartcatch/internal/geom"
)

const confettiSize = 10

// DrawConfetti draws every particle that has started falling.
func DrawConfetti(screen *ebiten.Image, b *confetti.Burst, viewport geom.Size) {
	if b == nil {
		return
	}
	for _, p := range b.Particles {
		pos, ok := p.Position(viewport, confettiSize)
		if !ok {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		if p.Round {
			vector.DrawFilledCircle(screen, x+confettiSize/2, y+confettiSize/2, confettiSize/2, p.Color, true)
		} else {
			vector.DrawFilledRect(screen, x, y, confettiSize, confettiSize, p.Color, false)
		}
	}
}
