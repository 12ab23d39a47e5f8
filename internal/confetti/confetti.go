// Package confetti runs the celebration burst. Particles fall straight down
// after a random delay and drop out of the burst once their own animation
// window is over.
package confetti

import (
	"image/color"
	"time"

	"heartcatch/internal/geom"
)

// Rand is the randomness Spawn needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

const (
	DefaultCount = 100

	minFall    = 2 * time.Second
	fallSpread = 3 * time.Second
	maxDelay   = 2 * time.Second
)

var Palette = []color.RGBA{
	{0xff, 0x47, 0x57, 0xff},
	{0x2e, 0xd5, 0x73, 0xff},
	{0x1e, 0x90, 0xff, 0xff},
	{0xff, 0xa5, 0x02, 0xff},
}

type Particle struct {
	X     float64 // start position as a fraction of the viewport width
	Fall  time.Duration
	Delay time.Duration
	Color color.RGBA
	Round bool // circle instead of square
	Age   time.Duration
}

func (p Particle) Lifetime() time.Duration { return p.Fall + p.Delay }

func (p Particle) Done() bool { return p.Age >= p.Lifetime() }

// Progress is how far through its fall the particle is, in [0,1]. It is
// false while the particle is still waiting out its delay.
func (p Particle) Progress() (float64, bool) {
	t := p.Age - p.Delay
	if t < 0 {
		return 0, false
	}
	if t >= p.Fall {
		return 1, true
	}
	return float64(t) / float64(p.Fall), true
}

// Position maps the particle into a viewport. It starts one size above the
// top edge and finishes just below the bottom one.
func (p Particle) Position(viewport geom.Size, size float64) (geom.Point, bool) {
	prog, ok := p.Progress()
	if !ok {
		return geom.Point{}, false
	}
	return geom.Point{
		X: p.X * viewport.W,
		Y: -size + prog*(viewport.H+size),
	}, true
}

// Burst owns the live particles.
type Burst struct {
	Particles []Particle
	Spawned   int
}

func Spawn(n int, rng Rand) *Burst {
	b := &Burst{
		Particles: make([]Particle, 0, n),
		Spawned:   n,
	}
	for i := 0; i < n; i++ {
		b.Particles = append(b.Particles, newParticle(rng))
	}
	return b
}

func newParticle(rng Rand) Particle {
	p := Particle{
		X:     rng.Float64(),
		Fall:  minFall + time.Duration(rng.Float64()*float64(fallSpread)),
		Delay: time.Duration(rng.Float64() * float64(maxDelay)),
	}
	idx := int(rng.Float64() * float64(len(Palette)))
	if idx >= len(Palette) {
		idx = len(Palette) - 1
	}
	p.Color = Palette[idx]
	p.Round = rng.Float64() > 0.5
	return p
}

// Update ages every particle by dt and drops finished ones. It returns how
// many were removed.
func (b *Burst) Update(dt time.Duration) int {
	kept := b.Particles[:0]
	for _, p := range b.Particles {
		p.Age += dt
		if p.Done() {
			continue
		}
		kept = append(kept, p)
	}
	removed := len(b.Particles) - len(kept)
	b.Particles = kept
	return removed
}

func (b *Burst) Len() int { return len(b.Particles) }

func (b *Burst) Done() bool { return len(b.Particles) == 0 }
