// Package catch is the catching game: a basket steered along the bottom of
// the surface and hearts falling from the top. Step is a pure function of
// the previous state, so both frontends and the tests drive it the same way.
package catch

import (
	"image/color"

	"heartcatch/internal/geom"
)

// Rand is the randomness Step needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Rules are the tunables of one play-through.
type Rules struct {
	Surface    geom.Size
	WinScore   int
	SpawnEvery int     // ticks between spawns
	HeartSpeed float64 // units per tick
	HeartSize  float64
	Smoothing  float64 // fraction of the remaining distance covered per tick

	PlayerWidth  float64
	PlayerHeight float64
	PlayerOffset float64 // distance from the bottom edge to the basket top
	PlayerSpeed  float64 // keyboard steering step per tick
	PlayerColor  color.RGBA
}

func DefaultRules() Rules {
	return Rules{
		Surface:      geom.Size{W: 400, H: 600},
		WinScore:     10,
		SpawnEvery:   60,
		HeartSpeed:   3,
		HeartSize:    30,
		Smoothing:    0.2,
		PlayerWidth:  80,
		PlayerHeight: 50,
		PlayerOffset: 60,
		PlayerSpeed:  10,
		PlayerColor:  color.RGBA{0xff, 0x6b, 0x6b, 0xff},
	}
}

type Player struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
	Speed         float64
}

type Heart struct {
	X, Y float64
	Size float64
}

func (h Heart) Rect() geom.Rect {
	return geom.Rect{X: h.X, Y: h.Y, W: h.Size, H: h.Size}
}

// caughtBy reports whether the heart has dropped into the basket opening.
// Only the basket top matters vertically: once a heart's bottom passes it
// inside the basket's horizontal span it counts.
func (h Heart) caughtBy(p Player) bool {
	return h.Y+h.Size > p.Y &&
		h.X+h.Size > p.X &&
		h.X < p.X+p.Width
}

// State is everything the catch phase mutates.
type State struct {
	Player  Player
	Hearts  []Heart // spawn order
	Score   int
	Running bool
	Frames  int
	TargetX float64 // steering target, centre of the basket
}

func New(r Rules) State {
	return State{
		Player: Player{
			X:      r.Surface.W/2 - r.PlayerWidth/2,
			Y:      r.Surface.H - r.PlayerOffset,
			Width:  r.PlayerWidth,
			Height: r.PlayerHeight,
			Color:  r.PlayerColor,
			Speed:  r.PlayerSpeed,
		},
		Running: true,
		TargetX: r.Surface.W / 2,
	}
}

// Input is what the frontends feed in for one tick.
type Input struct {
	PointerX   float64 // surface units, clamped by Step
	HasPointer bool
	Steer      int // -1 left, +1 right, 0 none
}

// Events summarises what happened during one Step.
type Events struct {
	Spawned bool
	Caught  int
	Missed  int
	Won     bool
}

// Step advances the game by one tick. It never mutates s; the returned state
// has its own heart slice. Once the game is won Step returns s unchanged.
func Step(s State, r Rules, in Input, rng Rand) (State, Events) {
	var ev Events
	if !s.Running {
		return s, ev
	}
	next := s

	// 1. Steering target
	if in.HasPointer {
		next.TargetX = geom.Clamp(in.PointerX, 0, r.Surface.W)
	}
	if in.Steer != 0 {
		next.TargetX = geom.Clamp(next.TargetX+float64(in.Steer)*s.Player.Speed, 0, r.Surface.W)
	}

	// 2. Smooth the basket towards it
	p := next.Player
	p.X += (next.TargetX - p.Width/2 - p.X) * r.Smoothing
	p.X = geom.Clamp(p.X, 0, r.Surface.W-p.Width)
	next.Player = p

	// 3. Spawn
	hearts := make([]Heart, len(s.Hearts), len(s.Hearts)+1)
	copy(hearts, s.Hearts)
	next.Frames++
	if r.SpawnEvery > 0 && next.Frames%r.SpawnEvery == 0 {
		hearts = append(hearts, Heart{
			X:    rng.Float64() * (r.Surface.W - r.HeartSize),
			Y:    -r.HeartSize,
			Size: r.HeartSize,
		})
		ev.Spawned = true
	}

	// 4. Fall, catch, miss
	kept := hearts[:0]
	for i := 0; i < len(hearts); i++ {
		if !next.Running {
			kept = append(kept, hearts[i:]...)
			break
		}
		h := hearts[i]
		h.Y += r.HeartSpeed

		switch {
		case h.caughtBy(p):
			next.Score++
			ev.Caught++
			if next.Score >= r.WinScore {
				next.Running = false
				ev.Won = true
			}
		case h.Y > r.Surface.H:
			ev.Missed++
		default:
			kept = append(kept, h)
		}
	}
	next.Hearts = kept

	return next, ev
}
