package catch

import (
	"math/rand"
	"testing"
)

// fixedRand always returns the same value.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func noSpawnRules() Rules {
	r := DefaultRules()
	r.SpawnEvery = 1 << 30
	return r
}

func TestNewPlacesBasketAtBottomCentre(t *testing.T) {
	s := New(DefaultRules())

	if s.Player.X != 160 || s.Player.Y != 540 {
		t.Errorf("basket at (%v,%v), want (160,540)", s.Player.X, s.Player.Y)
	}
	if !s.Running || s.Score != 0 || len(s.Hearts) != 0 {
		t.Errorf("unexpected initial state %+v", s)
	}
}

func TestPlayerStaysInsideSurface(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(7))
	s := New(r)

	for i := 0; i < 5000 && s.Running; i++ {
		in := Input{
			PointerX:   rng.Float64()*2000 - 1000,
			HasPointer: i%3 != 0,
			Steer:      rng.Intn(3) - 1,
		}
		s, _ = Step(s, r, in, rng)

		if s.Player.X < 0 || s.Player.X > r.Surface.W-s.Player.Width {
			t.Fatalf("tick %d: basket x %v outside [0,%v]", i, s.Player.X, r.Surface.W-s.Player.Width)
		}
	}
}

func TestSmoothingMovesFractionOfDistance(t *testing.T) {
	r := noSpawnRules()
	s := New(r)
	s.Player.X = 0

	s, _ = Step(s, r, Input{PointerX: 240, HasPointer: true}, fixedRand(0))

	// target left edge is 240-40 = 200; a fifth of that is 40
	if s.Player.X != 40 {
		t.Errorf("x after one tick = %v, want 40", s.Player.X)
	}
}

func TestKeyboardSteeringUsesPlayerSpeed(t *testing.T) {
	r := noSpawnRules()
	s := New(r)
	start := s.TargetX

	s, _ = Step(s, r, Input{Steer: 1}, fixedRand(0))
	if s.TargetX != start+r.PlayerSpeed {
		t.Errorf("target %v, want %v", s.TargetX, start+r.PlayerSpeed)
	}

	s.TargetX = 0
	s, _ = Step(s, r, Input{Steer: -1}, fixedRand(0))
	if s.TargetX != 0 {
		t.Errorf("target not clamped: %v", s.TargetX)
	}
}

func TestSpawnEverySixtyTicks(t *testing.T) {
	r := DefaultRules()
	s := New(r)
	s.Player.X = 0
	s.TargetX = 0

	spawned := 0
	for i := 0; i < 180; i++ {
		var ev Events
		s, ev = Step(s, r, Input{}, fixedRand(0.999))
		if ev.Spawned {
			spawned++
			if s.Frames%60 != 0 {
				t.Errorf("spawn on frame %d", s.Frames)
			}
			h := s.Hearts[len(s.Hearts)-1]
			if h.X < 0 || h.X > r.Surface.W-r.HeartSize {
				t.Errorf("heart x %v out of range", h.X)
			}
			// spawned at -HeartSize, then fell once this tick
			if h.Y != -r.HeartSize+r.HeartSpeed {
				t.Errorf("heart y %v, want %v", h.Y, -r.HeartSize+r.HeartSpeed)
			}
			if h.Size != r.HeartSize {
				t.Errorf("heart size %v, want %v", h.Size, r.HeartSize)
			}
		}
	}
	if spawned != 3 {
		t.Errorf("spawned %d hearts, want 3", spawned)
	}
}

func TestCatchScenario(t *testing.T) {
	r := DefaultRules()
	s := New(r)
	s.Player.X = 80
	s.TargetX = 120 // keeps the basket at x=80
	s.Hearts = []Heart{{X: 100, Y: -30, Size: 30}}

	// spawned hearts land at x≈366, far from the basket
	rng := fixedRand(0.99)

	for i := 0; i < 180; i++ {
		var ev Events
		s, ev = Step(s, r, Input{}, rng)
		if ev.Caught != 0 {
			t.Fatalf("caught early on tick %d", i+1)
		}
	}
	if s.Hearts[0].Y != 510 {
		t.Fatalf("heart y = %v before catch, want 510", s.Hearts[0].Y)
	}

	s, ev := Step(s, r, Input{}, rng)
	if ev.Caught != 1 || s.Score != 1 {
		t.Fatalf("caught=%d score=%d, want 1/1", ev.Caught, s.Score)
	}
	for _, h := range s.Hearts {
		if h.X == 100 {
			t.Fatal("caught heart was not removed")
		}
	}
}

func TestMissedHeartDoesNotScore(t *testing.T) {
	r := noSpawnRules()
	s := New(r)
	s.Player.X = 0
	s.TargetX = 0
	s.Hearts = []Heart{{X: 300, Y: -30, Size: 30}}

	missed := 0
	for i := 0; i < 400; i++ {
		var ev Events
		s, ev = Step(s, r, Input{}, fixedRand(0))
		missed += ev.Missed
		if ev.Caught != 0 {
			t.Fatal("heart outside the basket was caught")
		}
	}
	if missed != 1 || len(s.Hearts) != 0 || s.Score != 0 {
		t.Errorf("missed=%d hearts=%d score=%d", missed, len(s.Hearts), s.Score)
	}
}

func TestWinStopsTheLoop(t *testing.T) {
	r := noSpawnRules()
	s := New(r)
	s.Score = r.WinScore - 1
	s.Hearts = []Heart{
		{X: s.Player.X, Y: s.Player.Y, Size: 30},
		{X: s.Player.X + 10, Y: s.Player.Y, Size: 30},
	}

	s, ev := Step(s, r, Input{}, fixedRand(0))
	if !ev.Won || s.Running {
		t.Fatalf("expected win, got %+v running=%v", ev, s.Running)
	}
	if s.Score != r.WinScore {
		t.Errorf("score %d, want exactly %d", s.Score, r.WinScore)
	}
	if len(s.Hearts) != 1 {
		t.Errorf("hearts after win = %d, want the unprocessed one kept", len(s.Hearts))
	}

	frames := s.Frames
	after, ev := Step(s, r, Input{PointerX: 0, HasPointer: true}, fixedRand(0))
	if ev != (Events{}) {
		t.Errorf("events after win: %+v", ev)
	}
	if after.Frames != frames || after.Player != s.Player {
		t.Error("state advanced after win")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	r := noSpawnRules()
	s := New(r)
	s.Hearts = []Heart{{X: 10, Y: 10, Size: 30}}

	Step(s, r, Input{}, fixedRand(0))

	if s.Hearts[0].Y != 10 || s.Frames != 0 {
		t.Errorf("previous state mutated: %+v", s)
	}
}
