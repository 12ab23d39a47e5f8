// Package gamemode routes one play-through through its phases: catching
// hearts, the fade, the proposal and the celebration. Frontends build an
// Input each tick, call Session.Tick and draw whatever the session exposes.
package gamemode

import (
	"fmt"
	"log"
	"time"

	"heartcatch/internal/catch"
	"heartcatch/internal/confetti"
	"heartcatch/internal/geom"
	"heartcatch/internal/proposal"
)

// Rand covers every random draw the session makes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type Phase int

const (
	PhaseCatch Phase = iota
	PhaseFade
	PhaseProposal
	PhaseCelebrate
)

func (p Phase) String() string {
	switch p {
	case PhaseCatch:
		return "catch"
	case PhaseFade:
		return "fade"
	case PhaseProposal:
		return "proposal"
	case PhaseCelebrate:
		return "celebrate"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Settings gathers the tunables of every phase.
type Settings struct {
	Rules    catch.Rules
	Board    proposal.Options
	Confetti int
	FadeOut  time.Duration
	Entrance time.Duration
	Tick     time.Duration // simulated time per Tick call
}

func DefaultSettings() Settings {
	rules := catch.DefaultRules()
	return Settings{
		Rules:    rules,
		Board:    proposal.DefaultOptions(rules.Surface),
		Confetti: confetti.DefaultCount,
		FadeOut:  DefaultFadeOut,
		Entrance: DefaultEntrance,
		Tick:     time.Second / 60,
	}
}

// Input is one tick's worth of pointer, touch and keyboard activity in
// surface units.
type Input struct {
	Pointer    geom.Point
	HasPointer bool
	Touches    []geom.Point // touches that started this tick
	Clicks     []geom.Point
	Steer      int
}

type Session struct {
	Phase Phase

	Catch      catch.State
	Transition *Transition
	Board      *proposal.Board
	Confetti   *confetti.Burst
	ScoreText  string

	settings Settings
	rng      Rand
}

func NewSession(settings Settings, rng Rand) *Session {
	s := &Session{
		Phase:      PhaseCatch,
		Catch:      catch.New(settings.Rules),
		Transition: NewTransition(settings.FadeOut, settings.Entrance),
		Board:      proposal.NewBoard(settings.Board, rng),
		settings:   settings,
		rng:        rng,
	}
	s.setScore(0)
	return s
}

func (s *Session) Settings() Settings { return s.settings }

// Surface is the size of the play area in surface units.
func (s *Session) Surface() geom.Size { return s.settings.Rules.Surface }

func (s *Session) Tick(in Input) {
	switch s.Phase {
	case PhaseCatch:
		s.tickCatch(in)

	case PhaseFade:
		if s.Transition.Update(s.settings.Tick) {
			s.setPhase(PhaseProposal)
		}

	case PhaseProposal:
		s.Transition.Update(s.settings.Tick)
		s.tickProposal(in)

	case PhaseCelebrate:
		s.Transition.Update(s.settings.Tick)
		if s.Confetti != nil {
			s.Confetti.Update(s.settings.Tick)
		}
	}
}

func (s *Session) tickCatch(in Input) {
	ci := catch.Input{
		PointerX:   in.Pointer.X,
		HasPointer: in.HasPointer,
		Steer:      in.Steer,
	}
	next, ev := catch.Step(s.Catch, s.settings.Rules, ci, s.rng)
	s.Catch = next

	if ev.Caught > 0 {
		s.setScore(next.Score)
	}
	if ev.Won {
		s.Transition.Start()
		s.setPhase(PhaseFade)
	}
}

func (s *Session) tickProposal(in Input) {
	// The buttons are drawn scaled until the entrance ends; their hit boxes
	// are not, so input waits for the animation.
	if s.Transition.EntranceProgress() < 1 {
		return
	}

	misses := s.Board.Misses
	defer func() {
		if s.Board.Misses > misses {
			log.Printf("gamemode: no clear spot for No after %d attempts, kept the last one at (%.0f,%.0f)",
				s.settings.Board.Attempts, s.Board.No.X, s.Board.No.Y)
		}
	}()

	if in.HasPointer {
		s.Board.PointerMove(in.Pointer)
	}
	accepted := false
	for _, p := range in.Touches {
		if s.Board.TouchStart(p) {
			accepted = true
		}
	}
	for _, p := range in.Clicks {
		if s.Board.Click(p) {
			accepted = true
		}
	}
	if accepted {
		s.Confetti = confetti.Spawn(s.settings.Confetti, s.rng)
		s.setPhase(PhaseCelebrate)
	}
}

func (s *Session) setScore(n int) {
	s.ScoreText = fmt.Sprintf("Score: %d", n)
}

func (s *Session) setPhase(p Phase) {
	log.Printf("gamemode: %s -> %s (score %d, frame %d)", s.Phase, p, s.Catch.Score, s.Catch.Frames)
	s.Phase = p
}
