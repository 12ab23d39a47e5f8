package gamemode

import "time"

type TransitionState int

const (
	TransitionIdle     TransitionState = iota // catch surface on screen
	TransitionFading                          // catch surface fading out
	TransitionRevealed                        // proposal on screen
)

const (
	DefaultFadeOut  = 500 * time.Millisecond
	DefaultEntrance = 600 * time.Millisecond
)

// Transition hands the screen from the catch surface to the proposal.
type Transition struct {
	State    TransitionState
	FadeOut  time.Duration
	Entrance time.Duration

	CatchVisible    bool
	ProposalVisible bool

	fadeElapsed     time.Duration
	entranceElapsed time.Duration
}

func NewTransition(fadeOut, entrance time.Duration) *Transition {
	return &Transition{
		State:        TransitionIdle,
		FadeOut:      fadeOut,
		Entrance:     entrance,
		CatchVisible: true,
	}
}

// Start begins the fade. Calling it again has no effect.
func (t *Transition) Start() {
	if t.State != TransitionIdle {
		return
	}
	t.State = TransitionFading
	t.fadeElapsed = 0
}

// Update advances by dt and reports whether the proposal was revealed
// during this call.
func (t *Transition) Update(dt time.Duration) bool {
	switch t.State {
	case TransitionFading:
		t.fadeElapsed += dt
		if t.fadeElapsed >= t.FadeOut {
			t.Reveal()
			return true
		}

	case TransitionRevealed:
		if t.entranceElapsed < t.Entrance {
			t.entranceElapsed += dt
		}
	}
	return false
}

// Reveal hides the catch surface, shows the proposal and only then rewinds
// the entrance animation, so it plays from the start even when the proposal
// was already showing.
func (t *Transition) Reveal() {
	t.CatchVisible = false
	t.ProposalVisible = true
	t.State = TransitionRevealed
	t.entranceElapsed = 0
}

// Opacity of the catch surface.
func (t *Transition) Opacity() float64 {
	switch t.State {
	case TransitionIdle:
		return 1
	case TransitionFading:
		if t.FadeOut <= 0 {
			return 0
		}
		return 1 - clamp01(float64(t.fadeElapsed)/float64(t.FadeOut))
	}
	return 0
}

// EntranceProgress is the eased progress of the proposal entrance in [0,1].
func (t *Transition) EntranceProgress() float64 {
	if t.State != TransitionRevealed {
		return 0
	}
	if t.Entrance <= 0 {
		return 1
	}
	p := clamp01(float64(t.entranceElapsed) / float64(t.Entrance))
	inv := 1 - p
	return 1 - inv*inv*inv
}

// EntranceStyle returns the alpha and scale the proposal is drawn with.
func (t *Transition) EntranceStyle() (alpha, scale float64) {
	e := t.EntranceProgress()
	return e, 0.8 + 0.2*e
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
