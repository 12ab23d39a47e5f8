package gamemode

import (
	"bytes"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"heartcatch/internal/catch"
	"heartcatch/internal/geom"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestSession() *Session {
	return NewSession(DefaultSettings(), rand.New(rand.NewSource(21)))
}

// winNextTick leaves the session one caught heart short of winning, with
// that heart about to land in the basket.
func winNextTick(s *Session) {
	p := s.Catch.Player
	s.Catch.Score = s.settings.Rules.WinScore - 1
	s.Catch.Hearts = []catch.Heart{{X: p.X, Y: p.Y, Size: 30}}
}

func TestScoreTextFollowsCatches(t *testing.T) {
	s := newTestSession()
	if s.ScoreText != "Score: 0" {
		t.Fatalf("initial text %q", s.ScoreText)
	}

	p := s.Catch.Player
	s.Catch.Hearts = []catch.Heart{{X: p.X, Y: p.Y, Size: 30}}
	s.Tick(Input{})

	if s.ScoreText != "Score: 1" {
		t.Errorf("text after catch %q", s.ScoreText)
	}
}

func TestWinMovesToFadeOnce(t *testing.T) {
	s := newTestSession()
	winNextTick(s)
	s.Tick(Input{})

	if s.Phase != PhaseFade {
		t.Fatalf("phase %s, want fade", s.Phase)
	}
	if s.Catch.Running || s.Catch.Score != 10 {
		t.Fatalf("running=%v score=%d", s.Catch.Running, s.Catch.Score)
	}

	frames := s.Catch.Frames
	for i := 0; i < 10; i++ {
		s.Tick(Input{Pointer: geom.Point{X: 0}, HasPointer: true})
	}
	if s.Catch.Frames != frames {
		t.Error("catch loop kept running after the win")
	}
}

func TestFadeRevealsProposalAfterFadeOut(t *testing.T) {
	s := newTestSession()
	winNextTick(s)
	s.Tick(Input{})

	var elapsed time.Duration
	for s.Phase == PhaseFade {
		s.Tick(Input{})
		elapsed += s.settings.Tick
		if elapsed > 2*s.settings.FadeOut {
			t.Fatal("fade never finished")
		}
	}

	if s.Phase != PhaseProposal {
		t.Fatalf("phase %s after fade", s.Phase)
	}
	if elapsed < s.settings.FadeOut || elapsed-s.settings.Tick >= s.settings.FadeOut {
		t.Errorf("revealed after %v, fade is %v", elapsed, s.settings.FadeOut)
	}
	if s.Transition.CatchVisible || !s.Transition.ProposalVisible {
		t.Error("surfaces not swapped on reveal")
	}
	if s.Transition.EntranceProgress() != 0 {
		t.Error("entrance did not start from zero")
	}
}

func proposalSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession()
	winNextTick(s)
	s.Tick(Input{})
	for s.Phase == PhaseFade {
		s.Tick(Input{})
	}
	for s.Transition.EntranceProgress() < 1 {
		s.Tick(Input{})
	}
	return s
}

func TestInputWaitsForEntrance(t *testing.T) {
	s := newTestSession()
	winNextTick(s)
	s.Tick(Input{})
	for s.Phase == PhaseFade {
		s.Tick(Input{})
	}

	no := s.Board.No
	s.Tick(Input{
		Pointer:    no.Center(),
		HasPointer: true,
		Clicks:     []geom.Point{s.Board.Yes.Center()},
	})
	if s.Phase != PhaseProposal || s.Board.Evasions != 0 {
		t.Fatalf("input handled mid-entrance: phase=%s evasions=%d", s.Phase, s.Board.Evasions)
	}

	for s.Transition.EntranceProgress() < 1 {
		s.Tick(Input{})
	}
	s.Tick(Input{Clicks: []geom.Point{s.Board.Yes.Center()}})
	if s.Phase != PhaseCelebrate {
		t.Errorf("phase %s after the entrance, want celebrate", s.Phase)
	}
}

func TestPlacementFallbackIsLogged(t *testing.T) {
	settings := DefaultSettings()
	// Yes plus its margin covers the whole viewport
	settings.Board.Margin = 1000
	s := NewSession(settings, rand.New(rand.NewSource(4)))
	winNextTick(s)
	s.Tick(Input{})
	for s.Phase == PhaseFade || s.Transition.EntranceProgress() < 1 {
		s.Tick(Input{})
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(io.Discard)

	s.Tick(Input{Pointer: s.Board.No.Center(), HasPointer: true})

	if s.Board.Misses != 1 {
		t.Fatalf("misses=%d, want 1", s.Board.Misses)
	}
	if !strings.Contains(buf.String(), "no clear spot for No after 50 attempts") {
		t.Errorf("log output %q", buf.String())
	}
}

func TestProposalHoverEvades(t *testing.T) {
	s := proposalSession(t)
	no := s.Board.No

	s.Tick(Input{Pointer: no.Center(), HasPointer: true})

	if s.Board.Evasions != 1 || s.Board.No == no {
		t.Errorf("No did not move: evasions=%d", s.Board.Evasions)
	}
	if s.Phase != PhaseProposal {
		t.Errorf("phase %s", s.Phase)
	}
}

func TestYesStartsCelebration(t *testing.T) {
	s := proposalSession(t)

	s.Tick(Input{Clicks: []geom.Point{s.Board.Yes.Center()}})

	if s.Phase != PhaseCelebrate {
		t.Fatalf("phase %s, want celebrate", s.Phase)
	}
	if s.Board.Visible() {
		t.Error("buttons still visible")
	}
	if s.Confetti == nil || s.Confetti.Len() != 100 {
		t.Fatalf("confetti burst %+v", s.Confetti)
	}

	for i := 0; i < 60*8 && !s.Confetti.Done(); i++ {
		s.Tick(Input{})
	}
	if !s.Confetti.Done() {
		t.Errorf("%d particles left after 8s", s.Confetti.Len())
	}
}

func TestTouchOnYesAccepts(t *testing.T) {
	s := proposalSession(t)
	s.Tick(Input{Touches: []geom.Point{s.Board.Yes.Center()}})
	if s.Phase != PhaseCelebrate {
		t.Errorf("phase %s after touching Yes", s.Phase)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseCelebrate.String() != "celebrate" || Phase(9).String() != "Phase(9)" {
		t.Error("unexpected phase names")
	}
}
