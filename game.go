package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"heartcatch/internal/assets"
	"heartcatch/internal/entity"
	"heartcatch/internal/gamemode"
	"heartcatch/internal/geom"
)

const (
	promptText      = "Will you be my Valentine?"
	celebrationText = "Yay!!!\nBest answer ever!"
)

// Game adapts a gamemode.Session to ebiten's loop.
type Game struct {
	session *gamemode.Session
	surface geom.Size

	// Offscreen layers so a whole phase can fade or scale as one.
	catchLayer    *ebiten.Image
	proposalLayer *ebiten.Image

	lastCursor image.Point
	touchIDs   []ebiten.TouchID
}

func NewGame(settings gamemode.Settings, rng gamemode.Rand) *Game {
	w, h := int(settings.Rules.Surface.W), int(settings.Rules.Surface.H)
	return &Game{
		session:       gamemode.NewSession(settings, rng),
		surface:       settings.Rules.Surface,
		catchLayer:    ebiten.NewImage(w, h),
		proposalLayer: ebiten.NewImage(w, h),
		lastCursor:    image.Pt(-1, -1),
	}
}

// Update: Logic (TPS)
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.session.Tick(g.readInput())
	return nil
}

// readInput collects this tick's pointer, touch and key state. Ebiten
// already reports positions in Layout coordinates, so they are surface
// units as-is.
func (g *Game) readInput() gamemode.Input {
	var in gamemode.Input

	// 1. Mouse: steer only when it moved, like a mousemove listener
	cx, cy := ebiten.CursorPosition()
	cursor := image.Pt(cx, cy)
	if cursor != g.lastCursor {
		in.Pointer = geom.Point{X: float64(cx), Y: float64(cy)}
		in.HasPointer = true
		g.lastCursor = cursor
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.Clicks = append(in.Clicks, geom.Point{X: float64(cx), Y: float64(cy)})
	}

	// 2. Touch: the first finger steers, new fingers are touch starts
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(g.touchIDs[0])
		in.Pointer = geom.Point{X: float64(tx), Y: float64(ty)}
		in.HasPointer = true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, geom.Point{X: float64(tx), Y: float64(ty)})
	}

	// 3. Keyboard
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Steer--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Steer++
	}
	return in
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(entity.ColBg)

	s := g.session
	switch s.Phase {
	case gamemode.PhaseCatch, gamemode.PhaseFade:
		g.drawCatch(screen, s.Transition.Opacity())

	case gamemode.PhaseProposal, gamemode.PhaseCelebrate:
		g.drawProposal(screen)
		entity.DrawConfetti(screen, s.Confetti, g.surface)
	}
}

func (g *Game) drawCatch(screen *ebiten.Image, opacity float64) {
	layer := g.catchLayer
	layer.Clear()

	st := g.session.Catch
	entity.DrawBasket(layer, st.Player)
	for _, h := range st.Hearts {
		entity.DrawHeart(layer, h)
	}
	entity.DrawTextCentered(layer, g.session.ScoreText, assets.Bold(20), g.surface.W/2, 24, entity.ColText)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(layer, op)
}

func (g *Game) drawProposal(screen *ebiten.Image) {
	layer := g.proposalLayer
	layer.Clear()

	s := g.session
	b := s.Board
	cx, cy := g.surface.W/2, g.surface.H/2

	if s.Phase == gamemode.PhaseCelebrate {
		entity.DrawTextCentered(layer, celebrationText, assets.Bold(30), cx, cy, entity.ColHeart)
	} else {
		entity.DrawTextCentered(layer, promptText, assets.Bold(26), cx, cy-60, entity.ColText)
		sub := fmt.Sprintf("You caught %d hearts!", s.Catch.Score)
		entity.DrawTextCentered(layer, sub, assets.Regular(16), cx, cy-20, entity.ColText)
	}

	if b.Visible() {
		entity.DrawButton(layer, b.Yes, "Yes", entity.ColYes, assets.Bold(20))
		if !b.Free {
			entity.DrawButton(layer, b.No, "No", entity.ColNo, assets.Bold(20))
		}
	}

	// Entrance: scale about the centre and fade in.
	alpha, scale := s.Transition.EntranceStyle()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cx, -cy)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(layer, op)

	// Once No has jumped it lives in viewport space, outside the entrance
	// transform.
	if b.Visible() && b.Free {
		entity.DrawButton(screen, b.No, "No", entity.ColNo, assets.Bold(20))
	}
}

// Layout: Scaling Strategy
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Always render at the configured surface size, let Ebiten scale it up
	return int(g.surface.W), int(g.surface.H)
}
