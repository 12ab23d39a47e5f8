package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"heartcatch/internal/catch"
	"heartcatch/internal/gamemode"
	"heartcatch/internal/geom"
)

const (
	runeHeart  = '♥'
	runeRound  = '●'
	runeSquare = '■'
)

var (
	styleBase  = tcell.StyleDefault
	styleHeart = styleBase.Foreground(tcell.NewHexColor(0xff4757))
	styleText  = styleBase.Foreground(tcell.NewHexColor(0xff6b81)).Bold(true)
	styleYes   = styleBase.Background(tcell.NewHexColor(0xff4757)).Foreground(tcell.ColorWhite).Bold(true)
	styleNo    = styleBase.Background(tcell.NewHexColor(0xa4b0be)).Foreground(tcell.ColorBlack)
)

// Draw renders the session and shows the frame.
func Draw(screen tcell.Screen, s *gamemode.Session) {
	screen.Clear()
	g := newGrid(screen, s.Surface())

	switch s.Phase {
	case gamemode.PhaseCatch, gamemode.PhaseFade:
		// Terminals cannot blend, so the fade dims and then blanks.
		if o := s.Transition.Opacity(); o > 0 {
			drawCatch(screen, g, s, o < 1)
		}

	case gamemode.PhaseProposal, gamemode.PhaseCelebrate:
		drawProposal(screen, g, s, s.Transition.EntranceProgress() < 0.5)
		drawConfetti(screen, g, s)
	}

	screen.Show()
}

func drawCatch(screen tcell.Screen, g grid, s *gamemode.Session, dim bool) {
	st := s.Catch

	text := styleText.Dim(dim)
	centreText(screen, g, 0, s.ScoreText, text)

	for _, h := range st.Hearts {
		col, row := g.cell(h.Rect().Center())
		if g.inside(col, row) {
			screen.SetContent(col, row, runeHeart, nil, styleHeart.Dim(dim))
		}
	}

	drawBasket(screen, g, st.Player, dim)
}

// drawBasket draws the rim with its band and a narrower bottom row:
//
//	\====/
//	 \__/
func drawBasket(screen tcell.Screen, g grid, p catch.Player, dim bool) {
	style := styleBase.Foreground(rgb(p.Color)).Dim(dim)
	first, last := g.span(p.X, p.Width)
	_, row := g.cell(geom.Point{X: p.X, Y: p.Y})

	for col := first; col <= last; col++ {
		r := '='
		switch col {
		case first:
			r = '\\'
		case last:
			r = '/'
		}
		setCell(screen, g, col, row, r, style)
	}

	if last-first < 3 {
		return
	}
	for col := first + 1; col <= last-1; col++ {
		r := '_'
		switch col {
		case first + 1:
			r = '\\'
		case last - 1:
			r = '/'
		}
		setCell(screen, g, col, row+1, r, style)
	}
}

func drawProposal(screen tcell.Screen, g grid, s *gamemode.Session, dim bool) {
	surface := s.Surface()
	_, mid := g.cell(geom.Point{Y: surface.H / 2})
	text := styleText.Dim(dim)

	if s.Phase == gamemode.PhaseCelebrate {
		centreText(screen, g, mid-1, "Yay!!!", text)
		centreText(screen, g, mid, "Best answer ever!", text)
		return
	}

	_, promptRow := g.cell(geom.Point{Y: surface.H/2 - 60})
	centreText(screen, g, promptRow, "Will you be my Valentine?", text)
	centreText(screen, g, promptRow+1, fmt.Sprintf("You caught %d hearts!", s.Catch.Score), styleBase.Dim(dim))

	b := s.Board
	if !b.Visible() {
		return
	}
	drawButton(screen, g, b.Yes, "Yes", styleYes.Dim(dim))
	drawButton(screen, g, b.No, "No", styleNo.Dim(dim && !b.Free))
}

func drawButton(screen tcell.Screen, g grid, r geom.Rect, label string, style tcell.Style) {
	first, last := g.span(r.X, r.W)
	top := int(r.Y / g.cellH)
	bottom := int(r.Bottom()/g.cellH) - 1
	if bottom < top {
		bottom = top
	}

	for row := top; row <= bottom; row++ {
		for col := first; col <= last; col++ {
			setCell(screen, g, col, row, ' ', style)
		}
	}

	labelRow := (top + bottom) / 2
	start := first + (last-first+1-len(label))/2
	for i, ch := range label {
		setCell(screen, g, start+i, labelRow, ch, style)
	}
}

func drawConfetti(screen tcell.Screen, g grid, s *gamemode.Session) {
	if s.Confetti == nil {
		return
	}
	for _, p := range s.Confetti.Particles {
		pos, ok := p.Position(s.Surface(), g.cellH)
		if !ok {
			continue
		}
		r := runeSquare
		if p.Round {
			r = runeRound
		}
		col, row := g.cell(pos)
		setCell(screen, g, col, row, r, styleBase.Foreground(rgb(p.Color)))
	}
}

func centreText(screen tcell.Screen, g grid, row int, msg string, style tcell.Style) {
	runes := []rune(msg)
	start := (g.cols - len(runes)) / 2
	for i, ch := range runes {
		setCell(screen, g, start+i, row, ch, style)
	}
}

func setCell(screen tcell.Screen, g grid, col, row int, r rune, style tcell.Style) {
	if g.inside(col, row) {
		screen.SetContent(col, row, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
