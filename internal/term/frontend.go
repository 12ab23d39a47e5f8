package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"heartcatch/internal/gamemode"
)

// Frontend feeds tcell events into a session and redraws it on a ticker.
// All session access happens on the goroutine running Run.
type Frontend struct {
	screen  tcell.Screen
	session *gamemode.Session

	pending gamemode.Input
	buttons tcell.ButtonMask
}

func New(screen tcell.Screen, session *gamemode.Session) *Frontend {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return &Frontend{
		screen:  screen,
		session: session,
	}
}

// Run blocks until ctx is done or the player quits. The caller owns the
// screen and must Fini it afterwards, which also stops the event poller.
func (f *Frontend) Run(ctx context.Context, tick time.Duration) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	Draw(f.screen, f.session)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			f.Step()
			Draw(f.screen, f.session)
		}
	}
}

// HandleEvent folds one terminal event into the next tick's input. It
// returns false when the player asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			f.pending.Steer = -1
		case tcell.KeyRight:
			f.pending.Steer = 1
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				f.pending.Steer = -1
			case 'd':
				f.pending.Steer = 1
			}
		}

	case *tcell.EventMouse:
		g := newGrid(f.screen, f.session.Surface())
		col, row := ev.Position()
		p := g.point(col, row)

		f.pending.Pointer = p
		f.pending.HasPointer = true

		// A press on the primary button is both a click and, for the
		// proposal, the closest thing a terminal has to a touch start.
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && f.buttons&tcell.Button1 == 0 {
			f.pending.Clicks = append(f.pending.Clicks, p)
		}
		f.buttons = ev.Buttons()

	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// Step advances the session by one tick with everything gathered since the
// previous one.
func (f *Frontend) Step() {
	f.session.Tick(f.pending)
	f.pending = gamemode.Input{}
}
