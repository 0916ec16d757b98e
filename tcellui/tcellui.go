// Package tcellui drives a session directly on a tcell screen.
//
// Key events are captured on their own goroutine and handed over a channel,
// the run loop applies them one at a time and redraws after each.
package tcellui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"shopcat/command"
	nt "shopcat/entity"
	"shopcat/session"
)

const eventBuffer = 16

type UI struct {
	screen tcell.Screen
	source string
	logger nt.Logger
}

// New wraps an initialized screen.
func New(screen tcell.Screen, source string, lgr nt.Logger) *UI {
	return &UI{
		screen: screen,
		source: source,
		logger: lgr,
	}
}

// Run applies key commands to sess until Quit is applied or ctx is done.
func (ui *UI) Run(ctx context.Context, sess session.Session) (session.Session, error) {

	events := make(chan tcell.Event, eventBuffer)
	quit := make(chan struct{})
	defer close(quit)

	go ui.capture(events, quit)

	for {
		ui.draw(sess.Snapshot())

		select {
		case <-ctx.Done():
			return sess, errors.Wrapf(ctx.Err(), "stopped before quit")

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				ui.screen.Sync()

			case *tcell.EventKey:
				cmd, ok := Translate(sess.View(), ev)
				if !ok {
					continue
				}

				var evt session.Event
				sess, evt = sess.Apply(cmd)
				ui.logEvent(ctx, evt)

				if sess.Done() {
					return sess, nil
				}
			}
		}
	}
}

// unexported

// capture forwards screen events until the screen is finalized or Run returns.
func (ui *UI) capture(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := ui.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func (ui *UI) logEvent(ctx context.Context, evt session.Event) {

	if evt.Ignored {
		return
	}

	switch evt.Command.Kind {
	case command.SelectCurrent:
		ui.logger.Info(ctx, "selected table", "name", evt.Table, "index", evt.Index)
	case command.Commit:
		ui.logger.Info(ctx, "committed cell", "table", evt.Table, "row", evt.Pos.Row, "col", evt.Pos.Col, "committed", evt.Committed)
	case command.Validate:
		ui.logger.Info(ctx, "validated table", "table", evt.Table, "valid", evt.Valid, "faults", evt.Faults)
	case command.Quit:
		ui.logger.Info(ctx, "quitting")
	}
}
