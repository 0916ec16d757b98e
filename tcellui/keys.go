package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"shopcat/command"
	"shopcat/session"
)

// Translate maps a key event to a command for the given view.
func Translate(view session.View, ev *tcell.EventKey) (cmd command.Command, ok bool) {

	ok = true
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		cmd = command.Of(command.Quit)
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4:
		cmd = command.Switch(int(ev.Key() - tcell.KeyF1))
	case tcell.KeyUp:
		cmd = command.Of(command.MoveUp)
	case tcell.KeyDown:
		cmd = command.Of(command.MoveDown)
	case tcell.KeyLeft:
		cmd = command.Of(command.MoveLeft)
	case tcell.KeyRight:
		cmd = command.Of(command.MoveRight)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		cmd = command.Of(command.Backspace)
	case tcell.KeyEnter:
		cmd = command.Of(command.Commit)
		if view == session.TableListView {
			cmd = command.Of(command.SelectCurrent)
		}
	case tcell.KeyRune:
		cmd = command.Char(ev.Rune())
		if ev.Rune() == '?' {
			cmd = command.Of(command.Validate)
		}
	default:
		ok = false
	}
	return
}
