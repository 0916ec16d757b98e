package shopcat

import (
	tea "charm.land/bubbletea/v2"

	"shopcat/command"
	"shopcat/session"
)

// Translate maps a key press to commands for the given view.
// Most keys give a single command, composed text may give several.
func Translate(view session.View, msg tea.KeyPressMsg) (cmds []command.Command) {

	switch msg.String() {
	case "ctrl+c", "esc":
		return one(command.Of(command.Quit))
	case "f1":
		return one(command.Switch(0))
	case "f2":
		return one(command.Switch(1))
	case "f3":
		return one(command.Switch(2))
	case "f4":
		return one(command.Switch(3))
	case "up":
		return one(command.Of(command.MoveUp))
	case "down":
		return one(command.Of(command.MoveDown))
	case "left":
		return one(command.Of(command.MoveLeft))
	case "right":
		return one(command.Of(command.MoveRight))
	case "backspace":
		return one(command.Of(command.Backspace))
	case "enter":
		if view == session.TableListView {
			return one(command.Of(command.SelectCurrent))
		}
		return one(command.Of(command.Commit))
	case "?":
		return one(command.Of(command.Validate))
	case "space":
		return one(command.Char(' '))
	}

	for _, ch := range msg.Text {
		cmds = append(cmds, command.Char(ch))
	}
	return
}

func one(cmd command.Command) []command.Command {
	return []command.Command{cmd}
}
