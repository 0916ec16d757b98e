// Package message holds bubbletea messages shared across the app.
package message

import (
	tea "charm.land/bubbletea/v2"

	"shopcat/command"
)

// CommandMsg delivers an abstract command from any producer, not only the keyboard.
type CommandMsg struct {
	Command command.Command
}

// CommandCmd returns a command delivering cmds in order
func CommandCmd(cmds ...command.Command) tea.Cmd {

	msgs := make([]tea.Cmd, len(cmds))
	for i, cmd := range cmds {
		msgs[i] = func() tea.Msg {
			return CommandMsg{Command: cmd}
		}
	}
	return tea.Sequence(msgs...)
}
