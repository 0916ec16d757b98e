// Package command defines the abstract commands driving a session.
package command

import "fmt"

// Kind identifies a command.
type Kind int

const (
	MoveUp Kind = iota
	MoveDown
	MoveLeft
	MoveRight
	AppendChar
	Backspace
	Commit
	Validate
	SelectCurrent
	SwitchView
	Quit
)

var kindNames = map[Kind]string{
	MoveUp:        "move-up",
	MoveDown:      "move-down",
	MoveLeft:      "move-left",
	MoveRight:     "move-right",
	AppendChar:    "append-char",
	Backspace:     "backspace",
	Commit:        "commit",
	Validate:      "validate",
	SelectCurrent: "select-current",
	SwitchView:    "switch-view",
	Quit:          "quit",
}

func (kind Kind) String() string {
	name, ok := kindNames[kind]
	if !ok {
		return fmt.Sprintf("kind(%d)", int(kind))
	}
	return name
}

// Command is an immutable request from the input layer.
// Char is set for AppendChar and View for SwitchView.
type Command struct {
	Kind Kind
	Char rune
	View int
}

// Of returns a command carrying no argument.
func Of(kind Kind) Command {
	return Command{Kind: kind}
}

// Char returns an AppendChar command.
func Char(ch rune) Command {
	return Command{Kind: AppendChar, Char: ch}
}

// Switch returns a SwitchView command.
func Switch(view int) Command {
	return Command{Kind: SwitchView, View: view}
}

func (cmd Command) String() string {
	switch cmd.Kind {
	case AppendChar:
		return fmt.Sprintf("%s(%q)", cmd.Kind, cmd.Char)
	case SwitchView:
		return fmt.Sprintf("%s(%d)", cmd.Kind, cmd.View)
	}
	return cmd.Kind.String()
}
