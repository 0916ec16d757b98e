package shopcat

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"shopcat/command"
	nt "shopcat/entity"
	"shopcat/message"
	"shopcat/session"
)

const (
	footerHeight = 1
)

// Model is the bubbletea model for the table definition editor.
type Model struct {
	session session.Session
	source  string
	logger  nt.Logger
	ctx     context.Context

	Width  int
	Height int
}

// NewModel creates a new bt model around a session whose catalog is already loaded.
func NewModel(ctx context.Context, sess session.Session, source string, lgr nt.Logger) Model {

	return Model{
		session: sess,
		source:  source,
		logger:  lgr,
		ctx:     ctx,
	}
}

// Session returns the current session state.
func (m Model) Session() session.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.CommandMsg:
		return m.apply(msg.Command)

	case tea.KeyPressMsg:
		cmds := Translate(m.session.View(), msg)
		switch len(cmds) {
		case 0:
			return m, nil
		case 1:
			return m.apply(cmds[0])
		}
		return m, message.CommandCmd(cmds...)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	snap := m.session.Snapshot()

	bodyHeight := max(m.Height-footerHeight, 0)
	body := lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(RenderBody(snap, m.Width))

	footer := RenderFooter(snap, m.source, m.Width)

	view := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, body, footer))
	view.AltScreen = true
	return view
}

// unexported

func (m Model) apply(cmd command.Command) (tea.Model, tea.Cmd) {

	var evt session.Event
	m.session, evt = m.session.Apply(cmd)
	m.logEvent(evt)

	if m.session.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) logEvent(evt session.Event) {

	if evt.Ignored {
		return
	}

	switch evt.Command.Kind {
	case command.SelectCurrent:
		m.logger.Info(m.ctx, "selected table", "name", evt.Table, "index", evt.Index)
	case command.Commit:
		m.logger.Info(m.ctx, "committed cell", "table", evt.Table, "row", evt.Pos.Row, "col", evt.Pos.Col, "committed", evt.Committed)
	case command.Validate:
		m.logger.Info(m.ctx, "validated table", "table", evt.Table, "valid", evt.Valid, "faults", evt.Faults)
	case command.SwitchView:
		m.logger.Info(m.ctx, "switched view", "view", evt.View.String())
	case command.Quit:
		m.logger.Info(m.ctx, "quitting")
	}
}
