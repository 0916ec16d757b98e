// Package session owns the editor state and applies one command at a time to it.
package session

import (
	"github.com/pkg/errors"

	"shopcat/catalog"
	"shopcat/command"
	nt "shopcat/entity"
	"shopcat/grid"
	"shopcat/selector"
)

// View indicates which tab is displayed.
type View int

const (
	HomeView View = iota
	TableListView
	AddTableView
	TableViewView
)

var titles = []string{"Home", "Table List", "Add Table", "Table View"}

// Titles returns the tab titles, indexed by View.
func Titles() []string {
	return append([]string{}, titles...)
}

func (view View) String() string {
	if view < 0 || int(view) >= len(titles) {
		return "Unknown"
	}
	return titles[view]
}

// Config holds session settings.
type Config struct {
	Header   []string `yaml:"header"`
	Home     string   `yaml:"home"`
	NewTable string   `yaml:"new_table"`
}

// Session is the whole interactive state: current view, catalog, and editors.
// Session is a value: Apply returns the updated copy.
type Session struct {
	view    View
	home    string
	header  []string
	catalog catalog.Catalog
	draft   grid.Editor

	chosen      grid.Editor
	chosenIndex int
	hasChosen   bool

	done bool
}

// Event reports what a command did, for logging by the caller.
type Event struct {
	Command command.Command
	View    View
	Ignored bool

	Table string
	Index int

	Pos       grid.Position
	Committed bool

	Valid  bool
	Faults []grid.Fault
}

// New creates a session on the Home view over an already loaded catalog.
func New(cfg Config, names []string) (sess Session, err error) {

	draft, err := grid.New(cfg.NewTable, cfg.Header)
	if err != nil {
		err = errors.Wrapf(err, "failed to create draft editor")
		return
	}

	sess = Session{
		view:        HomeView,
		home:        cfg.Home,
		header:      cfg.Header,
		catalog:     catalog.New(names),
		draft:       draft,
		chosenIndex: -1,
	}
	return
}

// Done reports whether Quit has been applied.
func (sess Session) Done() bool {
	return sess.done
}

// View returns the current view.
func (sess Session) View() View {
	return sess.view
}

// Catalog returns the table name catalog.
func (sess Session) Catalog() catalog.Catalog {
	return sess.catalog
}

// Editor returns the editor shown in the current view, if any.
func (sess Session) Editor() (edt grid.Editor, ok bool) {

	switch sess.view {
	case AddTableView:
		return sess.draft, true
	case TableViewView:
		if sess.hasChosen {
			return sess.chosen, true
		}
	}
	return
}

// Apply processes a single command to completion.
func (sess Session) Apply(cmd command.Command) (Session, Event) {

	evt := Event{Command: cmd, View: sess.view}

	switch cmd.Kind {
	case command.Quit:
		sess.done = true
		return sess, evt

	case command.SwitchView:
		if cmd.View < 0 || cmd.View >= len(titles) {
			evt.Ignored = true
			return sess, evt
		}
		sess.view = View(cmd.View)
		evt.View = sess.view
		return sess, evt
	}

	switch sess.view {
	case TableListView:
		return sess.applyList(cmd, evt)
	case AddTableView, TableViewView:
		return sess.applyEditor(cmd, evt)
	}

	evt.Ignored = true
	return sess, evt
}

// unexported

func (sess Session) applyList(cmd command.Command, evt Event) (Session, Event) {

	// navigating an empty catalog is suppressed here rather than attempted
	if sess.catalog.Len() == 0 {
		evt.Ignored = true
		return sess, evt
	}

	var err error
	switch cmd.Kind {
	case command.MoveUp:
		sess.catalog, err = sess.catalog.Move(selector.Backward)
	case command.MoveDown:
		sess.catalog, err = sess.catalog.Move(selector.Forward)
	case command.SelectCurrent:
		return sess.selectCurrent(evt)
	default:
		evt.Ignored = true
	}

	evt.Index = sess.catalog.Index()
	evt.Table, _ = sess.catalog.Selected()
	if err != nil {
		evt.Ignored = true
	}
	return sess, evt
}

func (sess Session) selectCurrent(evt Event) (Session, Event) {

	name, idx, err := sess.catalog.Commit()
	if err != nil {
		evt.Ignored = true
		return sess, evt
	}

	chosen, err := grid.New(name, sess.header)
	if err != nil {
		evt.Ignored = true
		return sess, evt
	}

	sess.chosen = chosen
	sess.chosenIndex = idx
	sess.hasChosen = true
	sess.view = TableViewView

	evt.Table = name
	evt.Index = idx
	evt.View = sess.view
	return sess, evt
}

func (sess Session) applyEditor(cmd command.Command, evt Event) (Session, Event) {

	edt, ok := sess.Editor()
	if !ok {
		evt.Ignored = true
		return sess, evt
	}

	switch cmd.Kind {
	case command.MoveUp:
		edt = edt.Move(nt.Up)
	case command.MoveDown:
		edt = edt.Move(nt.Down)
	case command.MoveLeft:
		edt = edt.Move(nt.Left)
	case command.MoveRight:
		edt = edt.Move(nt.Right)
	case command.AppendChar:
		edt = edt.Append(cmd.Char)
	case command.Backspace:
		edt = edt.Backspace()
	case command.Commit:
		edt, evt.Committed = edt.Commit()
	case command.Validate:
		evt.Faults = edt.Check()
		edt, evt.Valid = edt.Verify()
	default:
		evt.Ignored = true
	}

	evt.Table = edt.Name()
	evt.Pos = edt.Cursor()

	if sess.view == AddTableView {
		sess.draft = edt
	} else {
		sess.chosen = edt
	}
	return sess, evt
}
