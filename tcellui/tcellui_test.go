package tcellui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcat/command"
	"shopcat/session"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (nopLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func newSession(t *testing.T, names ...string) session.Session {
	t.Helper()

	sess, err := session.New(session.Config{
		Header:   []string{"Name", "Data Type"},
		Home:     "welcome",
		NewTable: "new_table",
	}, names)
	require.NoError(t, err)
	return sess
}

func line(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()

	var sb strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(runes[0])
	}
	return sb.String()
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		view session.View
		ev   *tcell.EventKey
		cmd  command.Command
		ok   bool
	}{
		{"escape", session.HomeView, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), command.Of(command.Quit), true},
		{"f2", session.HomeView, tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), command.Switch(1), true},
		{"down", session.TableListView, tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), command.Of(command.MoveDown), true},
		{"enter in list", session.TableListView, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), command.Of(command.SelectCurrent), true},
		{"enter in editor", session.AddTableView, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), command.Of(command.Commit), true},
		{"rune", session.AddTableView, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), command.Char('x'), true},
		{"question", session.AddTableView, tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), command.Of(command.Validate), true},
		{"tab", session.AddTableView, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), command.Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Translate(tt.view, tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}

func TestRun(t *testing.T) {

	screen := newScreen(t)
	ui := New(screen, "test:_tables", nopLogger{})

	screen.InjectKey(tcell.KeyF3, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '?', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	sess, err := ui.Run(context.Background(), newSession(t))
	require.NoError(t, err)
	assert.True(t, sess.Done())

	snap := sess.Snapshot()
	require.NotNil(t, snap.Editor)
	assert.Equal(t, [][]string{{"a", ""}}, snap.Editor.Rows)
	assert.Equal(t, "No", snap.Editor.Buffer)

	assert.Contains(t, line(screen, 0), "Shop Cat")
	assert.Contains(t, line(screen, bodyTop), "new_table")
	assert.Contains(t, line(screen, bodyTop+1), "Data Type")
	assert.Contains(t, line(screen, bodyTop+2), "a")
	assert.Contains(t, line(screen, bodyTop+4), "> No")
	assert.Contains(t, line(screen, 19), "test:_tables")
}

func TestRunSelectsTable(t *testing.T) {

	screen := newScreen(t)
	ui := New(screen, "test:_tables", nopLogger{})

	screen.InjectKey(tcell.KeyF2, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	sess, err := ui.Run(context.Background(), newSession(t, "caine", "tigru"))
	require.NoError(t, err)

	snap := sess.Snapshot()
	assert.Equal(t, session.TableViewView, snap.View)
	assert.Equal(t, "tigru", snap.Chosen)
	assert.Contains(t, line(screen, bodyTop), "tigru")
}

func TestRunCanceled(t *testing.T) {

	screen := newScreen(t)
	ui := New(screen, "test:_tables", nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ui.Run(ctx, newSession(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFit(t *testing.T) {

	assert.Equal(t, "id"+strings.Repeat(" ", cellWidth-2), fit("id"))
	assert.Equal(t, cellWidth, runewidth.StringWidth(fit("a name far too long for one column")))
}
