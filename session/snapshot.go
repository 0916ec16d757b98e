package session

import "shopcat/grid"

// Snapshot is a read-only copy of what a frontend needs to draw a frame.
type Snapshot struct {
	View   View
	Titles []string
	Home   string

	Names    []string
	Selected int // -1 when there are no names

	Chosen      string // name committed from the catalog, if any
	ChosenIndex int

	Editor *EditorSnapshot // nil when the view has no editor

	Done bool
}

// EditorSnapshot is the renderable state of a grid editor.
type EditorSnapshot struct {
	Name   string
	Header []string
	Rows   [][]string
	Cursor grid.Position
	Buffer string
}

// Snapshot copies out the current state.
func (sess Session) Snapshot() Snapshot {

	snap := Snapshot{
		View:        sess.view,
		Titles:      Titles(),
		Home:        sess.home,
		Names:       sess.catalog.Names(),
		Selected:    sess.catalog.Index(),
		ChosenIndex: sess.chosenIndex,
		Done:        sess.done,
	}

	if sess.hasChosen {
		snap.Chosen = sess.chosen.Name()
	}

	edt, ok := sess.Editor()
	if ok {
		snap.Editor = &EditorSnapshot{
			Name:   edt.Name(),
			Header: edt.Header(),
			Rows:   edt.Rows(),
			Cursor: edt.Cursor(),
			Buffer: edt.Buffer(),
		}
	}

	return snap
}
