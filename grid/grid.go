// Package grid implements the cell-by-cell editor for a table definition.
package grid

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/pkg/errors"

	"shopcat/celltype"
	nt "shopcat/entity"
	"shopcat/selector"
)

// Todo: report the failing cell to the user rather than just Yes/No

var (
	ErrNoColumns = errors.New("header has no columns")
	ErrNoRows    = errors.New("grid has no rows")
)

const (
	// contentCol is checked against the type declared in typeCol.
	contentCol = 0
	typeCol    = 1

	validEcho   = "Yes"
	invalidEcho = "No"
)

// Position is a row, column pair in the grid.
type Position struct {
	Row int
	Col int
}

// Fault describes why a row fails validation.
type Fault struct {
	Row    int
	Reason string
}

// Editor owns a grid of cells, a cursor into it, and a buffer composing the next value.
// Editor is designed for immutable use in bubbletea/Elm architecture:
// - Methods return a new Editor with updated state
// - Rows are shared between copies until Commit, which clones the row it writes
type Editor struct {
	name   string
	header []string
	rows   [][]string
	cursor Position
	buffer string
}

// New creates an editor with a single row of empty cells, one per header column.
func New(name string, header []string) (edt Editor, err error) {

	if len(header) == 0 {
		err = errors.Wrapf(ErrNoColumns, "cannot edit %q", name)
		return
	}

	edt = Editor{
		name:   name,
		header: slices.Clone(header),
		rows:   [][]string{make([]string, len(header))},
	}
	return
}

// Name returns the name of the table being defined.
func (edt Editor) Name() string {
	return edt.name
}

// Header returns the column labels.
func (edt Editor) Header() []string {
	return slices.Clone(edt.header)
}

// Rows returns a copy of the grid contents.
func (edt Editor) Rows() [][]string {
	rows := make([][]string, len(edt.rows))
	for i, row := range edt.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// Cell returns the content at row, col.
func (edt Editor) Cell(row, col int) (content string, ok bool) {
	if !edt.inBounds(Position{Row: row, Col: col}) {
		return
	}
	return edt.rows[row][col], true
}

// Cursor returns the current position.
func (edt Editor) Cursor() Position {
	return edt.cursor
}

// Buffer returns the value being composed.
func (edt Editor) Buffer() string {
	return edt.buffer
}

// Replace swaps in externally supplied rows, keeping cursor and buffer as they are.
// The cursor may end up outside the new grid, in which case Commit is a no-op until
// the next move brings it back.
func (edt Editor) Replace(rows [][]string) (Editor, error) {

	if len(rows) == 0 {
		return edt, ErrNoRows
	}
	if len(rows[0]) == 0 {
		return edt, ErrNoColumns
	}

	edt.rows = make([][]string, len(rows))
	for i, row := range rows {
		edt.rows[i] = slices.Clone(row)
	}
	return edt, nil
}

// Move shifts the cursor one cell, wrapping around the edges.
// Column count is taken from the first row.
func (edt Editor) Move(dir nt.Direction) Editor {

	if len(edt.rows) == 0 {
		return edt
	}
	rowCount := len(edt.rows)
	colCount := len(edt.rows[0])

	pos := edt.cursor

	var err error
	switch dir {
	case nt.Up:
		pos.Row, err = selector.Advance(pos.Row, rowCount, selector.Backward)
	case nt.Down:
		pos.Row, err = selector.Advance(pos.Row, rowCount, selector.Forward)
	case nt.Left:
		pos.Col, err = selector.Advance(pos.Col, colCount, selector.Backward)
	case nt.Right:
		pos.Col, err = selector.Advance(pos.Col, colCount, selector.Forward)
	}
	if err != nil {
		return edt
	}

	edt.cursor = pos
	return edt
}

// Append adds a character to the buffer.
func (edt Editor) Append(ch rune) Editor {
	edt.buffer += string(ch)
	return edt
}

// Backspace drops the last character of the buffer, if any.
func (edt Editor) Backspace() Editor {
	if edt.buffer == "" {
		return edt
	}

	_, size := utf8.DecodeLastRuneInString(edt.buffer)
	edt.buffer = edt.buffer[:len(edt.buffer)-size]
	return edt
}

// Commit writes the buffer into the cell under the cursor and clears the buffer.
// Nothing happens, and ok is false, when the cursor is outside the grid.
func (edt Editor) Commit() (Editor, bool) {

	if !edt.inBounds(edt.cursor) {
		return edt, false
	}

	row := slices.Clone(edt.rows[edt.cursor.Row])
	row[edt.cursor.Col] = edt.buffer

	edt.rows = slices.Clone(edt.rows)
	edt.rows[edt.cursor.Row] = row
	edt.buffer = ""

	return edt, true
}

// Validate reports whether every row is a well-formed column definition.
func (edt Editor) Validate() bool {
	return len(edt.Check()) == 0
}

// Verify validates the grid and echoes the outcome into the buffer as Yes or No,
// replacing whatever was being composed.
func (edt Editor) Verify() (Editor, bool) {

	valid := edt.Validate()

	edt.buffer = invalidEcho
	if valid {
		edt.buffer = validEcho
	}
	return edt, valid
}

// Check returns a fault for each row failing validation.
func (edt Editor) Check() (faults []Fault) {

	width := len(edt.header)

	for i, row := range edt.rows {
		if len(row) != width {
			faults = append(faults, Fault{
				Row:    i,
				Reason: fmt.Sprintf("has %d cells, want %d", len(row), width),
			})
			continue
		}

		label := ""
		if typeCol < len(row) {
			label = row[typeCol]
		}

		typ := celltype.Classify(label)
		if typ == celltype.Empty {
			faults = append(faults, Fault{
				Row:    i,
				Reason: fmt.Sprintf("unknown type %q", label),
			})
			continue
		}

		if !celltype.Conforms(typ, row[contentCol]) {
			faults = append(faults, Fault{
				Row:    i,
				Reason: fmt.Sprintf("%q is not %s", row[contentCol], typ),
			})
		}
	}

	return
}

// unexported

func (edt Editor) inBounds(pos Position) bool {
	if pos.Row < 0 || pos.Row >= len(edt.rows) {
		return false
	}
	return pos.Col >= 0 && pos.Col < len(edt.rows[pos.Row])
}
