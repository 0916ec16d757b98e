package tcellui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"shopcat/session"
)

const (
	title     = "Shop Cat"
	cellWidth = 16
	bodyTop   = 2
)

var (
	plainStyle    = tcell.StyleDefault
	activeStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Underline(true)
	mutedStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headerStyle   = tcell.StyleDefault.Bold(true)
	selectedStyle = tcell.StyleDefault.Reverse(true)
)

func (ui *UI) draw(snap session.Snapshot) {

	ui.screen.Clear()
	width, height := ui.screen.Size()

	ui.drawTabs(snap)

	switch snap.View {
	case session.HomeView:
		for i, line := range strings.Split(snap.Home, "\n") {
			ui.text(2, bodyTop+i, line, plainStyle)
		}
	case session.TableListView:
		ui.drawList(snap)
	case session.AddTableView, session.TableViewView:
		if snap.Editor == nil {
			ui.text(0, bodyTop, "No table selected", mutedStyle)
			break
		}
		ui.drawEditor(snap.Editor)
	}

	footer := fmt.Sprintf("%d tables", len(snap.Names))
	if snap.Editor != nil {
		footer = fmt.Sprintf("%s %d/%d", snap.Editor.Name, snap.Editor.Cursor.Row+1, snap.Editor.Cursor.Col+1)
	}
	ui.text(0, height-1, footer, mutedStyle)
	ui.text(width-runewidth.StringWidth(ui.source), height-1, ui.source, mutedStyle)

	ui.screen.Show()
}

func (ui *UI) drawTabs(snap session.Snapshot) {

	x := ui.text(0, 0, title+" ", headerStyle)
	for i, ttl := range snap.Titles {
		style := plainStyle
		if session.View(i) == snap.View {
			style = activeStyle
		}
		x = ui.text(x, 0, fmt.Sprintf(" F%d %s ", i+1, ttl), style)
		if i < len(snap.Titles)-1 {
			x = ui.text(x, 0, "|", mutedStyle)
		}
	}
}

func (ui *UI) drawList(snap session.Snapshot) {

	if len(snap.Names) == 0 {
		ui.text(0, bodyTop, "No tables in catalog", mutedStyle)
		return
	}

	for i, name := range snap.Names {
		if i == snap.Selected {
			ui.text(0, bodyTop+i, ">"+name, selectedStyle)
			continue
		}
		ui.text(0, bodyTop+i, " "+name, plainStyle)
	}
}

func (ui *UI) drawEditor(edt *session.EditorSnapshot) {

	ui.text(0, bodyTop, edt.Name, headerStyle)

	for col, hdr := range edt.Header {
		ui.text(col*cellWidth, bodyTop+1, fit(hdr), headerStyle)
	}

	for row, cells := range edt.Rows {
		for col, cell := range cells {
			style := plainStyle
			if row == edt.Cursor.Row && col == edt.Cursor.Col {
				style = selectedStyle
			}
			ui.text(col*cellWidth, bodyTop+2+row, fit(cell), style)
		}
	}

	ui.text(0, bodyTop+3+len(edt.Rows), "> "+edt.Buffer, plainStyle)
}

// text draws str from x, y and returns the column after it.
func (ui *UI) text(x, y int, str string, style tcell.Style) int {
	for _, ch := range str {
		ui.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// fit pads or truncates to one cell column, leaving a space between columns.
func fit(str string) string {
	return runewidth.FillRight(runewidth.Truncate(str, cellWidth-1, "…"), cellWidth)
}
