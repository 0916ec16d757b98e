package shopcat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"shopcat/session"
	"shopcat/style"
)

const (
	title        = "Shop Cat"
	minCellWidth = 12
	listSymbol   = ">"
)

// RenderBody renders the tabs and the current view.
func RenderBody(snap session.Snapshot, width int) string {

	var content string
	switch snap.View {
	case session.HomeView:
		content = renderHome(snap.Home)
	case session.TableListView:
		content = renderList(snap.Names, snap.Selected)
	case session.AddTableView:
		content = renderEditor(snap.Editor, "Define Table")
	case session.TableViewView:
		if snap.Editor == nil {
			content = style.MutedStyle.Render("No table selected")
			break
		}
		content = renderEditor(snap.Editor, snap.Editor.Name)
	default:
		content = "Unknown view" // Todo: error plz
	}

	return lipgloss.JoinVertical(lipgloss.Left, renderTabs(snap.Titles, snap.View, width), content)
}

// unexported

func renderTabs(titles []string, active session.View, width int) string {

	tabs := make([]string, len(titles))
	for i, ttl := range titles {
		label := fmt.Sprintf("F%d %s", i+1, ttl)
		if session.View(i) == active {
			tabs[i] = style.ActiveTabStyle.Render(label)
			continue
		}
		tabs[i] = style.TabStyle.Render(label)
	}

	bar := strings.Join(tabs, style.MutedStyle.Render("|"))
	return panel(title, bar, width)
}

func renderHome(home string) string {
	return lipgloss.NewStyle().Padding(2, 2).Render(home)
}

func renderList(names []string, selected int) string {

	if len(names) == 0 {
		return style.MutedStyle.Render("No tables in catalog")
	}

	lines := make([]string, len(names))
	for i, name := range names {
		if i == selected {
			lines[i] = style.SelectedStyle.Render(listSymbol + name)
			continue
		}
		lines[i] = " " + name
	}
	return strings.Join(lines, "\n")
}

func renderEditor(edt *session.EditorSnapshot, caption string) string {

	widths := make([]int, len(edt.Header))
	headers := make([]string, len(edt.Header))
	for i, hdr := range edt.Header {
		widths[i] = max(len(hdr)+1, minCellWidth)
		headers[i] = fmt.Sprintf("%-*s", widths[i], hdr)
	}

	tbl := table.New()
	style.StyleTable(tbl)
	tbl.Headers(headers...)
	tbl.StyleFunc(style.CellStyler(edt.Cursor.Row, edt.Cursor.Col))

	for _, row := range edt.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			width := minCellWidth
			if i < len(widths) {
				width = widths[i]
			}
			cells[i] = truncate(cell, width)
		}
		tbl.Row(cells...)
	}

	buffer := style.PanelStyle.Render(edt.Buffer + style.MutedStyle.Render("_"))
	return lipgloss.JoinVertical(lipgloss.Left, caption, tbl.Render(), buffer)
}

func panel(caption, content string, width int) string {

	pnl := style.PanelStyle
	if width > 2 {
		pnl = pnl.Width(width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, caption, pnl.Render(content))
}

func truncate(in string, width int) string {

	if lipgloss.Width(in) <= width {
		return in
	}

	runes := []rune(in)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	ellipsis := style.MutedStyle.Render("…")
	return string(runes) + ellipsis
}
