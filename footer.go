package shopcat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"shopcat/session"
)

// RenderFooter renders a footer with the cursor position and data source.
func RenderFooter(snap session.Snapshot, source string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	left := fmt.Sprintf("%d tables", len(snap.Names))
	if snap.Editor != nil {
		left = fmt.Sprintf("%s %d/%d", snap.Editor.Name, snap.Editor.Cursor.Row+1, snap.Editor.Cursor.Col+1)
	} else if snap.Chosen != "" {
		left = fmt.Sprintf("%s selected", snap.Chosen)
	}
	right := source

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	footer := style.Render(left + strings.Repeat(" ", padding) + right)
	return footer
}
