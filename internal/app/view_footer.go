package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, m.styles.status.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

// buildStatusRows packs help, context and status segments into at most
// rowLimit rows joined by " | ". The bool reports whether everything fit
// without truncation.
func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := strings.TrimSpace(m.status)

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		rows[rowIndex] = truncateWithEllipsis(candidate, width)
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	if m.showHelp {
		return []string{
			m.primaryActionKey(actionHelp, "?") + " close help",
			m.primaryActionKey(actionQuit, "q") + " quit",
		}
	}
	help := []string{
		"1-7 views",
		m.primaryActionKey(actionNavPrev, "↑") + "/" + m.primaryActionKey(actionNavNext, "↓") + " move",
	}
	if m.state.ShowsBanners() {
		if m.state.ShowDonateBanner {
			help = append(help, m.primaryActionKey(actionHideDonate, "x")+" hide donate")
		}
		if m.state.ShowNoticeBanner {
			help = append(help, m.primaryActionKey(actionHideNotice, "n")+" hide notice")
		}
		help = append(help, m.primaryActionKey(actionScrollPageUp, "PgUp")+"/"+m.primaryActionKey(actionScrollPageDown, "PgDn")+" scroll")
	}
	help = append(help,
		m.primaryActionKey(actionDonate, "K")+" Ko-Fi",
		m.primaryActionKey(actionMapSettings, "o")+" map settings",
		m.primaryActionKey(actionTheme, "t")+" theme",
		m.primaryActionKey(actionHelp, "?")+" help",
		m.primaryActionKey(actionQuit, "q")+" quit",
	)
	return help
}

func (m *Model) statusContextSegments() []string {
	parts := []string{m.state.Active.Label()}
	if m.theme != "" {
		parts = append(parts, m.theme+" theme")
	}
	return parts
}
