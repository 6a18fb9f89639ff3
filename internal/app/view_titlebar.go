package app

import (
	"github.com/mattn/go-runewidth"

	"github.com/eftm-project/eftm/internal/shell"
)

// closeZoneWidth is the close button plus its trailing space.
const closeZoneWidth = 4

// composeTitlebar renders the one-row titlebar: title on the left, the
// active view label and a close button on the right.
func composeTitlebar(st styles, width int, active shell.NavItem) (string, []clickZone) {
	if width <= 0 {
		return "", nil
	}
	if width < 2*closeZoneWidth {
		return st.titlebar.Render(runewidth.FillRight(runewidth.Truncate(" "+AppTitle, width, ""), width)), nil
	}

	left := width - closeZoneWidth
	title := runewidth.Truncate(" "+AppTitle, left, "…")
	line := spread(title, active.Label()+"  ", left)
	line = runewidth.FillRight(line, left)

	rendered := st.titlebar.Render(line) + st.titleClose.Render(closeButton) + st.titlebar.Render(" ")
	zones := []clickZone{{row: 0, startCol: left, endCol: left + len(closeButton), event: shell.Exit{}}}
	return rendered, zones
}
