package app

import "github.com/mattn/go-runewidth"

// renderContentPane draws the bordered content pane: a header row with the
// active view label over the viewport.
func (m *Model) renderContentPane(layout LayoutDimensions) string {
	if layout.ContentWidth <= 0 || layout.BodyHeight <= 0 {
		return ""
	}
	label := m.state.Active.Label()
	if m.showHelp {
		label = "Help"
	}
	header := m.styles.paneHeader.Render(truncate(label, layout.ViewportWidth))
	body := padBlock(header+"\n"+m.content.View(), layout.ViewportWidth, layout.ViewportHeight+PaneHeaderRows)

	pane := m.styles.pane.
		Width(max(0, layout.ContentWidth-m.styles.pane.GetHorizontalBorderSize())).
		Height(max(0, layout.BodyHeight-m.styles.pane.GetVerticalBorderSize()))
	return pane.Render(body)
}

// helpLines is the key reference shown in the content pane by the help
// toggle.
func (m *Model) helpLines() []string {
	rows := []struct {
		action string
		label  string
	}{
		{actionNavMap, "Map View"},
		{actionNavHUD, "Tactical HUD"},
		{actionNavItems, "Item Manager"},
		{actionNavLoadouts, "Loadout Catalogue"},
		{actionNavWiki, "Wiki"},
		{actionNavRoadmap, "Roadmap"},
		{actionNavFeedback, "Feedback"},
		{actionNavPrev, "Previous view"},
		{actionNavNext, "Next view"},
		{actionHideDonate, "Hide donate banner"},
		{actionHideNotice, "Hide notice banner"},
		{actionDonate, "Copy Ko-Fi link"},
		{actionMapSettings, "Map settings"},
		{actionTheme, "Toggle theme"},
		{actionScrollPageUp, "Scroll up"},
		{actionScrollPageDown, "Scroll down"},
		{actionHelp, "Toggle help"},
		{actionQuit, "Quit"},
	}
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "Keys", "")
	for _, r := range rows {
		lines = append(lines, "  "+runewidth.FillRight(m.allActionKeys(r.action, "unbound"), 14)+r.label)
	}
	lines = append(lines, "", "Mouse: click sidebar entries and banner buttons, drag the titlebar.")
	return lines
}
