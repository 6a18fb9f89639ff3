package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View draws the full UI: titlebar, sidebar and content pane, status footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	titlebar, _ := composeTitlebar(m.styles, m.width, m.state.Active)
	sidebar, _ := composeSidebar(m.sidebarInput(layout))
	content := m.renderContentPane(layout)

	parts := []string{titlebar}
	if layout.BodyHeight > 0 {
		body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
		parts = append(parts, padBlock(body, m.width, layout.BodyHeight))
	}
	parts = append(parts, m.renderStatus(m.width, layout.FooterHeight))
	return padBlock(strings.Join(parts, "\n"), m.width, m.height)
}
