package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eftm-project/eftm/internal/shell"
)

// handleKey resolves a key press to an action and runs it. Unbound keys are
// ignored.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.actionForKey(msg.String())
	if action == "" {
		return m, nil
	}

	if item, ok := navActions[action]; ok {
		return m, m.dispatch(shell.NavClicked{Item: item})
	}
	if ev, ok := eventActions[action]; ok {
		return m, m.dispatch(ev)
	}

	switch action {
	case actionNavPrev:
		return m, m.dispatch(shell.NavClicked{Item: m.state.Active.Prev()})
	case actionNavNext:
		return m, m.dispatch(shell.NavClicked{Item: m.state.Active.Next()})
	case actionScrollPageUp:
		m.content.ViewUp()
	case actionScrollPageDown:
		m.content.ViewDown()
	case actionHelp:
		m.toggleHelp()
	}
	return m, nil
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	m.content.GotoTop()
	m.refreshContent()
}
