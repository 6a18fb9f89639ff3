package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eftm-project/eftm/internal/shell"
)

// WindowHost moves the native window when the titlebar is dragged.
// Coordinates are terminal cells.
type WindowHost interface {
	BeginDrag(x, y int)
	DragTo(x, y int)
	EndDrag()
}

// terminalHost is the WindowHost for a plain terminal, where the program
// cannot move its own window. Drags are only logged.
type terminalHost struct{}

func (terminalHost) BeginDrag(x, y int) { appLog.Debug("titlebar drag start", "x", x, "y", y) }
func (terminalHost) DragTo(x, y int)    { appLog.Debug("titlebar drag", "x", x, "y", y) }
func (terminalHost) EndDrag()           { appLog.Debug("titlebar drag end") }

func (m *Model) windowHost() WindowHost {
	if m.host == nil {
		return terminalHost{}
	}
	return m.host
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.overContent(msg.X, msg.Y) {
				m.content.LineUp(ScrollWheelLines)
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if m.overContent(msg.X, msg.Y) {
				m.content.LineDown(ScrollWheelLines)
			}
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}
		if ev, ok := m.eventAt(msg.X, msg.Y); ok {
			return m, m.dispatch(ev)
		}
		if msg.Y < TitlebarRows {
			m.dragging = true
			m.windowHost().BeginDrag(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.windowHost().DragTo(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.windowHost().EndDrag()
		}
	}
	return m, nil
}

// eventAt maps a screen cell to the event of the click zone under it.
func (m *Model) eventAt(x, y int) (shell.Event, bool) {
	if m.width <= 0 || m.height <= 0 {
		return nil, false
	}
	layout := m.calculateLayout()

	if y < TitlebarRows {
		_, zones := composeTitlebar(m.styles, m.width, m.state.Active)
		return zoneAt(zones, y, x)
	}

	row := y - TitlebarRows
	if row >= layout.BodyHeight {
		return nil, false
	}
	if x < layout.SidebarWidth {
		_, zones := composeSidebar(m.sidebarInput(layout))
		return zoneAt(zones, row, x)
	}

	if !m.overContent(x, y) {
		return nil, false
	}
	originX, originY := m.contentOrigin(layout)
	return zoneAt(m.infoZones, y-originY+m.content.YOffset, x-originX)
}

// overContent reports whether the cell lies inside the content viewport.
func (m *Model) overContent(x, y int) bool {
	layout := m.calculateLayout()
	originX, originY := m.contentOrigin(layout)
	return x >= originX && x < originX+layout.ViewportWidth &&
		y >= originY && y < originY+layout.ViewportHeight
}
