package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eftm-project/eftm/internal/shell"
)

// sidebarInput is everything the sidebar is composed from.
type sidebarInput struct {
	state   shell.State
	styles  styles
	width   int
	height  int
	version string
	commit  string
	// spinner is shown until the first memory reading arrives.
	spinner string
}

func (m *Model) sidebarInput(layout LayoutDimensions) sidebarInput {
	return sidebarInput{
		state:   m.state,
		styles:  m.styles,
		width:   layout.SidebarWidth,
		height:  layout.BodyHeight,
		version: m.version,
		commit:  m.commit,
		spinner: m.spinner.View(),
	}
}

// composeSidebar renders the navigation column. Each nav row is a click
// zone spanning the full sidebar width.
func composeSidebar(in sidebarInput) (string, []clickZone) {
	if in.width <= 0 || in.height <= 0 {
		return "", nil
	}
	st := in.styles
	row := func(style lipgloss.Style, text string) string {
		return style.Width(in.width).Render(truncate(text, in.width))
	}

	var (
		lines []string
		zones []clickZone
	)
	lines = append(lines, row(st.sidebarHeading, " EFTM"))
	lines = append(lines, row(st.sidebarMuted, " "+versionLine(in.version, in.commit)))

	for _, section := range shell.Sections() {
		lines = append(lines, row(st.sidebar, ""))
		lines = append(lines, row(st.sectionHeader, " "+string(section)))
		for _, item := range shell.NavItems() {
			if item.Section() != section {
				continue
			}
			style, marker := st.navItem, "  "
			if item == in.state.Active {
				style, marker = st.navActive, "› "
			}
			zones = append(zones, clickZone{row: len(lines), startCol: 0, endCol: in.width, event: shell.NavClicked{Item: item}})
			lines = append(lines, row(style, " "+marker+item.Icon()+" "+item.Label()))
		}
	}

	memory := in.state.Memory
	if memory == "" {
		memory = strings.TrimSpace(in.spinner + " RAM: sampling…")
	}
	bottom := []string{
		row(st.sidebar, " [P] Anonymous ^"),
		row(st.sidebarMuted, " "+memory),
	}
	if len(bottom) > in.height {
		bottom = bottom[len(bottom)-in.height:]
	}

	// The profile and memory lines stay pinned; the nav column gives way.
	navRows := in.height - len(bottom)
	if len(lines) > navRows {
		lines = lines[:navRows]
	}
	for len(lines) < navRows {
		lines = append(lines, row(st.sidebar, ""))
	}
	lines = append(lines, bottom...)

	kept := zones[:0]
	for _, z := range zones {
		if z.row < navRows {
			kept = append(kept, z)
		}
	}
	return padBlock(strings.Join(lines, "\n"), in.width, in.height), kept
}

func versionLine(version, commit string) string {
	switch {
	case version == "" && commit == "":
		return "dev"
	case commit == "":
		return "v" + version
	default:
		return fmt.Sprintf("v%s - %s", version, commit)
	}
}
