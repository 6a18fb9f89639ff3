// layout.go centralizes the terminal layout calculations.
//
// The screen is a one-row titlebar, then a body split horizontally into a
// sidebar and a content pane, then a footer of two or three rows. The content
// pane is a bordered box whose first inner row is a header with the active
// view label; the rest is the scrollable viewport.
package app

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	SidebarWidth   int // sidebar columns
	ContentWidth   int // content pane columns including its frame
	BodyHeight     int // rows between titlebar and footer
	FooterHeight   int // footer rows
	ViewportWidth  int // usable columns inside the content pane
	ViewportHeight int // usable rows inside the content pane, below the header
}

// calculateLayout computes all UI dimensions from the terminal size.
//
// The sidebar is the smaller of SidebarWidth and terminal_width /
// SidebarWidthDivider so narrow terminals keep room for content.
func (m *Model) calculateLayout() LayoutDimensions {
	footerHeight := m.footerHeightForWidth(m.width)
	bodyHeight := max(0, m.height-TitlebarRows-footerHeight)
	sidebarWidth := min(SidebarWidth, m.width/SidebarWidthDivider)
	contentWidth := max(0, m.width-sidebarWidth)

	return LayoutDimensions{
		SidebarWidth:   sidebarWidth,
		ContentWidth:   contentWidth,
		BodyHeight:     bodyHeight,
		FooterHeight:   footerHeight,
		ViewportWidth:  max(0, contentWidth-paneStyle.GetHorizontalFrameSize()),
		ViewportHeight: max(0, bodyHeight-paneStyle.GetVerticalFrameSize()-PaneHeaderRows),
	}
}

// footerHeightForWidth prefers FooterMinRows and expands to FooterMaxRows
// when the footer segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// applyLayout sizes the content viewport to the calculated layout.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.content.Width = layout.ViewportWidth
	m.content.Height = layout.ViewportHeight
}

// contentOrigin is the screen position of the viewport's top-left cell.
func (m *Model) contentOrigin(layout LayoutDimensions) (x, y int) {
	x = layout.SidebarWidth + paneStyle.GetBorderLeftSize() + paneStyle.GetPaddingLeft()
	y = TitlebarRows + paneStyle.GetBorderTopSize() + PaneHeaderRows
	return x, y
}

// refreshContent recomposes the content pane into the viewport. Called
// whenever something the pane depends on changes.
func (m *Model) refreshContent() {
	layout := m.calculateLayout()
	m.applyLayout(layout)
	var help []string
	if m.showHelp {
		help = m.helpLines()
	}
	body, zones := composeContent(contentInput{
		state:  m.state,
		styles: m.styles,
		width:  layout.ViewportWidth,
		height: layout.ViewportHeight,
		uptime: m.sessionUptime(),
		help:   help,
	})
	offset := m.content.YOffset
	m.content.SetContent(body)
	m.content.SetYOffset(offset)
	m.infoZones = zones
}
