package app

import "time"

// Layout constants define the fixed dimensions of the shell.
const (
	// SidebarWidth is the sidebar width on terminals wide enough for it.
	SidebarWidth = 30

	// SidebarWidthDivider caps the sidebar at terminal_width / this value on
	// narrow terminals.
	SidebarWidthDivider = 3

	// TitlebarRows is the height of the custom titlebar.
	TitlebarRows = 1

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3

	// PaneHeaderRows is the label row above the content pane body.
	PaneHeaderRows = 1
)

// Sampling constants.
const (
	// MemoryTickInterval is the memory resampling cadence.
	MemoryTickInterval = time.Second

	// SampleTimeout bounds a single gopsutil read.
	SampleTimeout = 500 * time.Millisecond
)

// Rendering constants.
const (
	// RenderWidthBucket is the granularity for width-based renderer caching.
	RenderWidthBucket = 20

	// ScrollWheelLines is how far one mouse wheel notch scrolls the content.
	ScrollWheelLines = 3
)

// Text shown by the shell.
const (
	AppName        = "eftm"
	AppTitle       = "EFTM - Escape From Tarkov Map"
	MapPlaceholder = "Tarkov Map Rendering Engine"
	KoFiURL        = "https://ko-fi.com/eftm"
	closeButton    = "[x]"
)
