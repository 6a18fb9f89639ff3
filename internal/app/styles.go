package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eftm-project/eftm/internal/config"
)

// palette is one colour theme. The light palette matches the desktop
// shell colours.
type palette struct {
	sidebarBG       lipgloss.Color
	contentBG       lipgloss.Color
	titlebarBG      lipgloss.Color
	text            lipgloss.Color
	textLight       lipgloss.Color
	accent          lipgloss.Color
	selectedBG      lipgloss.Color
	border          lipgloss.Color
	bannerRedBG     lipgloss.Color
	bannerRedText   lipgloss.Color
	bannerBrownBG   lipgloss.Color
	bannerBrownText lipgloss.Color
	glamourStyle    string
}

var (
	lightPalette = palette{
		sidebarBG:       lipgloss.Color("#FAFAFA"),
		contentBG:       lipgloss.Color("#FFFFFF"),
		titlebarBG:      lipgloss.Color("#EDEDED"),
		text:            lipgloss.Color("#333333"),
		textLight:       lipgloss.Color("#999999"),
		accent:          lipgloss.Color("#1A66CC"),
		selectedBG:      lipgloss.Color("#E0E0E0"),
		border:          lipgloss.Color("#D9DCCF"),
		bannerRedBG:     lipgloss.Color("#FFE6E6"),
		bannerRedText:   lipgloss.Color("#CC3333"),
		bannerBrownBG:   lipgloss.Color("#4D331A"),
		bannerBrownText: lipgloss.Color("#E6CCB3"),
		glamourStyle:    "light",
	}
	darkPalette = palette{
		sidebarBG:       lipgloss.Color("#1E1E1E"),
		contentBG:       lipgloss.Color("#121212"),
		titlebarBG:      lipgloss.Color("#2A2A2A"),
		text:            lipgloss.Color("#E0E0E0"),
		textLight:       lipgloss.Color("#808080"),
		accent:          lipgloss.Color("#6CA8FF"),
		selectedBG:      lipgloss.Color("#383838"),
		border:          lipgloss.Color("#383838"),
		bannerRedBG:     lipgloss.Color("#4A1F1F"),
		bannerRedText:   lipgloss.Color("#FF9C9C"),
		bannerBrownBG:   lipgloss.Color("#4D331A"),
		bannerBrownText: lipgloss.Color("#E6CCB3"),
		glamourStyle:    "dark",
	}
)

func paletteFor(theme string) palette {
	if theme == config.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// paneStyle fixes the frame of the content pane; colours are layered on by
// styles so the frame size is theme-independent.
var paneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

type styles struct {
	palette palette

	titlebar   lipgloss.Style
	titleClose lipgloss.Style

	sidebar        lipgloss.Style
	sidebarHeading lipgloss.Style
	sidebarMuted   lipgloss.Style
	sectionHeader  lipgloss.Style
	navItem        lipgloss.Style
	navActive      lipgloss.Style

	pane       lipgloss.Style
	paneHeader lipgloss.Style
	mapLabel   lipgloss.Style
	text       lipgloss.Style
	muted      lipgloss.Style

	donateBanner lipgloss.Style
	donateAccent lipgloss.Style
	noticeBanner lipgloss.Style
	noticeAction lipgloss.Style

	status lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		palette: p,

		titlebar:   lipgloss.NewStyle().Background(p.titlebarBG).Foreground(p.text).Bold(true),
		titleClose: lipgloss.NewStyle().Background(p.titlebarBG).Foreground(p.bannerRedText).Bold(true),

		sidebar:        lipgloss.NewStyle().Background(p.sidebarBG).Foreground(p.text),
		sidebarHeading: lipgloss.NewStyle().Background(p.sidebarBG).Foreground(p.text).Bold(true),
		sidebarMuted:   lipgloss.NewStyle().Background(p.sidebarBG).Foreground(p.textLight),
		sectionHeader:  lipgloss.NewStyle().Background(p.sidebarBG).Foreground(p.textLight),
		navItem:        lipgloss.NewStyle().Background(p.sidebarBG).Foreground(p.text),
		navActive:      lipgloss.NewStyle().Background(p.selectedBG).Foreground(p.text).Bold(true),

		pane:       paneStyle.Copy().BorderForeground(p.border),
		paneHeader: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		mapLabel:   lipgloss.NewStyle().Foreground(p.textLight).Bold(true),
		text:       lipgloss.NewStyle().Foreground(p.text),
		muted:      lipgloss.NewStyle().Foreground(p.textLight),

		donateBanner: lipgloss.NewStyle().Background(p.bannerRedBG).Foreground(p.bannerRedText),
		donateAccent: lipgloss.NewStyle().Background(p.bannerRedBG).Foreground(p.accent).Bold(true),
		noticeBanner: lipgloss.NewStyle().Background(p.bannerBrownBG).Foreground(p.bannerBrownText),
		noticeAction: lipgloss.NewStyle().Background(p.bannerBrownBG).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),

		status: lipgloss.NewStyle().Foreground(p.textLight),
	}
}
