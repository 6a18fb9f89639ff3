package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/eftm-project/eftm/internal/shell"
)

// clickZone is a mouse target: columns [startCol, endCol) of one row.
type clickZone struct {
	row      int
	startCol int
	endCol   int
	event    shell.Event
}

func (z clickZone) contains(row, col int) bool {
	return row == z.row && col >= z.startCol && col < z.endCol
}

// zoneAt returns the event of the first zone containing (row, col).
func zoneAt(zones []clickZone, row, col int) (shell.Event, bool) {
	for _, z := range zones {
		if z.contains(row, col) {
			return z.event, true
		}
	}
	return nil, false
}

func offsetZones(zones []clickZone, rows, cols int) []clickZone {
	out := make([]clickZone, len(zones))
	for i, z := range zones {
		z.row += rows
		z.startCol += cols
		z.endCol += cols
		out[i] = z
	}
	return out
}

// contentInput is everything the content pane is composed from.
type contentInput struct {
	state  shell.State
	styles styles
	width  int
	height int
	uptime time.Duration
	// help replaces the pane body when non-empty.
	help []string
}

// composeContent renders the body of the content pane and the click zones
// inside it, with rows counted from the top of the body. It is a pure
// function of its input.
func composeContent(in contentInput) (string, []clickZone) {
	if in.width <= 0 {
		return "", nil
	}
	if len(in.help) > 0 {
		return strings.Join(in.help, "\n"), nil
	}
	if in.state.Active == shell.MapView {
		label := in.styles.mapLabel.Render(MapPlaceholder)
		return lipgloss.Place(in.width, max(1, in.height), lipgloss.Center, lipgloss.Center, label), nil
	}
	return composeInfo(in)
}

// composeInfo builds the informational document: banners, the markdown
// sections and the theme footer.
func composeInfo(in contentInput) (string, []clickZone) {
	var (
		lines []string
		zones []clickZone
	)
	appendBlock := func(block []string, blockZones []clickZone) {
		zones = append(zones, offsetZones(blockZones, len(lines), 0)...)
		lines = append(lines, block...)
		lines = append(lines, "")
	}

	if in.state.ShowsBanners() && in.state.ShowDonateBanner {
		appendBlock(donateBanner(in.styles, in.width))
	}
	if in.state.ShowsBanners() && in.state.ShowNoticeBanner {
		appendBlock(noticeBanner(in.styles, in.width))
	}

	body := renderMarkdown(infoMarkdown(in.uptime), in.styles.palette.glamourStyle, roundWidthToNearestBucket(in.width))
	body = strings.Trim(body, "\n")
	lines = append(lines, strings.Split(body, "\n")...)
	lines = append(lines, "")

	toggle := "[☀/☾]"
	toggleWidth := lipgloss.Width(toggle)
	footer := spread("Powered by Bubble Tea (Go TUI framework)", toggle, in.width)
	zones = append(zones, clickZone{
		row:      len(lines),
		startCol: max(0, in.width-toggleWidth),
		endCol:   in.width,
		event:    shell.ChangeTheme{},
	})
	lines = append(lines, in.styles.muted.Render(footer))

	return strings.Join(lines, "\n"), zones
}

const (
	donateTitle = "Hey There!"
	donateBody  = "I see you're using EFTM. Support the development by donating via Ko-Fi. " +
		"Every donation is equal to weeks(!) of server hosting costs, we are eternally " +
		"grateful for every bit of support!"
	donateAction = "Donate via Ko-Fi"
	hideAction   = "Hide"

	noticeTitle  = "Notice!"
	noticeBody   = "Map data for Customs is outdated. Please reinstall or update it in the Map settings."
	noticeAction = "Open Map Settings"

	bannerClose   = "[X]"
	bannerIndent  = 2
	bannerGap     = 3
	bannerMinText = 8
)

func donateBanner(st styles, width int) ([]string, []clickZone) {
	base := st.donateBanner
	inner := max(bannerMinText, width-2*bannerIndent)
	closeCol := bannerIndent + inner - lipgloss.Width(bannerClose)
	hideCol := bannerIndent + lipgloss.Width(donateAction) + bannerGap

	lines := []string{fillLine(base, width, "")}
	zones := []clickZone{{row: len(lines), startCol: closeCol, endCol: closeCol + lipgloss.Width(bannerClose), event: shell.HideDonateBanner{}}}
	lines = append(lines, fillLine(base, width, base.Render(indent()+spread(donateTitle, bannerClose, inner))))
	for _, l := range wrapText(donateBody, inner) {
		lines = append(lines, fillLine(base, width, base.Render(indent()+l)))
	}
	zones = append(zones,
		clickZone{row: len(lines), startCol: bannerIndent, endCol: bannerIndent + lipgloss.Width(donateAction), event: shell.DonateKoFi{}},
		clickZone{row: len(lines), startCol: hideCol, endCol: hideCol + lipgloss.Width(hideAction), event: shell.HideDonateBanner{}},
	)
	actions := base.Render(indent()) + st.donateAccent.Render(donateAction) +
		base.Render(strings.Repeat(" ", bannerGap)) + base.Render(hideAction)
	lines = append(lines, fillLine(base, width, actions))
	lines = append(lines, fillLine(base, width, ""))
	return lines, zones
}

func noticeBanner(st styles, width int) ([]string, []clickZone) {
	base := st.noticeBanner
	inner := max(bannerMinText, width-2*bannerIndent)
	closeCol := bannerIndent + inner - lipgloss.Width(bannerClose)

	lines := []string{fillLine(base, width, "")}
	zones := []clickZone{{row: len(lines), startCol: closeCol, endCol: closeCol + lipgloss.Width(bannerClose), event: shell.HideNoticeBanner{}}}
	lines = append(lines, fillLine(base, width, base.Render(indent()+spread(noticeTitle, bannerClose, inner))))
	for _, l := range wrapText(noticeBody, inner) {
		lines = append(lines, fillLine(base, width, base.Render(indent()+l)))
	}
	zones = append(zones, clickZone{row: len(lines), startCol: bannerIndent, endCol: bannerIndent + lipgloss.Width(noticeAction), event: shell.OpenMapSettings{}})
	lines = append(lines, fillLine(base, width, base.Render(indent())+st.noticeAction.Render(noticeAction)))
	lines = append(lines, fillLine(base, width, ""))
	return lines, zones
}

func indent() string {
	return strings.Repeat(" ", bannerIndent)
}

// fillLine pads an already styled line to width with the base style so the
// banner background spans the pane.
func fillLine(base lipgloss.Style, width int, styled string) string {
	styled = truncate(styled, width)
	if gap := width - lipgloss.Width(styled); gap > 0 {
		styled += base.Render(strings.Repeat(" ", gap))
	}
	return styled
}

// wrapText word-wraps plain text to width columns.
func wrapText(text string, width int) []string {
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// infoMarkdown is the static informational document. Only the session
// usage time varies.
func infoMarkdown(uptime time.Duration) string {
	var b strings.Builder
	b.WriteString("## About\n\n")
	b.WriteString("EFTM is a project that aims to provide real-time maps and tactical overlay for " +
		"Tarkov players, if you want to learn more then you can visit the github page or the " +
		"wiki via the sidebar.\n\n")
	b.WriteString("## Statistics\n\n")
	b.WriteString("- Tarkov players online: 32 users\n")
	b.WriteString("- Past 24 hours: 706 unique users\n")
	fmt.Fprintf(&b, "- Your usage time: %s over 1 session\n\n", formatUsage(uptime))
	b.WriteString("You are logged in.  \nWelcome back, anonymous!\n\n")
	b.WriteString("## Contributors\n")
	return b.String()
}
