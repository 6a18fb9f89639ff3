package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eftm-project/eftm/internal/config"
	"github.com/eftm-project/eftm/internal/notify"
	"github.com/eftm-project/eftm/internal/shell"
	"github.com/eftm-project/eftm/internal/sysmem"
)

// Sampler produces a memory reading; *sysmem.Sampler satisfies it.
type Sampler interface {
	Sample(ctx context.Context) sysmem.Reading
}

// Options configures a Model.
type Options struct {
	Config  config.Config
	Sampler Sampler
	Alerter *notify.Alerter
	Host    WindowHost
	Version string
	Commit  string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model holds the Bubble Tea state for the shell. The navigation and banner
// state lives in shell.State and only changes through shell.State.Apply.
type Model struct {
	state shell.State

	// Theme
	theme  string
	styles styles

	// Collaborators
	sampler Sampler
	alerter *notify.Alerter
	host    WindowHost

	// UI widgets
	content  viewport.Model
	spinner  spinner.Model
	sampled  bool
	showHelp bool
	status   string

	// Click targets inside the informational document, in document rows.
	infoZones []clickZone
	dragging  bool

	// Layout sizing
	width  int
	height int

	// Keybinding maps: action -> keys and key -> action.
	keyForAction map[string][]string
	keyToAction  map[string]string

	version string
	commit  string
	started time.Time
	now     func() time.Time
}

// New builds a Model with both banners visible, starting on the configured
// start view (the map view by default).
func New(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	host := opts.Host
	if host == nil {
		host = terminalHost{}
	}
	theme := opts.Config.Theme
	if theme == "" {
		theme = config.ThemeLight
	}

	sp := spinner.New()
	sp.Spinner = spinner.Line

	m := &Model{
		state:   shell.New(),
		theme:   theme,
		styles:  newStyles(paletteFor(theme)),
		sampler: opts.Sampler,
		alerter: opts.Alerter,
		host:    host,
		content: viewport.New(0, 0),
		spinner: sp,
		version: opts.Version,
		commit:  opts.Commit,
		started: now(),
		now:     now,
	}
	if item, ok := shell.ParseNavItem(opts.Config.StartView); ok {
		m.state.Active = item
	}
	m.loadKeybindings(opts.Config)
	return m
}

// Run starts the full-screen program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	appLog.Info("shell exited", "active", m.state.Active.String())
	return nil
}

// Init starts the spinner, takes the first memory sample immediately and
// schedules the 1 s resampling tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.sampleMemoryCmd(), memoryTick())
}

// Update dispatches one message. Input becomes shell events; effects returned
// by shell.State.Apply are carried out by runEffect.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// The spinner only animates until the first reading lands.
		if m.sampled {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case memoryTickMsg:
		return m.handleMemoryTick()
	case memorySampledMsg:
		return m.handleMemorySampled(msg)
	case clipboardResultMsg:
		return m.handleClipboardResult(msg)
	case notifyResultMsg:
		return m.handleNotifyResult(msg)
	case tea.KeyMsg:
		if m.shouldIgnoreInput(msg) {
			return m, nil
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// dispatch applies ev to the shell state and runs the resulting effect.
func (m *Model) dispatch(ev shell.Event) tea.Cmd {
	prev := m.state
	next, effect := m.state.Apply(ev)
	m.state = next

	if next.Active != prev.Active {
		m.showHelp = false
		m.content.GotoTop()
		appLog.Debug("navigation", "from", prev.Active.String(), "to", next.Active.String())
	}
	if next.Active != prev.Active ||
		next.ShowDonateBanner != prev.ShowDonateBanner ||
		next.ShowNoticeBanner != prev.ShowNoticeBanner {
		m.refreshContent()
	}
	return m.runEffect(effect)
}

func (m *Model) runEffect(effect shell.Effect) tea.Cmd {
	switch effect {
	case shell.EffectExit:
		appLog.Info("exit requested")
		return tea.Quit
	case shell.EffectDonate:
		m.status = "Copying Ko-Fi link..."
		return copyDonateLinkCmd()
	case shell.EffectOpenMapSettings:
		m.status = "Map settings are not available yet"
		return nil
	case shell.EffectToggleTheme:
		m.toggleTheme()
		return nil
	default:
		return nil
	}
}

// toggleTheme swaps palettes for this session only; the config file is left
// untouched.
func (m *Model) toggleTheme() {
	if m.theme == config.ThemeDark {
		m.theme = config.ThemeLight
	} else {
		m.theme = config.ThemeDark
	}
	m.styles = newStyles(paletteFor(m.theme))
	m.status = "Theme: " + m.theme
	m.refreshContent()
}

// shouldIgnoreInput drops terminal replies (OSC colour reports and similar)
// that some terminals deliver as key runes.
func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) < 2 {
		return false
	}
	for _, r := range msg.Runes {
		if r < 0x20 || r == 0x7f || r == 0x1b {
			return true
		}
	}
	s := string(msg.Runes)
	if len(s) > 2 && (s[:2] == "]1" || s[:3] == "rgb") {
		if os.Getenv("EFTM_DEBUG_INPUT") != "" {
			appLog.Debug("ignored terminal reply", "input", s)
		}
		return true
	}
	return false
}
