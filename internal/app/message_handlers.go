package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eftm-project/eftm/internal/notify"
	"github.com/eftm-project/eftm/internal/shell"
	"github.com/eftm-project/eftm/internal/sysmem"
)

// memoryTickMsg fires once per MemoryTickInterval.
type memoryTickMsg time.Time

// memorySampledMsg carries a finished reading back to Update.
type memorySampledMsg struct {
	reading sysmem.Reading
}

// notifyResultMsg reports the outcome of a desktop notification.
type notifyResultMsg struct {
	err error
}

func memoryTick() tea.Cmd {
	return tea.Every(MemoryTickInterval, func(t time.Time) tea.Msg {
		return memoryTickMsg(t)
	})
}

// sampleMemoryCmd reads memory off the UI goroutine. gopsutil can block on
// procfs, so each read gets SampleTimeout.
func (m *Model) sampleMemoryCmd() tea.Cmd {
	sampler := m.sampler
	if sampler == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), SampleTimeout)
		defer cancel()
		return memorySampledMsg{reading: sampler.Sample(ctx)}
	}
}

// handleWindowResize updates layout dimensions after terminal resize.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout(m.calculateLayout())
	m.refreshContent()
	return m, nil
}

// handleMemoryTick starts the next sample and re-arms the tick. The session
// uptime in the statistics section moves with it.
func (m *Model) handleMemoryTick() (tea.Model, tea.Cmd) {
	m.refreshContent()
	return m, tea.Batch(m.sampleMemoryCmd(), memoryTick())
}

// handleMemorySampled stores the reading as the sidebar text and checks the
// alert threshold.
func (m *Model) handleMemorySampled(msg memorySampledMsg) (tea.Model, tea.Cmd) {
	m.sampled = true
	cmd := m.dispatch(shell.MemorySampled{Text: msg.reading.String()})
	alert, ok := m.alerter.Check(msg.reading)
	if !ok {
		return m, cmd
	}
	if cmd == nil {
		return m, sendAlertCmd(m.alerter, alert)
	}
	return m, tea.Batch(cmd, sendAlertCmd(m.alerter, alert))
}

func sendAlertCmd(alerter *notify.Alerter, alert notify.Alert) tea.Cmd {
	return func() tea.Msg {
		return notifyResultMsg{err: alerter.Send(alert)}
	}
}

func (m *Model) handleNotifyResult(msg notifyResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatusError("Desktop notification failed", msg.err)
		return m, nil
	}
	m.status = "Memory alert sent"
	return m, nil
}

func (m *Model) handleClipboardResult(msg clipboardResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatusError("Clipboard copy failed", msg.err)
		return m, nil
	}
	m.status = "Copied Ko-Fi link: " + KoFiURL
	return m, nil
}
