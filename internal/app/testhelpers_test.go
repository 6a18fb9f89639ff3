package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/eftm-project/eftm/internal/config"
	"github.com/eftm-project/eftm/internal/sysmem"
)

type fixedSampler struct {
	reading sysmem.Reading
	calls   int
}

func (f *fixedSampler) Sample(context.Context) sysmem.Reading {
	f.calls++
	return f.reading
}

type recordingHost struct {
	calls []string
}

func (h *recordingHost) BeginDrag(x, y int) { h.calls = append(h.calls, "begin") }
func (h *recordingHost) DragTo(x, y int)    { h.calls = append(h.calls, "move") }
func (h *recordingHost) EndDrag()           { h.calls = append(h.calls, "end") }

var testStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// newSizedModel returns a model already resized to width x height.
func newSizedModel(t *testing.T, opts Options, width, height int) *Model {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return testStart }
	}
	if opts.Config.Theme == "" {
		opts.Config.Theme = config.ThemeLight
	}
	m := New(opts)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// isQuit reports whether cmd resolves to tea.Quit.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// plainLines splits rendered output into lines with ANSI sequences removed.
func plainLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Strip(l)
	}
	return lines
}

func plainText(s string) string {
	return strings.Join(plainLines(s), "\n")
}

// cellText returns columns [start, end) of an ASCII-width line.
func cellText(line string, start, end int) string {
	runes := []rune(line)
	if start < 0 || start >= len(runes) {
		return ""
	}
	return string(runes[start:min(end, len(runes))])
}
