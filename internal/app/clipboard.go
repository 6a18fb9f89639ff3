package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardResultMsg reports the outcome of a clipboard write.
type clipboardResultMsg struct {
	err error
}

// writeClipboard is swapped in tests; the real clipboard needs a display
// server or pbcopy.
var writeClipboard = clipboard.WriteAll

// copyDonateLinkCmd puts the Ko-Fi page URL on the system clipboard. There
// is no browser to open from a terminal, so the link is handed to the user
// to paste.
func copyDonateLinkCmd() tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{err: writeClipboard(KoFiURL)}
	}
}
