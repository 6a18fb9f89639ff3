package app

import (
	"fmt"
	"time"
)

// formatUsage renders a session duration the way the statistics section
// shows it: "45s", "3m 12s", "2h 05m".
func formatUsage(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	mnt := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, mnt)
	case mnt > 0:
		return fmt.Sprintf("%dm %02ds", mnt, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// sessionUptime is how long this shell has been running.
func (m *Model) sessionUptime() time.Duration {
	if m.now == nil || m.started.IsZero() {
		return 0
	}
	return m.now().Sub(m.started)
}
