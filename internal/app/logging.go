package app

import (
	"log/slog"

	"github.com/eftm-project/eftm/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// In TUI mode the root handler writes to the log file configured by the
// command, so nothing here reaches the alternate screen.
var appLog = logging.New("app")

// setStatusError shows status in the footer and logs err with any extra
// slog-style key-value attrs.
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
