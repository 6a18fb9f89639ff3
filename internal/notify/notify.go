// Package notify raises a desktop notification when system memory usage
// crosses a configured threshold.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/eftm-project/eftm/internal/logging"
	"github.com/eftm-project/eftm/internal/sysmem"
)

// RearmMargin is how far, in percentage points, usage must fall below the
// threshold before another alert can fire.
const RearmMargin = 5.0

var log = logging.New("notify")

// Alert is a notification ready to be sent.
type Alert struct {
	Title string
	Body  string
}

// Sender delivers an alert to the desktop.
type Sender func(title, body string) error

// Alerter tracks whether the threshold has already been reported.
type Alerter struct {
	threshold float64
	fired     bool
	send      Sender
}

// NewAlerter returns an alerter that notifies through beeep. A threshold of
// 0 disables it.
func NewAlerter(appName string, threshold float64) *Alerter {
	beeep.AppName = appName //nolint:reassign // beeep only exposes the app name as a package variable.
	return NewAlerterWithSender(threshold, func(title, body string) error {
		return beeep.Notify(title, body, "")
	})
}

// NewAlerterWithSender returns an alerter using send for delivery.
func NewAlerterWithSender(threshold float64, send Sender) *Alerter {
	return &Alerter{threshold: threshold, send: send}
}

// Enabled reports whether a threshold is configured.
func (a *Alerter) Enabled() bool {
	return a != nil && a.threshold > 0
}

// Check records r and returns an alert when usage has just reached the
// threshold. It fires once per crossing.
func (a *Alerter) Check(r sysmem.Reading) (Alert, bool) {
	if !a.Enabled() || r.Total == 0 {
		return Alert{}, false
	}
	used := r.UsedPercent()
	if a.fired {
		if used <= a.threshold-RearmMargin {
			a.fired = false
		}
		return Alert{}, false
	}
	if used < a.threshold {
		return Alert{}, false
	}
	a.fired = true
	return Alert{
		Title: "High memory usage",
		Body:  fmt.Sprintf("System memory at %.1f%% (alert threshold %.0f%%). %s", used, a.threshold, r),
	}, true
}

// Send delivers alert. Errors are logged and returned for the caller's
// status line; they are never fatal.
func (a *Alerter) Send(alert Alert) error {
	if a == nil || a.send == nil {
		return nil
	}
	if err := a.send(alert.Title, alert.Body); err != nil {
		log.Warn("send memory alert", "title", alert.Title, "error", err)
		return fmt.Errorf("send notification: %w", err)
	}
	log.Info("memory alert sent", "title", alert.Title)
	return nil
}
