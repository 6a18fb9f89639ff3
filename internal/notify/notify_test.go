package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/eftm-project/eftm/internal/sysmem"
)

func reading(usedPercent uint64) sysmem.Reading {
	return sysmem.Reading{Total: 100, Used: usedPercent, ProcessRSS: 1}
}

func TestCheckFiresOncePerCrossing(t *testing.T) {
	a := NewAlerterWithSender(80, nil)

	steps := []struct {
		used uint64
		want bool
	}{
		{used: 50, want: false},
		{used: 80, want: true},
		{used: 90, want: false},
		{used: 77, want: false}, // still within the rearm margin
		{used: 85, want: false},
		{used: 75, want: false}, // rearmed here
		{used: 81, want: true},
	}

	for i, step := range steps {
		_, got := a.Check(reading(step.used))
		if got != step.want {
			t.Fatalf("step %d (used=%d): fired=%t, want %t", i, step.used, got, step.want)
		}
	}
}

func TestCheckDisabled(t *testing.T) {
	for _, a := range []*Alerter{nil, NewAlerterWithSender(0, nil)} {
		if _, fired := a.Check(reading(99)); fired {
			t.Fatal("expected disabled alerter to stay quiet")
		}
	}
}

func TestCheckIgnoresUnknownTotal(t *testing.T) {
	a := NewAlerterWithSender(10, nil)
	if _, fired := a.Check(sysmem.Reading{}); fired {
		t.Fatal("expected no alert without a system total")
	}
}

func TestAlertBodyMentionsReading(t *testing.T) {
	a := NewAlerterWithSender(60, nil)
	alert, fired := a.Check(reading(70))
	if !fired {
		t.Fatal("expected alert")
	}
	if !strings.Contains(alert.Body, "70.0%") || !strings.Contains(alert.Body, "EFTM") {
		t.Fatalf("unexpected body %q", alert.Body)
	}
}

func TestSendWrapsSenderError(t *testing.T) {
	boom := errors.New("no notification daemon")
	var gotTitle string
	a := NewAlerterWithSender(50, func(title, body string) error {
		gotTitle = title
		return boom
	})

	err := a.Send(Alert{Title: "High memory usage", Body: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped sender error, got %v", err)
	}
	if gotTitle != "High memory usage" {
		t.Fatalf("expected title to reach sender, got %q", gotTitle)
	}
}
