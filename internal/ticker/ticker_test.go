package ticker

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/eftm-project/eftm/internal/notify"
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

func TestRunWritesCountLines(t *testing.T) {
	var out bytes.Buffer
	sampler := &fixedSampler{reading: sysmem.Reading{Total: 1000, Used: 502, ProcessRSS: 39}}

	err := Run(context.Background(), sampler, Options{
		Interval: time.Millisecond,
		Count:    3,
		Out:      &out,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out.String())
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "RAM: 50.2% <- 3.9% EFTM") {
			t.Fatalf("unexpected line %q", line)
		}
	}
	if sampler.calls != 3 {
		t.Fatalf("expected 3 samples, got %d", sampler.calls)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, &fixedSampler{}, Options{Interval: time.Hour, Out: &out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 1 {
		t.Fatalf("expected only the initial line, got %d", got)
	}
}

func TestRunSendsAlert(t *testing.T) {
	var sent []string
	alerter := notify.NewAlerterWithSender(50, func(title, body string) error {
		sent = append(sent, title)
		return nil
	})

	err := Run(context.Background(), &fixedSampler{reading: sysmem.Reading{Total: 100, Used: 90}}, Options{
		Interval: time.Millisecond,
		Count:    2,
		Out:      &bytes.Buffer{},
		Alerter:  alerter,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("expected a single alert across both samples, got %d", len(sent))
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	if err := Run(context.Background(), &fixedSampler{}, Options{Out: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for zero interval")
	}
	if err := Run(context.Background(), &fixedSampler{}, Options{Interval: time.Second}); err == nil {
		t.Fatal("expected error for missing writer")
	}
}
