// Package ticker runs eftm without the terminal UI and writes one memory
// reading per interval to an output stream, so the samples can be piped into
// other programs.
package ticker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/eftm-project/eftm/internal/logging"
	"github.com/eftm-project/eftm/internal/notify"
	"github.com/eftm-project/eftm/internal/sysmem"
)

var log = logging.New("ticker")

// Sampler is the subset of sysmem.Sampler the ticker needs.
type Sampler interface {
	Sample(ctx context.Context) sysmem.Reading
}

// Options controls a ticker run.
type Options struct {
	Interval time.Duration
	// Count stops the run after this many lines; 0 runs until ctx is done.
	Count   int
	Out     io.Writer
	Alerter *notify.Alerter
}

// Run writes a line immediately and then once per interval until ctx is
// cancelled or Count lines have been written.
func Run(ctx context.Context, sampler Sampler, opts Options) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", opts.Interval)
	}
	if opts.Out == nil {
		return errors.New("no output writer")
	}

	t := time.NewTicker(opts.Interval)
	defer t.Stop()

	written := 0
	emit := func(now time.Time) error {
		r := sampler.Sample(ctx)
		if _, err := fmt.Fprintf(opts.Out, "%s %s\n", now.Format(time.RFC3339), r); err != nil {
			return fmt.Errorf("write reading: %w", err)
		}
		if alert, ok := opts.Alerter.Check(r); ok {
			_ = opts.Alerter.Send(alert)
		}
		written++
		return nil
	}

	log.Info("ticker started", "interval", opts.Interval, "count", opts.Count)
	if err := emit(time.Now()); err != nil {
		return err
	}
	for opts.Count == 0 || written < opts.Count {
		select {
		case <-ctx.Done():
			log.Info("ticker stopped", "lines", written)
			return nil
		case now := <-t.C:
			if err := emit(now); err != nil {
				return err
			}
		}
	}
	log.Info("ticker finished", "lines", written)
	return nil
}
