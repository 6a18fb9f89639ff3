// Package sysmem samples system memory and the resident size of the current
// process, and formats them for the sidebar.
package sysmem

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/eftm-project/eftm/internal/logging"
)

var log = logging.New("sysmem")

// Reading is one memory sample. All values are bytes.
type Reading struct {
	Total      uint64
	Used       uint64
	ProcessRSS uint64
}

// UsedPercent is used/total as a percentage in [0, 100]. It is 0 when the
// total is unknown.
func (r Reading) UsedPercent() float64 {
	return percent(r.Used, r.Total)
}

// ProcessPercent is the process RSS as a share of total memory, in [0, 100].
func (r Reading) ProcessPercent() float64 {
	return percent(r.ProcessRSS, r.Total)
}

// String renders the sidebar line, e.g. "RAM: 50.2% <- 3.9% EFTM".
func (r Reading) String() string {
	return fmt.Sprintf("RAM: %.1f%% <- %.1f%% EFTM", r.UsedPercent(), r.ProcessPercent())
}

func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(part) * 100 / float64(total)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// Source provides the raw counters. The gopsutil implementation is the
// default; tests substitute fixed values.
type Source interface {
	VirtualMemory(ctx context.Context) (total, used uint64, err error)
	ProcessRSS(ctx context.Context, pid int32) (uint64, error)
}

// Sampler reads a Source for the current process.
type Sampler struct {
	source Source
	pid    int32
}

// NewSampler returns a sampler backed by gopsutil for this process.
func NewSampler() *Sampler {
	return NewSamplerWithSource(gopsutilSource{}, int32(os.Getpid()))
}

// NewSamplerWithSource returns a sampler reading src for pid.
func NewSamplerWithSource(src Source, pid int32) *Sampler {
	return &Sampler{source: src, pid: pid}
}

// Sample refreshes the counters. Failures never surface: an unreadable system
// total yields zeros and a missing process yields an RSS of 0.
func (s *Sampler) Sample(ctx context.Context) Reading {
	var r Reading

	total, used, err := s.source.VirtualMemory(ctx)
	if err != nil {
		log.Debug("read virtual memory", "error", err)
	} else {
		r.Total = total
		r.Used = used
	}

	rss, err := s.source.ProcessRSS(ctx, s.pid)
	if err != nil {
		log.Debug("read process memory", "pid", s.pid, "error", err)
	} else {
		r.ProcessRSS = rss
	}

	return r
}

type gopsutilSource struct{}

func (gopsutilSource) VirtualMemory(ctx context.Context) (uint64, uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Used, nil
}

func (gopsutilSource) ProcessRSS(ctx context.Context, pid int32) (uint64, error) {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return 0, fmt.Errorf("find process %d: %w", pid, err)
	}
	info, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("memory info for %d: %w", pid, err)
	}
	return info.RSS, nil
}
