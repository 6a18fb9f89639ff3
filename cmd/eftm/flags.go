package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/eftm-project/eftm/internal/config"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
}

func registerGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	// Path of the config file; JSON or YAML by extension.
	fs.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.eftm/config.json)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// tickerOptions are the flags of the ticker command.
type tickerOptions struct {
	interval time.Duration
	count    int
}

func registerTickerFlags(fs *pflag.FlagSet, opts *tickerOptions) {
	fs.DurationVarP(&opts.interval, "interval", "i", time.Second, "time between samples")
	fs.IntVarP(&opts.count, "count", "n", 0, "stop after this many samples (0 runs until interrupted)")
}

// loadConfig loads --config (or the default path) and applies the
// --log-level override on top of file and environment values.
func loadConfig(opts globalOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(opts.logLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	return cfg, nil
}
