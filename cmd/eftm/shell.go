package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eftm-project/eftm/internal/app"
	"github.com/eftm-project/eftm/internal/logging"
	"github.com/eftm-project/eftm/internal/notify"
	"github.com/eftm-project/eftm/internal/sysmem"
)

// runShell starts the terminal UI. The terminal belongs to the UI, so logs
// go to the configured log file.
func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.Configure(logFile, cfg.LogLevel)

	err = app.Run(app.Options{
		Config:  cfg,
		Sampler: sysmem.NewSampler(),
		Alerter: notify.NewAlerter(app.AppName, cfg.MemoryAlertPercent),
		Version: version,
		Commit:  commit,
	})
	if err != nil {
		return fmt.Errorf("eftm exited with error: %w", err)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}
