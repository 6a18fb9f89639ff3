package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eftm-project/eftm/internal/app"
	"github.com/eftm-project/eftm/internal/logging"
	"github.com/eftm-project/eftm/internal/notify"
	"github.com/eftm-project/eftm/internal/sysmem"
	"github.com/eftm-project/eftm/internal/ticker"
)

var tickerOpts tickerOptions

func init() {
	registerTickerFlags(cmdTicker.Flags(), &tickerOpts)
	rootCmd.AddCommand(cmdTicker)
}

var cmdTicker = &cobra.Command{
	Use:   "ticker",
	Short: "Print memory readings without the terminal UI",
	Long:  `Writes one "<RFC3339 time> RAM: x% <- y% EFTM" line per interval to stdout until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(globals)
		if err != nil {
			return err
		}
		logging.Configure(os.Stderr, cfg.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = ticker.Run(ctx, sysmem.NewSampler(), ticker.Options{
			Interval: tickerOpts.interval,
			Count:    tickerOpts.count,
			Out:      cmd.OutOrStdout(),
			Alerter:  notify.NewAlerter(app.AppName, cfg.MemoryAlertPercent),
		})
		if err != nil {
			return fmt.Errorf("ticker: %w", err)
		}
		return nil
	},
}
