package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quantive/gauge/internal/watch"
)

var watchSymbols []string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Score the watchlist on a schedule",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringSliceVar(&watchSymbols, "symbols", nil, "symbols to watch (overrides config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	symbols := watchSymbols
	if len(symbols) == 0 {
		symbols = rt.cfg.Watch.Symbols
	}
	if len(symbols) == 0 {
		return fmt.Errorf("no symbols to watch: set --symbols or watch.symbols in config")
	}

	w := watch.New(rt.analyzer, symbols, rt.cfg.Watch.Schedule, rt.log, rt.metrics)
	if err := w.Start(cmd.Context()); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	rt.log.Info("shutting down watcher")
	w.Stop()
	return nil
}
