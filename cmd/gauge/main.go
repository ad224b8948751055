package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	debug       bool
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "gauge",
	Short: "GAUGE - heuristic equity scoring engine",
	Long: `GAUGE rates equities on a 0-100 composite scale from technical,
fundamental, earnings quality, sentiment and ESG risk signals, and
derives intraday entry, exit and stop levels.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address (e.g. :9090)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
