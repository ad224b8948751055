package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var intradayCmd = &cobra.Command{
	Use:   "intraday SYMBOL",
	Short: "Derive intraday entry, exit and stop levels for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntraday,
}

func init() {
	rootCmd.AddCommand(intradayCmd)
}

func runIntraday(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	levels, err := rt.analyzer.Intraday(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("deriving levels for %s: %w", args[0], err)
	}
	return printJSON(levels)
}
