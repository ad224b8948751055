package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeOnly string

var analyzeCmd = &cobra.Command{
	Use:   "analyze SYMBOL",
	Short: "Run the composite scoring pipeline for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOnly, "only",
		"", "run a single pass: technical, fundamentals, earnings, sentiment or esg")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	ctx := cmd.Context()
	symbol := args[0]

	switch analyzeOnly {
	case "":
		score, err := rt.analyzer.Analyze(ctx, symbol)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", symbol, err)
		}
		return printJSON(score)
	case "technical":
		result, err := rt.analyzer.Technical(ctx, symbol)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", symbol, err)
		}
		return printJSON(result)
	case "fundamentals":
		result, err := rt.analyzer.Fundamentals(ctx, symbol)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", symbol, err)
		}
		return printJSON(result)
	case "earnings":
		result, err := rt.analyzer.Earnings(ctx, symbol)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", symbol, err)
		}
		return printJSON(result)
	case "sentiment":
		result, err := rt.analyzer.Sentiment(ctx, symbol)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", symbol, err)
		}
		return printJSON(result)
	case "esg":
		result, err := rt.analyzer.ESGRisk(ctx, symbol)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", symbol, err)
		}
		return printJSON(result)
	default:
		return fmt.Errorf("unknown pass %q", analyzeOnly)
	}
}
