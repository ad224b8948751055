package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantive/gauge/internal/search"
)

var newsMax int

var newsCmd = &cobra.Command{
	Use:   "news QUERY...",
	Short: "Search recent news for a symbol or company",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNews,
}

func init() {
	newsCmd.Flags().IntVar(&newsMax, "max", search.DefaultMaxResults, "maximum results")
	rootCmd.AddCommand(newsCmd)
}

func runNews(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	if !rt.cfg.Search.Enabled {
		return fmt.Errorf("search is disabled in config")
	}

	query := strings.Join(args, " ") + " stock news"
	maxResults := newsMax
	if maxResults <= 0 {
		maxResults = rt.cfg.Search.MaxResults
	}

	searcher := search.NewDuckDuckGo()
	results, err := searcher.Search(cmd.Context(), query, maxResults)
	if err != nil {
		return fmt.Errorf("searching news: %w", err)
	}

	fmt.Println(search.Format(query, results))
	return nil
}
