// Package search fetches recent news context for a symbol. Results feed
// analysis summaries as plain text; a failed search never fails an
// analysis.
package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/quantive/gauge/internal/core"
)

// Result is a single search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher finds recent news for a query.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

const (
	defaultEndpoint   = "https://html.duckduckgo.com/html/"
	DefaultMaxResults = 3
)

// retryDelays staggers the retries after an empty or failed attempt.
var retryDelays = []time.Duration{800 * time.Millisecond, 1600 * time.Millisecond}

// DuckDuckGo scrapes the HTML search endpoint. No API key needed.
type DuckDuckGo struct {
	client   *http.Client
	endpoint string
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewDuckDuckGo creates a search client.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		endpoint: defaultEndpoint,
		sleep:    sleepCtx,
	}
}

// NewDuckDuckGoWithEndpoint points the client at an alternate endpoint,
// used by tests.
func NewDuckDuckGoWithEndpoint(endpoint string) *DuckDuckGo {
	d := NewDuckDuckGo()
	d.endpoint = endpoint
	return d
}

// Search runs the query, retrying with staggered delays when an attempt
// fails or comes back empty. maxResults caps the returned slice; a
// non-positive value uses DefaultMaxResults.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	var lastErr error
	for attempt := 0; attempt <= len(retryDelays); attempt++ {
		if attempt > 0 {
			if err := d.sleep(ctx, retryDelays[attempt-1]); err != nil {
				return nil, core.WrapError(core.ErrSearchFailed, err)
			}
		}

		results, err := d.search(ctx, query, maxResults)
		if err != nil {
			lastErr = err
			continue
		}
		if len(results) > 0 {
			return results, nil
		}
		lastErr = fmt.Errorf("no results for query %q", query)
	}

	return nil, core.WrapError(core.ErrSearchFailed, lastErr)
}

func (d *DuckDuckGo) search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	form := url.Values{"q": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; gauge/1.0)")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}

	var results []Result
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		link := s.Find("a.result__a")
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		results = append(results, Result{
			Title:   strings.TrimSpace(link.Text()),
			URL:     cleanURL(href),
			Snippet: strings.TrimSpace(s.Find(".result__snippet").Text()),
		})
		return len(results) < maxResults
	})

	return results, nil
}

// cleanURL unwraps the redirect DuckDuckGo puts around result links.
func cleanURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// Format renders results as the plain-text block attached to analysis
// summaries.
func Format(query string, results []Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No recent news found for %q.", query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Recent news for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
