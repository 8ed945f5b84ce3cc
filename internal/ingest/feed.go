package ingest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedFetcher retrieves and parses one feed.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, url string) (*gofeed.Feed, error)
}

// HTTPFeedFetcher fetches feeds over HTTP with a browser-style user agent
// (several Spanish outlets reject unknown agents).
type HTTPFeedFetcher struct {
	client    *http.Client
	parser    *gofeed.Parser
	userAgent string
}

// NewHTTPFeedFetcher creates a fetcher with the given user agent and timeout.
func NewHTTPFeedFetcher(userAgent string, timeout time.Duration) *HTTPFeedFetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPFeedFetcher{
		client:    &http.Client{Timeout: timeout},
		parser:    gofeed.NewParser(),
		userAgent: userAgent,
	}
}

// FetchFeed retrieves and parses the feed at url.
func (f *HTTPFeedFetcher) FetchFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// publishedAt returns the item publication time: published, then updated,
// then the current time.
func publishedAt(item *gofeed.Item, now time.Time) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return now
}
