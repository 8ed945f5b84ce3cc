// Package ingest coordinates feed ingestion: it walks the configured
// sources, filters entries through the relevance guardrails, builds the
// richest available content for each item, classifies it and hands it to
// the store. One failing source never stops the run; it just reports zero.
package ingest

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"newsstudio/internal/categorization"
	"newsstudio/internal/clean"
	"newsstudio/internal/core"
	"newsstudio/internal/logger"
	"newsstudio/internal/relevance"
)

const (
	// minEntryContentChars is the floor below which embedded feed content
	// is discarded in favor of scraping.
	minEntryContentChars = 200

	// DefaultMaxRealEstate caps relevant entries processed per real-estate
	// source.
	DefaultMaxRealEstate = 10
	// DefaultMaxTech caps items inserted per tech source.
	DefaultMaxTech = 5
	// DefaultMinScore is the relevance floor for tech insertion.
	DefaultMinScore = 2
)

// ArticleFetcher retrieves the readable text of an article page.
// An empty result means extraction failed; that is not an error.
type ArticleFetcher interface {
	ArticleText(ctx context.Context, url string) string
}

// Store is the persistence surface the coordinator needs.
type Store interface {
	InsertNews(item core.NewsItem) (bool, error)
	GetNewsByURL(url string) (*core.NewsItem, error)
}

// Coordinator runs ingestion for both domains.
type Coordinator struct {
	feeds    FeedFetcher
	articles ArticleFetcher
	store    Store

	realEstateGuard core.GuardrailConfig
	techGuard       core.GuardrailConfig
	classifier      *categorization.PriorityClassifier
	hints           *categorization.HintClassifier

	maxRealEstate int
	maxTech       int
	minScore      int
}

// Option tweaks coordinator limits.
type Option func(*Coordinator)

// WithMaxPerSource overrides the per-source caps.
func WithMaxPerSource(realEstate, tech int) Option {
	return func(c *Coordinator) {
		if realEstate > 0 {
			c.maxRealEstate = realEstate
		}
		if tech > 0 {
			c.maxTech = tech
		}
	}
}

// WithMinScore overrides the tech relevance floor.
func WithMinScore(min int) Option {
	return func(c *Coordinator) { c.minScore = min }
}

// NewCoordinator wires a coordinator with the shipped guardrail profiles
// and classifiers.
func NewCoordinator(feeds FeedFetcher, articles ArticleFetcher, st Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		feeds:           feeds,
		articles:        articles,
		store:           st,
		realEstateGuard: relevance.RealEstateProfile(),
		techGuard:       relevance.TechProfile(),
		classifier:      categorization.NewRealEstateClassifier(),
		hints:           categorization.NewHintClassifier(),
		maxRealEstate:   DefaultMaxRealEstate,
		maxTech:         DefaultMaxTech,
		minScore:        DefaultMinScore,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ingest runs every source and returns a per-source insert count. Source
// order is preserved in the counts; a source that fails reports zero.
func (c *Coordinator) Ingest(ctx context.Context, sources []core.SourceConfig) map[string]int {
	results := make(map[string]int, len(sources))
	for _, src := range sources {
		var n int
		if src.Domain == core.DomainTech {
			n = c.ingestTechSource(ctx, src)
		} else {
			n = c.ingestRealEstateSource(ctx, src)
		}
		results[src.Name] = n
	}
	return results
}

// ingestRealEstateSource processes one real-estate feed. The cap counts
// relevant entries seen, not rows inserted, so a fully-deduped run still
// terminates early.
func (c *Coordinator) ingestRealEstateSource(ctx context.Context, src core.SourceConfig) int {
	feed, err := c.feeds.FetchFeed(ctx, src.URL)
	if err != nil {
		logger.Warn("source fetch failed", "source", src.Name, "error", err.Error())
		return 0
	}

	now := time.Now().UTC()
	inserted := 0
	relevantCount := 0
	for _, entry := range feed.Items {
		if relevantCount >= c.maxRealEstate {
			break
		}
		if entry.Title == "" || entry.Link == "" {
			continue
		}

		tempSummary := entry.Description

		// Early check on the cheap text before any scraping.
		if !relevance.Passes(entry.Title, c.realEstateGuard, tempSummary, "") {
			continue
		}
		relevantCount++

		rawSummary := c.buildContent(ctx, entry, tempSummary)

		// Re-check on the richer text; scraped pages sometimes reveal
		// off-sector content the feed summary hid.
		if !relevance.Passes(entry.Title, c.realEstateGuard, rawSummary, "") {
			continue
		}

		category := c.classifier.Classify(entry.Title, rawSummary)
		if category == "" {
			category = src.DefaultCategory
		}

		ok, err := c.store.InsertNews(core.NewsItem{
			Title:       entry.Title,
			Source:      src.SourceLabel,
			URL:         entry.Link,
			PublishedAt: publishedAt(entry, now),
			Category:    category,
			RawSummary:  rawSummary,
			Domain:      core.DomainRealEstate,
		})
		if err != nil {
			logger.Error("news insert failed", err, "source", src.Name, "url", entry.Link)
			return 0
		}
		if ok {
			inserted++
		}
	}
	logger.Info("source ingested", "source", src.Name, "inserted", inserted)
	return inserted
}

// ingestTechSource processes one tech feed: guardrail, dedupe, classify,
// score floor, insert.
func (c *Coordinator) ingestTechSource(ctx context.Context, src core.SourceConfig) int {
	feed, err := c.feeds.FetchFeed(ctx, src.URL)
	if err != nil {
		logger.Warn("source fetch failed", "source", src.Name, "error", err.Error())
		return 0
	}

	now := time.Now().UTC()
	inserted := 0
	processed := 0
	for _, entry := range feed.Items {
		if processed >= c.maxTech {
			break
		}
		if entry.Title == "" || entry.Link == "" {
			continue
		}

		tempSummary := clean.StripTags(entry.Description)

		if !relevance.Passes(entry.Title, c.techGuard, tempSummary, entry.Link) {
			continue
		}

		if existing, err := c.store.GetNewsByURL(entry.Link); err == nil && existing != nil {
			continue
		}

		category := c.hints.Classify(entry.Title, tempSummary)
		tags := categorization.ExtractTags(entry.Title, tempSummary)
		score := categorization.RelevanceScore(entry.Title, tempSummary, category)
		if score < c.minScore {
			continue
		}
		processed++

		ok, err := c.store.InsertNews(core.NewsItem{
			Title:          entry.Title,
			Source:         src.SourceLabel,
			URL:            entry.Link,
			PublishedAt:    publishedAt(entry, now),
			Category:       category,
			RawSummary:     tempSummary,
			Tags:           tags,
			Domain:         core.DomainTech,
			RelevanceScore: score,
		})
		if err != nil {
			logger.Error("news insert failed", err, "source", src.Name, "url", entry.Link)
			return 0
		}
		if ok {
			inserted++
		}
	}
	logger.Info("source ingested", "source", src.Name, "inserted", inserted)
	return inserted
}

// buildContent assembles the richest text available for an entry:
// embedded content when long enough, then a scrape of the article page,
// then the cleaned feed summary.
func (c *Coordinator) buildContent(ctx context.Context, entry *gofeed.Item, tempSummary string) string {
	if entry.Content != "" {
		cleaned := clean.StripTags(entry.Content)
		if len([]rune(cleaned)) >= minEntryContentChars {
			return cleaned
		}
	}
	if c.articles != nil && entry.Link != "" {
		if scraped := c.articles.ArticleText(ctx, entry.Link); scraped != "" {
			return scraped
		}
	}
	return clean.StripTags(tempSummary)
}
