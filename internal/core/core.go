// Package core defines the domain model shared across News Studio:
// news items, social drafts, source and rule configuration.
package core

import "time"

// Domain identifies which editorial vertical a news item belongs to.
const (
	DomainRealEstate = "real_estate"
	DomainTech       = "tech"
)

// Draft lifecycle statuses. Transitions only move forward.
const (
	StatusDraft       = "DRAFT"
	StatusNeedsReview = "NEEDS_REVIEW"
	StatusApproved    = "APPROVED"
	StatusPublished   = "PUBLISHED"
)

// statusRank orders the lifecycle for transition checks.
var statusRank = map[string]int{
	StatusDraft:       0,
	StatusNeedsReview: 1,
	StatusApproved:    2,
	StatusPublished:   3,
}

// ValidStatus reports whether s is a known draft status.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether a draft may move from one status to another.
// The lifecycle is monotonic: DRAFT → NEEDS_REVIEW → APPROVED → PUBLISHED.
func CanTransition(from, to string) bool {
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr > fr
}

// NewsItem represents an ingested news record. It is produced by the
// ingestion boundary and read-only to the composition pipeline.
type NewsItem struct {
	ID             string    `json:"id"`              // Unique identifier (UUID)
	Title          string    `json:"title"`           // Headline from the source
	Source         string    `json:"source"`          // Source label (e.g. "Expansion")
	URL            string    `json:"url"`             // Canonical article URL; dedupe key
	PublishedAt    time.Time `json:"published_at"`    // Publication timestamp (UTC)
	Category       string    `json:"category"`        // Assigned taxonomy category
	RawSummary     string    `json:"raw_summary"`     // Cleaned source text (may be long)
	StudioSummary  string    `json:"studio_summary"`  // Three-line editorial summary
	Tags           string    `json:"tags"`            // Comma-separated tags (tech domain)
	Domain         string    `json:"domain"`          // real_estate or tech
	RelevanceScore int       `json:"relevance_score"` // 0-100 score (tech domain)
	Provincia      string    `json:"provincia"`       // Optional region (real estate)
	Poblacion      string    `json:"poblacion"`       // Optional locality (real estate)
	UsedInSocial   bool      `json:"used_in_social"`  // Set when a draft is published
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Slide is one unit of a carousel, bounded to a small character budget.
type Slide struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Draft is a generated social media draft for a news item. It is created
// by the composer and mutated only through explicit boundary operations.
type Draft struct {
	ID          string    `json:"id"`
	NewsID      string    `json:"news_id"`
	Hook        string    `json:"hook"`
	Slides      []Slide   `json:"carousel_slides"`
	Caption     string    `json:"caption"`
	Hashtags    []string  `json:"hashtags"`
	CTA         string    `json:"cta"`
	SourceLine  string    `json:"source_line"` // Always present: source label + optional URL
	Disclaimer  string    `json:"disclaimer"`
	Tone        string    `json:"tone"`
	Language    string    `json:"language"`
	Status      string    `json:"status"`
	EditorNotes string    `json:"editor_notes"`
	VariantOf   string    `json:"variant_of"` // Sibling draft ID; empty for the main draft
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SourceConfig describes one feed to ingest.
type SourceConfig struct {
	Name            string `yaml:"name" json:"name"`                         // Display name, also the result key
	URL             string `yaml:"url" json:"url"`                           // Feed URL
	SourceLabel     string `yaml:"source" json:"source"`                     // Label stored on ingested items
	DefaultCategory string `yaml:"default_category" json:"default_category"` // Used when classification misses
	Domain          string `yaml:"domain" json:"domain"`                     // real_estate or tech
}

// GuardrailConfig is an immutable deny/allow keyword gate configuration.
type GuardrailConfig struct {
	DenyKeywords       []string
	AllowKeywords      []string
	StrictRequireAllow bool
}

// ClassificationRule binds a taxonomy category to an ordered list of
// keyword phrases. Rule tables are evaluated in slice order.
type ClassificationRule struct {
	Category string
	Phrases  []string
}
