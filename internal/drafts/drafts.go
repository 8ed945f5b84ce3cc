// Package drafts turns news items into social media drafts: three carousel
// slides, a caption assembled from extracted facts, hashtags and a CTA.
// Generation is deterministic: the same news item and seed always produce
// the same draft, and variants rotate template selections by seed stride.
package drafts

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"newsstudio/internal/clean"
	"newsstudio/internal/compact"
	"newsstudio/internal/core"
)

const (
	// BodyMax bounds every slide body and extracted fact sentence.
	BodyMax = 110
	// SlidesCount is the fixed carousel length.
	SlidesCount = 3

	altharaCaptionMax = 900
	oxonoCaptionMax   = 850

	// variantStride separates variant seeds so consecutive variants pick
	// different entries from the small template pools.
	variantStride = 7
)

// Brand names. Each maps to one editorial voice and domain.
const (
	BrandAlthara = "althara"
	BrandOxono   = "oxono"
)

// Options controls draft generation. A negative Seed derives the seed from
// the news item ID, which is the normal path.
type Options struct {
	Tone     string
	Language string
	Brand    string
	Seed     int
}

// Seed derives the deterministic base seed for a news item: the FNV-1a
// 32-bit digest of its ID reduced to four digits. Stable across processes
// and platforms.
func Seed(id string) int {
	h := fnv.New32a()
	h.Write([]byte(id))
	return int(h.Sum32() % 10000)
}

// Generate produces one draft for the news item. The draft ID is derived
// from the news ID and seed, so regenerating with the same inputs yields
// an identical draft.
func Generate(news core.NewsItem, opts Options) core.Draft {
	if opts.Tone == "" {
		opts.Tone = "neutral"
	}
	if opts.Language == "" {
		opts.Language = "es"
	}
	if opts.Brand == "" {
		opts.Brand = BrandAlthara
	}
	seed := opts.Seed
	if seed < 0 {
		seed = Seed(news.ID)
	}

	var (
		slides   []core.Slide
		caption  string
		hashtags []string
		cta      string
	)
	if opts.Brand == BrandOxono {
		slides, caption, hashtags, cta = composeOxono(news, seed)
	} else {
		slides, caption, hashtags, cta = composeAlthara(news, seed)
	}

	sourceLine := "Fuente: " + news.Source
	if news.URL != "" {
		sourceLine += " | " + news.URL
	}

	hook := ""
	if len(slides) > 0 {
		hook = slides[0].Body
	}

	return core.Draft{
		ID:         draftID(news.ID, opts.Brand, seed),
		NewsID:     news.ID,
		Hook:       hook,
		Slides:     slides,
		Caption:    caption,
		Hashtags:   hashtags,
		CTA:        cta,
		SourceLine: sourceLine,
		Disclaimer: BuildDisclaimer(news.Source, news.URL),
		Tone:       opts.Tone,
		Language:   opts.Language,
		Status:     core.StatusDraft,
	}
}

// GenerateVariants produces n drafts from the same news item with seeds
// spaced by the variant stride. The first draft is the main one; the rest
// reference it through VariantOf.
func GenerateVariants(news core.NewsItem, n int, opts Options) []core.Draft {
	if n <= 0 {
		return nil
	}
	baseSeed := opts.Seed
	if baseSeed < 0 {
		baseSeed = Seed(news.ID)
	}
	out := make([]core.Draft, 0, n)
	for i := 0; i < n; i++ {
		o := opts
		o.Seed = baseSeed + i*variantStride
		d := Generate(news, o)
		if i > 0 {
			d.VariantOf = out[0].ID
		}
		out = append(out, d)
	}
	return out
}

// draftID is stable for a given news item, brand and seed.
func draftID(newsID, brand string, seed int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("draft:%s:%s:%d", newsID, brand, seed))).String()
}

// extractFacts cleans the richest available text and pulls the complete
// sentences that fit on a slide.
func extractFacts(news core.NewsItem) []string {
	source := news.RawSummary
	if source == "" {
		source = news.Title
	}
	cleaned := clean.StripTags(source)
	return compact.ExtractKeySentences(news.Title, cleaned, BodyMax, 4)
}
