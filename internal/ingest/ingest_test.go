package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"

	"newsstudio/internal/core"
)

type stubFeeds struct {
	feeds map[string]*gofeed.Feed
}

func (s *stubFeeds) FetchFeed(_ context.Context, url string) (*gofeed.Feed, error) {
	f, ok := s.feeds[url]
	if !ok {
		return nil, fmt.Errorf("unreachable feed %s", url)
	}
	return f, nil
}

type stubArticles struct {
	texts map[string]string
	calls []string
}

func (s *stubArticles) ArticleText(_ context.Context, url string) string {
	s.calls = append(s.calls, url)
	return s.texts[url]
}

type memStore struct {
	items map[string]core.NewsItem
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]core.NewsItem)}
}

func (m *memStore) InsertNews(item core.NewsItem) (bool, error) {
	if _, ok := m.items[item.URL]; ok {
		return false, nil
	}
	m.items[item.URL] = item
	return true, nil
}

func (m *memStore) GetNewsByURL(url string) (*core.NewsItem, error) {
	if it, ok := m.items[url]; ok {
		return &it, nil
	}
	return nil, errors.New("not found")
}

func realEstateSource(url string) core.SourceConfig {
	return core.SourceConfig{
		Name:            "Test RE",
		URL:             url,
		SourceLabel:     "Test",
		DefaultCategory: "NOTICIAS_INMOBILIARIAS",
		Domain:          core.DomainRealEstate,
	}
}

func techSource(url string) core.SourceConfig {
	return core.SourceConfig{
		Name:            "Test Tech",
		URL:             url,
		SourceLabel:     "Test",
		DefaultCategory: "OTHER_TECH",
		Domain:          core.DomainTech,
	}
}

func TestIngestRealEstateFiltersAndInserts(t *testing.T) {
	feeds := &stubFeeds{feeds: map[string]*gofeed.Feed{
		"https://feeds.test/re": {Items: []*gofeed.Item{
			{
				Title:       "La compraventa de vivienda sube un 8%",
				Link:        "https://re.es/1",
				Description: "El mercado inmobiliario acelera en agosto con más operaciones de vivienda.",
			},
			{
				Title:       "El Madrid gana el partido de fútbol",
				Link:        "https://re.es/2",
				Description: "Crónica deportiva.",
			},
			{
				Title:       "Nueva receta de cocina mediterránea",
				Link:        "https://re.es/3",
				Description: "Gastronomía de verano.",
			},
			{
				Title: "Entrada sin enlace sobre vivienda",
			},
		}},
	}}
	st := newMemStore()
	c := NewCoordinator(feeds, &stubArticles{}, st)

	results := c.Ingest(context.Background(), []core.SourceConfig{realEstateSource("https://feeds.test/re")})

	if results["Test RE"] != 1 {
		t.Fatalf("inserted = %d, want 1", results["Test RE"])
	}
	got, ok := st.items["https://re.es/1"]
	if !ok {
		t.Fatal("relevant item not stored")
	}
	if got.Domain != core.DomainRealEstate {
		t.Errorf("domain = %q", got.Domain)
	}
	if got.Category == "" {
		t.Error("category not assigned")
	}
	if got.PublishedAt.IsZero() {
		t.Error("published_at not defaulted")
	}
	if _, ok := st.items["https://re.es/2"]; ok {
		t.Error("denied item stored")
	}
	if _, ok := st.items["https://re.es/3"]; ok {
		t.Error("off-sector item stored")
	}
}

func TestIngestRealEstateLateRecheck(t *testing.T) {
	// The feed summary looks on-sector, but the scraped article turns out
	// to be about something else entirely.
	feeds := &stubFeeds{feeds: map[string]*gofeed.Feed{
		"https://feeds.test/re": {Items: []*gofeed.Item{
			{
				Title:       "El precio de la vivienda se estabiliza",
				Link:        "https://re.es/trap",
				Description: "Breve.",
			},
		}},
	}}
	articles := &stubArticles{texts: map[string]string{
		"https://re.es/trap": "El club de fútbol anuncia que su estadio acogerá conciertos este verano.",
	}}
	st := newMemStore()
	c := NewCoordinator(feeds, articles, st)

	results := c.Ingest(context.Background(), []core.SourceConfig{realEstateSource("https://feeds.test/re")})

	if results["Test RE"] != 0 {
		t.Errorf("inserted = %d, want 0", results["Test RE"])
	}
	if len(articles.calls) != 1 {
		t.Errorf("article fetch calls = %d, want 1", len(articles.calls))
	}
}

func TestIngestRealEstatePrefersEmbeddedContent(t *testing.T) {
	content := strings.Repeat("La vivienda protegida gana peso en el mercado. ", 6)
	feeds := &stubFeeds{feeds: map[string]*gofeed.Feed{
		"https://feeds.test/re": {Items: []*gofeed.Item{
			{
				Title:       "La vivienda protegida gana peso",
				Link:        "https://re.es/full",
				Description: "Resumen corto de vivienda.",
				Content:     content,
			},
		}},
	}}
	articles := &stubArticles{}
	st := newMemStore()
	c := NewCoordinator(feeds, articles, st)

	c.Ingest(context.Background(), []core.SourceConfig{realEstateSource("https://feeds.test/re")})

	got, ok := st.items["https://re.es/full"]
	if !ok {
		t.Fatal("item not stored")
	}
	if !strings.Contains(got.RawSummary, "vivienda protegida gana peso") {
		t.Errorf("embedded content not used: %q", got.RawSummary)
	}
	if len(articles.calls) != 0 {
		t.Errorf("scraped despite long embedded content: %v", articles.calls)
	}
}

func TestIngestRealEstateCapCountsRelevant(t *testing.T) {
	items := make([]*gofeed.Item, 0, 4)
	for i := 1; i <= 4; i++ {
		items = append(items, &gofeed.Item{
			Title:       fmt.Sprintf("El alquiler de vivienda sube en la zona %d", i),
			Link:        fmt.Sprintf("https://re.es/cap/%d", i),
			Description: "El mercado del alquiler de vivienda sigue tensionado.",
		})
	}
	feeds := &stubFeeds{feeds: map[string]*gofeed.Feed{
		"https://feeds.test/re": {Items: items},
	}}
	st := newMemStore()
	c := NewCoordinator(feeds, &stubArticles{}, st, WithMaxPerSource(2, 0))

	results := c.Ingest(context.Background(), []core.SourceConfig{realEstateSource("https://feeds.test/re")})

	if results["Test RE"] != 2 {
		t.Errorf("inserted = %d, want 2", results["Test RE"])
	}
	if len(st.items) != 2 {
		t.Errorf("stored %d items, want 2", len(st.items))
	}
}

func TestIngestTechDedupeAndScoreFloor(t *testing.T) {
	feeds := &stubFeeds{feeds: map[string]*gofeed.Feed{
		"https://feeds.test/tech": {Items: []*gofeed.Item{
			{
				Title:       "OpenAI lanza un nuevo modelo de lenguaje",
				Link:        "https://tech.es/ai",
				Description: "La inteligencia artificial generativa da otro salto.",
			},
			{
				Title:       "Nueva herramienta de software para equipos remotos",
				Link:        "https://tech.es/tool",
				Description: "Una plataforma de colaboración.",
			},
			{
				Title:       "OpenAI lanza un nuevo modelo de lenguaje",
				Link:        "https://tech.es/ai",
				Description: "Duplicado exacto.",
			},
		}},
	}}
	st := newMemStore()
	c := NewCoordinator(feeds, &stubArticles{}, st, WithMinScore(70))

	results := c.Ingest(context.Background(), []core.SourceConfig{techSource("https://feeds.test/tech")})

	if results["Test Tech"] != 1 {
		t.Fatalf("inserted = %d, want 1", results["Test Tech"])
	}
	got, ok := st.items["https://tech.es/ai"]
	if !ok {
		t.Fatal("AI item not stored")
	}
	if got.Category != "AI_ML" {
		t.Errorf("category = %q, want AI_ML", got.Category)
	}
	if got.RelevanceScore < 70 {
		t.Errorf("score = %d, want >= 70", got.RelevanceScore)
	}
	if got.Tags == "" {
		t.Error("tags not extracted")
	}
	if _, ok := st.items["https://tech.es/tool"]; ok {
		t.Error("low-score item stored")
	}
}

func TestIngestTechDeniesConsumerNoise(t *testing.T) {
	feeds := &stubFeeds{feeds: map[string]*gofeed.Feed{
		"https://feeds.test/tech": {Items: []*gofeed.Item{
			{
				Title:       "Chollo del día: smart tv con descuento",
				Link:        "https://tech.es/deal",
				Description: "La mejor oferta en televisores.",
			},
		}},
	}}
	st := newMemStore()
	c := NewCoordinator(feeds, &stubArticles{}, st)

	results := c.Ingest(context.Background(), []core.SourceConfig{techSource("https://feeds.test/tech")})

	if results["Test Tech"] != 0 {
		t.Errorf("inserted = %d, want 0", results["Test Tech"])
	}
}

func TestIngestSourceFailureIsolated(t *testing.T) {
	feeds := &stubFeeds{feeds: map[string]*gofeed.Feed{
		"https://feeds.test/good": {Items: []*gofeed.Item{
			{
				Title:       "La inversión inmobiliaria crece",
				Link:        "https://re.es/ok",
				Description: "Los fondos amplían su cartera de vivienda en alquiler.",
			},
		}},
	}}
	st := newMemStore()
	c := NewCoordinator(feeds, &stubArticles{}, st)

	broken := realEstateSource("https://feeds.test/broken")
	broken.Name = "Broken"
	good := realEstateSource("https://feeds.test/good")
	good.Name = "Good"

	results := c.Ingest(context.Background(), []core.SourceConfig{broken, good})

	if results["Broken"] != 0 {
		t.Errorf("broken source inserted %d", results["Broken"])
	}
	if results["Good"] != 1 {
		t.Errorf("good source inserted %d, want 1", results["Good"])
	}
}
