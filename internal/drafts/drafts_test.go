package drafts

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"newsstudio/internal/core"
)

func sampleNews() core.NewsItem {
	return core.NewsItem{
		ID:       "b7e23ec2-8f21-4b6a-9fd5-111111111111",
		Title:    "La compraventa de vivienda sube un 7,1% en noviembre",
		Source:   "Expansión",
		URL:      "https://example.es/noticia/compraventa",
		Category: "PRECIOS_VIVIENDA",
		Domain:   core.DomainRealEstate,
		RawSummary: "En noviembre se registraron 58.500 operaciones de compraventa. " +
			"El precio medio avanza un 4,2% interanual en las capitales de provincia. " +
			"La oferta disponible sigue en mínimos de la última década.",
	}
}

func TestSeed(t *testing.T) {
	s := Seed("some-news-id")
	if s < 0 || s >= 10000 {
		t.Fatalf("seed %d out of range [0, 10000)", s)
	}
	for i := 0; i < 10; i++ {
		if Seed("some-news-id") != s {
			t.Fatal("seed is not stable for the same id")
		}
	}
	if Seed("another-id") == s && Seed("a-third-id") == s {
		t.Error("distinct ids always map to the same seed")
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	news := sampleNews()
	opts := Options{Brand: BrandAlthara, Seed: -1}
	a := Generate(news, opts)
	b := Generate(news, opts)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same input produced different drafts:\n%+v\n%+v", a, b)
	}
}

func TestGenerateAltharaShape(t *testing.T) {
	d := Generate(sampleNews(), Options{Brand: BrandAlthara, Seed: 42})

	if len(d.Slides) != SlidesCount {
		t.Fatalf("got %d slides, want %d", len(d.Slides), SlidesCount)
	}
	wantTitles := []string{"Hecho", "Contexto", "Cierre"}
	for i, s := range d.Slides {
		if s.Title != wantTitles[i] {
			t.Errorf("slide %d title = %q, want %q", i, s.Title, wantTitles[i])
		}
		if s.Body == "" {
			t.Errorf("slide %d has empty body", i)
		}
		if n := utf8.RuneCountInString(s.Body); n > BodyMax {
			t.Errorf("slide %d body is %d chars, max %d", i, n, BodyMax)
		}
	}
	if n := utf8.RuneCountInString(d.Caption); n > altharaCaptionMax {
		t.Errorf("caption is %d chars, max %d", n, altharaCaptionMax)
	}
	if len(d.Hashtags) < altharaHashtagsMin || len(d.Hashtags) > altharaHashtagsMax {
		t.Errorf("got %d hashtags, want between %d and %d", len(d.Hashtags), altharaHashtagsMin, altharaHashtagsMax)
	}
	if d.SourceLine != "Fuente: Expansión | https://example.es/noticia/compraventa" {
		t.Errorf("unexpected source line %q", d.SourceLine)
	}
	if d.Status != core.StatusDraft {
		t.Errorf("new draft has status %q", d.Status)
	}
	if d.Hook != d.Slides[0].Body {
		t.Errorf("hook %q does not match first slide body %q", d.Hook, d.Slides[0].Body)
	}
	if !strings.Contains(d.Disclaimer, "Expansión") {
		t.Errorf("disclaimer does not name the source: %q", d.Disclaimer)
	}
}

func TestGenerateOxonoShape(t *testing.T) {
	news := sampleNews()
	news.Domain = core.DomainTech
	news.Category = "AI_ML"
	d := Generate(news, Options{Brand: BrandOxono, Seed: 7})

	wantTitles := []string{"Tesis", "Hecho", "Cierre"}
	for i, s := range d.Slides {
		if s.Title != wantTitles[i] {
			t.Errorf("slide %d title = %q, want %q", i, s.Title, wantTitles[i])
		}
	}
	if d.CTA != "Validar criterio." {
		t.Errorf("oxono CTA = %q", d.CTA)
	}
	if n := utf8.RuneCountInString(d.Caption); n > oxonoCaptionMax {
		t.Errorf("caption is %d chars, max %d", n, oxonoCaptionMax)
	}
	if len(d.Hashtags) < oxonoHashtagsMin || len(d.Hashtags) > oxonoHashtagsMax {
		t.Errorf("got %d hashtags, want between %d and %d", len(d.Hashtags), oxonoHashtagsMin, oxonoHashtagsMax)
	}
	if !contains(d.Hashtags, "#ia") {
		t.Errorf("AI_ML category tag missing from %v", d.Hashtags)
	}
}

func TestGenerateFallbackSlides(t *testing.T) {
	news := core.NewsItem{
		ID:     "n-1",
		Title:  "Dato breve…",
		Source: "Fuente X",
	}
	d := Generate(news, Options{Brand: BrandAlthara, Seed: 0})
	if d.Slides[0].Body != "Hecho en el enlace." {
		t.Errorf("slide 1 body = %q", d.Slides[0].Body)
	}
	if d.Slides[1].Body != "Contexto en el enlace." {
		t.Errorf("slide 2 body = %q", d.Slides[1].Body)
	}
	if d.Slides[2].Body == "" {
		t.Error("slide 3 must never be empty")
	}
}

func TestGenerateVariants(t *testing.T) {
	news := sampleNews()
	variants := GenerateVariants(news, 3, Options{Brand: BrandAlthara, Seed: -1})
	if len(variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(variants))
	}
	if variants[0].VariantOf != "" {
		t.Errorf("main draft should have empty VariantOf, got %q", variants[0].VariantOf)
	}
	for i := 1; i < len(variants); i++ {
		if variants[i].VariantOf != variants[0].ID {
			t.Errorf("variant %d references %q, want %q", i, variants[i].VariantOf, variants[0].ID)
		}
		if variants[i].ID == variants[0].ID {
			t.Errorf("variant %d shares the main draft ID", i)
		}
	}
	// The stride is odd, so consecutive variants alternate CTA selection.
	if variants[0].CTA == variants[1].CTA {
		t.Errorf("consecutive variants picked the same CTA %q", variants[0].CTA)
	}

	again := GenerateVariants(news, 3, Options{Brand: BrandAlthara, Seed: -1})
	if !reflect.DeepEqual(variants, again) {
		t.Error("variant generation is not reproducible")
	}
}

func TestBuildStudioSummary(t *testing.T) {
	got := BuildStudioSummary("Compraventa al alza en el litoral", "", "PRECIOS_VIVIENDA", 1)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "Los últimos datos apuntan a lo siguiente: ") {
		t.Errorf("fact line missing neutral framing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "oferta limitada") {
		t.Errorf("unexpected strategic line for PRECIOS_VIVIENDA: %q", lines[1])
	}
	if lines[2] != closers.Select(1) {
		t.Errorf("closer line = %q", lines[2])
	}
}

func TestBuildFactLineNeutralStarts(t *testing.T) {
	for _, title := range []string{
		"El euribor cierra el mes a la baja",
		"La oferta de obra nueva se contrae",
		"En Madrid la demanda supera a la oferta",
	} {
		got := buildFactLine(title, "")
		if strings.HasPrefix(got, "Los últimos datos") {
			t.Errorf("neutral headline %q should not be reframed: %q", title, got)
		}
	}
}

func TestBuildFactLineBounded(t *testing.T) {
	long := strings.Repeat("La serie histórica muestra una tendencia sostenida al alza. ", 10)
	got := buildFactLine("El mercado acumula señales", long)
	if n := utf8.RuneCountInString(got); n > factLineMax {
		t.Errorf("fact line is %d chars, max %d", n, factLineMax)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("shortened fact line should end with ellipsis: %q", got)
	}
}
