package drafts

import (
	"fmt"
	"unicode/utf8"

	"newsstudio/internal/compact"
	"newsstudio/internal/core"
)

// Pool is an immutable list of interchangeable template strings.
type Pool []string

// Select returns the pool entry for a seed. Same seed, same entry.
func (p Pool) Select(seed int) string {
	return p[seed%len(p)]
}

// Althara voice: quiet luxury, señal e implicaciones.
var (
	altharaHooks = Pool{
		"Señal de reactivación en demanda.",
		"Señal en el desplazamiento del mercado.",
	}
	altharaCTAs = Pool{
		"Guárdalo.",
		"Seguimos monitorizando.",
	}
)

const (
	altharaHashtagsMin = 8
	altharaHashtagsMax = 12
	oxonoHashtagsMin   = 6
	oxonoHashtagsMax   = 10

	lecturaFallback = "Lectura en el enlace."
)

func composeAlthara(news core.NewsItem, seed int) (slides []core.Slide, caption string, hashtags []string, cta string) {
	facts := extractFacts(news)
	lectura := altharaLectura(news.Category)
	cta = altharaCTAs.Select(seed)

	s1 := factOr(facts, 0, "Hecho en el enlace.")
	s2 := factOr(facts, 1, "Contexto en el enlace.")
	var s3 string
	switch {
	case len(facts) > 2:
		s3 = facts[2]
	case utf8.RuneCountInString(lectura) <= BodyMax && lectura != lecturaFallback:
		s3 = lectura
	default:
		s3 = cta
	}
	slides = []core.Slide{
		{Title: "Hecho", Body: s1},
		{Title: "Contexto", Body: s2},
		{Title: "Cierre", Body: s3},
	}

	factLines := facts
	if len(factLines) > 3 {
		factLines = factLines[:3]
	}
	if len(factLines) == 0 {
		factLines = []string{"Hecho en el enlace."}
	}
	hook := altharaHooks.Select(seed)
	caption = compact.ComposeCaptionBlocks(hook, factLines, lectura, cta, news.Source, altharaCaptionMax)
	hashtags = altharaHashtags(news.Category, seed)
	return slides, caption, hashtags, cta
}

// altharaLectura picks the first complete sentence of the strategic line
// when it fits a slide, otherwise the generic fallback.
func altharaLectura(category string) string {
	parts := compact.SplitSentences(StrategicLine(category))
	if len(parts) > 0 && utf8.RuneCountInString(parts[0]) <= BodyMax {
		return parts[0]
	}
	return lecturaFallback
}

func factOr(facts []string, i int, fallback string) string {
	if len(facts) > i {
		return facts[i]
	}
	return fallback
}

func altharaHashtags(category string, seed int) []string {
	base := []string{"#inmobiliaria", "#althara"}
	catMap := map[string][]string{
		"PRECIOS_VIVIENDA":              {"#preciosvivienda", "#mercadoinmobiliario"},
		"HIPOTECAS_Y_CREDITO":           {"#hipotecas", "#financiacion"},
		"NOTICIAS_HIPOTECAS":            {"#hipotecas", "#financiacion"},
		"INVERSION_INSTITUCIONAL":       {"#fondosinversion", "#inversioninmobiliaria"},
		"FONDOS_INVERSION_INMOBILIARIA": {"#fondosinversion", "#inversioninmobiliaria"},
	}
	if tags, ok := catMap[category]; ok {
		base = append(base, tags...)
	} else {
		base = append(base, "#mercadoinmobiliario")
	}
	extra := []string{"#datos", "#tendencias", "#sector", "#mercado"}
	for i := 0; i < 4; i++ {
		tag := extra[(seed+i)%len(extra)]
		if !contains(base, tag) {
			base = append(base, tag)
		}
		if len(base) >= altharaHashtagsMax {
			break
		}
	}
	for len(base) < altharaHashtagsMin {
		base = append(base, fmt.Sprintf("#news%d", (seed+len(base))%10))
	}
	if len(base) > altharaHashtagsMax {
		base = base[:altharaHashtagsMax]
	}
	return base
}

// Oxono voice: systems thinking, operacional.
func composeOxono(news core.NewsItem, seed int) (slides []core.Slide, caption string, hashtags []string, cta string) {
	facts := extractFacts(news)
	conclusion := "Impacto técnico en ejecución."

	s1 := factOr(facts, 0, "Tesis en el enlace.")
	s2 := factOr(facts, 1, "Hecho en el enlace.")
	s3 := conclusion
	if len(facts) > 2 {
		s3 = facts[2]
	}
	slides = []core.Slide{
		{Title: "Tesis", Body: s1},
		{Title: "Hecho", Body: s2},
		{Title: "Cierre", Body: s3},
	}

	hook := "Contexto técnico."
	if len(facts) > 0 {
		hook = facts[0]
	}
	takeaways := "• Validar supuestos • Medir impacto • Ajustar criterio"
	sourceLine := "Fuente: " + news.Source
	if news.URL != "" {
		sourceLine += " | " + news.URL
	}
	caption = hook + "\n\n" + takeaways + "\n\n" + sourceLine
	if utf8.RuneCountInString(caption) > oxonoCaptionMax {
		caption = compact.TruncateAtSentence(caption, oxonoCaptionMax)
	}
	hashtags = oxonoHashtags(news.Category, seed)
	return slides, caption, hashtags, "Validar criterio."
}

func oxonoHashtags(category string, seed int) []string {
	base := []string{"#tech", "#oxono"}
	catMap := map[string][]string{
		"AI_ML":          {"#ia", "#machinelearning"},
		"RELEASE_UPDATE": {"#producto", "#lanzamiento"},
		"TOOL_DISCOVERY": {"#herramientas", "#startups"},
	}
	if tags, ok := catMap[category]; ok {
		base = append(base, tags...)
	} else {
		base = append(base, "#tecnologia")
	}
	extra := []string{"#datos", "#sistemas", "#ejecución"}
	for i := 0; i < 3; i++ {
		tag := extra[(seed+i)%len(extra)]
		if !contains(base, tag) {
			base = append(base, tag)
		}
		if len(base) >= oxonoHashtagsMax {
			break
		}
	}
	for len(base) < oxonoHashtagsMin {
		base = append(base, fmt.Sprintf("#tech%d", (seed+len(base))%10))
	}
	if len(base) > oxonoHashtagsMax {
		base = base[:oxonoHashtagsMax]
	}
	return base
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
