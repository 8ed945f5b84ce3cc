package categorization

import (
	"strings"
	"unicode/utf8"
)

// hintGroup is one ordered bucket of the tech classifier: the first group
// with any keyword hit decides the category.
type hintGroup struct {
	category string
	keywords []string
}

// HintClassifier assigns tech categories by walking ordered hint groups.
// It also derives tags and a 0-100 relevance score from the same text.
type HintClassifier struct {
	groups   []hintGroup
	fallback string
}

// NewHintClassifier returns the shipped tech classifier. Group order
// encodes editorial priority: an AI story that also names a big-tech
// company is filed under AI_ML.
func NewHintClassifier() *HintClassifier {
	return &HintClassifier{
		fallback: TechOtherTech,
		groups: []hintGroup{
			{TechAIML, []string{
				"inteligencia artificial", "ia ", " ai ", "machine learning", "ml ",
				"deep learning", "neural", "llm", "gpt", "claude", "chatgpt",
				"openai", "anthropic", "modelo de lenguaje", "generative ai",
			}},
			{TechReleaseUpdate, []string{
				"lanza", "lanzamiento", "actualización", "update", "release",
				"nueva versión", "v2", "v3", "beta", "ga ", "general availability",
			}},
			{TechToolDiscovery, []string{
				"herramienta", "tool", "descubrimiento", "nuevo producto",
				"startup lanza", "plataforma", "software", "app ",
			}},
			{TechResearch, []string{
				"investigación", "research", "estudio", "paper", "paper publicado",
				"universidad", "laboratorio", "mit ", "stanford", "nature", "science",
			}},
			{TechStartups, []string{
				"startup", "seed", "serie a", "serie b", "funding", "financiación",
				"venture", "aceleradora", "incubadora", "unicornio",
			}},
			{TechBigTech, []string{
				"google", "microsoft", "apple", "amazon", "meta", "facebook",
				"alphabet", "nvidia", "tesla", "netflix",
			}},
			{TechSecurity, []string{
				"cve", "vulnerability", "vulnerabilidad", "patch", "exploit",
				"zero-day", "zeroday", "seguridad", "security", "hack", "ransomware",
			}},
			{TechPolicyEthics, []string{
				"regulación", "regulation", "ética", "ethics", "privacy",
				"privacidad", "gdpr", "antitrust", "competencia", "ley ",
			}},
		},
	}
}

// Classify returns the tech category for the given title and summary.
func (h *HintClassifier) Classify(title, summary string) string {
	text := strings.ToLower(title + " " + summary)
	for _, g := range h.groups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				return g.category
			}
		}
	}
	return h.fallback
}

// wordRune reports whether r belongs inside a token. Accented vowels and
// ñ count as word runes so Spanish words like "metió" stay whole.
func wordRune(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ñ':
		return true
	}
	return false
}

// splitWords tokenizes lowercased text into words of three or more runes.
func splitWords(text string) []string {
	var words []string
	for _, w := range strings.FieldsFunc(text, func(r rune) bool { return !wordRune(r) }) {
		if utf8.RuneCountInString(w) >= 3 {
			words = append(words, w)
		}
	}
	return words
}

// tagTerms are the known tech terms and vendor names worth surfacing as tags.
var tagTerms = map[string]bool{
	"ai": true, "ia": true, "ml": true, "llm": true, "gpt": true,
	"startup": true, "tech": true, "software": true, "data": true,
	"cloud": true, "saas": true, "api": true, "blockchain": true,
	"crypto": true, "automation": true, "robot": true, "drone": true,
	"ar": true, "vr": true, "iot": true,
	"openai": true, "anthropic": true, "google": true, "microsoft": true,
	"meta": true, "nvidia": true,
}

// ExtractTags returns up to eight comma-joined tags found in title and
// summary, in first-occurrence order so repeated calls agree.
func ExtractTags(title, summary string) string {
	text := strings.ToLower(title + " " + summary)
	seen := make(map[string]bool)
	var tags []string
	for _, w := range splitWords(text) {
		if !tagTerms[w] || seen[w] {
			continue
		}
		seen[w] = true
		tags = append(tags, w)
		if len(tags) >= 8 {
			break
		}
	}
	return strings.Join(tags, ",")
}

// highValueKeywords mark stories the tech audience cares most about.
var highValueKeywords = []string{
	"inteligencia artificial", "ia ", " ai ", "machine learning", "llm", "gpt",
}

// RelevanceScore computes a 0-100 relevance score for a tech item from its
// text and already-assigned category. Baseline 50, boosted for the
// categories and keywords the audience values, clamped to the range.
func RelevanceScore(title, summary, category string) int {
	score := 50
	text := strings.ToLower(title + " " + summary)

	switch category {
	case TechAIML:
		score += 25
	case TechReleaseUpdate, TechToolDiscovery:
		score += 15
	case TechResearch:
		score += 10
	}

	for _, kw := range highValueKeywords {
		if strings.Contains(text, kw) {
			score += 15
			break
		}
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
