// Package compact reduces long article text into bounded blocks without ever
// cutting mid-word or mid-sentence: sentence splitting, boundary-safe
// truncation, key-sentence extraction and caption block composition.
// All lengths are counted in runes so accented text is measured correctly.
package compact

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// sentenceSeps are the boundaries the truncator is allowed to cut at.
var sentenceSeps = []string{". ", "! ", "? "}

// danglingWords must never end a truncated fragment.
var danglingWords = map[string]bool{
	"a": true, "de": true, "en": true, "y": true, "o": true, "u": true,
	"con": true, "por": true, "para": true, "al": true, "del": true,
	"un": true, "una": true,
}

var numberPattern = regexp.MustCompile(`\d+[.,]?\d*\s*%|\d+[.,]?\d*`)

// SplitSentences splits text into sentences, keeping trailing punctuation.
// A sentence ends at '.', '!' or '?' followed by whitespace.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		if i+1 >= len(runes) || !isSpace(runes[i+1]) {
			continue
		}
		s := strings.TrimSpace(string(runes[start : i+1]))
		if s != "" {
			out = append(out, s)
		}
		// Skip the whitespace run.
		j := i + 1
		for j < len(runes) && isSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		s := strings.TrimSpace(string(runes[start:]))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

// TruncateAtSentence shortens text to at most maxChars runes, cutting at a
// sentence boundary when one sits at least 10 runes in or past the midpoint,
// otherwise at the last word boundary. The kept fragment never ends with a
// dangling connective like "a" or "de".
func TruncateAtSentence(text string, maxChars int) string {
	if maxChars < 0 {
		maxChars = 0
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	truncated := string(runes[:maxChars])
	for _, sep := range sentenceSeps {
		last := strings.LastIndex(truncated, sep)
		if last < 0 {
			continue
		}
		pos := utf8.RuneCountInString(truncated[:last])
		if pos >= 10 || pos > maxChars/2 {
			return strings.TrimRight(truncated[:last+len(sep)], " \t\n\r")
		}
	}
	for {
		lastSpace := strings.LastIndex(truncated, " ")
		if lastSpace <= 0 {
			break
		}
		result := strings.TrimRight(truncated[:lastSpace], " \t\n\r")
		fields := strings.Fields(result)
		lastWord := ""
		if len(fields) > 0 {
			lastWord = fields[len(fields)-1]
		}
		if !danglingWords[strings.ToLower(lastWord)] {
			return result
		}
		truncated = result
	}
	return strings.TrimRight(truncated, " \t\n\r")
}

type scoredSentence struct {
	score int
	text  string
}

// ExtractKeySentences returns up to maxSentences complete sentences that fit
// in maxChars, in importance order. The title is a candidate with top
// priority when it fits; sentences carrying numbers outrank plain ones;
// near-duplicates are filtered by prefix containment.
func ExtractKeySentences(title, cleaned string, maxChars, maxSentences int) []string {
	var candidates []scoredSentence

	titleClean := strings.TrimSpace(title)
	if titleClean != "" && utf8.RuneCountInString(titleClean) <= maxChars && !strings.HasSuffix(titleClean, "…") {
		candidates = append(candidates, scoredSentence{2, titleClean})
	}

	for _, s := range SplitSentences(cleaned) {
		s = strings.TrimSpace(s)
		n := utf8.RuneCountInString(s)
		if n < 15 || n > maxChars {
			continue
		}
		if overlapsAny(s, candidates) {
			continue
		}
		score := 1
		if numberPattern.MatchString(s) {
			score = 2
		}
		candidates = append(candidates, scoredSentence{score, s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return utf8.RuneCountInString(candidates[i].text) > utf8.RuneCountInString(candidates[j].text)
	})

	seen := make(map[string]bool)
	var result []string
	for _, c := range candidates {
		key := runePrefix(c.text, 40)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, c.text)
		if len(result) >= maxSentences {
			break
		}
	}
	return result
}

// overlapsAny reports whether s and an existing candidate share a 25-rune
// leading fragment in either direction.
func overlapsAny(s string, candidates []scoredSentence) bool {
	sPrefix := runePrefix(s, 25)
	for _, c := range candidates {
		if strings.Contains(c.text, sPrefix) || strings.Contains(s, runePrefix(c.text, 25)) {
			return true
		}
	}
	return false
}

func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ComposeSlideBody picks the first bullet (or the fallback when there is
// none) and bounds it to maxChars without a mid-sentence cut.
func ComposeSlideBody(bullets []string, fallback string, maxChars int) string {
	s := fallback
	if len(bullets) > 0 {
		s = bullets[0]
	}
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	return TruncateAtSentence(s, maxChars)
}

// ComposeCaptionBlocks assembles a caption from hook, up to three fact
// bullets, a reading line, a CTA and a source line, joined by blank lines.
// When the result exceeds maxTotal the middle blocks are shortened first,
// splitting the remaining budget between facts and reading.
func ComposeCaptionBlocks(hook string, bullets []string, lectura, cta, source string, maxTotal int) string {
	sourceLine := "Fuente: " + source

	bulletBlock := ""
	if len(bullets) > 0 {
		bulletBlock = strings.Join(bullets[:min(3, len(bullets))], "\n")
	}
	blocks := []string{hook, bulletBlock, lectura, cta, sourceLine}
	var parts []string
	for _, b := range blocks {
		if t := strings.TrimSpace(b); t != "" {
			parts = append(parts, t)
		}
	}
	caption := strings.Join(parts, "\n\n")
	if utf8.RuneCountInString(caption) <= maxTotal {
		return caption
	}

	// Shorten from the middle: the hook, CTA and source line keep their
	// length; facts and reading share what remains minus a joining margin.
	target := maxTotal - utf8.RuneCountInString(hook) - utf8.RuneCountInString(cta) -
		utf8.RuneCountInString(sourceLine) - 30
	if len(bullets) > 0 {
		bulletText := strings.Join(bullets[:min(2, len(bullets))], "\n")
		if utf8.RuneCountInString(bulletText) > target/2 {
			bulletText = TruncateAtSentence(bulletText, target/2)
		}
		lecturaShort := ""
		if lectura != "" {
			lecturaShort = TruncateAtSentence(lectura, target/2)
		}
		caption = hook + "\n\n" + bulletText + "\n\n" + lecturaShort + "\n\n" + cta + "\n\n" + sourceLine
	} else {
		lecturaShort := ""
		if lectura != "" {
			lecturaShort = TruncateAtSentence(lectura, target)
		}
		caption = hook + "\n\n" + lecturaShort + "\n\n" + cta + "\n\n" + sourceLine
	}

	if utf8.RuneCountInString(caption) > maxTotal {
		return TruncateAtSentence(caption, maxTotal)
	}
	return caption
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
