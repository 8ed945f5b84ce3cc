// Package relevance gates ingested content with deny/allow keyword filters.
// The gate is a pure function over lowercased substring membership; the two
// shipped profiles carry the editorial keyword lists for each vertical.
package relevance

import (
	"strings"

	"newsstudio/internal/core"
)

// Passes checks title, summary and url against the guardrail configuration.
// Deny keywords always win. When the profile is strict, at least one allow
// keyword must also be present. An empty title never passes.
func Passes(title string, cfg core.GuardrailConfig, summary, url string) bool {
	if title == "" {
		return false
	}
	text := strings.ToLower(title + " " + summary + " " + url)
	for _, kw := range cfg.DenyKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}
	if cfg.StrictRequireAllow {
		for _, kw := range cfg.AllowKeywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
	return true
}
