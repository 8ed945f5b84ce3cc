// Package fetch retrieves article pages over HTTP and extracts readable
// text. Extraction is best-effort: any failure (network, status, parse,
// too little text) yields an empty result, never an error, because feed
// summaries serve as the fallback content upstream.
package fetch

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsstudio/internal/clean"
	"newsstudio/internal/logger"
)

const (
	// maxArticleChars caps extracted article text.
	maxArticleChars = 5000
	// minArticleChars is the floor below which extraction is treated as
	// a miss.
	minArticleChars = 50
	// minContainerChars qualifies a generic content div as the article
	// container.
	minContainerChars = 300

	defaultTimeout = 10 * time.Second
)

// articleSelectors is the cascade tried in order to locate the article
// container.
var articleSelectors = []string{
	"article",
	".article-body",
	".article-content",
	".post-content",
	".entry-content",
	`[role="article"]`,
	"main article",
	".content article",
	"#main article",
}

// removeSelectors are boilerplate elements dropped before text extraction.
var removeSelectors = []string{
	"script", "style", "nav", "header", "footer", "aside", "iframe", "noscript",
}

var contentClassPattern = regexp.MustCompile(`(?i)(content|article|post|entry)`)

// Client fetches article text with a configured user agent and timeout.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient returns a client with the given user agent. A zero timeout
// falls back to the default.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		// http.Client follows redirects by default.
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// ArticleText fetches the page at url and returns its readable text, capped
// at 5000 characters. It returns "" when the page cannot be fetched or
// yields too little text.
func (c *Client) ArticleText(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("article fetch failed", "url", url, "error", err.Error())
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debug("article fetch rejected", "url", url, "status", resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}
	return ExtractText(doc)
}

// ExtractText pulls the article text out of a parsed document: boilerplate
// removal, the selector cascade, then any content-looking div with enough
// text, then the whole body.
func ExtractText(doc *goquery.Document) string {
	for _, sel := range removeSelectors {
		doc.Find(sel).Remove()
	}

	var container *goquery.Selection
	for _, sel := range articleSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			container = s
			break
		}
	}

	if container == nil {
		doc.Find("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
			class, _ := div.Attr("class")
			if !contentClassPattern.MatchString(class) {
				return true
			}
			if len(strings.TrimSpace(div.Text())) > minContainerChars {
				container = div
				return false
			}
			return true
		})
	}

	if container == nil {
		container = doc.Find("body").First()
		if container.Length() == 0 {
			container = doc.Selection
		}
	}

	text := clean.StripTags(container.Text())
	runes := []rune(text)
	if len(runes) > maxArticleChars {
		text = string(runes[:maxArticleChars]) + "..."
	}
	if len([]rune(text)) <= minArticleChars {
		return ""
	}
	return text
}
