// Package content turns raw feed entry bodies into plain comparable text.
package content

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Normalize strips markup and entities from raw HTML and collapses all
// whitespace runs into single spaces. Empty or whitespace-only input yields
// "". Malformed markup is never an error; whatever text can be salvaged is
// returned.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		// net/html tolerates nearly anything, so this is rare. Fall back to
		// entity decoding only.
		return collapseWhitespace(html.UnescapeString(raw))
	}

	doc.Find("script, style").Remove()
	return collapseWhitespace(doc.Text())
}

// Truncate shortens s to at most n runes, appending "..." when it cuts.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
