package matchers

import (
	"strings"

	"github.com/bkovac/feedwatch.api/enums"
)

// Keyword pairs a stored keyword value with its matching mode.
type Keyword struct {
	Value string
	Mode  enums.MatchMode
}

// FindMatches returns the stored values of all keywords found in text.
// Matching is case-insensitive. Empty text matches nothing, and empty keyword
// values are skipped: an empty substring would "match" every entry.
func FindMatches(text string, keywords []Keyword) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	textLower := strings.ToLower(text)

	var hits []string
	for _, kw := range keywords {
		needle := strings.ToLower(strings.TrimSpace(kw.Value))
		if needle == "" {
			continue
		}

		var matched bool
		switch kw.Mode {
		case enums.MatchModeExact:
			matched = MatchesWholeWord(textLower, needle)
		default:
			matched = MatchesPartially(textLower, needle)
		}
		if matched {
			hits = append(hits, kw.Value)
		}
	}

	return hits
}
