package matchers

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchesWholeWord reports whether keyword occurs in text with a word
// boundary on both sides. A boundary is the start or end of the string, or
// any rune that is not a letter, digit, or underscore. Boundary runes are
// decoded as full UTF-8 runes, so a multibyte letter next to an occurrence
// still counts as a word character.
func MatchesWholeWord(text, keyword string) bool {
	for from := 0; from <= len(text); {
		pos := strings.Index(text[from:], keyword)
		if pos == -1 {
			return false
		}
		pos += from
		end := pos + len(keyword)

		before, _ := utf8.DecodeLastRuneInString(text[:pos])
		after, _ := utf8.DecodeRuneInString(text[end:])

		leftOk := pos == 0 || !isWordChar(before)
		rightOk := end == len(text) || !isWordChar(after)
		if leftOk && rightOk {
			return true
		}

		from = pos + 1
	}
	return false
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// MatchesPartially reports whether keyword occurs anywhere in text.
func MatchesPartially(text, keyword string) bool {
	return strings.Contains(text, keyword)
}
