package content

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var detectorOnce sync.Once
var detector lingua.LanguageDetector

// LanguageTag returns the lowercase ISO 639-1 code of the language the text
// is most likely written in, or "" when detection is inconclusive.
func LanguageTag(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.German,
				lingua.French,
				lingua.Spanish,
				lingua.Portuguese,
				lingua.Russian,
			).
			Build()
	})

	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
