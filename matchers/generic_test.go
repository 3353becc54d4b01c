package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesWholeWord(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{"single word", "alert", "alert", true},
		{"word at start", "alert issued today", "alert", true},
		{"word at end", "today we issue an alert", "alert", true},
		{"word in middle", "storm alert issued", "alert", true},
		{"surrounded by punctuation", "(alert)", "alert", true},
		{"before comma", "alert, then calm", "alert", true},
		{"after period", "done. alert next", "alert", true},
		{"empty text", "", "alert", false},
		{"prefix of longer word", "alerting the town", "alert", false},
		{"suffix of longer word", "unalert drivers", "alert", false},
		{"inside longer word", "the catalog is out", "cat", false},
		{"underscore is a word char", "an alert_log entry", "alert", false},
		{"digit is a word char", "alert7 fired", "alert", false},
		{"later occurrence stands alone", "the application has an app", "app", true},
		{"no standalone occurrence", "application apps", "app", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesWholeWord(tt.text, tt.keyword))
		})
	}
}

func TestMatchesWholeWord_MultibyteBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{"multibyte letter on the left", "écat", "cat", false},
		{"multibyte letter on the right", "caté", "cat", false},
		{"multibyte letters on both sides", "écaté", "cat", false},
		{"space before multibyte word", "cat éblouissant", "cat", true},
		{"between multibyte words", "мышь cat мышь", "cat", true},
		{"multibyte keyword standalone", "le café noir", "café", true},
		{"multibyte keyword inside a word", "les cafés", "café", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesWholeWord(tt.text, tt.keyword))
		})
	}
}

func TestMatchesPartially(t *testing.T) {
	assert.True(t, MatchesPartially("application", "app"))
	assert.True(t, MatchesPartially("unhappy", "happy"))
	assert.True(t, MatchesPartially("hello world", "world"))
	assert.False(t, MatchesPartially("hello", "world"))
	assert.False(t, MatchesPartially("", "app"))
}
