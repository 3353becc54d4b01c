package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bkovac/feedwatch.api/enums"
)

func broad(values ...string) []Keyword {
	kws := make([]Keyword, 0, len(values))
	for _, v := range values {
		kws = append(kws, Keyword{Value: v, Mode: enums.MatchModeBroad})
	}
	return kws
}

func TestFindMatches_EmptyText(t *testing.T) {
	assert.Empty(t, FindMatches("", broad("alert", "storm")))
	assert.Empty(t, FindMatches("   \t\n", broad("alert")))
}

func TestFindMatches_EmptyKeywordNeverMatches(t *testing.T) {
	hits := FindMatches("any text at all", broad("", "   "))
	assert.Empty(t, hits)

	hits = FindMatches("storm warning issued", broad("", "storm"))
	assert.Equal(t, []string{"storm"}, hits)
}

func TestFindMatches_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"Alert"}, FindMatches("STORM ALERT issued", broad("Alert")))
	assert.Equal(t, []string{"ALERT"}, FindMatches("storm alert issued", broad("ALERT")))
}

func TestFindMatches_ReturnsStoredValue(t *testing.T) {
	// The canonical (stored) casing comes back, not the text's casing.
	hits := FindMatches("GoLang weekly digest", broad("golang"))
	assert.Equal(t, []string{"golang"}, hits)
}

func TestFindMatches_MultipleKeywords(t *testing.T) {
	hits := FindMatches("storm alert for the coast", broad("alert", "coast", "earthquake"))
	assert.Equal(t, []string{"alert", "coast"}, hits)
}

func TestFindMatches_ExactMode(t *testing.T) {
	keywords := []Keyword{{Value: "cat", Mode: enums.MatchModeExact}}

	assert.Equal(t, []string{"cat"}, FindMatches("my cat sleeps", keywords))
	assert.Empty(t, FindMatches("the catalog is out", keywords))
}

func TestFindMatches_BroadModeMatchesInsideWords(t *testing.T) {
	assert.Equal(t, []string{"cat"}, FindMatches("the catalog is out", broad("cat")))
}
