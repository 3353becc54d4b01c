package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
}

func TestNormalize_StripsTagsAndEntities(t *testing.T) {
	got := Normalize("<b>Sale</b> &amp; more")
	assert.Equal(t, "Sale & more", got)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "&amp;")
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("<p>first\n\n   paragraph</p>\n<p>second</p>")
	assert.Equal(t, "first paragraph second", got)
}

func TestNormalize_DropsScriptAndStyle(t *testing.T) {
	got := Normalize(`<style>p { color: red }</style><p>visible</p><script>alert(1)</script>`)
	assert.Equal(t, "visible", got)
}

func TestNormalize_MalformedMarkup(t *testing.T) {
	// Unclosed and mismatched tags must still yield the salvageable text.
	got := Normalize("<div><b>broken <i>markup</div> trailing")
	assert.Contains(t, got, "broken")
	assert.Contains(t, got, "markup")
	assert.Contains(t, got, "trailing")
}

func TestNormalize_PlainText(t *testing.T) {
	assert.Equal(t, "just plain text", Normalize("just plain text"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 300))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))

	long := strings.Repeat("x", 500)
	got := Truncate(long, 300)
	assert.Len(t, []rune(got), 303)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestLanguageTag_Empty(t *testing.T) {
	assert.Equal(t, "", LanguageTag(""))
	assert.Equal(t, "", LanguageTag("   "))
}

func TestLanguageTag_English(t *testing.T) {
	got := LanguageTag("The quick brown fox jumps over the lazy dog near the river bank")
	assert.Equal(t, "en", got)
}
