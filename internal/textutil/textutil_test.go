package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeOffsets(t *testing.T) {
	tokens := Tokenize("ang ganda!")

	assert.Len(t, tokens, 2)
	assert.Equal(t, Token{Text: "ang", Start: 0, End: 3}, tokens[0])
	assert.Equal(t, Token{Text: "ganda", Start: 4, End: 9}, tokens[1])
}

func TestTokenizeKeepsApostrophes(t *testing.T) {
	tokens := Tokenize("it's di ko bet")

	assert.Equal(t, "it's", tokens[0].Text)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Nil(t, Tokenize("!!! ..."))
}

func TestContainsBoundedRejectsEmbeddedMatch(t *testing.T) {
	assert.False(t, ContainsBounded("okay", "ok"))
	assert.True(t, ContainsBounded("ok lang", "ok"))
	assert.True(t, ContainsBounded("sobra, ok naman", "ok"))
}

func TestIndexAllBoundedFindsEveryOccurrence(t *testing.T) {
	ranges := IndexAllBounded("ok talaga ok", "ok")

	assert.Equal(t, [][2]int{{0, 2}, {10, 12}}, ranges)
}

func TestSplitSentencesTreatsTerminatorsUniformly(t *testing.T) {
	sentences := SplitSentences("Great event! Was it worth it? Yes... ")

	assert.Equal(t, []string{"Great event", "Was it worth it", "Yes"}, sentences)
}

func TestStemStripsPrefixAndSuffix(t *testing.T) {
	assert.Equal(t, "anda", Stem("magandang"))
	assert.Equal(t, "tawa", Stem("nakakatawa"))
}

func TestStemLeavesShortWordsAlone(t *testing.T) {
	assert.Equal(t, "okay", Stem("okay"))
	assert.Equal(t, "mga", Stem("mga"))
}

func TestStemNeverShrinksBelowMinimum(t *testing.T) {
	// Stripping "pagka" would leave "in"; only the suffix applies.
	assert.Equal(t, "pagka", Stem("pagkain"))
}

func TestSanitizeStripsMarkdown(t *testing.T) {
	assert.Equal(t, "great event", Sanitize("[great](https://example.com) event"))
}

func TestSanitizeDropsBareURLs(t *testing.T) {
	out := Sanitize("see http://example.com/details for more")

	assert.NotContains(t, out, "example.com")
	assert.Contains(t, out, "see")
}

func TestNormalizeLowercases(t *testing.T) {
	assert.Equal(t, "maganda ang event", Normalize("MaGanda ANG Event"))
}
