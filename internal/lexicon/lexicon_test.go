package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/sentilex/internal/models"
)

func TestLookupFindsBuiltinWords(t *testing.T) {
	s := NewStore()

	entry, ok := s.Lookup("maganda")
	require.True(t, ok)
	assert.Equal(t, models.SentimentPositive, entry.Sentiment)
	assert.Equal(t, LangTagalog, entry.Language)

	entry, ok = s.Lookup("bad")
	require.True(t, ok)
	assert.Equal(t, models.SentimentNegative, entry.Sentiment)
}

func TestLoadOverridesBuiltin(t *testing.T) {
	s := NewStore()

	accepted := s.Load([]Entry{
		{Word: "maganda", Sentiment: models.SentimentPositive, Weight: 3, Language: LangTagalog},
	})
	require.Equal(t, 1, accepted)

	entry, ok := s.Lookup("maganda")
	require.True(t, ok)
	assert.Equal(t, 3.0, entry.Weight)
}

func TestLoadSkipsMalformedEntries(t *testing.T) {
	s := NewStore()

	accepted := s.Load([]Entry{
		{Word: "", Sentiment: models.SentimentPositive, Weight: 1, Language: LangEnglish},
		{Word: "angry", Sentiment: "furious", Weight: 1, Language: LangEnglish},
		{Word: "heavy", Sentiment: models.SentimentNegative, Weight: 9, Language: LangEnglish},
		{Word: "crisp", Sentiment: models.SentimentPositive, Weight: 1.2, Language: LangEnglish},
	})

	assert.Equal(t, 1, accepted)

	_, ok := s.Lookup("angry")
	assert.False(t, ok)

	entry, ok := s.Lookup("crisp")
	require.True(t, ok)
	assert.Equal(t, 1.2, entry.Weight)
}

func TestLoadNormalizesWordCase(t *testing.T) {
	s := NewStore()

	s.Load([]Entry{
		{Word: "  CrIsP  ", Sentiment: models.SentimentPositive, Weight: 1, Language: LangEnglish},
	})

	_, ok := s.Lookup("crisp")
	assert.True(t, ok)
}

func TestLoadSurvivesSubsequentLoads(t *testing.T) {
	s := NewStore()

	s.Load([]Entry{{Word: "crisp", Sentiment: models.SentimentPositive, Weight: 1, Language: LangEnglish}})
	s.Load([]Entry{{Word: "shaky", Sentiment: models.SentimentNegative, Weight: 1, Language: LangEnglish}})

	_, ok := s.Lookup("crisp")
	assert.True(t, ok)
	_, ok = s.Lookup("shaky")
	assert.True(t, ok)
}

func TestLookupStemFindsInflectedForm(t *testing.T) {
	s := NewStore()

	entry, ok := s.LookupStem("magandang")
	require.True(t, ok)
	assert.Equal(t, "maganda", entry.Word)
}

func TestLookupStemRejectsUnstemmableWord(t *testing.T) {
	s := NewStore()

	_, ok := s.LookupStem("good")
	assert.False(t, ok)
}

func TestPhrasesOrderedLongestFirst(t *testing.T) {
	s := NewStore()

	for _, phrases := range [][]string{s.PositivePhrases(), s.NegativePhrases()} {
		require.NotEmpty(t, phrases)
		for i := 1; i < len(phrases); i++ {
			assert.GreaterOrEqual(t, len(phrases[i-1]), len(phrases[i]))
		}
	}
}

func TestPhraseEntriesNeverEnterWordTable(t *testing.T) {
	s := NewStore()

	s.Load([]Entry{
		{Word: "super duper", Sentiment: models.SentimentPositive, Weight: 2, Language: LangEnglish},
	})

	_, ok := s.Lookup("super duper")
	assert.False(t, ok)
	assert.Contains(t, s.PositivePhrases(), "super duper")
}

func TestParseEntriesMapsWireForm(t *testing.T) {
	entries := ParseEntries([]models.LexiconEntryInput{
		{Word: "lupet", Sentiment: "Positive", Weight: 1.5, Language: "tl"},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, models.SentimentPositive, entries[0].Sentiment)
	assert.Equal(t, LangTagalog, entries[0].Language)
}
