package engine

import (
	"sort"

	"github.com/campuspulse/sentilex/internal/models"
	"github.com/campuspulse/sentilex/internal/textutil"
)

// span is a matched byte range excluded from later word-level scoring.
type span struct {
	start int
	end   int
}

func inSpans(spans []span, offset int) bool {
	for _, s := range spans {
		if offset >= s.start && offset < s.end {
			return true
		}
	}
	return false
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}

type polarizedPhrase struct {
	text      string
	sentiment models.Sentiment
}

// matchPhrases scores every non-overlapping phrase-table occurrence,
// longest phrase first, and returns the matched ranges. A negation marker
// within the lookback window before a match inverts its polarity and
// reduces its weight.
func (e *Engine) matchPhrases(lower string, pos, neg *float64) []span {
	phrases := e.phraseTable()

	var taken []span
	for _, p := range phrases {
		for _, r := range textutil.IndexAllBounded(lower, p.text) {
			if overlaps(taken, r[0], r[1]) {
				continue
			}

			weight := e.params.PhraseWeight
			sentiment := p.sentiment
			if e.negationBefore(lower, r[0]) {
				weight = e.params.NegatedPhraseWeight
				if sentiment == models.SentimentPositive {
					sentiment = models.SentimentNegative
				} else {
					sentiment = models.SentimentPositive
				}
			}

			if sentiment == models.SentimentPositive {
				*pos += weight
			} else {
				*neg += weight
			}
			taken = append(taken, span{start: r[0], end: r[1]})
		}
	}
	return taken
}

// phraseTable merges both polarity tables into one longest-first list so a
// longer phrase always claims its range before any shorter one.
func (e *Engine) phraseTable() []polarizedPhrase {
	posPhr := e.lex.PositivePhrases()
	negPhr := e.lex.NegativePhrases()

	phrases := make([]polarizedPhrase, 0, len(posPhr)+len(negPhr))
	for _, p := range posPhr {
		phrases = append(phrases, polarizedPhrase{text: p, sentiment: models.SentimentPositive})
	}
	for _, p := range negPhr {
		phrases = append(phrases, polarizedPhrase{text: p, sentiment: models.SentimentNegative})
	}

	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i].text) > len(phrases[j].text)
	})
	return phrases
}
