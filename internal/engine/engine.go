// Package engine implements the bilingual (English/Tagalog) rule-based
// sentiment scorer. One canonical pipeline serves both the in-process
// fallback path and the standalone analyzer service, so the two can never
// drift apart.
//
// Scoring a single text is a pure, synchronous computation; the only shared
// state is the read-only lexicon store, so one Engine is safe for concurrent
// use by any number of goroutines.
package engine

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/campuspulse/sentilex/internal/lexicon"
	"github.com/campuspulse/sentilex/internal/models"
	"github.com/campuspulse/sentilex/internal/textutil"
)

// Method tags identifying which path produced a result.
const (
	MethodRules  = "bilingual_rules"
	MethodRemote = "remote_engine"
	MethodEmpty  = "empty_text"
)

type Engine struct {
	lex    *lexicon.Store
	vader  *govader.SentimentIntensityAnalyzer
	params Params
}

// New builds an engine over the given lexicon store. The govader analyzer
// is the generic polarity source for tokens absent from both languages.
func New(lex *lexicon.Store, params Params) *Engine {
	return &Engine{
		lex:    lex,
		vader:  govader.NewSentimentIntensityAnalyzer(),
		params: params,
	}
}

// EmptyResult is the documented zero-confidence result for empty or
// whitespace-only input.
func EmptyResult() models.AnalysisResult {
	return models.AnalysisResult{
		Sentiment: models.SentimentNeutral,
		Method:    MethodEmpty,
	}
}

// Analyze scores a single comment. It never fails on well-formed string
// input; empty or whitespace-only text short-circuits to the zero-confidence
// neutral result.
func (e *Engine) Analyze(text string) models.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return EmptyResult()
	}

	clean := textutil.Sanitize(text)
	if clean == "" {
		return EmptyResult()
	}

	lower := textutil.Normalize(clean)

	var pos, neg float64
	matched := e.matchPhrases(lower, &pos, &neg)

	neutralHits := countNeutralIndicators(lower)
	sentences := e.analyzeSentences(lower)

	e.scoreWords(lower, matched, true, &pos, &neg)

	if emo := emoticonScore(text); emo > 0 {
		pos += emo
	} else if emo < 0 {
		neg += -emo
	}

	return e.decide(pos, neg, neutralHits, sentences, containsContrast(lower))
}

// scoreWords scores every token outside the excluded phrase ranges. Lookup
// order is exact word, then stem, then (when generic is set) the govader
// lexicon as a catch-all polarity source. Negation within the lookback
// window flips which bucket a token feeds; one of the two preceding tokens
// may scale its weight.
func (e *Engine) scoreWords(text string, excluded []span, generic bool, pos, neg *float64) {
	tokens := textutil.Tokenize(text)

	for i, tok := range tokens {
		if inSpans(excluded, tok.Start) {
			continue
		}

		mult := e.multiplierFor(tokens, i)
		negated := e.negationBefore(text, tok.Start)

		if entry, ok := e.lex.Lookup(tok.Text); ok {
			e.contribute(entry.Sentiment, entry.Weight*mult, negated, pos, neg)
			continue
		}
		if entry, ok := e.lex.LookupStem(tok.Text); ok {
			e.contribute(entry.Sentiment, entry.Weight*mult, negated, pos, neg)
			continue
		}
		if !generic || negations[tok.Text] {
			continue
		}

		if compound := e.vader.PolarityScores(tok.Text).Compound; compound != 0 {
			sentiment := models.SentimentPositive
			if compound < 0 {
				sentiment = models.SentimentNegative
			}
			e.contribute(sentiment, math.Abs(compound)*mult, negated, pos, neg)
		}
	}
}

// contribute adds weight to the bucket implied by sentiment, flipped when
// the token sits in a negation scope. Neutral entries carry no score.
func (e *Engine) contribute(sentiment models.Sentiment, weight float64, negated bool, pos, neg *float64) {
	switch sentiment {
	case models.SentimentPositive:
		if negated {
			*neg += weight
		} else {
			*pos += weight
		}
	case models.SentimentNegative:
		if negated {
			*pos += weight
		} else {
			*neg += weight
		}
	}
}

// multiplierFor inspects the two tokens before position i. An intensifier
// wins over a diminisher when both appear.
func (e *Engine) multiplierFor(tokens []textutil.Token, i int) float64 {
	lo := i - 2
	if lo < 0 {
		lo = 0
	}
	for _, t := range tokens[lo:i] {
		if intensifiers[t.Text] {
			return e.params.IntensifierBoost
		}
	}
	for _, t := range tokens[lo:i] {
		if diminishers[t.Text] {
			return e.params.DiminisherDamp
		}
	}
	return 1.0
}

// negationBefore scans the window preceding byte offset start for a
// negation marker.
func (e *Engine) negationBefore(text string, start int) bool {
	lo := start - e.params.NegationWindow
	if lo < 0 {
		lo = 0
	}
	for _, t := range textutil.Tokenize(text[lo:start]) {
		if negations[t.Text] {
			return true
		}
	}
	return false
}

// countNeutralIndicators counts how many neutral indicators appear in the
// text, one hit per distinct indicator.
func countNeutralIndicators(lower string) int {
	hits := 0
	for _, indicator := range neutralIndicators {
		if textutil.ContainsBounded(lower, indicator) {
			hits++
		}
	}
	return hits
}

// containsContrast reports whether any contrast marker appears as a word.
func containsContrast(lower string) bool {
	for _, t := range textutil.Tokenize(lower) {
		if contrastWords[t.Text] {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
