package engine

import (
	"github.com/campuspulse/sentilex/internal/textutil"
)

// sentenceSummary carries the per-sentence signals into the decision table.
type sentenceSummary struct {
	positive     int
	negative     int
	constructive int
}

// analyzeSentences runs a reduced scoring pass (lexicon only, no phrase
// exclusion, no generic fallback) over each sentence and tallies which lean
// positive, which lean negative, and which read as constructive criticism.
func (e *Engine) analyzeSentences(lower string) sentenceSummary {
	var summary sentenceSummary

	for _, sentence := range textutil.SplitSentences(lower) {
		var pos, neg float64
		e.scoreWords(sentence, nil, false, &pos, &neg)

		balance := pos - neg
		switch {
		case balance > e.params.SentenceBalance:
			summary.positive++
		case balance < -e.params.SentenceBalance:
			summary.negative++
		}

		if isConstructive(sentence) {
			summary.constructive++
		}
	}
	return summary
}

// isConstructive reports whether the sentence contains any hedging or
// contrast marker from the constructive-criticism table.
func isConstructive(sentence string) bool {
	for _, pattern := range constructivePatterns {
		if textutil.ContainsBounded(sentence, pattern) {
			return true
		}
	}
	return false
}
