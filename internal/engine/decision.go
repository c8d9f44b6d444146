package engine

import (
	"math"

	"github.com/campuspulse/sentilex/internal/models"
)

// significantScore is the bucket total at which one side of a comment is
// considered strong enough to veto the neutral-indicator branch.
const significantScore = 1.0

// Decision-table confidences.
const (
	confNeutralIndicator = 0.75
	confMixedSentiment   = 0.8
	confContrast         = 0.75
	confDefault          = 0.65
	confBase             = 0.6
	confCeiling          = 0.95
)

// decide combines all signals into the final label. The table is evaluated
// top to bottom, first match wins:
//
//  1. neutral indicator present and both buckets weak   -> neutral
//  2. mixed sentences with criticism or real negatives  -> neutral
//  3. contrast marker next to any scored content        -> neutral
//  4. total at or above the threshold                   -> positive
//  5. total at or below the negated threshold           -> negative
//  6. everything else                                   -> neutral
func (e *Engine) decide(pos, neg float64, neutralHits int, sentences sentenceSummary, contrast bool) models.AnalysisResult {
	total := pos - neg

	result := models.AnalysisResult{
		PositiveScore: round2(pos),
		NegativeScore: round2(neg),
		TotalScore:    round2(total),
		Method:        MethodRules,
	}

	mixed := sentences.positive > 0 && sentences.negative > 0

	switch {
	case neutralHits >= 1 && pos < significantScore && neg < significantScore:
		result.Sentiment = models.SentimentNeutral
		result.Confidence = confNeutralIndicator

	case mixed && (sentences.constructive >= e.params.ConstructiveCutoff || neg >= significantScore):
		result.Sentiment = models.SentimentNeutral
		result.Confidence = confMixedSentiment

	case contrast && (pos > 0 || neg > 0):
		result.Sentiment = models.SentimentNeutral
		result.Confidence = confContrast

	case total >= e.params.DecisionThreshold:
		result.Sentiment = models.SentimentPositive
		result.Confidence = round2(math.Min(confBase+total/10, confCeiling))

	case total <= -e.params.DecisionThreshold:
		result.Sentiment = models.SentimentNegative
		result.Confidence = round2(math.Min(confBase+math.Abs(total)/10, confCeiling))

	default:
		result.Sentiment = models.SentimentNeutral
		result.Confidence = confDefault
	}

	return result
}
