package engine

import (
	"strings"

	"github.com/campuspulse/sentilex/internal/models"
	"github.com/campuspulse/sentilex/internal/textutil"
)

// SplitBySentiment regroups a comment's sentences into positive, negative,
// and neutral blocks using the per-sentence balance with the looser split
// threshold. Reports quote these blocks separately.
func (e *Engine) SplitBySentiment(text string) models.CommentParts {
	var positive, negative, neutral []string

	for _, sentence := range textutil.SplitSentences(text) {
		var pos, neg float64
		e.scoreWords(textutil.Normalize(sentence), nil, false, &pos, &neg)

		switch balance := pos - neg; {
		case balance > e.params.SplitBalance:
			positive = append(positive, sentence)
		case balance < -e.params.SplitBalance:
			negative = append(negative, sentence)
		default:
			neutral = append(neutral, sentence)
		}
	}

	return models.CommentParts{
		PositivePart: joinSentences(positive),
		NegativePart: joinSentences(negative),
		NeutralPart:  joinSentences(neutral),
	}
}

func joinSentences(sentences []string) string {
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}

// GenerateReport analyzes every non-empty comment and assembles the
// qualitative report: categorized comments, split parts, and the aggregate
// breakdown.
func (e *Engine) GenerateReport(comments []string) models.Report {
	report := models.Report{
		Categorized: map[models.Sentiment][]models.AnalyzedComment{
			models.SentimentPositive: {},
			models.SentimentNeutral:  {},
			models.SentimentNegative: {},
		},
	}

	var results []models.AnalysisResult
	for _, comment := range comments {
		if strings.TrimSpace(comment) == "" {
			continue
		}

		result := e.Analyze(comment)
		analyzed := models.AnalyzedComment{
			Text:   comment,
			Result: result,
			Parts:  e.SplitBySentiment(comment),
		}

		report.Categorized[result.Sentiment] = append(report.Categorized[result.Sentiment], analyzed)
		results = append(results, result)
	}

	report.Total = len(results)
	report.Summary = BuildBreakdown(results)
	return report
}

// BuildBreakdown tallies results into counts and rounded percentages. An
// empty input yields the all-zero breakdown.
func BuildBreakdown(results []models.AnalysisResult) models.SentimentBreakdown {
	var breakdown models.SentimentBreakdown
	if len(results) == 0 {
		return breakdown
	}

	for _, r := range results {
		switch r.Sentiment {
		case models.SentimentPositive:
			breakdown.Positive.Count++
		case models.SentimentNegative:
			breakdown.Negative.Count++
		default:
			breakdown.Neutral.Count++
		}
	}

	total := float64(len(results))
	breakdown.Positive.Percentage = round2(float64(breakdown.Positive.Count) / total * 100)
	breakdown.Neutral.Percentage = round2(float64(breakdown.Neutral.Count) / total * 100)
	breakdown.Negative.Percentage = round2(float64(breakdown.Negative.Count) / total * 100)
	return breakdown
}
