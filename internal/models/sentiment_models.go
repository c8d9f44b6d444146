package models

// Sentiment is the label assigned to a piece of feedback text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// AnalysisResult is the outcome of scoring a single comment. It is immutable
// once produced and always returned by value.
type AnalysisResult struct {
	Sentiment     Sentiment `json:"sentiment"`
	Confidence    float64   `json:"confidence"`
	PositiveScore float64   `json:"positive_score"`
	NegativeScore float64   `json:"negative_score"`
	TotalScore    float64   `json:"total_score"`
	Method        string    `json:"method"`
}

// SentimentTally is the per-label slice of an aggregate breakdown.
type SentimentTally struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SentimentBreakdown aggregates many analysis results. Percentages sum to
// 100 (modulo rounding) over the analyzed set; an empty set yields all zeros.
type SentimentBreakdown struct {
	Positive SentimentTally `json:"positive"`
	Neutral  SentimentTally `json:"neutral"`
	Negative SentimentTally `json:"negative"`
}

// CommentParts is a comment regrouped into sentence blocks by polarity.
type CommentParts struct {
	PositivePart string `json:"positive_part"`
	NegativePart string `json:"negative_part"`
	NeutralPart  string `json:"neutral_part"`
}

// AnalyzedComment pairs a comment with its analysis, used in reports and in
// the worker's result stream.
type AnalyzedComment struct {
	CommentID string         `json:"comment_id,omitempty"`
	EventID   string         `json:"event_id,omitempty"`
	Text      string         `json:"text"`
	Result    AnalysisResult `json:"result"`
	Parts     CommentParts   `json:"parts"`
}

// Report is the qualitative report over a set of comments.
type Report struct {
	Summary     SentimentBreakdown              `json:"summary"`
	Categorized map[Sentiment][]AnalyzedComment `json:"categorized_comments"`
	Total       int                             `json:"total_feedbacks"`
	Insight     string                          `json:"insight,omitempty"`
}
