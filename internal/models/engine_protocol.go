package models

const (
	EngineActionAnalyzeSingle  = "analyze_single"
	EngineActionGenerateReport = "generate_report"
)

// EngineRequest is the single request/response envelope exchanged with the
// primary analyzer service.
type EngineRequest struct {
	Action   string   `json:"action"`
	Comment  string   `json:"comment,omitempty"`
	Comments []string `json:"comments,omitempty"`
}

// EngineResponse is the envelope returned by the primary analyzer service.
// When Success is true the typed fields are always populated for the
// requested action; otherwise Error carries an explanatory message.
type EngineResponse struct {
	Success    bool                `json:"success"`
	Sentiment  Sentiment           `json:"sentiment,omitempty"`
	Confidence float64             `json:"confidence,omitempty"`
	Result     *AnalysisResult     `json:"result,omitempty"`
	Summary    *SentimentBreakdown `json:"summary,omitempty"`
	Report     *Report             `json:"report,omitempty"`
	Error      string              `json:"error,omitempty"`
}
