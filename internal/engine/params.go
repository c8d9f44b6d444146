package engine

// Params are the tunable thresholds of the rule engine. The defaults mirror
// the calibrated production values; they are parameters rather than
// constants because none of them has a derived justification yet and they
// are expected to be re-fit against a labeled corpus.
type Params struct {
	// DecisionThreshold is the |total| score at or beyond which text is
	// classified positive/negative instead of neutral.
	DecisionThreshold float64

	// NegationWindow is how many bytes before a token or phrase are scanned
	// for a negation marker.
	NegationWindow int

	// ConstructiveCutoff is the number of constructive-criticism sentences
	// that tips a mixed comment to neutral.
	ConstructiveCutoff int

	// SentenceBalance is the per-sentence |positive - negative| balance that
	// counts a sentence as positive or negative.
	SentenceBalance float64

	// SplitBalance is the looser balance used when regrouping sentences
	// into positive/negative report parts.
	SplitBalance float64

	// PhraseWeight and NegatedPhraseWeight score a phrase-table hit and a
	// negated phrase-table hit respectively.
	PhraseWeight        float64
	NegatedPhraseWeight float64

	// IntensifierBoost and DiminisherDamp scale a token's weight when one of
	// the two preceding tokens modulates it.
	IntensifierBoost float64
	DiminisherDamp   float64
}

// DefaultParams returns the calibrated defaults.
func DefaultParams() Params {
	return Params{
		DecisionThreshold:   0.7,
		NegationWindow:      20,
		ConstructiveCutoff:  2,
		SentenceBalance:     0.5,
		SplitBalance:        0.3,
		PhraseWeight:        2.5,
		NegatedPhraseWeight: 2.0,
		IntensifierBoost:    2.0,
		DiminisherDamp:      0.5,
	}
}
