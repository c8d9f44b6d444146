package models

// FeedbackComment is a single free-text answer pulled off the feedback topic.
type FeedbackComment struct {
	CommentID string `json:"comment_id"`
	EventID   string `json:"event_id"`
	Text      string `json:"text"`
}

// LexiconUpdate carries dynamically edited word-list entries published by the
// admin surface. Entries override or extend the built-in lexicon.
type LexiconUpdate struct {
	Entries []LexiconEntryInput `json:"entries"`
}

// LexiconEntryInput is the wire form of one editable lexicon entry.
type LexiconEntryInput struct {
	Word      string  `json:"word"`
	Sentiment string  `json:"sentiment"`
	Weight    float64 `json:"weight"`
	Language  string  `json:"language"`
}
