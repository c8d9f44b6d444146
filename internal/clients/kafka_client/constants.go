package kafka_client

import "time"

const (
	KAFKA_TOPIC_FEEDBACK_COMMENTS = "feedback-comments" // raw free-text answers from the feedback forms
	KAFKA_TOPIC_SENTIMENT_RESULTS = "sentiment-results" // scored comments ready for reporting
	KAFKA_TOPIC_LEXICON_UPDATES   = "lexicon-updates"   // operator-pushed lexicon entries for hot reload
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
