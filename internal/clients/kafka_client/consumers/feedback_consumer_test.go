package consumers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/sentilex/internal/models"
)

type fakeSink struct {
	published   map[string][]models.AnalyzedComment
	stored      []models.AnalyzedComment
	breakdowns  map[string]models.SentimentBreakdown
	lookupErr   error
	storeErr    error
	lookupCalls int
	existing    []models.AnalyzedComment
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		published:  make(map[string][]models.AnalyzedComment),
		breakdowns: make(map[string]models.SentimentBreakdown),
	}
}

func (f *fakeSink) Publish(eventID string, comments []models.AnalyzedComment) error {
	f.published[eventID] = append(f.published[eventID], comments...)
	return nil
}

func (f *fakeSink) StoreComments(_ context.Context, comments []models.AnalyzedComment) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored = append(f.stored, comments...)
	return nil
}

func (f *fakeSink) EventComments(_ context.Context, eventID string) ([]models.AnalyzedComment, error) {
	f.lookupCalls++
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var comments []models.AnalyzedComment
	for _, c := range append(f.existing, f.stored...) {
		if c.EventID == eventID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (f *fakeSink) StoreBreakdown(_ context.Context, eventID string, breakdown models.SentimentBreakdown) error {
	f.breakdowns[eventID] = breakdown
	return nil
}

func scoredComment(commentID, eventID string, sentiment models.Sentiment) models.AnalyzedComment {
	return models.AnalyzedComment{
		CommentID: commentID,
		EventID:   eventID,
		Text:      "text for " + commentID,
		Result:    models.AnalysisResult{Sentiment: sentiment, Confidence: 0.8},
	}
}

func resetBuffer(t *testing.T) {
	t.Helper()
	resultsBatchBuffer.GetAndClear()
}

func TestFlushResultsPublishesPerEvent(t *testing.T) {
	resetBuffer(t)
	sink := newFakeSink()

	resultsBatchBuffer.Add(scoredComment("c1", "ev1", models.SentimentPositive))
	resultsBatchBuffer.Add(scoredComment("c2", "ev2", models.SentimentNegative))
	resultsBatchBuffer.Add(scoredComment("c3", "ev1", models.SentimentNegative))

	flushResults(context.Background(), sink)

	require.Len(t, sink.published, 2)
	assert.Len(t, sink.published["ev1"], 2)
	assert.Len(t, sink.published["ev2"], 1)
	for eventID, group := range sink.published {
		for _, c := range group {
			assert.Equal(t, eventID, c.EventID)
		}
	}
	assert.False(t, resultsBatchBuffer.HasData())
}

func TestFlushResultsWritesPerEventBreakdown(t *testing.T) {
	resetBuffer(t)
	sink := newFakeSink()

	resultsBatchBuffer.Add(scoredComment("c1", "ev1", models.SentimentPositive))
	resultsBatchBuffer.Add(scoredComment("c2", "ev1", models.SentimentNegative))
	resultsBatchBuffer.Add(scoredComment("c3", "ev2", models.SentimentPositive))

	flushResults(context.Background(), sink)

	require.Len(t, sink.breakdowns, 2)

	ev1 := sink.breakdowns["ev1"]
	assert.Equal(t, 1, ev1.Positive.Count)
	assert.Equal(t, 1, ev1.Negative.Count)
	assert.Equal(t, 50.0, ev1.Positive.Percentage)
	assert.Equal(t, 50.0, ev1.Negative.Percentage)

	ev2 := sink.breakdowns["ev2"]
	assert.Equal(t, 1, ev2.Positive.Count)
	assert.Equal(t, 100.0, ev2.Positive.Percentage)
}

func TestFlushResultsAggregatesOverStoredHistory(t *testing.T) {
	resetBuffer(t)
	sink := newFakeSink()
	sink.existing = []models.AnalyzedComment{
		scoredComment("old1", "ev1", models.SentimentPositive),
		scoredComment("old2", "ev1", models.SentimentPositive),
		scoredComment("old3", "ev1", models.SentimentPositive),
	}

	resultsBatchBuffer.Add(scoredComment("c1", "ev1", models.SentimentNegative))

	flushResults(context.Background(), sink)

	assert.Equal(t, 1, sink.lookupCalls)

	breakdown := sink.breakdowns["ev1"]
	assert.Equal(t, 3, breakdown.Positive.Count)
	assert.Equal(t, 1, breakdown.Negative.Count)
	assert.Equal(t, 75.0, breakdown.Positive.Percentage)
	assert.Equal(t, 25.0, breakdown.Negative.Percentage)
}

func TestFlushResultsFallsBackToBatchOnLookupError(t *testing.T) {
	resetBuffer(t)
	sink := newFakeSink()
	sink.lookupErr = errors.New("scan throttled")

	resultsBatchBuffer.Add(scoredComment("c1", "ev1", models.SentimentNegative))

	flushResults(context.Background(), sink)

	breakdown := sink.breakdowns["ev1"]
	assert.Equal(t, 1, breakdown.Negative.Count)
	assert.Equal(t, 100.0, breakdown.Negative.Percentage)
}

func TestFlushResultsSkipsBreakdownWhenStoreFails(t *testing.T) {
	resetBuffer(t)
	sink := newFakeSink()
	sink.storeErr = errors.New("table not found")

	resultsBatchBuffer.Add(scoredComment("c1", "ev1", models.SentimentPositive))

	flushResults(context.Background(), sink)

	assert.Empty(t, sink.breakdowns)
	assert.Len(t, sink.published["ev1"], 1)
}

func TestGroupByEventPreservesOrderWithinEvent(t *testing.T) {
	batch := []models.AnalyzedComment{
		scoredComment("c1", "ev1", models.SentimentPositive),
		scoredComment("c2", "ev2", models.SentimentNeutral),
		scoredComment("c3", "ev1", models.SentimentNegative),
	}

	groups := groupByEvent(batch)

	require.Len(t, groups, 2)
	require.Len(t, groups["ev1"], 2)
	assert.Equal(t, "c1", groups["ev1"][0].CommentID)
	assert.Equal(t, "c3", groups["ev1"][1].CommentID)
}
