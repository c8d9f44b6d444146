package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/campuspulse/sentilex/internal/analyzer"
	"github.com/campuspulse/sentilex/internal/clients"
	"github.com/campuspulse/sentilex/internal/clients/kafka_client"
	"github.com/campuspulse/sentilex/internal/clients/kafka_client/utils"
	"github.com/campuspulse/sentilex/internal/db"
	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/models"
	batching "github.com/campuspulse/sentilex/internal/utils"
)

var resultsBatchBuffer = batching.NewBatchBuffer[models.AnalyzedComment]()

// ResultsSink is where a flushed batch of scored comments goes: the results
// topic plus the comments and breakdown tables.
type ResultsSink interface {
	Publish(eventID string, comments []models.AnalyzedComment) error
	StoreComments(ctx context.Context, comments []models.AnalyzedComment) error
	EventComments(ctx context.Context, eventID string) ([]models.AnalyzedComment, error)
	StoreBreakdown(ctx context.Context, eventID string, breakdown models.SentimentBreakdown) error
}

// pipelineSink is the production sink: Kafka for streaming, DynamoDB for
// storage.
type pipelineSink struct{}

func (pipelineSink) Publish(eventID string, comments []models.AnalyzedComment) error {
	return kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_SENTIMENT_RESULTS, eventID, comments)
}

func (pipelineSink) StoreComments(ctx context.Context, comments []models.AnalyzedComment) error {
	return db.StoreAnalyzedComments(ctx, comments)
}

func (pipelineSink) EventComments(ctx context.Context, eventID string) ([]models.AnalyzedComment, error) {
	return db.GetCommentsByEvent(ctx, eventID)
}

func (pipelineSink) StoreBreakdown(ctx context.Context, eventID string, breakdown models.SentimentBreakdown) error {
	return db.StoreBreakdown(ctx, eventID, breakdown)
}

// NewFeedbackConsumer returns the handler for the feedback-comments topic.
// Each message carries a batch of raw form answers; scored results flow to
// the results topic and the comments table, and every touched event gets
// its aggregate breakdown recomputed.
func NewFeedbackConsumer(a *analyzer.Analyzer) func(context.Context, *kafka.Consumer) {
	sink := pipelineSink{}

	return func(ctx context.Context, consumer *kafka.Consumer) {
		poller := kafka_client.NewPoller[[]models.FeedbackComment](ctx, consumer)

		slog.Info("[FeedbackConsumer] Listening for messages...")

		ticker := time.NewTicker(kafka_client.BATCH_TIMEOUT)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[FeedbackConsumer] Stopping consumer...")
				flushResults(ctx, sink)
				return
			case <-ticker.C:
				flushResults(ctx, sink)
			default:
				comments, msg, err := poller.Next()
				if err != nil {
					utils.HandleConsumerError(err)
					continue
				}

				valkeyClient := clients.GetValkeyClient()
				for _, comment := range comments {
					if !analyzer.IsEligible(comment.Text) {
						continue
					}
					if valkeyClient.IsProcessed(ctx, comment.CommentID) {
						slog.Debug("[FeedbackConsumer] Skipping already processed comment",
							slog.String("comment_id", comment.CommentID))
						continue
					}

					result := a.Analyze(ctx, comment.Text)
					resultsBatchBuffer.Add(models.AnalyzedComment{
						CommentID: comment.CommentID,
						EventID:   comment.EventID,
						Text:      comment.Text,
						Result:    result,
						Parts:     a.SplitBySentiment(comment.Text),
					})

					if err := valkeyClient.MarkProcessed(ctx, comment.CommentID); err != nil {
						slog.Warn("[FeedbackConsumer] Failed to mark comment processed",
							slog.String("comment_id", comment.CommentID),
							slog.String("error", err.Error()))
					}
				}

				if resultsBatchBuffer.Size() >= kafka_client.BATCH_SIZE {
					flushResults(ctx, sink)
				}

				poller.Commit(msg)
			}
		}
	}
}

// flushResults drains the buffer one event at a time, so the results topic
// stays keyed per event and each event's stored breakdown reflects every
// comment persisted for it so far.
func flushResults(ctx context.Context, sink ResultsSink) {
	if !resultsBatchBuffer.HasData() {
		return
	}

	batch := resultsBatchBuffer.GetAndClear()
	slog.Info("[FeedbackConsumer] Flushing results batch",
		slog.Int("batch_size", len(batch)))

	for eventID, group := range groupByEvent(batch) {
		if err := sink.Publish(eventID, group); err != nil {
			slog.Error("[FeedbackConsumer] Failed to publish results",
				slog.String("event_id", eventID),
				slog.String("error", err.Error()))
		}

		if err := sink.StoreComments(ctx, group); err != nil {
			slog.Error("[FeedbackConsumer] Failed to store results",
				slog.String("event_id", eventID),
				slog.String("error", err.Error()))
			continue
		}

		if err := sink.StoreBreakdown(ctx, eventID, eventBreakdown(ctx, sink, eventID, group)); err != nil {
			slog.Error("[FeedbackConsumer] Failed to store breakdown",
				slog.String("event_id", eventID),
				slog.String("error", err.Error()))
		}
	}
}

// eventBreakdown recomputes the aggregate over everything stored for the
// event; if the lookup fails, the flushed group alone still yields a usable
// partial breakdown.
func eventBreakdown(ctx context.Context, sink ResultsSink, eventID string, group []models.AnalyzedComment) models.SentimentBreakdown {
	comments, err := sink.EventComments(ctx, eventID)
	if err != nil {
		slog.Warn("[FeedbackConsumer] Falling back to batch-only breakdown",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()))
		comments = group
	}

	results := make([]models.AnalysisResult, 0, len(comments))
	for _, c := range comments {
		results = append(results, c.Result)
	}
	return engine.BuildBreakdown(results)
}

func groupByEvent(batch []models.AnalyzedComment) map[string][]models.AnalyzedComment {
	groups := make(map[string][]models.AnalyzedComment)
	for _, comment := range batch {
		groups[comment.EventID] = append(groups[comment.EventID], comment)
	}
	return groups
}
