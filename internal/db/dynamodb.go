package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/campuspulse/sentilex/internal/clients"
	"github.com/campuspulse/sentilex/internal/models"
)

const (
	ANALYZED_COMMENTS_TABLE_NAME = "AnalyzedComments"
	BREAKDOWNS_TABLE_NAME        = "SentimentBreakdowns"
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreAnalyzedComments persists scored comments in write batches of 25,
// retrying unprocessed items with backoff.
func StoreAnalyzedComments(ctx context.Context, comments []models.AnalyzedComment) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(comments); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:

			end := i + maxBatchSize
			if end > len(comments) {
				end = len(comments)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, comment := range comments[i:end] {
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: commentToDynamoDBItem(comment),
					},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					ANALYZED_COMMENTS_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write analyzed comments: %w", err)
			}

			retryCount := 0
			backoff := 500 * time.Millisecond
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoff)
				backoff *= 2

				slog.Warn("[DynamoDB] Retrying unprocessed comment items...",
					slog.Int("attempt", retryCount+1),
					slog.Int("remaining", len(out.UnprocessedItems[ANALYZED_COMMENTS_TABLE_NAME])))

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					return fmt.Errorf("[DynamoDB] Retry error %w", err)
				}

				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some comment items failed after retries",
					slog.Int("remaining", len(out.UnprocessedItems[ANALYZED_COMMENTS_TABLE_NAME])))
			}
		}
	}

	slog.Info("[DynamoDB] Successfully stored analyzed comments",
		slog.Int("count", len(comments)))
	return nil
}

func commentToDynamoDBItem(comment models.AnalyzedComment) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["comment_id"] = &types.AttributeValueMemberS{Value: comment.CommentID}
	item["event_id"] = &types.AttributeValueMemberS{Value: comment.EventID}
	item["text"] = &types.AttributeValueMemberS{Value: comment.Text}
	item["sentiment"] = &types.AttributeValueMemberS{Value: string(comment.Result.Sentiment)}
	item["confidence"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", comment.Result.Confidence)}
	item["positive_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", comment.Result.PositiveScore)}
	item["negative_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", comment.Result.NegativeScore)}
	item["total_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", comment.Result.TotalScore)}
	item["method"] = &types.AttributeValueMemberS{Value: comment.Result.Method}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}

	return item
}

// StoreBreakdown upserts the aggregate breakdown for one event.
func StoreBreakdown(ctx context.Context, eventID string, breakdown models.SentimentBreakdown) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	item, err := attributevalue.MarshalMap(breakdown)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal breakdown: %w", err)
	}
	item["event_id"] = &types.AttributeValueMemberS{Value: eventID}
	item["updated_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(BREAKDOWNS_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store breakdown: %w", err)
	}

	slog.Info("[DynamoDB] Stored breakdown", slog.String("event_id", eventID))
	return nil
}

type storedComment struct {
	CommentID     string  `dynamodbav:"comment_id"`
	EventID       string  `dynamodbav:"event_id"`
	Text          string  `dynamodbav:"text"`
	Sentiment     string  `dynamodbav:"sentiment"`
	Confidence    float64 `dynamodbav:"confidence"`
	PositiveScore float64 `dynamodbav:"positive_score"`
	NegativeScore float64 `dynamodbav:"negative_score"`
	TotalScore    float64 `dynamodbav:"total_score"`
	Method        string  `dynamodbav:"method"`
}

// GetCommentsByEvent loads every stored comment for an event.
func GetCommentsByEvent(ctx context.Context, eventID string) ([]models.AnalyzedComment, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	input := &dynamodb.ScanInput{
		TableName:        aws.String(ANALYZED_COMMENTS_TABLE_NAME),
		FilterExpression: aws.String("event_id = :event_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":event_id": &types.AttributeValueMemberS{Value: eventID},
		},
	}

	var comments []models.AnalyzedComment
	paginator := dynamodb.NewScanPaginator(dbClient, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for comments failed: %w", err)
		}

		var page []storedComment
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal comment page", slog.String("error", err.Error()))
			return nil, err
		}

		for _, stored := range page {
			comments = append(comments, models.AnalyzedComment{
				CommentID: stored.CommentID,
				EventID:   stored.EventID,
				Text:      stored.Text,
				Result: models.AnalysisResult{
					Sentiment:     models.Sentiment(stored.Sentiment),
					Confidence:    stored.Confidence,
					PositiveScore: stored.PositiveScore,
					NegativeScore: stored.NegativeScore,
					TotalScore:    stored.TotalScore,
					Method:        stored.Method,
				},
			})
		}
	}

	slog.Info("[DynamoDB] Successfully retrieved comments",
		slog.String("event_id", eventID),
		slog.Int("count", len(comments)))
	return comments, nil
}
