// Package insights adds an optional LLM-written narrative paragraph to a
// report. It is best effort: any failure leaves the report unchanged.
package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/campuspulse/sentilex/internal/clients"
	"github.com/campuspulse/sentilex/internal/models"
)

const (
	openAIModel         = openai.GPT4oMini
	openAIRetryAttempts = 3
	maxSampleComments   = 5
)

const systemMessage = `You summarize event feedback for campus organizers.
Given sentiment percentages and sample comments (English and Tagalog mixed),
write one short paragraph highlighting the overall mood and the most common
praise and complaints. Reply with plain text only, no markdown.`

// Enabled reports whether insight generation is configured.
func Enabled() bool {
	return clients.OpenAIEnabled()
}

// AddInsight fills report.Insight in place. Errors are logged, never fatal.
func AddInsight(ctx context.Context, report *models.Report) {
	if !Enabled() || report.Total == 0 {
		return
	}

	messages := buildChatMessage(report)

	var resp openai.ChatCompletionResponse
	var completionErr error

	for i := 0; i < openAIRetryAttempts; i++ {
		start := time.Now()
		resp, completionErr = clients.GetOpenAIClient().Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    openAIModel,
			Messages: messages,
		})
		if completionErr == nil {
			break
		}
		slog.Warn("[Insights] Failed to get a response from OpenAI, retrying...",
			slog.String("error", completionErr.Error()),
			slog.Int("attempt", i+1),
			slog.Duration("elapsed", time.Since(start)))
	}
	if completionErr != nil {
		slog.Warn("[Insights] Giving up on insight generation",
			slog.Int("attempts", openAIRetryAttempts),
			slog.String("error", completionErr.Error()))
		return
	}
	if len(resp.Choices) == 0 {
		slog.Warn("[Insights] OpenAI returned no choices")
		return
	}

	report.Insight = strings.TrimSpace(resp.Choices[0].Message.Content)
}

func buildChatMessage(report *models.Report) []openai.ChatCompletionMessage {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total comments: %d\n", report.Total)
	fmt.Fprintf(&sb, "Positive: %.1f%%, Neutral: %.1f%%, Negative: %.1f%%\n",
		report.Summary.Positive.Percentage,
		report.Summary.Neutral.Percentage,
		report.Summary.Negative.Percentage)

	for _, sentiment := range []models.Sentiment{models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral} {
		comments := report.Categorized[sentiment]
		if len(comments) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\nSample %s comments:\n", sentiment)
		for i, comment := range comments {
			if i >= maxSampleComments {
				break
			}
			fmt.Fprintf(&sb, "- %s\n", comment.Text)
		}
	}

	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemMessage,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: sb.String(),
		},
	}
}
