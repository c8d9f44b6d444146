package kafka_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Poller reads one topic's messages and hands back decoded payloads of
// type T. Transient read errors retry up to MAX_RETRIES before surfacing;
// a dead broker set aborts immediately. Poison messages (payloads that do
// not decode as T) are committed and skipped so they can never wedge the
// partition.
type Poller[T any] struct {
	consumer *kafka.Consumer
	ctx      context.Context
}

func NewPoller[T any](ctx context.Context, consumer *kafka.Consumer) *Poller[T] {
	return &Poller[T]{consumer: consumer, ctx: ctx}
}

// Next blocks until a decodable message arrives, the context ends, or the
// retry budget is spent. The returned message is the one to Commit once the
// payload has been fully handled.
func (p *Poller[T]) Next() (T, *kafka.Message, error) {
	var payload T
	if p.consumer == nil {
		return payload, nil, errors.New("[KafkaPoller] consumer has not been initialized")
	}

	for attempt := 0; attempt < MAX_RETRIES; {
		select {
		case <-p.ctx.Done():
			slog.Warn("[KafkaPoller] Context cancelled, stopping poll")
			return payload, nil, p.ctx.Err()
		default:
		}

		msg, err := p.consumer.ReadMessage(-1)
		if err != nil {
			if kafkaErr, ok := err.(kafka.Error); ok && kafkaErr.Code() == kafka.ErrAllBrokersDown {
				slog.Error("[KafkaPoller] All Kafka brokers are down. Aborting")
				return payload, nil, err
			}

			attempt++
			slog.Warn("[KafkaPoller] Failed to read message, retrying...",
				slog.Int("attempt", attempt),
				slog.Int("max_retries", MAX_RETRIES),
				slog.String("error", err.Error()))
			time.Sleep(RETRY_DELAY)
			continue
		}

		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			slog.Warn("[KafkaPoller] Skipping undecodable message",
				slog.Int64("offset", int64(msg.TopicPartition.Offset)),
				slog.String("error", err.Error()))
			p.Commit(msg)
			var zero T
			payload = zero
			continue
		}
		return payload, msg, nil
	}

	return payload, nil, errors.New("[KafkaPoller] failed to read message after retries")
}

// Commit marks msg handled. Transient failures retry; a dead broker set or
// a cancelled context aborts.
func (p *Poller[T]) Commit(msg *kafka.Message) error {
	for attempt := 1; ; attempt++ {
		_, err := p.consumer.CommitMessage(msg)
		if err == nil {
			slog.Debug("[KafkaPoller] Committed offset",
				slog.Int64("partition", int64(msg.TopicPartition.Partition)),
				slog.Int64("offset", int64(msg.TopicPartition.Offset)))
			return nil
		}

		if kafkaErr, ok := err.(kafka.Error); ok && kafkaErr.Code() == kafka.ErrAllBrokersDown {
			slog.Error("[KafkaPoller] All Kafka brokers are down. Aborting commit")
			return err
		}
		if attempt >= MAX_RETRIES || p.ctx.Err() != nil {
			return fmt.Errorf("[KafkaPoller] failed to commit offset %d after %d attempts: %w",
				int64(msg.TopicPartition.Offset), attempt, err)
		}

		slog.Warn("[KafkaPoller] Failed to commit offset, retrying...",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		time.Sleep(RETRY_DELAY)
	}
}
