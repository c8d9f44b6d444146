package consumers

import (
	"context"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/campuspulse/sentilex/internal/clients/kafka_client"
	"github.com/campuspulse/sentilex/internal/clients/kafka_client/utils"
	"github.com/campuspulse/sentilex/internal/lexicon"
	"github.com/campuspulse/sentilex/internal/models"
)

// NewLexiconConsumer returns the handler for the lexicon-updates topic.
// Valid entries merge into the live store; malformed ones are skipped so a
// bad update never blocks the topic.
func NewLexiconConsumer(store *lexicon.Store) func(context.Context, *kafka.Consumer) {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		poller := kafka_client.NewPoller[models.LexiconUpdate](ctx, consumer)

		slog.Info("[LexiconConsumer] Listening for messages...")

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[LexiconConsumer] Stopping consumer...")
				return
			default:
				update, msg, err := poller.Next()
				if err != nil {
					utils.HandleConsumerError(err)
					continue
				}

				loaded := store.Load(lexicon.ParseEntries(update.Entries))
				slog.Info("[LexiconConsumer] Applied lexicon update",
					slog.Int("received", len(update.Entries)),
					slog.Int("loaded", loaded))

				poller.Commit(msg)
			}
		}
	}
}
