package main

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/campuspulse/sentilex/config"
	"github.com/campuspulse/sentilex/internal/analyzer"
	"github.com/campuspulse/sentilex/internal/clients"
	"github.com/campuspulse/sentilex/internal/clients/kafka_client"
	"github.com/campuspulse/sentilex/internal/clients/kafka_client/consumers"
	"github.com/campuspulse/sentilex/internal/db"
	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/lexicon"
	"github.com/campuspulse/sentilex/internal/logging"
	"github.com/campuspulse/sentilex/internal/monitoring"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitKafkaProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseKafkaProducer()

	clients.InitValkey()
	defer clients.CloseValkey()

	db.InitDynamoDB()

	store := lexicon.NewStore()
	eng := engine.New(store, engine.DefaultParams())

	primaryClient := clients.GetAnalyzerClient()
	primaryHealthy := &atomic.Bool{}
	primaryHealthy.Store(true)
	go monitoring.MonitorAnalyzerHealth(ctx, primaryClient, primaryHealthy)

	a := analyzer.New(eng, analyzer.Options{
		Primary:        primaryClient,
		PrimaryHealthy: primaryHealthy,
		LowLatency:     os.Getenv("LOW_LATENCY_MODE") == "true",
	})

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_FEEDBACK_COMMENTS, consumers.NewFeedbackConsumer(a))
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_LEXICON_UPDATES, consumers.NewLexiconConsumer(store))

	if err := kafka_client.StartConsumer(ctx); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
