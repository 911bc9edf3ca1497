// Worker consumes ledger events from Kafka and pushes them to Loki.
// Set KAFKA_BROKERS, LEDGER_EVENTS_TOPIC, KAFKA_GROUP_ID, and LOKI_URL.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"collective-ledger/internal/config"
	"collective-ledger/internal/observability"
	"collective-ledger/internal/telemetry/consumer"
	"collective-ledger/internal/telemetry/loki"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	observability.InitLogger("ledger-worker", cfg.LogLevel, cfg.LogFormat)

	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal().Msg("worker: KAFKA_BROKERS is required")
	}
	if cfg.LokiURL == "" {
		log.Fatal().Msg("worker: LOKI_URL is required")
	}

	reader := consumer.NewKafkaReader(consumer.Config{
		Brokers: brokers,
		Topic:   cfg.LedgerEventsTopic,
		GroupID: cfg.KafkaGroupID,
	})
	c := consumer.New(reader, loki.NewClient(cfg.LokiURL, nil))
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Msg("worker: close reader")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("worker: shutting down...")
		cancel()
	}()

	log.Info().
		Str("topic", cfg.LedgerEventsTopic).
		Str("group", cfg.KafkaGroupID).
		Str("loki", cfg.LokiURL).
		Msg("worker: consuming ledger events")
	c.Run(ctx)
}
