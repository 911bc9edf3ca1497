// Package consumer reads ledger events from Kafka and forwards them to a sink (Loki).
package consumer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// pushTimeout bounds a single sink push.
const pushTimeout = 10 * time.Second

// MessageReader is the subset of *kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Sink receives each raw event payload.
type Sink interface {
	PushEventJSON(ctx context.Context, rawJSON []byte) error
}

// Config selects the topic and consumer group to read.
type Config struct {
	Brokers []string
	Topic   string
	GroupID string
}

// NewKafkaReader returns a group reader for cfg.
func NewKafkaReader(cfg Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		CommitInterval: time.Second,
	})
}

// Consumer forwards messages from reader to sink until its context is cancelled.
type Consumer struct {
	reader MessageReader
	sink   Sink
}

func New(reader MessageReader, sink Sink) *Consumer {
	return &Consumer{reader: reader, sink: sink}
}

// Run reads until ctx is cancelled. Read and push failures are logged and skipped.
// Returns the number of messages pushed successfully.
func (c *Consumer) Run(ctx context.Context) int {
	pushed := 0
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Int("pushed", pushed).Msg("worker: stopped")
				return pushed
			}
			log.Warn().Err(err).Msg("worker: kafka read error")
			continue
		}

		pushCtx, cancel := context.WithTimeout(ctx, pushTimeout)
		if err := c.sink.PushEventJSON(pushCtx, msg.Value); err != nil {
			log.Warn().Err(err).Int64("offset", msg.Offset).Msg("worker: loki push failed")
		} else {
			pushed++
		}
		cancel()
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
