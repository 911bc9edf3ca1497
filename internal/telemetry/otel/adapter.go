package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"collective-ledger/internal/telemetry"
	"collective-ledger/internal/telemetry/domain"
)

const instrumentationName = "collective-ledger.events"

// recordEmitter is the subset of otellog.Logger the adapter needs.
type recordEmitter interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// NewEventEmitter returns an EventEmitter that sends ledger events as OTel log records.
// If provider is nil, returns a no-op emitter.
func NewEventEmitter(provider *sdklog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return &otelEmitter{logger: provider.Logger(instrumentationName)}
}

// NewEventEmitterWithLogger wraps any record emitter (tests capture records this way).
func NewEventEmitterWithLogger(logger recordEmitter) telemetry.EventEmitter {
	return &otelEmitter{logger: logger}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, *domain.LedgerEvent) error { return nil }

type otelEmitter struct {
	logger recordEmitter
}

// Emit converts the event to an OTel log record: the event type is the body, everything else an attribute.
func (e *otelEmitter) Emit(ctx context.Context, event *domain.LedgerEvent) error {
	if event == nil {
		return nil
	}
	rec := otellog.Record{}
	rec.SetTimestamp(event.CreatedAt)
	if rec.Timestamp().IsZero() {
		rec.SetTimestamp(time.Now().UTC())
	}
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue(event.EventType))
	rec.AddAttributes(
		otellog.Int64("seq", int64(event.Seq)),
		otellog.String("event_type", event.EventType),
		otellog.Int("vote_count", event.VoteCount),
		otellog.Int("member_count", event.MemberCount),
	)
	if event.Actor != "" {
		rec.AddAttributes(otellog.String("actor", event.Actor))
	}
	if event.ProposalIndex != nil {
		rec.AddAttributes(otellog.Int("proposal_index", *event.ProposalIndex))
	}
	if event.Source != "" {
		rec.AddAttributes(otellog.String("source", event.Source))
	}
	e.logger.Emit(ctx, rec)
	return nil
}
