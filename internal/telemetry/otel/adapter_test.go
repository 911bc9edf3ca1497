package otel

import (
	"context"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"collective-ledger/internal/telemetry/domain"
)

func TestNewEventEmitter_NilProvider_ReturnsNoop(t *testing.T) {
	em := NewEventEmitter(nil)
	if em == nil {
		t.Fatal("NewEventEmitter(nil) returned nil")
	}
	if err := em.Emit(context.Background(), nil); err != nil {
		t.Errorf("noop Emit(ctx, nil): %v", err)
	}
	if err := em.Emit(context.Background(), &domain.LedgerEvent{EventType: "member_joined"}); err != nil {
		t.Errorf("noop Emit(ctx, event): %v", err)
	}
}

func TestEmit_RealProvider(t *testing.T) {
	provider := sdklog.NewLoggerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	em := NewEventEmitter(provider)
	if err := em.Emit(context.Background(), nil); err != nil {
		t.Errorf("Emit(ctx, nil): %v", err)
	}
	if err := em.Emit(context.Background(), &domain.LedgerEvent{EventType: "vote_cast"}); err != nil {
		t.Errorf("Emit(ctx, event): %v", err)
	}
}

// recordCapture stores the last Record passed to Emit for assertion.
type recordCapture struct {
	rec otellog.Record
}

func (r *recordCapture) Emit(ctx context.Context, rec otellog.Record) {
	r.rec = rec
}

func attrs(rec otellog.Record) map[string]otellog.Value {
	out := make(map[string]otellog.Value)
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		out[kv.Key] = kv.Value
		return true
	})
	return out
}

func TestEmit_AttributeAndBodyMapping(t *testing.T) {
	capture := &recordCapture{}
	em := NewEventEmitterWithLogger(capture)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	idx := 2
	event := &domain.LedgerEvent{
		Seq: 9, EventType: "proposal_executed", Actor: "carol", ProposalIndex: &idx,
		VoteCount: 3, MemberCount: 5, Source: domain.Source, CreatedAt: at,
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := capture.rec

	if got := rec.Body().AsString(); got != "proposal_executed" {
		t.Errorf("body = %q, want %q", got, "proposal_executed")
	}
	if !rec.Timestamp().Equal(at) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp(), at)
	}
	a := attrs(rec)
	if a["actor"].AsString() != "carol" {
		t.Errorf("actor = %q, want %q", a["actor"].AsString(), "carol")
	}
	if a["seq"].AsInt64() != 9 {
		t.Errorf("seq = %d, want 9", a["seq"].AsInt64())
	}
	if a["proposal_index"].AsInt64() != 2 {
		t.Errorf("proposal_index = %d, want 2", a["proposal_index"].AsInt64())
	}
	if a["member_count"].AsInt64() != 5 {
		t.Errorf("member_count = %d, want 5", a["member_count"].AsInt64())
	}
}

func TestEmit_MemberEventHasNoProposalIndex(t *testing.T) {
	capture := &recordCapture{}
	em := NewEventEmitterWithLogger(capture)
	if err := em.Emit(context.Background(), &domain.LedgerEvent{EventType: "member_joined", Actor: "bob"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if _, ok := attrs(capture.rec)["proposal_index"]; ok {
		t.Error("member event should not carry proposal_index")
	}
	if capture.rec.Timestamp().IsZero() {
		t.Error("timestamp should default to now")
	}
}
