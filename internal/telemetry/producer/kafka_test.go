package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"collective-ledger/internal/telemetry/domain"
)

type fakeWriter struct {
	msgs     []kafka.Message
	writeErr error
	closed   int
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed++
	return nil
}

func TestNewKafkaProducer_Disabled(t *testing.T) {
	if p := NewKafkaProducer(nil, "ledger-events"); p != nil {
		t.Error("NewKafkaProducer without brokers should return nil")
	}
	if p := NewKafkaProducer([]string{"localhost:9092"}, ""); p != nil {
		t.Error("NewKafkaProducer without topic should return nil")
	}
}

func TestKafkaProducer_NilSafe(t *testing.T) {
	var p *KafkaProducer
	if err := p.Emit(context.Background(), &domain.LedgerEvent{}); err != nil {
		t.Errorf("nil Emit: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	if p.Topic() != "" {
		t.Errorf("nil Topic = %q, want empty", p.Topic())
	}
}

func TestKafkaProducer_Emit(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaProducer{writer: w, topic: "ledger-events"}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := &domain.LedgerEvent{Seq: 3, EventType: "proposal_executed", Actor: "carol", CreatedAt: at}

	if err := p.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "ledger" {
		t.Errorf("key = %q, want %q", msg.Key, "ledger")
	}
	if !msg.Time.Equal(at) {
		t.Errorf("time = %v, want %v", msg.Time, at)
	}
	var got domain.LedgerEvent
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.Seq != 3 || got.EventType != "proposal_executed" || got.Actor != "carol" {
		t.Errorf("payload = %+v", got)
	}
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	if headers["event_type"] != "proposal_executed" || headers["seq"] != "3" {
		t.Errorf("headers = %v", headers)
	}
}

func TestKafkaProducer_EmitError(t *testing.T) {
	w := &fakeWriter{writeErr: errors.New("broker unavailable")}
	p := &KafkaProducer{writer: w, topic: "ledger-events"}
	if err := p.Emit(context.Background(), &domain.LedgerEvent{}); err == nil {
		t.Fatal("Emit should return the writer error")
	}
}

func TestKafkaProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaProducer{writer: w}
	_ = p.Close()
	if w.closed != 1 {
		t.Errorf("closed = %d, want 1", w.closed)
	}
}
