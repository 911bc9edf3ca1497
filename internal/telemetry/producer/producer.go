// Package producer defines the interface for publishing ledger events (e.g. to Kafka).
package producer

import (
	"context"

	"collective-ledger/internal/telemetry/domain"
)

// Producer publishes ledger events. Callers use it best-effort: log and ignore errors.
type Producer interface {
	// Emit sends a single event. Implementations may block briefly; call from a goroutine if needed.
	Emit(ctx context.Context, event *domain.LedgerEvent) error
	// Close releases resources (e.g. Kafka writer). Safe to call if already closed.
	Close() error
}
