package telemetry

import (
	"context"
	"errors"

	"collective-ledger/internal/telemetry/domain"
)

// EventEmitter emits ledger events (e.g. to Kafka or OTel Logs). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.LedgerEvent) error
}

// Multi fans an event out to every non-nil emitter. Returns nil when given no emitters.
func Multi(emitters ...EventEmitter) EventEmitter {
	var out multiEmitter
	for _, e := range emitters {
		if e != nil {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

type multiEmitter []EventEmitter

// Emit calls every emitter and joins their errors.
func (m multiEmitter) Emit(ctx context.Context, event *domain.LedgerEvent) error {
	var errs []error
	for _, e := range m {
		if err := e.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
