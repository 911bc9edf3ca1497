package telemetry

import (
	"context"
	"errors"
	"testing"

	"collective-ledger/internal/telemetry/domain"
)

func TestMulti_NoEmitters(t *testing.T) {
	if m := Multi(); m != nil {
		t.Errorf("Multi() = %v, want nil", m)
	}
	if m := Multi(nil, nil); m != nil {
		t.Errorf("Multi(nil, nil) = %v, want nil", m)
	}
}

func TestMulti_FansOutAndJoinsErrors(t *testing.T) {
	a := &mockEventEmitter{}
	b := &mockEventEmitter{emitErr: errors.New("b failed")}
	c := &mockEventEmitter{}
	m := Multi(a, nil, b, c)

	err := m.Emit(context.Background(), &domain.LedgerEvent{Seq: 1})
	if err == nil || err.Error() != "b failed" {
		t.Errorf("err = %v, want %q", err, "b failed")
	}
	for name, e := range map[string]*mockEventEmitter{"a": a, "b": b, "c": c} {
		if n := len(e.getEvents()); n != 1 {
			t.Errorf("emitter %s got %d events, want 1", name, n)
		}
	}
}
