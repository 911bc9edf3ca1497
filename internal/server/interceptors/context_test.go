package interceptors

import (
	"context"
	"testing"
)

func TestActorContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetActor(ctx); ok {
		t.Error("GetActor on empty context should return false")
	}
	ctx = WithActor(ctx, "alice")
	actor, ok := GetActor(ctx)
	if !ok || actor != "alice" {
		t.Errorf("GetActor = %q, %v, want %q, true", actor, ok, "alice")
	}
	if _, ok := GetActor(WithActor(context.Background(), "")); ok {
		t.Error("GetActor with empty actor should return false")
	}
}

func TestRecordActor(t *testing.T) {
	holder := &actorHolder{}
	ctx := context.WithValue(context.Background(), actorHolderKey, holder)
	RecordActor(ctx, "alice")
	if holder.actor != "alice" {
		t.Errorf("holder.actor = %q, want %q", holder.actor, "alice")
	}
	// No holder: must not panic.
	RecordActor(context.Background(), "bob")
}
