package interceptors

import "context"

type contextKey struct{ name string }

var (
	actorKey    = contextKey{"actor"}
	clientIPKey = contextKey{"client_ip"}
)

// WithActor returns a context carrying the authenticated ledger actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor returns the actor from context and true if set; otherwise "", false.
func GetActor(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(actorKey).(string)
	return v, ok && v != ""
}

// WithClientIP records the caller's IP for transports without gRPC peer info (the HTTP gateway).
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}
