package interceptors

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnary logs one line per RPC with method, status code, duration, actor and client IP.
// It runs outermost, so the actor comes from the handler-side context via a holder.
func LoggingUnary(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		holder := &actorHolder{}
		resp, err := handler(context.WithValue(ctx, actorHolderKey, holder), req)

		code := status.Code(err)
		event := logger.Info()
		switch code {
		case codes.OK:
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			event = logger.Error().Err(err)
		default:
			event = logger.Warn().Str("error", status.Convert(err).Message())
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", time.Since(start)).
			Str("actor", holder.actor).
			Str("client_ip", ClientIP(ctx)).
			Msg("grpc_request")
		return resp, err
	}
}

var actorHolderKey = contextKey{"actor_holder"}

type actorHolder struct {
	actor string
}

// RecordActor lets inner handlers report the resolved actor to LoggingUnary.
func RecordActor(ctx context.Context, actor string) {
	if h, ok := ctx.Value(actorHolderKey).(*actorHolder); ok {
		h.actor = actor
	}
}
