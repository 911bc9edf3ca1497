package interceptors

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	bearerPrefix = "bearer "
	// ActorHeader carries a plain actor identity when AllowActorHeader is set (dev only).
	ActorHeader = "x-actor"
)

// ErrUnauthenticated is returned when no valid identity could be established.
var ErrUnauthenticated = errors.New("missing or invalid authorization")

// TokenValidator validates an access token and returns its actor (security.TokenProvider).
type TokenValidator interface {
	ValidateAccess(token string) (string, error)
}

// Authenticator resolves the caller's actor from transport headers. Shared by gRPC and HTTP.
type Authenticator struct {
	// Tokens validates bearer tokens. Nil disables bearer auth.
	Tokens TokenValidator
	// AllowActorHeader trusts the x-actor header when no bearer token is presented.
	AllowActorHeader bool
}

// Authenticate returns the actor for the given Authorization and x-actor header values.
// A presented bearer token always wins; an invalid one is rejected even if x-actor is set.
func (a *Authenticator) Authenticate(authorization, actorHeader string) (string, error) {
	if a == nil {
		return "", ErrUnauthenticated
	}
	if token := parseBearer(authorization); token != "" {
		if a.Tokens == nil {
			return "", ErrUnauthenticated
		}
		actor, err := a.Tokens.ValidateAccess(token)
		if err != nil {
			return "", ErrUnauthenticated
		}
		return actor, nil
	}
	if a.AllowActorHeader {
		if actor := strings.TrimSpace(actorHeader); actor != "" {
			return actor, nil
		}
	}
	return "", ErrUnauthenticated
}

// AuthUnary returns a unary server interceptor that authenticates the caller from gRPC metadata
// and stores the actor in context. publicMethods may be called anonymously; an identity is still
// attached when one is presented and valid.
func AuthUnary(auth *Authenticator, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		actor, err := auth.Authenticate(firstMetadata(ctx, "authorization"), firstMetadata(ctx, ActorHeader))
		if err != nil {
			if publicMethods[info.FullMethod] {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return handler(WithActor(ctx, actor), req)
	}
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(key)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// parseBearer returns the token from an Authorization value, or "" if missing or malformed.
func parseBearer(v string) string {
	v = strings.TrimSpace(v)
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
