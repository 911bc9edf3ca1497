package rbac

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"collective-ledger/internal/server/interceptors"
)

// MembershipChecker reports whether an actor is a ledger member. Implemented by *service.LedgerService.
type MembershipChecker interface {
	IsMember(actor string) bool
}

// RequireActor ensures the caller is authenticated and returns its actor.
// Returns a gRPC Unauthenticated error when no actor is in context.
func RequireActor(ctx context.Context) (string, error) {
	actor, ok := interceptors.GetActor(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "actor context required")
	}
	interceptors.RecordActor(ctx, actor)
	return actor, nil
}

// RequireMember ensures the caller is authenticated and has joined the ledger.
// Returns (actor, nil) on success; returns a gRPC error (Unauthenticated or PermissionDenied) on failure.
func RequireMember(ctx context.Context, checker MembershipChecker) (string, error) {
	actor, err := RequireActor(ctx)
	if err != nil {
		return "", err
	}
	if !checker.IsMember(actor) {
		return "", status.Error(codes.PermissionDenied, "not a member of the ledger")
	}
	return actor, nil
}
