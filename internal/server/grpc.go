package server

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	ledgerv1 "collective-ledger/api/ledger/v1"
	healthhandler "collective-ledger/internal/health/handler"
	ledgerhandler "collective-ledger/internal/ledger/handler"
	"collective-ledger/internal/server/interceptors"
)

// Deps holds service dependencies for gRPC handlers.
type Deps struct {
	// Ledger is the ledger service. If nil, ledger RPCs return Unimplemented.
	Ledger ledgerhandler.LedgerService
	// HealthPinger is used by the health service for readiness (e.g. *sql.DB). If nil, Check skips DB ping.
	HealthPinger healthhandler.Pinger
	// HealthPolicyChecker is used by the health service for readiness (e.g. OPA rule). If nil, Check skips policy check.
	HealthPolicyChecker healthhandler.PolicyChecker
}

// PublicMethods may be called without an identity: health checks and read-only ledger queries.
var PublicMethods = map[string]bool{
	healthpb.Health_Check_FullMethodName:                true,
	healthpb.Health_Watch_FullMethodName:                true,
	ledgerv1.LedgerService_IsMember_FullMethodName:      true,
	ledgerv1.LedgerService_GetProposal_FullMethodName:   true,
	ledgerv1.LedgerService_ListProposals_FullMethodName: true,
	ledgerv1.LedgerService_ListMembers_FullMethodName:   true,
}

// RegisterServices registers the gRPC services with the given server.
//
// Service → handler mapping:
//   - collective.ledger.v1.LedgerService → internal/ledger/handler
//   - grpc.health.v1.Health              → internal/health/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	ledgerv1.RegisterLedgerServiceServer(s, ledgerhandler.NewServer(deps.Ledger))
	healthpb.RegisterHealthServer(s, healthhandler.NewServer(deps.HealthPinger, deps.HealthPolicyChecker))
}

// NewServer returns a gRPC server with the client IP, request logging and auth interceptors
// and the otelgrpc stats handler installed. Forwarding metadata is honoured only from
// trusted peers; nil trusts none. Register services on it with RegisterServices.
func NewServer(logger zerolog.Logger, auth *interceptors.Authenticator, trusted *interceptors.TrustedProxies, opts ...grpc.ServerOption) *grpc.Server {
	base := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.ClientIPUnary(trusted),
			interceptors.LoggingUnary(logger),
			interceptors.AuthUnary(auth, PublicMethods),
		),
	}
	return grpc.NewServer(append(base, opts...)...)
}
