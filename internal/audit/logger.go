package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"collective-ledger/internal/audit/domain"
	auditrepo "collective-ledger/internal/audit/repository"
	"collective-ledger/internal/ledger"
)

// Actions recorded for ledger commands.
const (
	ActionJoinDAO         = "join_dao"
	ActionCreateProposal  = "create_proposal"
	ActionVote            = "vote"
	ActionExecuteProposal = "execute_proposal"
)

// Resources recorded for ledger commands.
const (
	ResourceMember   = "member"
	ResourceProposal = "proposal"
)

// IPExtractor returns the client IP from the request context (e.g. gRPC metadata or peer).
type IPExtractor func(context.Context) string

// AuditLogger records the outcome of a ledger command.
// LogCommand is best-effort: failures are logged and do not affect the caller.
type AuditLogger interface {
	LogCommand(ctx context.Context, actor, action, resource string, proposalIndex *int, cmdErr error)
}

// Logger implements AuditLogger using the audit repository and an optional IP extractor.
type Logger struct {
	repo        auditrepo.Repository
	ipExtractor IPExtractor
	nowF        func() time.Time
}

// NewLogger returns an AuditLogger that persists to repo and uses ipExtractor for client IP.
// ipExtractor may be nil; then IP is recorded as "unknown".
func NewLogger(repo auditrepo.Repository, ipExtractor IPExtractor) *Logger {
	return &Logger{repo: repo, ipExtractor: ipExtractor, nowF: func() time.Time { return time.Now().UTC() }}
}

// LogCommand writes one audit log entry classifying cmdErr as ok, rejected or error.
func (l *Logger) LogCommand(ctx context.Context, actor, action, resource string, proposalIndex *int, cmdErr error) {
	if l == nil || l.repo == nil {
		return
	}
	ip := "unknown"
	if l.ipExtractor != nil {
		ip = l.ipExtractor(ctx)
	}
	entry := &domain.AuditLog{
		ID:            uuid.New().String(),
		Actor:         actor,
		Action:        action,
		Resource:      resource,
		ProposalIndex: proposalIndex,
		Outcome:       Outcome(cmdErr),
		ErrorKind:     ledger.Kind(cmdErr),
		IP:            ip,
		CreatedAt:     l.nowF(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Error().Err(err).Msgf("audit: failed to log command %s/%s", action, resource)
	}
}

// Outcome classifies a command result for the audit trail.
func Outcome(err error) string {
	switch {
	case err == nil:
		return domain.OutcomeOK
	case ledger.IsRejection(err):
		return domain.OutcomeRejected
	default:
		return domain.OutcomeError
	}
}
