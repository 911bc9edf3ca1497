// Package service hosts the ledger for the transports. Every command is audited,
// measured and logged here, and successful commands publish their ledger event.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"collective-ledger/internal/audit"
	"collective-ledger/internal/ledger"
	"collective-ledger/internal/ledger/domain"
	"collective-ledger/internal/observability"
	"collective-ledger/internal/telemetry"
	telemetrydomain "collective-ledger/internal/telemetry/domain"
)

// Operation names used for metrics labels and logs.
const (
	OpJoinDAO         = "join_dao"
	OpCreateProposal  = "create_proposal"
	OpVote            = "vote"
	OpExecuteProposal = "execute_proposal"
)

// LedgerService wraps a *ledger.Ledger for the gRPC handler and the HTTP gateway.
type LedgerService struct {
	ledger  *ledger.Ledger
	audit   audit.AuditLogger
	emitter telemetry.EventEmitter
}

// NewLedgerService returns a LedgerService. auditLogger and emitter may be nil.
func NewLedgerService(l *ledger.Ledger, auditLogger audit.AuditLogger, emitter telemetry.EventEmitter) *LedgerService {
	return &LedgerService{ledger: l, audit: auditLogger, emitter: emitter}
}

// JoinDAO joins actor and returns the member count after the join.
func (s *LedgerService) JoinDAO(ctx context.Context, actor string) (int, error) {
	start := time.Now()
	ev, err := s.ledger.JoinDAO(domain.Actor(actor))
	s.finish(ctx, OpJoinDAO, actor, audit.ActionJoinDAO, audit.ResourceMember, nil, start, ev, err)
	if err != nil {
		return 0, err
	}
	return ev.MemberCount, nil
}

// IsMember reports whether actor has joined.
func (s *LedgerService) IsMember(actor string) bool {
	return s.ledger.IsMember(domain.Actor(actor))
}

// CreateProposal creates a proposal from actor and returns its index.
func (s *LedgerService) CreateProposal(ctx context.Context, actor, description string) (int, error) {
	start := time.Now()
	idx, ev, err := s.ledger.CreateProposal(domain.Actor(actor), description)
	var auditIdx *int
	if err == nil {
		auditIdx = &idx
	}
	s.finish(ctx, OpCreateProposal, actor, audit.ActionCreateProposal, audit.ResourceProposal, auditIdx, start, ev, err)
	if err != nil {
		return 0, err
	}
	return idx, nil
}

// Vote records actor's vote on proposal index and returns the new vote count.
func (s *LedgerService) Vote(ctx context.Context, actor string, index int) (int, error) {
	start := time.Now()
	ev, err := s.ledger.Vote(domain.Actor(actor), index)
	s.finish(ctx, OpVote, actor, audit.ActionVote, audit.ResourceProposal, &index, start, ev, err)
	if err != nil {
		return 0, err
	}
	return ev.VoteCount, nil
}

// ExecuteProposal executes proposal index on behalf of actor and returns the executed proposal.
func (s *LedgerService) ExecuteProposal(ctx context.Context, actor string, index int) (domain.Proposal, error) {
	start := time.Now()
	ev, err := s.ledger.ExecuteProposal(ctx, domain.Actor(actor), index)
	s.finish(ctx, OpExecuteProposal, actor, audit.ActionExecuteProposal, audit.ResourceProposal, &index, start, ev, err)
	if err != nil {
		return domain.Proposal{}, err
	}
	return s.ledger.GetProposal(index)
}

// GetProposal returns a copy of proposal index.
func (s *LedgerService) GetProposal(index int) (domain.Proposal, error) {
	return s.ledger.GetProposal(index)
}

// ListProposals returns copies of all proposals in index order.
func (s *LedgerService) ListProposals() []domain.Proposal {
	return s.ledger.ListProposals()
}

// Members returns the member identities, sorted.
func (s *LedgerService) Members() []string {
	actors := s.ledger.Members()
	out := make([]string, len(actors))
	for i, a := range actors {
		out[i] = string(a)
	}
	return out
}

// finish records the command outcome: metrics, audit entry, a log line and, on success, the event.
func (s *LedgerService) finish(ctx context.Context, op, actor, action, resource string, index *int, start time.Time, ev domain.Event, err error) {
	outcome := outcomeOf(err)
	observability.RecordOperation(op, outcome, time.Since(start))
	if s.audit != nil {
		s.audit.LogCommand(ctx, actor, action, resource, index, err)
	}

	switch outcome {
	case observability.OutcomeOK:
		observability.RecordLedgerSize(s.ledger.MemberCount(), s.ledger.ProposalCount())
		log.Debug().Str("op", op).Str("actor", actor).Uint64("seq", ev.Seq).Msg("ledger: command applied")
		telemetry.EmitAsync(s.emitter, telemetrydomain.FromLedger(ev))
	case observability.OutcomeRejected:
		log.Debug().Str("op", op).Str("actor", actor).Str("kind", ledger.Kind(err)).Msg("ledger: command rejected")
	default:
		log.Error().Err(err).Str("op", op).Str("actor", actor).Msg("ledger: command failed")
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeOK
	case ledger.IsRejection(err):
		return observability.OutcomeRejected
	default:
		return observability.OutcomeError
	}
}
