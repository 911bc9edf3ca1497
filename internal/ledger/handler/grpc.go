package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	ledgerv1 "collective-ledger/api/ledger/v1"
	"collective-ledger/internal/ledger"
	"collective-ledger/internal/ledger/domain"
	"collective-ledger/internal/platform/rbac"
)

// LedgerService is the ledger surface the handler needs. Implemented by *service.LedgerService.
type LedgerService interface {
	JoinDAO(ctx context.Context, actor string) (int, error)
	IsMember(actor string) bool
	CreateProposal(ctx context.Context, actor, description string) (int, error)
	Vote(ctx context.Context, actor string, index int) (int, error)
	ExecuteProposal(ctx context.Context, actor string, index int) (domain.Proposal, error)
	GetProposal(index int) (domain.Proposal, error)
	ListProposals() []domain.Proposal
	Members() []string
}

// Server implements LedgerService (gRPC server) for membership, proposals and votes.
// Service: collective.ledger.v1.LedgerService → internal/ledger/handler.
type Server struct {
	ledgerv1.UnimplementedLedgerServiceServer
	svc LedgerService
}

// NewServer returns a new Ledger gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc LedgerService) *Server {
	return &Server{svc: svc}
}

// JoinDAO joins the authenticated caller.
func (s *Server) JoinDAO(ctx context.Context, req *ledgerv1.JoinDAORequest) (*ledgerv1.JoinDAOResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method JoinDAO not implemented")
	}
	actor, err := rbac.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.svc.JoinDAO(ctx, actor)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &ledgerv1.JoinDAOResponse{Member: actor, MemberCount: int64(count)}, nil
}

// IsMember reports whether req.Actor has joined. Anyone may ask.
func (s *Server) IsMember(ctx context.Context, req *ledgerv1.IsMemberRequest) (*ledgerv1.IsMemberResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method IsMember not implemented")
	}
	if req.GetActor() == "" {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}
	return &ledgerv1.IsMemberResponse{IsMember: s.svc.IsMember(req.GetActor())}, nil
}

// CreateProposal creates a proposal from the authenticated caller.
func (s *Server) CreateProposal(ctx context.Context, req *ledgerv1.CreateProposalRequest) (*ledgerv1.CreateProposalResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateProposal not implemented")
	}
	actor, err := rbac.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := s.svc.CreateProposal(ctx, actor, req.GetDescription())
	if err != nil {
		return nil, ToStatus(err)
	}
	return &ledgerv1.CreateProposalResponse{Index: int64(idx)}, nil
}

// Vote casts the authenticated caller's vote.
func (s *Server) Vote(ctx context.Context, req *ledgerv1.VoteRequest) (*ledgerv1.VoteResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method Vote not implemented")
	}
	actor, err := rbac.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	votes, err := s.svc.Vote(ctx, actor, int(req.GetProposalIndex()))
	if err != nil {
		return nil, ToStatus(err)
	}
	return &ledgerv1.VoteResponse{VoteCount: int64(votes)}, nil
}

// ExecuteProposal executes a proposal that has a majority of the current members.
func (s *Server) ExecuteProposal(ctx context.Context, req *ledgerv1.ExecuteProposalRequest) (*ledgerv1.ExecuteProposalResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ExecuteProposal not implemented")
	}
	actor, err := rbac.RequireActor(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.ExecuteProposal(ctx, actor, int(req.GetProposalIndex()))
	if err != nil {
		return nil, ToStatus(err)
	}
	return &ledgerv1.ExecuteProposalResponse{Proposal: ProposalToWire(p)}, nil
}

// GetProposal returns one proposal by index.
func (s *Server) GetProposal(ctx context.Context, req *ledgerv1.GetProposalRequest) (*ledgerv1.GetProposalResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetProposal not implemented")
	}
	p, err := s.svc.GetProposal(int(req.GetProposalIndex()))
	if err != nil {
		return nil, ToStatus(err)
	}
	return &ledgerv1.GetProposalResponse{Proposal: ProposalToWire(p)}, nil
}

// ListProposals returns all proposals in index order.
func (s *Server) ListProposals(ctx context.Context, req *ledgerv1.ListProposalsRequest) (*ledgerv1.ListProposalsResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ListProposals not implemented")
	}
	list := s.svc.ListProposals()
	out := make([]*ledgerv1.Proposal, 0, len(list))
	for _, p := range list {
		out = append(out, ProposalToWire(p))
	}
	return &ledgerv1.ListProposalsResponse{Proposals: out}, nil
}

// ListMembers returns the sorted member identities.
func (s *Server) ListMembers(ctx context.Context, req *ledgerv1.ListMembersRequest) (*ledgerv1.ListMembersResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ListMembers not implemented")
	}
	return &ledgerv1.ListMembersResponse{Members: s.svc.Members()}, nil
}

// ToStatus maps a ledger error to a gRPC status error. Non-ledger errors become Internal.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(CodeOf(err), err.Error())
}

// CodeOf returns the gRPC code for a ledger error.
func CodeOf(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, ledger.ErrEmptyActor):
		return codes.InvalidArgument
	case errors.Is(err, ledger.ErrAlreadyMember), errors.Is(err, ledger.ErrAlreadyVoted):
		return codes.AlreadyExists
	case errors.Is(err, ledger.ErrNotAMember):
		return codes.PermissionDenied
	case errors.Is(err, ledger.ErrInvalidProposal):
		return codes.NotFound
	case errors.Is(err, ledger.ErrAlreadyExecuted), errors.Is(err, ledger.ErrInsufficientVotes):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// ProposalToWire converts a domain proposal to its wire form. ExecutedAt stays unset
// until the proposal executes.
func ProposalToWire(p domain.Proposal) *ledgerv1.Proposal {
	out := &ledgerv1.Proposal{
		Index:       int64(p.Index),
		Description: p.Description,
		VoteCount:   int64(p.VoteCount),
		Executed:    p.Executed,
		State:       p.State().String(),
		Proposer:    p.Proposer.String(),
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(p.CreatedAt)
	}
	if p.ExecutedAt != nil {
		out.ExecutedAt = timestamppb.New(*p.ExecutedAt)
	}
	return out
}
