package gateway

import (
	"time"

	"collective-ledger/internal/ledger/domain"
)

// HTTP bodies mirror the gRPC message field names but always carry zero values.

type createProposalRequest struct {
	Description string `json:"description"`
}

type proposalView struct {
	Index       int        `json:"index"`
	Description string     `json:"description"`
	VoteCount   int        `json:"vote_count"`
	Executed    bool       `json:"executed"`
	State       string     `json:"state"`
	Proposer    string     `json:"proposer"`
	CreatedAt   time.Time  `json:"created_at"`
	ExecutedAt  *time.Time `json:"executed_at,omitempty"`
}

func toProposalView(p domain.Proposal) proposalView {
	return proposalView{
		Index:       p.Index,
		Description: p.Description,
		VoteCount:   p.VoteCount,
		Executed:    p.Executed,
		State:       p.State().String(),
		Proposer:    p.Proposer.String(),
		CreatedAt:   p.CreatedAt,
		ExecutedAt:  p.ExecutedAt,
	}
}

type joinResponse struct {
	Member      string `json:"member"`
	MemberCount int    `json:"member_count"`
}

type membersResponse struct {
	Members []string `json:"members"`
}

type createProposalResponse struct {
	Index int `json:"index"`
}

type voteResponse struct {
	VoteCount int `json:"vote_count"`
}

type proposalResponse struct {
	Proposal proposalView `json:"proposal"`
}

type proposalsResponse struct {
	Proposals []proposalView `json:"proposals"`
}
