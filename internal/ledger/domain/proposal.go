package domain

import "time"

// Actor is an externally authenticated caller identity (e.g. an account address).
// The ledger stores and compares actors; it never authenticates them.
type Actor string

func (a Actor) String() string { return string(a) }

// ProposalState captures a proposal's lifecycle. There is no rejected state:
// a proposal without a majority stays open.
type ProposalState uint8

const (
	ProposalStateUnspecified ProposalState = 0
	ProposalOpen             ProposalState = 1
	ProposalExecuted         ProposalState = 2
)

// String prints the state as lower-case text for events and logs.
func (s ProposalState) String() string {
	switch s {
	case ProposalOpen:
		return "open"
	case ProposalExecuted:
		return "executed"
	default:
		return "unspecified"
	}
}

// Proposal is a voteable unit of collective decision.
type Proposal struct {
	Index       int
	Description string
	VoteCount   int
	Executed    bool
	Proposer    Actor
	CreatedAt   time.Time
	ExecutedAt  *time.Time
}

// State derives the lifecycle state from the executed flag.
func (p Proposal) State() ProposalState {
	if p.Executed {
		return ProposalExecuted
	}
	return ProposalOpen
}
