package domain

import "time"

// EventType names a committed ledger transition.
type EventType string

const (
	EventMemberJoined     EventType = "member_joined"
	EventProposalCreated  EventType = "proposal_created"
	EventVoteCast         EventType = "vote_cast"
	EventProposalExecuted EventType = "proposal_executed"
)

// NoProposal is the ProposalIndex of events that do not concern a proposal.
const NoProposal = -1

// Event describes one successful mutation. Seq is assigned by the ledger and
// increases by one per committed mutation.
type Event struct {
	Seq           uint64
	Type          EventType
	Actor         Actor
	ProposalIndex int
	VoteCount     int
	MemberCount   int
	At            time.Time
}
