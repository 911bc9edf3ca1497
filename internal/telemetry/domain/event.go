// Package domain holds the wire shape of ledger events published to the event stream.
package domain

import (
	"time"

	ledgerdomain "collective-ledger/internal/ledger/domain"
)

// Source identifies events published by the ledger server.
const Source = "ledger"

// LedgerEvent is the JSON document written to Kafka and pushed to Loki.
// ProposalIndex is omitted for member events.
type LedgerEvent struct {
	Seq           uint64    `json:"seq"`
	EventType     string    `json:"event_type"`
	Actor         string    `json:"actor"`
	ProposalIndex *int      `json:"proposal_index,omitempty"`
	VoteCount     int       `json:"vote_count"`
	MemberCount   int       `json:"member_count"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromLedger converts a committed ledger event to its wire form.
func FromLedger(ev ledgerdomain.Event) *LedgerEvent {
	out := &LedgerEvent{
		Seq:         ev.Seq,
		EventType:   string(ev.Type),
		Actor:       ev.Actor.String(),
		VoteCount:   ev.VoteCount,
		MemberCount: ev.MemberCount,
		Source:      Source,
		CreatedAt:   ev.At,
	}
	if ev.ProposalIndex != ledgerdomain.NoProposal {
		idx := ev.ProposalIndex
		out.ProposalIndex = &idx
	}
	return out
}
