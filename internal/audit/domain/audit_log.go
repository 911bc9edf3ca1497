package domain

import "time"

// Outcome of an audited ledger command.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// AuditLog records one ledger command attempt. ProposalIndex is nil for member commands.
type AuditLog struct {
	ID            string
	Actor         string
	Action        string
	Resource      string
	ProposalIndex *int
	Outcome       string
	ErrorKind     string
	IP            string
	CreatedAt     time.Time
}
