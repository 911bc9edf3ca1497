package ledger

import "errors"

// Rejections. Every one leaves the ledger unchanged. Membership messages keep
// the wording of the Data DAO contract, lower-cased as Go error strings.
var (
	ErrAlreadyMember     = errors.New("already a member")
	ErrNotAMember        = errors.New("not a member of the data DAO")
	ErrInvalidProposal   = errors.New("invalid proposal")
	ErrAlreadyVoted      = errors.New("already voted on this proposal")
	ErrAlreadyExecuted   = errors.New("proposal already executed")
	ErrInsufficientVotes = errors.New("insufficient votes to execute")

	// ErrEmptyActor is returned when the host supplies no identity at all.
	ErrEmptyActor = errors.New("actor identity required")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrAlreadyMember, "AlreadyMember"},
	{ErrNotAMember, "NotAMember"},
	{ErrInvalidProposal, "InvalidProposal"},
	{ErrAlreadyVoted, "AlreadyVoted"},
	{ErrAlreadyExecuted, "AlreadyExecuted"},
	{ErrInsufficientVotes, "InsufficientVotes"},
	{ErrEmptyActor, "EmptyActor"},
}

// Kind returns the rejection name for err (e.g. "AlreadyVoted"), or "" when err
// is nil or not a ledger rejection.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// IsRejection reports whether err is one of the ledger's precondition failures.
func IsRejection(err error) bool {
	return Kind(err) != ""
}
