package ledger

import "context"

// Tally is what an execution rule sees: the proposal's support and the member
// count at the moment of execution.
type Tally struct {
	ProposalIndex int
	VoteCount     int
	MemberCount   int
}

// Rule decides whether a proposal with the given tally may execute. The ledger
// only consults it once Majority holds, so a Rule can tighten execution but never
// loosen it. It is evaluated while the ledger lock is held and must not call back
// into the ledger.
type Rule interface {
	Allows(ctx context.Context, t Tally) (bool, error)
}

// RuleFunc adapts a plain function to Rule.
type RuleFunc func(ctx context.Context, t Tally) (bool, error)

func (f RuleFunc) Allows(ctx context.Context, t Tally) (bool, error) { return f(ctx, t) }

// Majority passes when strictly more than half of the current members voted.
var Majority Rule = RuleFunc(func(_ context.Context, t Tally) (bool, error) {
	return hasMajority(t), nil
})

func hasMajority(t Tally) bool {
	return t.VoteCount*2 > t.MemberCount
}
