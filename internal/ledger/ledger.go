// Package ledger implements the membership, proposal and voting state machine.
//
// A Ledger is an explicitly owned value: construct one with New and pass it to
// whatever hosts it. Every operation holds a single mutex for its whole duration,
// so each call either commits completely or fails without changing state.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"collective-ledger/internal/ledger/domain"
)

// Ledger owns the member set, the ordered proposals and per-proposal vote receipts.
type Ledger struct {
	mu        sync.Mutex
	members   map[domain.Actor]struct{}
	proposals []domain.Proposal
	votedBy   []map[domain.Actor]struct{} // aligned with proposals
	rule      Rule                        // extra condition on top of Majority; nil for none
	seq       uint64
	nowF      func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithRule adds r as an extra execution condition. Majority is always required
// first, so r can only make execution stricter. Nil keeps Majority alone.
func WithRule(r Rule) Option {
	return func(l *Ledger) {
		if r != nil {
			l.rule = r
		}
	}
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.nowF = now
		}
	}
}

// New returns an empty ledger that executes on Majority plus any WithRule condition.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		members: make(map[domain.Actor]struct{}),
		nowF:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// JoinDAO adds actor to the member set. A second join by the same actor fails
// with ErrAlreadyMember.
func (l *Ledger) JoinDAO(actor domain.Actor) (domain.Event, error) {
	if actor == "" {
		return domain.Event{}, ErrEmptyActor
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.members[actor]; ok {
		return domain.Event{}, fmt.Errorf("join %q: %w", actor, ErrAlreadyMember)
	}
	l.members[actor] = struct{}{}
	return l.event(domain.EventMemberJoined, actor, domain.NoProposal, 0), nil
}

// IsMember reports whether actor has joined.
func (l *Ledger) IsMember(actor domain.Actor) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.members[actor]
	return ok
}

// CreateProposal appends a new open proposal and returns its index, which is
// the number of proposals created before it.
func (l *Ledger) CreateProposal(actor domain.Actor, description string) (int, domain.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.members[actor]; !ok {
		return 0, domain.Event{}, fmt.Errorf("create proposal: %w", ErrNotAMember)
	}
	idx := len(l.proposals)
	l.proposals = append(l.proposals, domain.Proposal{
		Index:       idx,
		Description: description,
		Proposer:    actor,
		CreatedAt:   l.nowF(),
	})
	l.votedBy = append(l.votedBy, make(map[domain.Actor]struct{}))
	return idx, l.event(domain.EventProposalCreated, actor, idx, 0), nil
}

// Vote records one vote from actor on proposal index. Checks run in order:
// membership, index range, duplicate vote.
func (l *Ledger) Vote(actor domain.Actor, index int) (domain.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.members[actor]; !ok {
		return domain.Event{}, fmt.Errorf("vote on proposal %d: %w", index, ErrNotAMember)
	}
	if !l.inRange(index) {
		return domain.Event{}, fmt.Errorf("vote on proposal %d: %w", index, ErrInvalidProposal)
	}
	if _, voted := l.votedBy[index][actor]; voted {
		return domain.Event{}, fmt.Errorf("vote on proposal %d: %w", index, ErrAlreadyVoted)
	}
	l.votedBy[index][actor] = struct{}{}
	l.proposals[index].VoteCount++
	return l.event(domain.EventVoteCast, actor, index, l.proposals[index].VoteCount), nil
}

// ExecuteProposal marks proposal index executed when a strict majority of the
// current members voted for it and the configured rule also allows it. Any member
// may execute. A proposal that fails either check stays open and may be retried.
func (l *Ledger) ExecuteProposal(ctx context.Context, actor domain.Actor, index int) (domain.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.members[actor]; !ok {
		return domain.Event{}, fmt.Errorf("execute proposal %d: %w", index, ErrNotAMember)
	}
	if !l.inRange(index) {
		return domain.Event{}, fmt.Errorf("execute proposal %d: %w", index, ErrInvalidProposal)
	}
	p := &l.proposals[index]
	if p.Executed {
		return domain.Event{}, fmt.Errorf("execute proposal %d: %w", index, ErrAlreadyExecuted)
	}
	t := Tally{
		ProposalIndex: index,
		VoteCount:     p.VoteCount,
		MemberCount:   len(l.members),
	}
	allowed := hasMajority(t)
	if allowed && l.rule != nil {
		var err error
		if allowed, err = l.rule.Allows(ctx, t); err != nil {
			return domain.Event{}, fmt.Errorf("execute proposal %d: evaluate rule: %w", index, err)
		}
	}
	if !allowed {
		return domain.Event{}, fmt.Errorf("execute proposal %d (%d of %d members): %w",
			index, p.VoteCount, len(l.members), ErrInsufficientVotes)
	}
	now := l.nowF()
	p.Executed = true
	p.ExecutedAt = &now
	return l.event(domain.EventProposalExecuted, actor, index, p.VoteCount), nil
}

// GetProposal returns a copy of proposal index.
func (l *Ledger) GetProposal(index int) (domain.Proposal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inRange(index) {
		return domain.Proposal{}, fmt.Errorf("get proposal %d: %w", index, ErrInvalidProposal)
	}
	return copyProposal(l.proposals[index]), nil
}

// HasVoted reports whether actor already voted on proposal index.
func (l *Ledger) HasVoted(actor domain.Actor, index int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.inRange(index) {
		return false, fmt.Errorf("has voted on proposal %d: %w", index, ErrInvalidProposal)
	}
	_, ok := l.votedBy[index][actor]
	return ok, nil
}

// ListProposals returns copies of every proposal in index order.
func (l *Ledger) ListProposals() []domain.Proposal {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Proposal, len(l.proposals))
	for i, p := range l.proposals {
		out[i] = copyProposal(p)
	}
	return out
}

// Members returns the member identities sorted lexically.
func (l *Ledger) Members() []domain.Actor {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Actor, 0, len(l.members))
	for a := range l.members {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MemberCount returns the number of members.
func (l *Ledger) MemberCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.members)
}

// ProposalCount returns the number of proposals ever created.
func (l *Ledger) ProposalCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.proposals)
}

// inRange requires l.mu.
func (l *Ledger) inRange(index int) bool {
	return index >= 0 && index < len(l.proposals)
}

// event requires l.mu.
func (l *Ledger) event(t domain.EventType, actor domain.Actor, index, votes int) domain.Event {
	l.seq++
	return domain.Event{
		Seq:           l.seq,
		Type:          t,
		Actor:         actor,
		ProposalIndex: index,
		VoteCount:     votes,
		MemberCount:   len(l.members),
		At:            l.nowF(),
	}
}

func copyProposal(p domain.Proposal) domain.Proposal {
	if p.ExecutedAt != nil {
		at := *p.ExecutedAt
		p.ExecutedAt = &at
	}
	return p
}
