package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"collective-ledger/internal/ledger/domain"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger(opts ...Option) *Ledger {
	return New(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func mustJoin(t *testing.T, l *Ledger, actors ...domain.Actor) {
	t.Helper()
	for _, a := range actors {
		if _, err := l.JoinDAO(a); err != nil {
			t.Fatalf("JoinDAO(%q): %v", a, err)
		}
	}
}

func mustPropose(t *testing.T, l *Ledger, actor domain.Actor, desc string) int {
	t.Helper()
	idx, _, err := l.CreateProposal(actor, desc)
	if err != nil {
		t.Fatalf("CreateProposal(%q): %v", actor, err)
	}
	return idx
}

func mustVote(t *testing.T, l *Ledger, idx int, actors ...domain.Actor) {
	t.Helper()
	for _, a := range actors {
		if _, err := l.Vote(a, idx); err != nil {
			t.Fatalf("Vote(%q, %d): %v", a, idx, err)
		}
	}
}

func TestJoinDAO_Success(t *testing.T) {
	l := newTestLedger()
	ev, err := l.JoinDAO("A")
	if err != nil {
		t.Fatalf("JoinDAO: %v", err)
	}
	if !l.IsMember("A") {
		t.Error("IsMember(A) = false after join")
	}
	if ev.Type != domain.EventMemberJoined {
		t.Errorf("event type = %q, want %q", ev.Type, domain.EventMemberJoined)
	}
	if ev.ProposalIndex != domain.NoProposal {
		t.Errorf("event proposal index = %d, want %d", ev.ProposalIndex, domain.NoProposal)
	}
	if ev.MemberCount != 1 {
		t.Errorf("event member count = %d, want 1", ev.MemberCount)
	}
	if !ev.At.Equal(fixedNow) {
		t.Errorf("event at = %v, want %v", ev.At, fixedNow)
	}
}

func TestJoinDAO_AlreadyMember(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A")
	_, err := l.JoinDAO("A")
	if !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("JoinDAO twice err = %v, want ErrAlreadyMember", err)
	}
	if n := l.MemberCount(); n != 1 {
		t.Errorf("MemberCount = %d, want 1", n)
	}
}

func TestJoinDAO_EmptyActor(t *testing.T) {
	l := newTestLedger()
	if _, err := l.JoinDAO(""); !errors.Is(err, ErrEmptyActor) {
		t.Fatalf("JoinDAO(\"\") err = %v, want ErrEmptyActor", err)
	}
	if n := l.MemberCount(); n != 0 {
		t.Errorf("MemberCount = %d, want 0", n)
	}
}

func TestIsMember_UnknownActor(t *testing.T) {
	l := newTestLedger()
	if l.IsMember("nobody") {
		t.Error("IsMember(nobody) = true on empty ledger")
	}
}

func TestCreateProposal_IndicesAreSequential(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A", "B")
	for want, actor := range []domain.Actor{"A", "B", "A"} {
		idx, ev, err := l.CreateProposal(actor, fmt.Sprintf("p%d", want))
		if err != nil {
			t.Fatalf("CreateProposal: %v", err)
		}
		if idx != want {
			t.Errorf("index = %d, want %d", idx, want)
		}
		if ev.ProposalIndex != want || ev.Type != domain.EventProposalCreated {
			t.Errorf("event = %+v, want proposal_created for %d", ev, want)
		}
	}
	if n := l.ProposalCount(); n != 3 {
		t.Errorf("ProposalCount = %d, want 3", n)
	}
}

func TestCreateProposal_InitialState(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "Fund X")

	p, err := l.GetProposal(idx)
	if err != nil {
		t.Fatalf("GetProposal: %v", err)
	}
	if p.Description != "Fund X" {
		t.Errorf("description = %q, want %q", p.Description, "Fund X")
	}
	if p.VoteCount != 0 || p.Executed {
		t.Errorf("proposal = %+v, want zero votes and not executed", p)
	}
	if p.Proposer != "A" {
		t.Errorf("proposer = %q, want %q", p.Proposer, "A")
	}
	if p.State() != domain.ProposalOpen {
		t.Errorf("state = %v, want open", p.State())
	}
	if p.ExecutedAt != nil {
		t.Errorf("ExecutedAt = %v, want nil", p.ExecutedAt)
	}
}

func TestCreateProposal_EmptyDescriptionAllowed(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "")
	p, err := l.GetProposal(idx)
	if err != nil {
		t.Fatalf("GetProposal: %v", err)
	}
	if p.Description != "" {
		t.Errorf("description = %q, want empty", p.Description)
	}
}

func TestCreateProposal_NotAMember(t *testing.T) {
	l := newTestLedger()
	_, _, err := l.CreateProposal("Z", "x")
	if !errors.Is(err, ErrNotAMember) {
		t.Fatalf("err = %v, want ErrNotAMember", err)
	}
	if n := l.ProposalCount(); n != 0 {
		t.Errorf("ProposalCount = %d, want 0", n)
	}
}

func TestVote_IncrementsCount(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A", "B")
	idx := mustPropose(t, l, "A", "p")

	ev, err := l.Vote("A", idx)
	if err != nil {
		t.Fatalf("Vote: %v", err)
	}
	if ev.VoteCount != 1 {
		t.Errorf("event vote count = %d, want 1", ev.VoteCount)
	}
	mustVote(t, l, idx, "B")
	p, _ := l.GetProposal(idx)
	if p.VoteCount != 2 {
		t.Errorf("VoteCount = %d, want 2", p.VoteCount)
	}
	voted, err := l.HasVoted("B", idx)
	if err != nil || !voted {
		t.Errorf("HasVoted(B) = %v, %v, want true, nil", voted, err)
	}
}

func TestVote_AlreadyVoted(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A")

	_, err := l.Vote("A", idx)
	if !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("second vote err = %v, want ErrAlreadyVoted", err)
	}
	p, _ := l.GetProposal(idx)
	if p.VoteCount != 1 {
		t.Errorf("VoteCount = %d, want 1", p.VoteCount)
	}
}

func TestVote_VotesAreScopedPerProposal(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A")
	p0 := mustPropose(t, l, "A", "first")
	p1 := mustPropose(t, l, "A", "second")
	mustVote(t, l, p0, "A")
	mustVote(t, l, p1, "A")

	for _, idx := range []int{p0, p1} {
		p, _ := l.GetProposal(idx)
		if p.VoteCount != 1 {
			t.Errorf("proposal %d VoteCount = %d, want 1", idx, p.VoteCount)
		}
	}
}

func TestVote_ErrorPrecedence(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A")

	tests := []struct {
		name  string
		actor domain.Actor
		index int
		want  error
	}{
		{"non-member on invalid index", "Z", 99, ErrNotAMember},
		{"non-member on valid index", "Z", idx, ErrNotAMember},
		{"member on negative index", "A", -1, ErrInvalidProposal},
		{"member on index past end", "A", 1, ErrInvalidProposal},
		{"member voting twice", "A", idx, ErrAlreadyVoted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Vote(tt.actor, tt.index)
			if !errors.Is(err, tt.want) {
				t.Errorf("Vote(%q, %d) err = %v, want %v", tt.actor, tt.index, err, tt.want)
			}
		})
	}
}

func TestVote_OnExecutedProposalIsAccepted(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A", "B")
	if _, err := l.ExecuteProposal(context.Background(), "A", idx); err != nil {
		t.Fatalf("ExecuteProposal: %v", err)
	}

	mustVote(t, l, idx, "C")
	p, _ := l.GetProposal(idx)
	if p.VoteCount != 3 || !p.Executed {
		t.Errorf("proposal = %+v, want 3 votes and executed", p)
	}
}

func TestExecuteProposal_Majority(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A", "B")

	ev, err := l.ExecuteProposal(ctx, "C", idx)
	if err != nil {
		t.Fatalf("ExecuteProposal: %v", err)
	}
	if ev.Type != domain.EventProposalExecuted || ev.Actor != "C" || ev.VoteCount != 2 || ev.MemberCount != 3 {
		t.Errorf("event = %+v", ev)
	}
	p, _ := l.GetProposal(idx)
	if !p.Executed || p.State() != domain.ProposalExecuted {
		t.Errorf("proposal = %+v, want executed", p)
	}
	if p.ExecutedAt == nil || !p.ExecutedAt.Equal(fixedNow) {
		t.Errorf("ExecutedAt = %v, want %v", p.ExecutedAt, fixedNow)
	}
}

func TestExecuteProposal_TieIsInsufficient(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A", "B", "C", "D")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A", "B")

	_, err := l.ExecuteProposal(ctx, "A", idx)
	if !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("err = %v, want ErrInsufficientVotes", err)
	}
	p, _ := l.GetProposal(idx)
	if p.Executed {
		t.Error("proposal executed on a tie")
	}
}

func TestExecuteProposal_RetryAfterMoreVotes(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A")

	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("first execute err = %v, want ErrInsufficientVotes", err)
	}
	mustVote(t, l, idx, "B")
	if _, err := l.ExecuteProposal(ctx, "A", idx); err != nil {
		t.Fatalf("retry execute: %v", err)
	}
}

func TestExecuteProposal_MemberGrowthRaisesThreshold(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A", "B")
	mustJoin(t, l, "D", "E")

	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("err = %v, want ErrInsufficientVotes (2 of 5)", err)
	}
	mustVote(t, l, idx, "C")
	if _, err := l.ExecuteProposal(ctx, "E", idx); err != nil {
		t.Fatalf("execute with 3 of 5: %v", err)
	}
}

func TestExecuteProposal_SingleMember(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "p")

	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("err = %v, want ErrInsufficientVotes (0 of 1)", err)
	}
	mustVote(t, l, idx, "A")
	if _, err := l.ExecuteProposal(ctx, "A", idx); err != nil {
		t.Fatalf("execute with 1 of 1: %v", err)
	}
}

func TestExecuteProposal_AlreadyExecuted(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A")
	if _, err := l.ExecuteProposal(ctx, "A", idx); err != nil {
		t.Fatalf("ExecuteProposal: %v", err)
	}

	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrAlreadyExecuted) {
		t.Fatalf("second execute err = %v, want ErrAlreadyExecuted", err)
	}

	// 1 of 4 is no longer a majority; the executed flag still decides.
	mustJoin(t, l, "B", "C", "D")
	if _, err := l.ExecuteProposal(ctx, "B", idx); !errors.Is(err, ErrAlreadyExecuted) {
		t.Fatalf("execute after membership grew err = %v, want ErrAlreadyExecuted", err)
	}
	p, _ := l.GetProposal(idx)
	if !p.Executed || p.VoteCount != 1 {
		t.Errorf("proposal = %+v, want executed with 1 vote", p)
	}
}

func TestExecuteProposal_ErrorPrecedence(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A")
	if _, err := l.ExecuteProposal(ctx, "A", idx); err != nil {
		t.Fatalf("ExecuteProposal: %v", err)
	}

	tests := []struct {
		name  string
		actor domain.Actor
		index int
		want  error
	}{
		{"non-member on executed proposal", "Z", idx, ErrNotAMember},
		{"non-member on invalid index", "Z", 7, ErrNotAMember},
		{"member on invalid index", "A", 7, ErrInvalidProposal},
		{"member on executed proposal", "A", idx, ErrAlreadyExecuted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.ExecuteProposal(ctx, tt.actor, tt.index)
			if !errors.Is(err, tt.want) {
				t.Errorf("ExecuteProposal(%q, %d) err = %v, want %v", tt.actor, tt.index, err, tt.want)
			}
		})
	}
}

func TestExecuteProposal_CustomRule(t *testing.T) {
	ctx := context.Background()
	var seen Tally
	unanimous := RuleFunc(func(_ context.Context, t Tally) (bool, error) {
		seen = t
		return t.VoteCount == t.MemberCount, nil
	})
	l := newTestLedger(WithRule(unanimous))
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A", "B")

	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("err = %v, want ErrInsufficientVotes", err)
	}
	if seen != (Tally{ProposalIndex: idx, VoteCount: 2, MemberCount: 3}) {
		t.Errorf("rule saw %+v", seen)
	}
}

func TestExecuteProposal_RuleCannotBypassMajority(t *testing.T) {
	ctx := context.Background()
	calls := 0
	always := RuleFunc(func(context.Context, Tally) (bool, error) {
		calls++
		return true, nil
	})
	l := newTestLedger(WithRule(always))
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")

	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("err = %v, want ErrInsufficientVotes (0 of 3)", err)
	}
	mustVote(t, l, idx, "A")
	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("err = %v, want ErrInsufficientVotes (1 of 3)", err)
	}
	if calls != 0 {
		t.Errorf("rule consulted %d times without a majority", calls)
	}
	p, _ := l.GetProposal(idx)
	if p.Executed {
		t.Fatal("proposal executed without a majority")
	}

	mustVote(t, l, idx, "B")
	if _, err := l.ExecuteProposal(ctx, "A", idx); err != nil {
		t.Fatalf("execute with 2 of 3: %v", err)
	}
	if calls != 1 {
		t.Errorf("rule calls = %d, want 1", calls)
	}
}

func TestExecuteProposal_RuleErrorLeavesProposalOpen(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("rule unavailable")
	l := newTestLedger(WithRule(RuleFunc(func(context.Context, Tally) (bool, error) {
		return false, boom
	})))
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A")

	_, err := l.ExecuteProposal(ctx, "A", idx)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped rule error", err)
	}
	if IsRejection(err) {
		t.Errorf("rule failure classified as rejection: %v", err)
	}
	p, _ := l.GetProposal(idx)
	if p.Executed {
		t.Error("proposal executed despite rule error")
	}
}

func TestGetProposal_InvalidIndex(t *testing.T) {
	l := newTestLedger()
	for _, idx := range []int{-1, 0, 5} {
		if _, err := l.GetProposal(idx); !errors.Is(err, ErrInvalidProposal) {
			t.Errorf("GetProposal(%d) err = %v, want ErrInvalidProposal", idx, err)
		}
	}
}

func TestGetProposal_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A")
	if _, err := l.ExecuteProposal(ctx, "A", idx); err != nil {
		t.Fatalf("ExecuteProposal: %v", err)
	}

	p, _ := l.GetProposal(idx)
	p.VoteCount = 100
	p.Description = "tampered"
	*p.ExecutedAt = time.Time{}

	again, _ := l.GetProposal(idx)
	if again.VoteCount != 1 || again.Description != "p" {
		t.Errorf("stored proposal changed through copy: %+v", again)
	}
	if !again.ExecutedAt.Equal(fixedNow) {
		t.Errorf("ExecutedAt = %v, want %v", again.ExecutedAt, fixedNow)
	}
}

func TestGetProposal_NonMemberMayRead(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A")
	idx := mustPropose(t, l, "A", "public")
	if _, err := l.GetProposal(idx); err != nil {
		t.Fatalf("GetProposal: %v", err)
	}
}

func TestHasVoted_InvalidIndex(t *testing.T) {
	l := newTestLedger()
	if _, err := l.HasVoted("A", 0); !errors.Is(err, ErrInvalidProposal) {
		t.Errorf("err = %v, want ErrInvalidProposal", err)
	}
}

func TestMembers_Sorted(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "carol", "alice", "bob")
	got := l.Members()
	want := []domain.Actor{"alice", "bob", "carol"}
	if len(got) != len(want) {
		t.Fatalf("Members = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Members[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListProposals_InIndexOrder(t *testing.T) {
	l := newTestLedger()
	mustJoin(t, l, "A")
	mustPropose(t, l, "A", "zero")
	mustPropose(t, l, "A", "one")

	got := l.ListProposals()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i, p := range got {
		if p.Index != i {
			t.Errorf("proposals[%d].Index = %d", i, p.Index)
		}
	}
	got[0].Description = "changed"
	if p, _ := l.GetProposal(0); p.Description != "zero" {
		t.Errorf("description = %q after mutating list copy", p.Description)
	}
}

func TestEventSeq_IncreasesOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	var seqs []uint64

	ev, _ := l.JoinDAO("A")
	seqs = append(seqs, ev.Seq)
	if _, err := l.JoinDAO("A"); err == nil {
		t.Fatal("expected ErrAlreadyMember")
	}
	_, ev, _ = l.CreateProposal("A", "p")
	seqs = append(seqs, ev.Seq)
	ev, _ = l.Vote("A", 0)
	seqs = append(seqs, ev.Seq)
	if _, err := l.Vote("A", 0); err == nil {
		t.Fatal("expected ErrAlreadyVoted")
	}
	ev, _ = l.ExecuteProposal(ctx, "A", 0)
	seqs = append(seqs, ev.Seq)

	for i, s := range seqs {
		if s != uint64(i+1) {
			t.Errorf("seq[%d] = %d, want %d", i, s, i+1)
		}
	}
}

func TestWorkedExample(t *testing.T) {
	ctx := context.Background()
	l := New()
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "Fund X")
	if idx != 0 {
		t.Fatalf("index = %d, want 0", idx)
	}
	mustVote(t, l, idx, "A")
	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrInsufficientVotes) {
		t.Fatalf("execute at 1/3 err = %v", err)
	}
	mustVote(t, l, idx, "B")
	if _, err := l.Vote("B", idx); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("repeat vote err = %v", err)
	}
	if _, err := l.ExecuteProposal(ctx, "C", idx); err != nil {
		t.Fatalf("execute at 2/3: %v", err)
	}
	if _, err := l.ExecuteProposal(ctx, "A", idx); !errors.Is(err, ErrAlreadyExecuted) {
		t.Fatalf("re-execute err = %v", err)
	}
	p, _ := l.GetProposal(idx)
	if p.Description != "Fund X" || p.VoteCount != 2 || !p.Executed {
		t.Errorf("final proposal = %+v", p)
	}
}

func TestConcurrentVotes(t *testing.T) {
	const n = 64
	l := New()
	actors := make([]domain.Actor, n)
	for i := range actors {
		actors[i] = domain.Actor(fmt.Sprintf("member-%02d", i))
	}
	mustJoin(t, l, actors...)
	idx := mustPropose(t, l, actors[0], "p")

	var wg sync.WaitGroup
	errs := make(chan error, n*2)
	for _, a := range actors {
		for range 2 {
			wg.Add(1)
			go func(a domain.Actor) {
				defer wg.Done()
				if _, err := l.Vote(a, idx); err != nil {
					errs <- err
				}
			}(a)
		}
	}
	wg.Wait()
	close(errs)

	dupes := 0
	for err := range errs {
		if !errors.Is(err, ErrAlreadyVoted) {
			t.Errorf("unexpected error: %v", err)
		}
		dupes++
	}
	if dupes != n {
		t.Errorf("AlreadyVoted count = %d, want %d", dupes, n)
	}
	p, _ := l.GetProposal(idx)
	if p.VoteCount != n {
		t.Errorf("VoteCount = %d, want %d", p.VoteCount, n)
	}
}

func TestConcurrentExecute_OnlyOneSucceeds(t *testing.T) {
	ctx := context.Background()
	l := New()
	mustJoin(t, l, "A", "B", "C")
	idx := mustPropose(t, l, "A", "p")
	mustVote(t, l, idx, "A", "B")

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for _, a := range []domain.Actor{"A", "B", "C", "A", "B", "C"} {
		wg.Add(1)
		go func(a domain.Actor) {
			defer wg.Done()
			_, err := l.ExecuteProposal(ctx, a, idx)
			if err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			} else if !errors.Is(err, ErrAlreadyExecuted) {
				t.Errorf("unexpected error: %v", err)
			}
		}(a)
	}
	wg.Wait()
	if ok != 1 {
		t.Errorf("successful executions = %d, want 1", ok)
	}
}
