package main

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/timestamppb"

	ledgerv1 "collective-ledger/api/ledger/v1"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	want := []string{"token", "join", "member", "propose", "vote", "execute", "proposal", "proposals", "members"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not found (%v)", name, err)
		}
	}
}

func TestOutgoingContext(t *testing.T) {
	opts := &globalOptions{token: "abc", actor: "alice"}
	md, ok := metadata.FromOutgoingContext(opts.outgoingContext(context.Background()))
	if !ok {
		t.Fatal("no outgoing metadata")
	}
	if got := md.Get("authorization"); len(got) != 1 || got[0] != "Bearer abc" {
		t.Errorf("authorization = %v, want [Bearer abc]", got)
	}
	if got := md.Get("x-actor"); len(got) != 1 || got[0] != "alice" {
		t.Errorf("x-actor = %v, want [alice]", got)
	}

	empty := &globalOptions{}
	if _, ok := metadata.FromOutgoingContext(empty.outgoingContext(context.Background())); ok {
		t.Error("expected no metadata without token or actor")
	}
}

func TestParseIndex(t *testing.T) {
	if idx, err := parseIndex("3"); err != nil || idx != 3 {
		t.Errorf("parseIndex(3) = %d, %v", idx, err)
	}
	if _, err := parseIndex("three"); err == nil {
		t.Error("parseIndex(three) should fail")
	}
}

func TestProposalRows(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	executed := created.Add(time.Hour)
	rows := proposalRows([]*ledgerv1.Proposal{
		{Index: 0, Description: "Fund X", VoteCount: 2, State: "executed", Proposer: "A", CreatedAt: timestamppb.New(created), ExecutedAt: timestamppb.New(executed)},
		nil,
		{Index: 1, Description: "Fund Y", State: "open", CreatedAt: timestamppb.New(created)},
	})
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[1][0] != "0" || rows[1][2] != "2" || rows[1][6] != "2026-03-01 13:00:00" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][3] != "open" || rows[2][5] != "2026-03-01 12:00:00" || rows[2][6] != "-" {
		t.Errorf("row 2 = %v", rows[2])
	}
}
