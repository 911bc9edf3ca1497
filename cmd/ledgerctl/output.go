package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"google.golang.org/protobuf/types/known/timestamppb"

	ledgerv1 "collective-ledger/api/ledger/v1"
)

const timeLayout = "2006-01-02 15:04:05"

func renderProposals(list []*ledgerv1.Proposal) error {
	return pterm.DefaultTable.WithHasHeader().WithData(proposalRows(list)).Render()
}

// proposalRows builds the table for list, header first.
func proposalRows(list []*ledgerv1.Proposal) pterm.TableData {
	rows := pterm.TableData{{"INDEX", "DESCRIPTION", "VOTES", "STATE", "PROPOSER", "CREATED", "EXECUTED"}}
	for _, p := range list {
		if p == nil {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.GetIndex(), 10),
			p.GetDescription(),
			strconv.FormatInt(p.GetVoteCount(), 10),
			p.GetState(),
			p.GetProposer(),
			formatTime(p.GetCreatedAt()),
			formatTime(p.GetExecutedAt()),
		})
	}
	return rows
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().UTC().Format(timeLayout)
}
