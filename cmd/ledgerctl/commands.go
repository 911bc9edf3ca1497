package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	ledgerv1 "collective-ledger/api/ledger/v1"
	"collective-ledger/internal/config"
	"collective-ledger/internal/security"
)

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <actor>",
		Short: "Mint an access token for actor using JWT_PRIVATE_KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWTPrivateKey == "" {
				return fmt.Errorf("JWT_PRIVATE_KEY is not set")
			}
			tokens, err := security.NewTokenProviderFromPEM(cfg.JWTPrivateKey, cfg.JWTPublicKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
			if err != nil {
				return err
			}
			token, expiresAt, err := tokens.IssueAccess(args[0])
			if err != nil {
				return err
			}
			pterm.Info.Printfln("expires at %s", expiresAt.Format("2006-01-02T15:04:05Z07:00"))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func newJoinCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "join",
		Short: "Join the ledger as the current actor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.JoinDAO(ctx, &ledgerv1.JoinDAORequest{})
				if err != nil {
					return err
				}
				pterm.Success.Printfln("%s joined (%d members)", resp.GetMember(), resp.GetMemberCount())
				return nil
			})
		},
	}
}

func newMemberCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "member <actor>",
		Short: "Check whether actor is a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.IsMember(ctx, &ledgerv1.IsMemberRequest{Actor: args[0]})
				if err != nil {
					return err
				}
				if resp.GetIsMember() {
					pterm.Success.Printfln("%s is a member", args[0])
				} else {
					pterm.Warning.Printfln("%s is not a member", args[0])
				}
				return nil
			})
		},
	}
}

func newProposeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "propose <description>",
		Short: "Create a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.CreateProposal(ctx, &ledgerv1.CreateProposalRequest{Description: args[0]})
				if err != nil {
					return err
				}
				pterm.Success.Printfln("created proposal %d", resp.GetIndex())
				return nil
			})
		},
	}
}

func newVoteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <index>",
		Short: "Vote for a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.Vote(ctx, &ledgerv1.VoteRequest{ProposalIndex: idx})
				if err != nil {
					return err
				}
				pterm.Success.Printfln("voted on proposal %d (%d votes)", idx, resp.GetVoteCount())
				return nil
			})
		},
	}
}

func newExecuteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "execute <index>",
		Short: "Execute a proposal that has a majority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.ExecuteProposal(ctx, &ledgerv1.ExecuteProposalRequest{ProposalIndex: idx})
				if err != nil {
					return err
				}
				pterm.Success.Printfln("executed proposal %d", resp.GetProposal().GetIndex())
				return nil
			})
		},
	}
}

func newProposalCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "proposal <index>",
		Short: "Show one proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.GetProposal(ctx, &ledgerv1.GetProposalRequest{ProposalIndex: idx})
				if err != nil {
					return err
				}
				return renderProposals([]*ledgerv1.Proposal{resp.GetProposal()})
			})
		},
	}
}

func newProposalsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "proposals",
		Short: "List all proposals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.ListProposals(ctx, &ledgerv1.ListProposalsRequest{})
				if err != nil {
					return err
				}
				if len(resp.GetProposals()) == 0 {
					pterm.Info.Println("no proposals")
					return nil
				}
				return renderProposals(resp.GetProposals())
			})
		},
	}
}

func newMembersCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c ledgerv1.LedgerServiceClient) error {
				resp, err := c.ListMembers(ctx, &ledgerv1.ListMembersRequest{})
				if err != nil {
					return err
				}
				if len(resp.GetMembers()) == 0 {
					pterm.Info.Println("no members")
					return nil
				}
				items := make([]pterm.BulletListItem, 0, len(resp.GetMembers()))
				for _, m := range resp.GetMembers() {
					items = append(items, pterm.BulletListItem{Level: 0, Text: m})
				}
				return pterm.DefaultBulletList.WithItems(items).Render()
			})
		},
	}
}

func parseIndex(s string) (int64, error) {
	idx, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid proposal index %q", s)
	}
	return idx, nil
}
