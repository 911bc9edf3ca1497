package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	ledgerv1 "collective-ledger/api/ledger/v1"
	"collective-ledger/internal/server/interceptors"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	addr    string
	token   string
	actor   string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Command-line client for the collective ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.addr, "addr", "localhost:8080", "ledger gRPC address")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "bearer access token")
	root.PersistentFlags().StringVar(&opts.actor, "actor", "", "actor identity sent as x-actor (dev servers only)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		newTokenCmd(),
		newJoinCmd(opts),
		newMemberCmd(opts),
		newProposeCmd(opts),
		newVoteCmd(opts),
		newExecuteCmd(opts),
		newProposalCmd(opts),
		newProposalsCmd(opts),
		newMembersCmd(opts),
	)
	return root
}

// outgoingContext attaches the caller identity from flags to ctx.
func (o *globalOptions) outgoingContext(ctx context.Context) context.Context {
	if o.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+o.token)
	}
	if o.actor != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, interceptors.ActorHeader, o.actor)
	}
	return ctx
}

// withClient dials the server, runs fn with a timed, identified context, and closes the connection.
func (o *globalOptions) withClient(cmd *cobra.Command, fn func(ctx context.Context, c ledgerv1.LedgerServiceClient) error) error {
	conn, err := grpc.NewClient(o.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()
	return fn(o.outgoingContext(ctx), ledgerv1.NewLedgerServiceClient(conn))
}
