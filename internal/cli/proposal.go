package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/rally/internal/address"
	"github.com/mmynk/rally/internal/calculator"
	pb "github.com/mmynk/rally/pkg/proto"
)

func newProposalCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Vote on squad spending",
		Long: `Vote on squad spending.

A proposal is named by its squad and numeric id: "<squad> <id>". Executing a
proposal only records the outcome; pay it out with "squad withdraw
--vote-passed".`,
	}

	cmd.AddCommand(newProposalCreateCommand(opts))
	cmd.AddCommand(newProposalVoteCommand(opts))
	cmd.AddCommand(newProposalExecuteCommand(opts))
	cmd.AddCommand(newProposalShowCommand(opts))
	cmd.AddCommand(newProposalListCommand(opts))

	return cmd
}

func (c *clients) proposalAddress(ctx context.Context, squadRef, id string) (string, error) {
	squad, err := c.squad(ctx, squadRef)
	if err != nil {
		return "", err
	}
	proposalID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid proposal id %q: %w", id, err)
	}
	return address.Proposal(squad, proposalID), nil
}

func showProposal(cmd *cobra.Command, opts *RootOptions, p *pb.Proposal) error {
	return newPrinter(opts, cmd.OutOrStdout()).print(p, func(w io.Writer) {
		printProposal(w, p)
	})
}

func newProposalCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		id          uint64
		title       string
		description string
		amount      string
		to          string
		votingFor   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create <squad>",
		Short: "Propose a payment from a squad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			squad, err := c.squad(ctx, args[0])
			if err != nil {
				return err
			}
			recipient, err := c.identity(ctx, to)
			if err != nil {
				return err
			}
			units, err := calculator.ParseSOL(amount)
			if err != nil {
				return err
			}

			resp, err := c.votes.CreateProposal(ctx, connect.NewRequest(&pb.CreateProposalRequest{
				Squad:          squad,
				ProposalId:     id,
				Title:          title,
				Description:    description,
				Amount:         units,
				Recipient:      recipient,
				VotingDeadline: time.Now().Add(votingFor).Unix(),
			}))
			if err != nil {
				return err
			}
			return showProposal(cmd, opts, resp.Msg.Proposal)
		},
	}

	cmd.Flags().Uint64Var(&id, "id", 0, "proposal id within the squad")
	cmd.Flags().StringVar(&title, "title", "", "title, up to 64 bytes")
	cmd.Flags().StringVar(&description, "description", "", "description, up to 256 bytes")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in SOL")
	cmd.Flags().StringVar(&to, "to", "", "recipient")
	cmd.Flags().DurationVar(&votingFor, "voting-period", 72*time.Hour, "how long voting stays open")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("to")

	return cmd
}

func newProposalVoteCommand(opts *RootOptions) *cobra.Command {
	var no bool

	cmd := &cobra.Command{
		Use:   "vote <squad> <id>",
		Short: "Vote yes, or no with --no",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			proposal, err := c.proposalAddress(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			resp, err := c.votes.CastVote(ctx, connect.NewRequest(&pb.CastVoteRequest{Proposal: proposal, Vote: !no}))
			if err != nil {
				return err
			}
			return showProposal(cmd, opts, resp.Msg.Proposal)
		},
	}

	cmd.Flags().BoolVar(&no, "no", false, "vote against")

	return cmd
}

func newProposalExecuteCommand(opts *RootOptions) *cobra.Command {
	var members uint32

	cmd := &cobra.Command{
		Use:   "execute <squad> <id>",
		Short: "Record a passed proposal as executed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			squad, err := c.squad(ctx, args[0])
			if err != nil {
				return err
			}
			proposal, err := c.proposalAddress(ctx, squad, args[1])
			if err != nil {
				return err
			}
			if members == 0 {
				sq, err := c.squads.GetSquad(ctx, connect.NewRequest(&pb.GetSquadRequest{Squad: squad}))
				if err != nil {
					return fmt.Errorf("count squad members (or pass --members): %w", err)
				}
				members = uint32(len(sq.Msg.Squad.Members))
			}

			resp, err := c.votes.ExecuteProposal(ctx, connect.NewRequest(&pb.ExecuteProposalRequest{
				Proposal:     proposal,
				TotalMembers: members,
			}))
			if err != nil {
				return err
			}
			return showProposal(cmd, opts, resp.Msg.Proposal)
		},
	}

	cmd.Flags().Uint32Var(&members, "members", 0, "squad size the quorum is computed from (default: current member count)")

	return cmd
}

func newProposalShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <squad> <id>",
		Short: "Show a proposal and its status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			proposal, err := c.proposalAddress(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			resp, err := c.votes.GetProposal(ctx, connect.NewRequest(&pb.GetProposalRequest{Proposal: proposal}))
			if err != nil {
				return err
			}
			return showProposal(cmd, opts, resp.Msg.Proposal)
		},
	}
}

func newProposalListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <squad>",
		Short: "List a squad's proposals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			squad, err := c.squad(ctx, args[0])
			if err != nil {
				return err
			}
			resp, err := c.votes.ListProposals(ctx, connect.NewRequest(&pb.ListProposalsRequest{Squad: squad}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tTITLE\tAMOUNT\tYES\tNO\tSTATUS")
				for _, p := range resp.Msg.Proposals {
					fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n", p.ProposalId, p.Title, sol(p.Amount), p.YesVotes, p.NoVotes, p.Status)
				}
			})
		},
	}
}
