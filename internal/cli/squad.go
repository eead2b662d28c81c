package cli

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/rally/internal/calculator"
	pb "github.com/mmynk/rally/pkg/proto"
)

func newSquadCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "squad",
		Short: "Manage shared squad wallets",
	}

	cmd.AddCommand(newSquadInitCommand(opts))
	cmd.AddCommand(newSquadMemberCommand(opts, "add-member"))
	cmd.AddCommand(newSquadMemberCommand(opts, "remove-member"))
	cmd.AddCommand(newSquadDepositCommand(opts))
	cmd.AddCommand(newSquadWithdrawCommand(opts))
	cmd.AddCommand(newSquadShowCommand(opts))
	cmd.AddCommand(newSquadListCommand(opts))

	return cmd
}

func showSquad(cmd *cobra.Command, opts *RootOptions, sq *pb.Squad) error {
	return newPrinter(opts, cmd.OutOrStdout()).print(sq, func(w io.Writer) {
		printSquad(w, sq)
	})
}

func newSquadInitCommand(opts *RootOptions) *cobra.Command {
	var (
		name      string
		members   []string
		threshold string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create your squad; you become its authority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			limit, err := calculator.ParseSOL(threshold)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(members))
			for _, m := range members {
				id, err := c.identity(ctx, m)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			resp, err := c.squads.InitializeSquad(ctx, connect.NewRequest(&pb.InitializeSquadRequest{
				Name:           name,
				Members:        ids,
				SpendThreshold: limit,
			}))
			if err != nil {
				return err
			}
			return showSquad(cmd, opts, resp.Msg.Squad)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "squad name, up to 32 bytes")
	cmd.Flags().StringSliceVar(&members, "member", nil, "initial member (repeatable)")
	cmd.Flags().StringVar(&threshold, "threshold", "", "largest withdrawal allowed without a vote, in SOL")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("threshold")

	return cmd
}

func newSquadMemberCommand(opts *RootOptions, use string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <squad> <member>",
		Short: "Change squad membership (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			squad, err := c.squad(ctx, args[0])
			if err != nil {
				return err
			}
			member, err := c.identity(ctx, args[1])
			if err != nil {
				return err
			}

			var sq *pb.Squad
			if use == "add-member" {
				resp, err := c.squads.AddMember(ctx, connect.NewRequest(&pb.AddMemberRequest{Squad: squad, Member: member}))
				if err != nil {
					return err
				}
				sq = resp.Msg.Squad
			} else {
				resp, err := c.squads.RemoveMember(ctx, connect.NewRequest(&pb.RemoveMemberRequest{Squad: squad, Member: member}))
				if err != nil {
					return err
				}
				sq = resp.Msg.Squad
			}
			return showSquad(cmd, opts, sq)
		},
	}
}

func newSquadDepositCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <squad> <amount>",
		Short: "Move SOL from your balance into the squad vault",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			squad, err := c.squad(ctx, args[0])
			if err != nil {
				return err
			}
			amount, err := calculator.ParseSOL(args[1])
			if err != nil {
				return err
			}
			resp, err := c.squads.Deposit(ctx, connect.NewRequest(&pb.DepositRequest{Squad: squad, Amount: amount}))
			if err != nil {
				return err
			}
			return showSquad(cmd, opts, resp.Msg.Squad)
		},
	}
}

func newSquadWithdrawCommand(opts *RootOptions) *cobra.Command {
	var (
		to         string
		votePassed bool
	)

	cmd := &cobra.Command{
		Use:   "withdraw <squad> <amount>",
		Short: "Pay out of the squad vault",
		Long: `Pay out of the squad vault.

Amounts above the squad threshold need --vote-passed. The server does not
check the flag against any proposal; pass it only after a vote succeeded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			squad, err := c.squad(ctx, args[0])
			if err != nil {
				return err
			}
			amount, err := calculator.ParseSOL(args[1])
			if err != nil {
				return err
			}
			recipient, err := c.identity(ctx, to)
			if err != nil {
				return err
			}
			resp, err := c.squads.Withdraw(ctx, connect.NewRequest(&pb.WithdrawRequest{
				Squad:      squad,
				Recipient:  recipient,
				Amount:     amount,
				VotePassed: votePassed,
			}))
			if err != nil {
				return err
			}
			return showSquad(cmd, opts, resp.Msg.Squad)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient")
	cmd.Flags().BoolVar(&votePassed, "vote-passed", false, "assert that a vote approved this withdrawal")
	cmd.MarkFlagRequired("to")

	return cmd
}

func newSquadShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <squad>",
		Short: "Show a squad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			squad, err := c.squad(ctx, args[0])
			if err != nil {
				return err
			}
			resp, err := c.squads.GetSquad(ctx, connect.NewRequest(&pb.GetSquadRequest{Squad: squad}))
			if err != nil {
				return err
			}
			return showSquad(cmd, opts, resp.Msg.Squad)
		},
	}
}

func newSquadListCommand(opts *RootOptions) *cobra.Command {
	var member string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the squads you (or --member) belong to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			id, err := c.identity(ctx, member)
			if err != nil {
				return err
			}
			resp, err := c.squads.ListSquads(ctx, connect.NewRequest(&pb.ListSquadsRequest{Member: id}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintln(w, "SQUAD\tNAME\tMEMBERS\tBALANCE")
				for _, sq := range resp.Msg.Squads {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", sq.Address, sq.Name, len(sq.Members), sol(sq.VaultBalance))
				}
			})
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "member to list for")

	return cmd
}
