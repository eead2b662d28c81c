package cli

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/rally/internal/calculator"
	pb "github.com/mmynk/rally/pkg/proto"
)

// optionalArg returns args[0], or "" when no argument was given.
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newBalanceCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Show a balance, yours by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			addr, err := c.identity(ctx, optionalArg(args))
			if err != nil {
				return err
			}
			resp, err := c.ledger.GetBalance(ctx, connect.NewRequest(&pb.GetBalanceRequest{Address: addr}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintf(w, "%s\t%s\n", resp.Msg.Address, sol(resp.Msg.Balance))
			})
		},
	}
}

func newTransfersCommand(opts *RootOptions) *cobra.Command {
	var limit int32

	cmd := &cobra.Command{
		Use:   "transfers [address]",
		Short: "Show recent transfers, yours by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			addr, err := c.identity(ctx, optionalArg(args))
			if err != nil {
				return err
			}
			resp, err := c.ledger.ListTransfers(ctx, connect.NewRequest(&pb.ListTransfersRequest{Address: addr, Limit: limit}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				printTransfers(w, resp.Msg.Transfers)
			})
		},
	}

	cmd.Flags().Int32Var(&limit, "limit", 0, "number of transfers (default 50)")

	return cmd
}

func newFundCommand(opts *RootOptions) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "fund <amount>",
		Short: "Mint SOL from the development faucet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			amount, err := calculator.ParseSOL(args[0])
			if err != nil {
				return err
			}
			addr, err := c.identity(ctx, to)
			if err != nil {
				return err
			}
			resp, err := c.ledger.Fund(ctx, connect.NewRequest(&pb.FundRequest{Address: addr, Amount: amount}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintf(w, "%s\t%s\n", resp.Msg.Address, sol(resp.Msg.Balance))
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "address to fund (default yourself)")

	return cmd
}

func newSendCommand(opts *RootOptions) *cobra.Command {
	var memo string

	cmd := &cobra.Command{
		Use:   "send <recipient> <amount>",
		Short: "Pay SOL from your balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			to, err := c.identity(ctx, args[0])
			if err != nil {
				return err
			}
			amount, err := calculator.ParseSOL(args[1])
			if err != nil {
				return err
			}
			resp, err := c.ledger.Send(ctx, connect.NewRequest(&pb.SendRequest{Recipient: to, Amount: amount, Memo: memo}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintf(w, "Sent:\t%s to %s\n", sol(resp.Msg.Transfer.Amount), resp.Msg.Transfer.To)
				fmt.Fprintf(w, "Balance:\t%s\n", sol(resp.Msg.Balance))
			})
		},
	}

	cmd.Flags().StringVar(&memo, "memo", "", "note kept in the transfer journal")

	return cmd
}
