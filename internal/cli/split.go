package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/rally/internal/calculator"
	pb "github.com/mmynk/rally/pkg/proto"
)

func newSplitCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split expenses and settle what you owe",
	}

	cmd.AddCommand(newSplitCalcCommand(opts))
	cmd.AddCommand(newSplitCreateCommand(opts))
	cmd.AddCommand(newSplitSettleCommand(opts))
	cmd.AddCommand(newSplitShowCommand(opts))
	cmd.AddCommand(newSplitListCommand(opts))

	return cmd
}

// identities resolves every reference in refs.
func (c *clients) identities(ctx context.Context, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := c.identity(ctx, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseItem reads "description:amount:who,who", e.g. "Pizza:0.2:@alice,@bob".
func (c *clients) parseItem(ctx context.Context, s string) (*pb.Item, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid item %q: want description:amount:participants", s)
	}
	amount, err := calculator.ParseSOL(parts[1])
	if err != nil {
		return nil, err
	}
	ids, err := c.identities(ctx, strings.Split(parts[2], ","))
	if err != nil {
		return nil, err
	}
	return &pb.Item{Description: parts[0], Amount: amount, ParticipantIds: ids}, nil
}

// parseShare reads "who=amount", e.g. "@bob=0.3".
func (c *clients) parseShare(ctx context.Context, s string) (*pb.SplitShare, error) {
	who, value, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("invalid share %q: want debtor=amount", s)
	}
	debtor, err := c.identity(ctx, who)
	if err != nil {
		return nil, err
	}
	amount, err := calculator.ParseSOL(value)
	if err != nil {
		return nil, err
	}
	return &pb.SplitShare{Debtor: debtor, Amount: amount}, nil
}

func (c *clients) parseItems(ctx context.Context, specs []string) ([]*pb.Item, error) {
	items := make([]*pb.Item, 0, len(specs))
	for _, spec := range specs {
		item, err := c.parseItem(ctx, spec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func showSplit(cmd *cobra.Command, opts *RootOptions, sp *pb.Split) error {
	return newPrinter(opts, cmd.OutOrStdout()).print(sp, func(w io.Writer) {
		printSplit(w, sp)
	})
}

func newSplitCalcCommand(opts *RootOptions) *cobra.Command {
	var (
		participants []string
		items        []string
	)

	cmd := &cobra.Command{
		Use:   "calc <total>",
		Short: "Preview how a bill divides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			total, err := calculator.ParseSOL(args[0])
			if err != nil {
				return err
			}
			ids, err := c.identities(ctx, participants)
			if err != nil {
				return err
			}
			parsed, err := c.parseItems(ctx, items)
			if err != nil {
				return err
			}

			resp, err := c.splits.CalculateSplit(ctx, connect.NewRequest(&pb.CalculateSplitRequest{
				Items:          parsed,
				Total:          total,
				ParticipantIds: ids,
			}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintln(w, "PARTICIPANT\tSUBTOTAL\tEXTRA\tTOTAL")
				for _, s := range resp.Msg.Splits {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Participant, sol(s.Subtotal), sol(s.Extra), sol(s.Total))
				}
			})
		},
	}

	cmd.Flags().StringSliceVar(&participants, "participant", nil, "participant (repeatable)")
	cmd.Flags().StringArrayVar(&items, "item", nil, `item as "description:amount:who,who" (repeatable)`)
	cmd.MarkFlagRequired("participant")

	return cmd
}

func newSplitCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		squad        string
		shares       []string
		participants []string
		items        []string
	)

	cmd := &cobra.Command{
		Use:   "create <description> <total>",
		Short: "Record an expense you paid",
		Long: `Record an expense you paid. Give each debtor's share with --share, or
list --participant and --item to divide the bill the way "split calc" does.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			total, err := calculator.ParseSOL(args[1])
			if err != nil {
				return err
			}
			req := &pb.CreateSplitRequest{Description: args[0], TotalAmount: total}
			if squad != "" {
				if req.Squad, err = c.squad(ctx, squad); err != nil {
					return err
				}
			}
			for _, s := range shares {
				share, err := c.parseShare(ctx, s)
				if err != nil {
					return err
				}
				req.Shares = append(req.Shares, share)
			}
			if req.ParticipantIds, err = c.identities(ctx, participants); err != nil {
				return err
			}
			if req.Items, err = c.parseItems(ctx, items); err != nil {
				return err
			}

			resp, err := c.splits.CreateSplit(ctx, connect.NewRequest(req))
			if err != nil {
				return err
			}
			return showSplit(cmd, opts, resp.Msg.Split)
		},
	}

	cmd.Flags().StringVar(&squad, "squad", "", "squad the expense belongs to")
	cmd.Flags().StringArrayVar(&shares, "share", nil, `debtor share as "who=amount" (repeatable)`)
	cmd.Flags().StringSliceVar(&participants, "participant", nil, "participant to divide the bill between (repeatable)")
	cmd.Flags().StringArrayVar(&items, "item", nil, `item as "description:amount:who,who" (repeatable)`)
	cmd.MarkFlagsMutuallyExclusive("share", "participant")
	cmd.MarkFlagsOneRequired("share", "participant")

	return cmd
}

func newSplitSettleCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "settle <split-id>",
		Short: "Pay your share of a split",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.clients().splits.SettleSplit(cmd.Context(), connect.NewRequest(&pb.SettleSplitRequest{SplitId: args[0]}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintf(w, "Paid:\t%s to %s\n", sol(resp.Msg.Amount), resp.Msg.Split.Creator)
				printSplit(w, resp.Msg.Split)
			})
		},
	}
}

func newSplitShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <split-id>",
		Short: "Show a split",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.clients().splits.GetSplit(cmd.Context(), connect.NewRequest(&pb.GetSplitRequest{SplitId: args[0]}))
			if err != nil {
				return err
			}
			return showSplit(cmd, opts, resp.Msg.Split)
		},
	}
}

func newSplitListCommand(opts *RootOptions) *cobra.Command {
	var party string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the splits you (or --party) created or owe on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			id, err := c.identity(ctx, party)
			if err != nil {
				return err
			}
			resp, err := c.splits.ListSplits(ctx, connect.NewRequest(&pb.ListSplitsRequest{Party: id}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintln(w, "SPLIT\tDESCRIPTION\tCREATOR\tTOTAL\tOPEN\tSTATUS")
				for _, sp := range resp.Msg.Splits {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
						sp.Id, sp.Description, sp.Creator, sol(sp.TotalAmount), sp.RemainingUnsettled, sp.Status)
				}
			})
		},
	}

	cmd.Flags().StringVar(&party, "party", "", "creator or debtor to list for")

	return cmd
}
