package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/rally/internal/address"
	"github.com/mmynk/rally/internal/calculator"
	pb "github.com/mmynk/rally/pkg/proto"
)

func newStreamCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Pay someone by the second",
		Long: `Pay someone by the second.

A stream is named by its sender and the sender's numeric stream id, so the
commands below take "<sender> <id>", e.g. "rallyctl stream show @alice 1".`,
	}

	cmd.AddCommand(newStreamCreateCommand(opts))
	cmd.AddCommand(newStreamActionCommand(opts, "withdraw", "Collect what the stream has paid out so far (recipient only)"))
	cmd.AddCommand(newStreamActionCommand(opts, "cancel", "Settle and close the stream (sender only)"))
	cmd.AddCommand(newStreamActionCommand(opts, "show", "Show a stream"))
	cmd.AddCommand(newStreamListCommand(opts))

	return cmd
}

// streamAddress derives a stream address from "<sender> <id>" arguments.
func (c *clients) streamAddress(ctx context.Context, sender, id string) (string, error) {
	senderID, err := c.identity(ctx, sender)
	if err != nil {
		return "", err
	}
	streamID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid stream id %q: %w", id, err)
	}
	return address.Stream(senderID, streamID), nil
}

func showStream(cmd *cobra.Command, opts *RootOptions, v proto.Message, s *pb.Stream, extra func(w io.Writer)) error {
	return newPrinter(opts, cmd.OutOrStdout()).print(v, func(w io.Writer) {
		printStream(w, s)
		if extra != nil {
			extra(w)
		}
	})
}

func newStreamCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		to       string
		id       uint64
		rate     string
		start    int64
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Fund a stream; the whole amount leaves your balance now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			recipient, err := c.identity(ctx, to)
			if err != nil {
				return err
			}
			perSecond, err := calculator.ParseSOL(rate)
			if err != nil {
				return err
			}
			if start == 0 {
				start = time.Now().Unix()
			}
			if duration < time.Second {
				return fmt.Errorf("duration must be at least 1s")
			}

			resp, err := c.streams.CreateStream(ctx, connect.NewRequest(&pb.CreateStreamRequest{
				Recipient:       recipient,
				StreamId:        id,
				AmountPerSecond: perSecond,
				StartTime:       start,
				EndTime:         start + int64(duration/time.Second),
			}))
			if err != nil {
				return err
			}
			return showStream(cmd, opts, resp.Msg.Stream, resp.Msg.Stream, nil)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient")
	cmd.Flags().Uint64Var(&id, "id", 0, "your id for this stream")
	cmd.Flags().StringVar(&rate, "rate", "", "SOL paid per second")
	cmd.Flags().Int64Var(&start, "start", 0, "start as a Unix timestamp (default now)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "how long the stream runs, e.g. 720h")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("duration")

	return cmd
}

func newStreamActionCommand(opts *RootOptions, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <sender> <id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			stream, err := c.streamAddress(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			switch use {
			case "withdraw":
				resp, err := c.streams.WithdrawFromStream(ctx, connect.NewRequest(&pb.WithdrawFromStreamRequest{Stream: stream}))
				if err != nil {
					return err
				}
				return showStream(cmd, opts, resp.Msg, resp.Msg.Stream, func(w io.Writer) {
					fmt.Fprintf(w, "\nReceived:\t%s\n", sol(resp.Msg.Amount))
				})
			case "cancel":
				resp, err := c.streams.CancelStream(ctx, connect.NewRequest(&pb.CancelStreamRequest{Stream: stream}))
				if err != nil {
					return err
				}
				return showStream(cmd, opts, resp.Msg, resp.Msg.Stream, func(w io.Writer) {
					fmt.Fprintf(w, "\nPaid to recipient:\t%s\n", sol(resp.Msg.PaidToRecipient))
					fmt.Fprintf(w, "Returned to sender:\t%s\n", sol(resp.Msg.ReturnedToSender))
				})
			default:
				resp, err := c.streams.GetStream(ctx, connect.NewRequest(&pb.GetStreamRequest{Stream: stream}))
				if err != nil {
					return err
				}
				return showStream(cmd, opts, resp.Msg.Stream, resp.Msg.Stream, nil)
			}
		},
	}
}

func newStreamListCommand(opts *RootOptions) *cobra.Command {
	var party string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List streams you (or --party) send or receive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := opts.clients()

			id, err := c.identity(ctx, party)
			if err != nil {
				return err
			}
			resp, err := c.streams.ListStreams(ctx, connect.NewRequest(&pb.ListStreamsRequest{Party: id}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				fmt.Fprintln(w, "STREAM\tSENDER\tRECIPIENT\tWITHDRAWABLE\tCANCELLED")
				for _, s := range resp.Msg.Streams {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", s.Address, s.Sender, s.Recipient, sol(s.Withdrawable), s.IsCancelled)
				}
			})
		},
	}

	cmd.Flags().StringVar(&party, "party", "", "sender or recipient to list for")

	return cmd
}
