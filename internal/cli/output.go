package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/middleware"
	pb "github.com/mmynk/rally/pkg/proto"
)

// printer writes command results as JSON or as aligned text.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(opts *RootOptions, w io.Writer) printer {
	return printer{format: opts.Format, w: w}
}

// jsonOptions render messages with their proto field names' JSON form and
// zero values included, so scripts see every field.
var jsonOptions = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

// print emits m as JSON, or calls text with a tab-aligned writer.
func (p printer) print(m proto.Message, text func(w io.Writer)) error {
	if p.format == "json" {
		b, err := jsonOptions.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode %s: %w", m.ProtoReflect().Descriptor().FullName(), err)
		}
		_, err = fmt.Fprintln(p.w, string(b))
		return err
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

// Describe renders err for the terminal. Domain failures show their code,
// e.g. "VoteRequired: withdrawal above threshold requires a passed vote".
func Describe(err error) string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return err.Error()
	}
	if code := connectErr.Meta().Get(middleware.ErrorCodeHeader); code != "" {
		return fmt.Sprintf("%s: %s", code, connectErr.Message())
	}
	return fmt.Sprintf("%s: %s", connectErr.Code(), connectErr.Message())
}

func sol(units uint64) string {
	return calculator.FormatSOL(units) + " SOL"
}

func unix(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}

func printUser(w io.Writer, u *pb.User) {
	fmt.Fprintf(w, "ID:\t%s\n", u.Id)
	fmt.Fprintf(w, "Handle:\t%s\n", u.Handle)
	fmt.Fprintf(w, "Name:\t%s\n", u.DisplayName)
	fmt.Fprintf(w, "Joined:\t%s\n", unix(u.CreatedAt))
}

func printSquad(w io.Writer, sq *pb.Squad) {
	fmt.Fprintf(w, "Squad:\t%s\n", sq.Address)
	fmt.Fprintf(w, "Name:\t%s\n", sq.Name)
	fmt.Fprintf(w, "Authority:\t%s\n", sq.Authority)
	fmt.Fprintf(w, "Members:\t%s\n", strings.Join(sq.Members, ", "))
	fmt.Fprintf(w, "Vault:\t%s\n", sq.Vault)
	fmt.Fprintf(w, "Balance:\t%s\n", sol(sq.VaultBalance))
	fmt.Fprintf(w, "Deposited:\t%s\n", sol(sq.TotalDeposited))
	fmt.Fprintf(w, "Threshold:\t%s\n", sol(sq.SpendThreshold))
}

func printStream(w io.Writer, s *pb.Stream) {
	state := "active"
	if s.IsCancelled {
		state = "cancelled"
	}
	fmt.Fprintf(w, "Stream:\t%s (%s)\n", s.Address, state)
	fmt.Fprintf(w, "Sender:\t%s\n", s.Sender)
	fmt.Fprintf(w, "Recipient:\t%s\n", s.Recipient)
	fmt.Fprintf(w, "Rate:\t%s/s\n", sol(s.AmountPerSecond))
	fmt.Fprintf(w, "Window:\t%s .. %s\n", unix(s.StartTime), unix(s.EndTime))
	fmt.Fprintf(w, "Deposited:\t%s\n", sol(s.TotalDeposited))
	fmt.Fprintf(w, "Withdrawn:\t%s\n", sol(s.TotalWithdrawn))
	fmt.Fprintf(w, "Earned:\t%s\n", sol(s.Earned))
	fmt.Fprintf(w, "Withdrawable:\t%s\n", sol(s.Withdrawable))
}

func printProposal(w io.Writer, p *pb.Proposal) {
	fmt.Fprintf(w, "Proposal:\t%s (%s)\n", p.Address, p.Status)
	fmt.Fprintf(w, "Title:\t%s\n", p.Title)
	if p.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", p.Description)
	}
	fmt.Fprintf(w, "Amount:\t%s to %s\n", sol(p.Amount), p.Recipient)
	fmt.Fprintf(w, "Votes:\t%d yes / %d no\n", p.YesVotes, p.NoVotes)
	fmt.Fprintf(w, "Deadline:\t%s\n", unix(p.VotingDeadline))
}

func printTransfers(w io.Writer, transfers []*pb.Transfer) {
	fmt.Fprintln(w, "TIME\tFROM\tTO\tAMOUNT\tMEMO")
	for _, t := range transfers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", unix(t.CreatedAt), t.From, t.To, sol(t.Amount), t.Memo)
	}
}

func printSplit(w io.Writer, sp *pb.Split) {
	fmt.Fprintf(w, "Split:\t%s (%s)\n", sp.Id, sp.Status)
	fmt.Fprintf(w, "Description:\t%s\n", sp.Description)
	fmt.Fprintf(w, "Creator:\t%s\n", sp.Creator)
	if sp.Squad != "" {
		fmt.Fprintf(w, "Squad:\t%s\n", sp.Squad)
	}
	fmt.Fprintf(w, "Total:\t%s\n", sol(sp.TotalAmount))
	for _, item := range sp.Items {
		state := "owed"
		if item.Settled {
			state = "settled " + unix(item.SettledAt)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", item.Debtor, sol(item.Amount), state)
	}
}
