// Package cli implements rallyctl, the command line client for the rally
// Connect services.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/mmynk/rally/internal/address"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server  string
	Token   string
	Format  string // "json" | "text"
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout. Tests use it.
	HTTPClient connect.HTTPClient
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

type envDefaults struct {
	Server string `env:"RALLY_SERVER" envDefault:"http://localhost:8080"`
	Token  string `env:"RALLY_TOKEN"`
}

// NewRootCommand creates the root command for rallyctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	defaults, envErr := env.ParseAs[envDefaults]()

	cmd := &cobra.Command{
		Use:   "rallyctl",
		Short: "rallyctl - squads, streams, votes and splits",
		Long: `rallyctl talks to a rally server.

Identities can be given as a user ID or as @handle. Amounts are in SOL,
e.g. 0.25, and are converted to smallest units before they are sent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return fmt.Errorf("parse env: %w", envErr)
			}
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", defaults.Server, "rally server URL (RALLY_SERVER)")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", defaults.Token, "bearer token from login (RALLY_TOKEN)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "request timeout")

	cmd.AddCommand(newRegisterCommand(opts))
	cmd.AddCommand(newLoginCommand(opts))
	cmd.AddCommand(newWhoamiCommand(opts))
	cmd.AddCommand(newSquadCommand(opts))
	cmd.AddCommand(newStreamCommand(opts))
	cmd.AddCommand(newProposalCommand(opts))
	cmd.AddCommand(newBalanceCommand(opts))
	cmd.AddCommand(newTransfersCommand(opts))
	cmd.AddCommand(newFundCommand(opts))
	cmd.AddCommand(newSendCommand(opts))
	cmd.AddCommand(newSplitCommand(opts))

	return cmd
}

// clients are the typed Connect clients for one command invocation.
type clients struct {
	auth    protoconnect.AuthServiceClient
	squads  protoconnect.SquadServiceClient
	streams protoconnect.StreamServiceClient
	votes   protoconnect.VoteServiceClient
	ledger  protoconnect.LedgerServiceClient
	splits  protoconnect.SplitServiceClient
}

func (o *RootOptions) clients() *clients {
	httpClient := o.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.Timeout}
	}
	opt := connect.WithInterceptors(bearer(o.Token))
	return &clients{
		auth:    protoconnect.NewAuthServiceClient(httpClient, o.Server, opt),
		squads:  protoconnect.NewSquadServiceClient(httpClient, o.Server, opt),
		streams: protoconnect.NewStreamServiceClient(httpClient, o.Server, opt),
		votes:   protoconnect.NewVoteServiceClient(httpClient, o.Server, opt),
		ledger:  protoconnect.NewLedgerServiceClient(httpClient, o.Server, opt),
		splits:  protoconnect.NewSplitServiceClient(httpClient, o.Server, opt),
	}
}

// bearer attaches the token to every outgoing request.
func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" && req.Spec().IsClient {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// identity resolves "@handle" to a user ID. Anything else is taken as an ID.
func (c *clients) identity(ctx context.Context, ref string) (string, error) {
	handle, ok := strings.CutPrefix(ref, "@")
	if !ok {
		return ref, nil
	}
	resp, err := c.auth.LookupUser(ctx, connect.NewRequest(&pb.LookupUserRequest{Handle: handle}))
	if err != nil {
		return "", fmt.Errorf("look up %s: %w", ref, err)
	}
	return resp.Msg.User.Id, nil
}

// squad resolves a squad reference. "@handle" names the squad that user
// created, whose address derives from the authority alone.
func (c *clients) squad(ctx context.Context, ref string) (string, error) {
	if !strings.HasPrefix(ref, "@") {
		return ref, nil
	}
	authority, err := c.identity(ctx, ref)
	if err != nil {
		return "", err
	}
	return address.Squad(authority), nil
}
