package cli

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	pb "github.com/mmynk/rally/pkg/proto"
)

// session is a Register or Login response.
type session interface {
	proto.Message
	GetUser() *pb.User
	GetToken() string
}

// printSession prints a user and the token to export as RALLY_TOKEN.
func printSession(cmd *cobra.Command, opts *RootOptions, s session) error {
	user, token := s.GetUser(), s.GetToken()
	return newPrinter(opts, cmd.OutOrStdout()).print(s, func(w io.Writer) {
		printUser(w, user)
		fmt.Fprintf(w, "\nexport RALLY_TOKEN=%s\n", token)
	})
}

func newRegisterCommand(opts *RootOptions) *cobra.Command {
	var displayName, password string

	cmd := &cobra.Command{
		Use:   "register <handle>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.clients().auth.Register(cmd.Context(), connect.NewRequest(&pb.RegisterRequest{
				Handle:      args[0],
				DisplayName: displayName,
				Password:    password,
			}))
			if err != nil {
				return err
			}
			return printSession(cmd, opts, resp.Msg)
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "display name (defaults to the handle)")
	cmd.Flags().StringVar(&password, "password", "", "password, at least 8 characters")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand(opts *RootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <handle>",
		Short: "Log in and print a bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.clients().auth.Login(cmd.Context(), connect.NewRequest(&pb.LoginRequest{
				Handle:   args[0],
				Password: password,
			}))
			if err != nil {
				return err
			}
			return printSession(cmd, opts, resp.Msg)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.clients().auth.GetCurrentUser(cmd.Context(), connect.NewRequest(&pb.GetCurrentUserRequest{}))
			if err != nil {
				return err
			}
			return newPrinter(opts, cmd.OutOrStdout()).print(resp.Msg, func(w io.Writer) {
				printUser(w, resp.Msg.User)
			})
		},
	}
}
