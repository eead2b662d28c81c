package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/rally/internal/address"
	"github.com/mmynk/rally/internal/auth"
	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/middleware"
	"github.com/mmynk/rally/internal/service"
	"github.com/mmynk/rally/internal/storage/sqlite"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "rallyctl", cmd.Use)
	for _, flag := range []string{"server", "token", "format", "timeout"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}

	want := []string{"register", "login", "whoami", "squad", "stream", "proposal", "balance", "transfers", "fund", "send", "split"}
	var got []string
	for _, sub := range cmd.Commands() {
		got = append(got, sub.Name())
	}
	assert.Subset(t, got, want)
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("RALLY_SERVER", "http://rally.test:9000")
	t.Setenv("RALLY_TOKEN", "abc")

	cmd := NewRootCommand()
	assert.Equal(t, "http://rally.test:9000", cmd.PersistentFlags().Lookup("server").DefValue)
	assert.Equal(t, "abc", cmd.PersistentFlags().Lookup("token").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "http://127.0.0.1:0", "--format", "yaml", "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))

	plain := connect.NewError(connect.CodeNotFound, errors.New("squad not found"))
	assert.Equal(t, "not_found: squad not found", Describe(plain))

	coded := connect.NewError(connect.CodePermissionDenied, errors.New("withdrawal above threshold requires a passed vote"))
	coded.Meta().Set(middleware.ErrorCodeHeader, "VoteRequired")
	assert.Equal(t, "VoteRequired: withdrawal above threshold requires a passed vote", Describe(coded))
}

// startServer runs a full rally server with the faucet enabled.
func startServer(t *testing.T) (string, *clock.Manual) {
	t.Helper()

	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)

	clk := clock.NewManual(time.Now().Truncate(time.Second))
	m := metrics.New()
	jwtManager := auth.NewJWTManager("cli-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	opts := connect.WithInterceptors(
		middleware.Identify(jwtManager),
		m.Interceptor(),
		middleware.RequireAuth(jwtManager, service.PublicProcedures...),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, store), opts))
	mux.Handle(protoconnect.NewSquadServiceHandler(service.NewSquadService(store, clk, m), opts))
	mux.Handle(protoconnect.NewStreamServiceHandler(service.NewStreamService(store, clk, m), opts))
	mux.Handle(protoconnect.NewVoteServiceHandler(service.NewVoteService(store, clk, m), opts))
	mux.Handle(protoconnect.NewLedgerServiceHandler(service.NewLedgerService(store, clk, m, service.Faucet{Enabled: true}), opts))
	mux.Handle(protoconnect.NewSplitServiceHandler(service.NewSplitService(store, clk, m), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server.URL, clk
}

// execute runs rallyctl with args against server and returns its stdout.
func execute(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand(&RootOptions{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// decode runs rallyctl with --format json and decodes the output into m.
func decode(t *testing.T, m proto.Message, server string, args ...string) {
	t.Helper()
	out, err := execute(t, server, append([]string{"--format", "json"}, args...)...)
	require.NoError(t, err, out)
	require.NoError(t, protojson.Unmarshal([]byte(out), m), out)
}

func register(t *testing.T, server, handle string) (id, token string) {
	t.Helper()
	session := &pb.RegisterResponse{}
	decode(t, session, server, "register", handle, "--password", "password-"+handle)
	require.NotEmpty(t, session.Token)
	return session.User.Id, session.Token
}

func TestEndToEnd(t *testing.T) {
	server, clk := startServer(t)

	aliceID, alice := register(t, server, "alice")
	bobID, bob := register(t, server, "bob")

	t.Run("login and whoami", func(t *testing.T) {
		out, err := execute(t, server, "login", "alice", "--password", "password-alice")
		require.NoError(t, err)
		assert.Contains(t, out, "export RALLY_TOKEN=")

		out, err = execute(t, server, "--token", alice, "whoami")
		require.NoError(t, err)
		assert.Contains(t, out, aliceID)

		_, err = execute(t, server, "whoami")
		var connectErr *connect.Error
		require.True(t, errors.As(err, &connectErr))
		assert.Equal(t, connect.CodeUnauthenticated, connectErr.Code())
	})

	t.Run("fund", func(t *testing.T) {
		out, err := execute(t, server, "--token", alice, "fund", "10")
		require.NoError(t, err)
		assert.Contains(t, out, "10 SOL")
	})

	t.Run("squad", func(t *testing.T) {
		sq := &pb.Squad{}
		decode(t, sq, server, "--token", alice, "squad", "init", "--name", "trip", "--member", "@bob", "--threshold", "1")
		assert.Equal(t, address.Squad(aliceID), sq.Address)
		assert.ElementsMatch(t, []string{aliceID, bobID}, sq.Members)

		decode(t, sq, server, "--token", alice, "squad", "deposit", "@alice", "5")
		assert.Equal(t, uint64(5_000_000_000), sq.VaultBalance)

		_, err := execute(t, server, "--token", bob, "squad", "withdraw", "@alice", "2", "--to", "@bob")
		require.Error(t, err)
		assert.Equal(t, "VoteRequired: withdrawal above threshold requires a passed vote", Describe(err))

		decode(t, sq, server, "--token", bob, "squad", "withdraw", "@alice", "2", "--to", "@bob", "--vote-passed")
		assert.Equal(t, uint64(3_000_000_000), sq.VaultBalance)

		balance := &pb.GetBalanceResponse{}
		decode(t, balance, server, "balance", "@bob")
		assert.Equal(t, uint64(2_000_000_000), balance.Balance)

		out, err := execute(t, server, "--token", bob, "squad", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "trip")
	})

	t.Run("proposal", func(t *testing.T) {
		p := &pb.Proposal{}
		decode(t, p, server, "--token", alice, "proposal", "create", "@alice",
			"--id", "1", "--title", "dinner", "--amount", "0.5", "--to", "@bob", "--voting-period", "1h")
		assert.Equal(t, "open", p.Status)

		decode(t, p, server, "--token", alice, "proposal", "vote", "@alice", "1")
		decode(t, p, server, "--token", bob, "proposal", "vote", "@alice", "1", "--no")
		assert.Equal(t, uint32(1), p.YesVotes)
		assert.Equal(t, uint32(1), p.NoVotes)

		_, err := execute(t, server, "--token", alice, "proposal", "execute", "@alice", "1")
		assert.Equal(t, "VotingStillOpen: voting period is still open", Describe(err))

		clk.Advance(2 * time.Hour)

		_, err = execute(t, server, "--token", alice, "proposal", "execute", "@alice", "1")
		assert.Equal(t, "QuorumNotReached: quorum not reached: not enough yes votes", Describe(err))

		out, err := execute(t, server, "proposal", "list", "@alice")
		require.NoError(t, err)
		assert.Contains(t, out, "rejected")
	})

	t.Run("stream", func(t *testing.T) {
		start := clk.Now().Add(10 * time.Second).Unix()

		s := &pb.Stream{}
		decode(t, s, server, "--token", alice, "stream", "create",
			"--to", "@bob", "--id", "1", "--rate", "0.00000001", "--duration", "100s",
			"--start", strconv.FormatInt(start, 10))
		assert.Equal(t, address.Stream(aliceID, 1), s.Address)
		assert.Equal(t, uint64(1000), s.TotalDeposited)

		_, err := execute(t, server, "--token", bob, "stream", "withdraw", "@alice", "1")
		assert.Equal(t, "NothingToWithdraw: nothing to withdraw yet", Describe(err))

		clk.Advance(40 * time.Second)

		withdrawn := &pb.WithdrawFromStreamResponse{}
		decode(t, withdrawn, server, "--token", bob, "stream", "withdraw", "@alice", "1")
		assert.Equal(t, uint64(300), withdrawn.Amount)

		cancelled := &pb.CancelStreamResponse{}
		decode(t, cancelled, server, "--token", alice, "stream", "cancel", "@alice", "1")
		assert.Equal(t, uint64(0), cancelled.PaidToRecipient)
		assert.Equal(t, uint64(700), cancelled.ReturnedToSender)
		assert.True(t, cancelled.Stream.IsCancelled)

		out, err := execute(t, server, "stream", "show", "@alice", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "cancelled")
	})

	t.Run("transfers", func(t *testing.T) {
		resp := &pb.ListTransfersResponse{}
		decode(t, resp, server, "--token", alice, "transfers", "--limit", "2")
		require.Len(t, resp.Transfers, 2)
		assert.Equal(t, "stream.cancel", resp.Transfers[0].Memo)
	})

	t.Run("send", func(t *testing.T) {
		sent := &pb.SendResponse{}
		decode(t, sent, server, "--token", bob, "send", "@alice", "0.5", "--memo", "lunch")
		assert.Equal(t, aliceID, sent.Transfer.To)
		assert.Equal(t, uint64(500_000_000), sent.Transfer.Amount)
		assert.Equal(t, "ledger.send: lunch", sent.Transfer.Memo)
		assert.Equal(t, uint64(1_500_000_300), sent.Balance, "2 SOL from the squad and 300 units streamed, less 0.5 SOL")

		_, err := execute(t, server, "--token", bob, "send", "@alice", "100")
		assert.Equal(t, "InsufficientFunds: insufficient funds", Describe(err))
	})

	t.Run("split", func(t *testing.T) {
		preview := &pb.CalculateSplitResponse{}
		decode(t, preview, server, "split", "calc", "3.3",
			"--participant", "@alice", "--participant", "@bob",
			"--item", "Pizza:2:@alice", "--item", "Salad:1:@bob")
		require.Len(t, preview.Splits, 2)
		assert.Equal(t, uint64(2_200_000_000), preview.Splits[0].Total)
		assert.Equal(t, uint64(1_100_000_000), preview.Splits[1].Total)

		sp := &pb.Split{}
		decode(t, sp, server, "--token", alice, "split", "create", "Dinner", "0.9",
			"--squad", "@alice", "--share", "@alice=0.3", "--share", "@bob=0.6")
		assert.Equal(t, address.Squad(aliceID), sp.Squad)
		assert.Equal(t, uint32(1), sp.RemainingUnsettled)

		settled := &pb.SettleSplitResponse{}
		decode(t, settled, server, "--token", bob, "split", "settle", sp.Id)
		assert.Equal(t, uint64(600_000_000), settled.Amount)
		assert.Equal(t, "settled", settled.Split.Status)

		_, err := execute(t, server, "--token", bob, "split", "settle", sp.Id)
		assert.Equal(t, "AlreadySettled: this share is already settled", Describe(err))

		_, err = execute(t, server, "--token", alice, "split", "create", "Dinner", "1",
			"--share", "@bob=1", "--participant", "@bob")
		require.Error(t, err)

		out, err := execute(t, server, "split", "list", "--party", "@bob")
		require.NoError(t, err)
		assert.Contains(t, out, "Dinner")
		assert.Contains(t, out, "settled")
	})
}
