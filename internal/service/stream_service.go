package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/rally/internal/calculator"
	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/storage"
	"github.com/mmynk/rally/internal/stream"
	pb "github.com/mmynk/rally/pkg/proto"
	"github.com/mmynk/rally/pkg/proto/protoconnect"
)

var _ protoconnect.StreamServiceHandler = (*StreamService)(nil)

// StreamService implements the Connect StreamService.
type StreamService struct {
	protoconnect.UnimplementedStreamServiceHandler
	runtime
}

// NewStreamService creates a new StreamService with the given storage backend.
func NewStreamService(store storage.Store, clk clock.Clock, m *metrics.Metrics) *StreamService {
	return &StreamService{runtime: runtime{store: store, clock: clk, metrics: m}}
}

// CreateStream funds a new stream from the caller to the recipient.
func (s *StreamService) CreateStream(ctx context.Context, req *connect.Request[pb.CreateStreamRequest]) (*connect.Response[pb.CreateStreamResponse], error) {
	slog.Info("CreateStream request received",
		"recipient", req.Msg.Recipient,
		"stream_id", req.Msg.StreamId,
		"amount_per_second", req.Msg.AmountPerSecond,
		"start_time", req.Msg.StartTime,
		"end_time", req.Msg.EndTime,
	)

	sender, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireIdentity("recipient", req.Msg.Recipient); err != nil {
		return nil, err
	}

	now := s.now()
	var out *pb.Stream
	err = s.execute(ctx, "stream", "create", func(ctx context.Context, tx storage.Tx) error {
		ps, err := stream.Create(ctx, tx, stream.Params{
			Sender:          sender,
			Recipient:       req.Msg.Recipient,
			StreamID:        req.Msg.StreamId,
			AmountPerSecond: req.Msg.AmountPerSecond,
			StartTime:       req.Msg.StartTime,
			EndTime:         req.Msg.EndTime,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.CreateStream(ctx, ps); err != nil {
			return err
		}
		out = toStream(ps, ps.TotalDeposited, now)
		return nil
	})
	if err != nil {
		return nil, failed("CreateStream failed", err, "sender", sender)
	}

	slog.Info("Stream created",
		"stream", out.Address,
		"sender", sender,
		"recipient", out.Recipient,
		"total_deposited_sol", calculator.FormatSOL(out.TotalDeposited),
	)
	return connect.NewResponse(&pb.CreateStreamResponse{Stream: out}), nil
}

// WithdrawFromStream pays the recipient what has accrued.
func (s *StreamService) WithdrawFromStream(ctx context.Context, req *connect.Request[pb.WithdrawFromStreamRequest]) (*connect.Response[pb.WithdrawFromStreamResponse], error) {
	slog.Info("WithdrawFromStream request received", "stream", req.Msg.Stream)

	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var (
		out  *pb.Stream
		paid uint64
	)
	err = s.execute(ctx, "stream", "withdraw", func(ctx context.Context, tx storage.Tx) error {
		ps, err := tx.GetStream(ctx, req.Msg.Stream)
		if err != nil {
			return err
		}
		if paid, err = stream.Withdraw(ctx, tx, ps, identity, now); err != nil {
			return err
		}
		if err := tx.UpdateStream(ctx, ps); err != nil {
			return err
		}
		balance, err := tx.Balance(ctx, ps.Vault)
		if err != nil {
			return err
		}
		out = toStream(ps, balance, now)
		return nil
	})
	if err != nil {
		return nil, failed("WithdrawFromStream failed", err, "stream", req.Msg.Stream, "caller", identity)
	}

	slog.Info("Stream withdrawal successful",
		"stream", out.Address,
		"amount_sol", calculator.FormatSOL(paid),
		"total_withdrawn", out.TotalWithdrawn,
	)
	return connect.NewResponse(&pb.WithdrawFromStreamResponse{
		Stream:    out,
		Amount:    paid,
		AmountSol: calculator.FormatSOL(paid),
	}), nil
}

// CancelStream settles and closes a stream. Only the sender may call it.
func (s *StreamService) CancelStream(ctx context.Context, req *connect.Request[pb.CancelStreamRequest]) (*connect.Response[pb.CancelStreamResponse], error) {
	slog.Info("CancelStream request received", "stream", req.Msg.Stream)

	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var (
		out        *pb.Stream
		settlement stream.Settlement
	)
	err = s.execute(ctx, "stream", "cancel", func(ctx context.Context, tx storage.Tx) error {
		ps, err := tx.GetStream(ctx, req.Msg.Stream)
		if err != nil {
			return err
		}
		if settlement, err = stream.Cancel(ctx, tx, ps, identity, now); err != nil {
			return err
		}
		if err := tx.UpdateStream(ctx, ps); err != nil {
			return err
		}
		out = toStream(ps, 0, now)
		return nil
	})
	if err != nil {
		return nil, failed("CancelStream failed", err, "stream", req.Msg.Stream, "caller", identity)
	}

	slog.Info("Stream cancelled",
		"stream", out.Address,
		"paid_to_recipient", settlement.PaidToRecipient,
		"returned_to_sender", settlement.ReturnedToSender,
	)
	return connect.NewResponse(&pb.CancelStreamResponse{
		Stream:           out,
		PaidToRecipient:  settlement.PaidToRecipient,
		ReturnedToSender: settlement.ReturnedToSender,
	}), nil
}

// GetStream retrieves a stream with its accrual previewed at the current time.
func (s *StreamService) GetStream(ctx context.Context, req *connect.Request[pb.GetStreamRequest]) (*connect.Response[pb.GetStreamResponse], error) {
	slog.Info("GetStream request received", "stream", req.Msg.Stream)

	ps, err := s.store.GetStream(ctx, req.Msg.Stream)
	if err != nil {
		return nil, failed("GetStream failed", err, "stream", req.Msg.Stream)
	}
	balance, err := s.store.Balance(ctx, ps.Vault)
	if err != nil {
		return nil, failed("GetStream failed", err, "stream", req.Msg.Stream)
	}

	return connect.NewResponse(&pb.GetStreamResponse{Stream: toStream(ps, balance, s.now())}), nil
}

// ListStreams lists the streams a party sends or receives, the caller by default.
func (s *StreamService) ListStreams(ctx context.Context, req *connect.Request[pb.ListStreamsRequest]) (*connect.Response[pb.ListStreamsResponse], error) {
	party := req.Msg.Party
	if party == "" {
		identity, err := caller(ctx)
		if err != nil {
			return nil, err
		}
		party = identity
	}
	slog.Info("ListStreams request received", "party", party)

	streams, err := s.store.ListStreamsByParty(ctx, party)
	if err != nil {
		return nil, failed("ListStreams failed", err, "party", party)
	}

	now := s.now()
	out := make([]*pb.Stream, 0, len(streams))
	for _, ps := range streams {
		balance, err := s.store.Balance(ctx, ps.Vault)
		if err != nil {
			return nil, failed("ListStreams failed", err, "party", party)
		}
		out = append(out, toStream(ps, balance, now))
	}

	slog.Info("ListStreams successful", "party", party, "count", len(out))
	return connect.NewResponse(&pb.ListStreamsResponse{Streams: out}), nil
}
