// Package service implements the rally.v1 Connect services on top of the
// custody modules and the SQLite store.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmynk/rally/internal/clock"
	"github.com/mmynk/rally/internal/ledger"
	"github.com/mmynk/rally/internal/metrics"
	"github.com/mmynk/rally/internal/middleware"
	"github.com/mmynk/rally/internal/storage"
	"github.com/mmynk/rally/internal/telemetry"
)

// runtime is what every custody service needs.
type runtime struct {
	store   storage.Store
	clock   clock.Clock
	metrics *metrics.Metrics
}

// caller returns the authenticated identity of the request.
func caller(ctx context.Context) (string, error) {
	identity := middleware.GetIdentity(ctx)
	if identity == "" {
		return "", unauthenticated()
	}
	return identity, nil
}

// meteredTx remembers every amount moved so the transfer counter is only
// bumped once the transaction commits.
type meteredTx struct {
	storage.Tx
	moved []uint64
}

func (t *meteredTx) Transfer(ctx context.Context, from, to string, amount uint64) error {
	if err := t.Tx.Transfer(ctx, from, to, amount); err != nil {
		return err
	}
	t.moved = append(t.moved, amount)
	return nil
}

// execute runs fn as the atomic operation module.op: one span, one storage
// transaction whose transfers are journaled under the memo "module.op", and
// one observation in the operations counter.
func (r *runtime) execute(ctx context.Context, module, op string, fn func(ctx context.Context, tx storage.Tx) error) error {
	name := module + "." + op
	ctx, span := telemetry.Tracer().Start(ctx, name,
		trace.WithAttributes(
			attribute.String("rally.module", module),
			attribute.String("rally.caller", middleware.GetIdentity(ctx)),
		),
	)
	defer span.End()

	ctx = ledger.WithMemo(ctx, name)
	var mt *meteredTx
	err := r.store.WithTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		mt = &meteredTx{Tx: tx}
		return fn(ctx, mt)
	})

	if r.metrics != nil {
		r.metrics.Observe(module, op, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if r.metrics != nil {
		for _, amount := range mt.moved {
			r.metrics.Transferred(name, amount)
		}
	}
	span.SetAttributes(attribute.Int("rally.transfers", len(mt.moved)))
	slog.Debug("Operation committed", "operation", name, "transfers", len(mt.moved))
	return nil
}

// now reads the clock once for an operation.
func (r *runtime) now() int64 {
	return r.clock.Now().Unix()
}
