package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OutboxRelayQueries interface {
	ClaimPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

// TxRunner runs fn in one transaction; claimed rows stay locked until it returns.
type TxRunner func(ctx context.Context, fn func(tx sqlc.DBTX) error) error

func PoolRunner(pool *pgxpool.Pool) TxRunner {
	return func(ctx context.Context, fn func(tx sqlc.DBTX) error) error {
		return shared.RunInTx(ctx, pool, fn)
	}
}

// Relay moves committed outbox rows to the publisher. Delivery is at least
// once: a crash between publish and commit republishes the batch.
type Relay struct {
	logger      *slog.Logger
	queries     OutboxRelayQueries
	runTx       TxRunner
	publisher   Publisher
	interval    time.Duration
	batchSize   int
	maxAttempts int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRelay(logger *slog.Logger, queries OutboxRelayQueries, runTx TxRunner, publisher Publisher, cfg config.KafkaConfig) *Relay {
	r := &Relay{
		logger:      logger,
		queries:     queries,
		runTx:       runTx,
		publisher:   publisher,
		interval:    cfg.RelayInterval,
		batchSize:   cfg.RelayBatch,
		maxAttempts: cfg.MaxAttempts,
	}
	if r.interval <= 0 {
		r.interval = 2 * time.Second
	}
	if r.batchSize <= 0 {
		r.batchSize = 100
	}
	if r.maxAttempts <= 0 {
		r.maxAttempts = 10
	}
	return r
}

// Start runs the relay loop in the background until Stop.
func (r *Relay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		_ = r.Run(ctx)
	}()
}

// Stop cancels the loop and waits for the current batch to finish.
func (r *Relay) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.ProcessOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.ErrorContext(ctx, "outbox relay iteration failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ProcessOnce claims one batch and reports how many rows were published.
func (r *Relay) ProcessOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.runTx(ctx, func(tx sqlc.DBTX) error {
		rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, int32(r.batchSize))
		if err != nil {
			return err
		}

		failed := 0
		for _, row := range rows {
			pubErr := r.publisher.Publish(ctx, toMessage(row))
			if pubErr == nil {
				if err := r.queries.MarkOutboxEventPublished(ctx, tx, row.ID); err != nil {
					return err
				}
				published++
				continue
			}

			failed++
			attempts := int(row.Attempts) + 1
			level := slog.LevelWarn
			if attempts >= r.maxAttempts {
				level = slog.LevelError
			}
			r.logger.Log(ctx, level, "outbox publish failed",
				"event_id", row.ID.String(),
				"kind", row.Kind,
				"attempts", attempts,
				"max_attempts", r.maxAttempts,
				"error", pubErr,
			)
			err := r.queries.MarkOutboxEventFailed(ctx, tx, sqlc.MarkOutboxEventFailedParams{
				ID:          row.ID,
				LastError:   pgtype.Text{String: pubErr.Error(), Valid: true},
				MaxAttempts: int32(r.maxAttempts),
			})
			if err != nil {
				return err
			}
		}

		if len(rows) > 0 {
			r.logger.InfoContext(ctx, "outbox batch processed",
				"batch_size", len(rows),
				"published_count", published,
				"failed_count", failed,
			)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

func toMessage(row sqlc.OutboxEvents) Message {
	return Message{
		ID:        row.ID,
		Kind:      row.Kind,
		Key:       row.PartitionKey,
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt.Time,
	}
}
