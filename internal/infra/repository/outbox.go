package repository

import (
	"context"
	"encoding/json"

	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, e event.Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event payload", err)
	}
	err = r.queries.InsertOutboxEvent(ctx, tx, sqlc.InsertOutboxEventParams{
		ID:           e.ID,
		Kind:         e.Kind.String(),
		PartitionKey: e.PartitionKey,
		Payload:      payload,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}
