package readstore

import (
	"context"
	"time"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

type PayoutReadQueries interface {
	ListPayoutsByReference(ctx context.Context, db sqlc.DBTX, reference string) ([]sqlc.Payouts, error)
	ListPayoutsByPayeeFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPayoutsByPayeeFirstPageParams) ([]sqlc.Payouts, error)
	ListPayoutsByPayeeKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPayoutsByPayeeKeysetParams) ([]sqlc.Payouts, error)
}

type PayoutReadStore struct {
	queries PayoutReadQueries
	db      sqlc.DBTX
}

func NewPayoutReadStore(queries PayoutReadQueries, db sqlc.DBTX) *PayoutReadStore {
	return &PayoutReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PayoutReadStore) ListByReference(ctx context.Context, reference string) ([]*queries.PayoutView, error) {
	rows, err := r.queries.ListPayoutsByReference(ctx, r.db, reference)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts by reference", err)
	}
	return toPayoutViews(rows)
}

func (r *PayoutReadStore) ListByPayeeFirstPage(ctx context.Context, payee common.Address, limit int32) ([]*queries.PayoutView, error) {
	rows, err := r.queries.ListPayoutsByPayeeFirstPage(ctx, r.db, sqlc.ListPayoutsByPayeeFirstPageParams{
		Payee: pgconv.AddressToText(payee),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts first page", err)
	}
	return toPayoutViews(rows)
}

func (r *PayoutReadStore) ListByPayeeKeyset(ctx context.Context, payee common.Address, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PayoutView, error) {
	rows, err := r.queries.ListPayoutsByPayeeKeyset(ctx, r.db, sqlc.ListPayoutsByPayeeKeysetParams{
		Payee:     pgconv.AddressToText(payee),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts with keyset", err)
	}
	return toPayoutViews(rows)
}

func toPayoutViews(rows []sqlc.Payouts) ([]*queries.PayoutView, error) {
	result := make([]*queries.PayoutView, len(rows))
	for i, row := range rows {
		amount, err := pgconv.NumericToBigInt(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode payout amount", err)
		}
		result[i] = &queries.PayoutView{
			ID:        row.ID,
			Reference: row.Reference,
			Asset:     row.Asset,
			Payer:     row.Payer,
			Payee:     row.Payee,
			Amount:    amount,
			Kind:      row.Kind,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
