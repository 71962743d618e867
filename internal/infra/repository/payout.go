package repository

import (
	"context"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/shared"
)

type PayoutWriteQueries interface {
	InsertPayout(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPayoutParams) error
}

type PayoutRepository struct {
	queries PayoutWriteQueries
	db      sqlc.DBTX
}

func NewPayoutRepository(queries PayoutWriteQueries, db sqlc.DBTX) *PayoutRepository {
	return &PayoutRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PayoutRepository) Record(ctx context.Context, tx sqlc.DBTX, p shared.Payout) error {
	err := r.queries.InsertPayout(ctx, tx, sqlc.InsertPayoutParams{
		ID:        p.ID,
		Reference: p.Reference,
		Asset:     pgconv.AddressToText(p.Transfer.Asset),
		Payer:     pgconv.AddressToText(p.Transfer.Payer),
		Payee:     pgconv.AddressToText(p.Transfer.Payee),
		Amount:    pgconv.BigIntToNumeric(p.Transfer.Amount),
		Kind:      p.Transfer.Kind.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record payout", err)
	}
	return nil
}
