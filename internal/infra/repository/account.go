package repository

import (
	"context"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/ethereum/go-ethereum/common"
)

type AccountWriteQueries interface {
	UpsertAccountLogin(ctx context.Context, db sqlc.DBTX, address string) error
}

type AccountRepository struct {
	queries AccountWriteQueries
	db      sqlc.DBTX
}

func NewAccountRepository(queries AccountWriteQueries, db sqlc.DBTX) *AccountRepository {
	return &AccountRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AccountRepository) RecordLogin(ctx context.Context, tx sqlc.DBTX, address common.Address) error {
	if err := r.queries.UpsertAccountLogin(ctx, tx, pgconv.AddressToText(address)); err != nil {
		return infra.WrapRepoErr("failed to record login", err)
	}
	return nil
}
