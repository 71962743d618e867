package readstore

import (
	"context"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
)

type AccountReadQueries interface {
	GetAccount(ctx context.Context, db sqlc.DBTX, address string) (sqlc.Accounts, error)
}

type AccountReadStore struct {
	queries AccountReadQueries
	db      sqlc.DBTX
}

func NewAccountReadStore(queries AccountReadQueries, db sqlc.DBTX) *AccountReadStore {
	return &AccountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AccountReadStore) FindByAddress(ctx context.Context, address common.Address) (*queries.AccountView, error) {
	row, err := r.queries.GetAccount(ctx, r.db, pgconv.AddressToText(address))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account", err)
	}
	return &queries.AccountView{
		Address:     row.Address,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
	}, nil
}
