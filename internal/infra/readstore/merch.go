package readstore

import (
	"context"
	"math/big"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
)

type MerchReadQueries interface {
	GetMerchListing(ctx context.Context, db sqlc.DBTX, address string) (sqlc.MerchListings, error)
	ListMerchListings(ctx context.Context, db sqlc.DBTX, addresses []string) ([]sqlc.MerchListings, error)
	GetMerchBalance(ctx context.Context, db sqlc.DBTX, holder string) (sqlc.MerchBalances, error)
}

type MerchReadStore struct {
	queries MerchReadQueries
	db      sqlc.DBTX
}

func NewMerchReadStore(queries MerchReadQueries, db sqlc.DBTX) *MerchReadStore {
	return &MerchReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MerchReadStore) FindListing(ctx context.Context, address common.Address) (*queries.ListingView, error) {
	row, err := r.queries.GetMerchListing(ctx, r.db, pgconv.AddressToText(address))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	return toListingView(row), nil
}

func (r *MerchReadStore) ListListings(ctx context.Context, addresses []common.Address) ([]*queries.ListingView, error) {
	keys := make([]string, len(addresses))
	for i, a := range addresses {
		keys[i] = pgconv.AddressToText(a)
	}
	rows, err := r.queries.ListMerchListings(ctx, r.db, keys)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	result := make([]*queries.ListingView, len(rows))
	for i, row := range rows {
		result[i] = toListingView(row)
	}
	return result, nil
}

func (r *MerchReadStore) FindBalance(ctx context.Context, holder common.Address) (*queries.BalanceView, error) {
	row, err := r.queries.GetMerchBalance(ctx, r.db, pgconv.AddressToText(holder))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &queries.BalanceView{Holder: pgconv.AddressToText(holder), Amount: new(big.Int)}, nil
		}
		return nil, infra.WrapRepoErr("failed to find balance", err)
	}
	amount, err := pgconv.NumericToBigInt(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode balance", err)
	}
	return &queries.BalanceView{Holder: row.Holder, Amount: amount}, nil
}

func toListingView(row sqlc.MerchListings) *queries.ListingView {
	return &queries.ListingView{
		Address: row.Address,
		Owner:   row.Owner,
		Active:  row.Active,
	}
}
