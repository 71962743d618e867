package repository

import (
	"context"

	"voucher-ledger/internal/domain/merch"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/ethereum/go-ethereum/common"
)

type MerchWriteQueries interface {
	UpsertMerchListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertMerchListingParams) error
	ListMerchListingsForUpdate(ctx context.Context, db sqlc.DBTX, addresses []string) ([]sqlc.MerchListings, error)
	InsertMerchShirt(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMerchShirtParams) (int64, error)
	InsertMerchShirtItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMerchShirtItemParams) error
	GetMerchBalanceForUpdate(ctx context.Context, db sqlc.DBTX, holder string) (sqlc.MerchBalances, error)
	UpsertMerchBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertMerchBalanceParams) error
}

type MerchRepository struct {
	queries MerchWriteQueries
	db      sqlc.DBTX
}

func NewMerchRepository(queries MerchWriteQueries, db sqlc.DBTX) *MerchRepository {
	return &MerchRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MerchRepository) SaveListing(ctx context.Context, tx sqlc.DBTX, l *merch.Listing) error {
	err := r.queries.UpsertMerchListing(ctx, tx, sqlc.UpsertMerchListingParams{
		Address: pgconv.AddressToText(l.Address()),
		Owner:   pgconv.AddressToText(l.Owner()),
		Active:  l.Active(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save listing", err)
	}
	return nil
}

func (r *MerchRepository) ListingsForUpdate(ctx context.Context, tx sqlc.DBTX, addresses []common.Address) (map[common.Address]*merch.Listing, error) {
	keys := make([]string, 0, len(addresses))
	for _, a := range addresses {
		keys = append(keys, pgconv.AddressToText(a))
	}
	rows, err := r.queries.ListMerchListingsForUpdate(ctx, tx, keys)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock listings", err)
	}
	listings := make(map[common.Address]*merch.Listing, len(rows))
	for _, row := range rows {
		l := converter.ListingFromInfra(row)
		listings[l.Address()] = l
	}
	return listings, nil
}

func (r *MerchRepository) CreateShirt(ctx context.Context, tx sqlc.DBTX, s *merch.Shirt) (uint64, error) {
	id, err := r.queries.InsertMerchShirt(ctx, tx, sqlc.InsertMerchShirtParams{
		Buyer: pgconv.AddressToText(s.Buyer()),
		Price: pgconv.BigIntToNumeric(s.Price()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create shirt", err)
	}
	for i, item := range s.Design() {
		err := r.queries.InsertMerchShirtItem(ctx, tx, sqlc.InsertMerchShirtItemParams{
			ShirtID:    id,
			Position:   int32(i),
			NftAddress: pgconv.AddressToText(item.NFT),
			TokenID:    pgconv.BigIntToNumeric(item.TokenID),
		})
		if err != nil {
			return 0, infra.WrapRepoErr("failed to add shirt item", err)
		}
	}
	return uint64(id), nil
}

func (r *MerchRepository) BalanceForUpdate(ctx context.Context, tx sqlc.DBTX, holder common.Address) (*merch.Balance, error) {
	row, err := r.queries.GetMerchBalanceForUpdate(ctx, tx, pgconv.AddressToText(holder))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return merch.NewBalance(holder), nil
		}
		return nil, infra.WrapRepoErr("failed to lock balance", err)
	}
	b, err := converter.BalanceFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode balance", err)
	}
	return b, nil
}

func (r *MerchRepository) SaveBalance(ctx context.Context, tx sqlc.DBTX, b *merch.Balance) error {
	err := r.queries.UpsertMerchBalance(ctx, tx, sqlc.UpsertMerchBalanceParams{
		Holder: pgconv.AddressToText(b.Holder()),
		Amount: pgconv.BigIntToNumeric(b.Amount()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save balance", err)
	}
	return nil
}
