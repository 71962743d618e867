package repository

import (
	"context"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

type TokenWriteQueries interface {
	InsertNft(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertNftParams) error
	GetNftForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNftForUpdateParams) (sqlc.Nfts, error)
	UpdateNftLayer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNftLayerParams) error
}

type TokenRepository struct {
	queries TokenWriteQueries
	db      sqlc.DBTX
}

func NewTokenRepository(queries TokenWriteQueries, db sqlc.DBTX) *TokenRepository {
	return &TokenRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TokenRepository) Create(ctx context.Context, tx sqlc.DBTX, t *collection.Token, mintedAt uint64) error {
	if err := r.queries.InsertNft(ctx, tx, converter.TokenToInsertParams(t, mintedAt)); err != nil {
		return infra.WrapRepoErr("failed to create token", err)
	}
	return nil
}

func (r *TokenRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, collectionID, tokenID uint64) (*collection.Token, error) {
	row, err := r.queries.GetNftForUpdate(ctx, tx, sqlc.GetNftForUpdateParams{
		CollectionID: int64(collectionID),
		TokenID:      int64(tokenID),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, collection.ErrTokenNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock token", err)
	}
	return converter.TokenFromInfra(row), nil
}

func (r *TokenRepository) UpdateLayer(ctx context.Context, tx sqlc.DBTX, t *collection.Token) error {
	err := r.queries.UpdateNftLayer(ctx, tx, sqlc.UpdateNftLayerParams{
		CollectionID: int64(t.CollectionID()),
		TokenID:      int64(t.TokenID()),
		Uri:          t.URI(),
		LayerHash:    t.LayerHash(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update token layer", err)
	}
	return nil
}
