package repository

import (
	"context"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/pgconv"
)

var ErrCollectionIDTaken = errs.Mark(errs.New("collection id already taken"), errs.ErrDuplicateID)

type CollectionWriteQueries interface {
	LockCollectionIDs(ctx context.Context, db sqlc.DBTX) error
	NextCollectionID(ctx context.Context, db sqlc.DBTX) (int64, error)
	InsertCollection(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCollectionParams) error
	GetCollectionForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Collections, error)
	UpdateCollection(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCollectionParams) error
}

type CollectionRepository struct {
	queries CollectionWriteQueries
	db      sqlc.DBTX
}

func NewCollectionRepository(queries CollectionWriteQueries, db sqlc.DBTX) *CollectionRepository {
	return &CollectionRepository{
		queries: queries,
		db:      db,
	}
}

// NextID takes the id advisory lock for the rest of the transaction.
func (r *CollectionRepository) NextID(ctx context.Context, tx sqlc.DBTX) (uint64, error) {
	if err := r.queries.LockCollectionIDs(ctx, tx); err != nil {
		return 0, infra.WrapRepoErr("failed to lock collection ids", err)
	}
	id, err := r.queries.NextCollectionID(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get next collection id", err)
	}
	return uint64(id), nil
}

func (r *CollectionRepository) Create(ctx context.Context, tx sqlc.DBTX, c *collection.Collection) error {
	err := r.queries.InsertCollection(ctx, tx, converter.CollectionToInsertParams(c))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create collection", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return ErrCollectionIDTaken
		}
		return wrapped
	}
	return nil
}

func (r *CollectionRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uint64) (*collection.Collection, error) {
	row, err := r.queries.GetCollectionForUpdate(ctx, tx, int64(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, collection.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock collection", err)
	}
	return converter.CollectionFromInfra(row), nil
}

func (r *CollectionRepository) Update(ctx context.Context, tx sqlc.DBTX, c *collection.Collection) error {
	if err := r.queries.UpdateCollection(ctx, tx, converter.CollectionToUpdateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to update collection", err)
	}
	return nil
}
