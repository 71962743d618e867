package repository

import (
	"context"

	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

type UniquenessWriteQueries interface {
	InsertUniquenessKey(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUniquenessKeyParams) (int64, error)
	GetUniquenessKeyForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUniquenessKeyForUpdateParams) (sqlc.UniquenessKeys, error)
	RetireUniquenessKey(ctx context.Context, db sqlc.DBTX, arg sqlc.RetireUniquenessKeyParams) error
}

type UniquenessRepository struct {
	queries UniquenessWriteQueries
	db      sqlc.DBTX
}

func NewUniquenessRepository(queries UniquenessWriteQueries, db sqlc.DBTX) *UniquenessRepository {
	return &UniquenessRepository{
		queries: queries,
		db:      db,
	}
}

// Record relies on ON CONFLICT DO NOTHING: zero affected rows means another
// transaction (or an earlier one) owns the key.
func (r *UniquenessRepository) Record(ctx context.Context, tx sqlc.DBTX, rec *ledger.Record) error {
	rows, err := r.queries.InsertUniquenessKey(ctx, tx, converter.RecordToInsertParams(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to record uniqueness key", err)
	}
	if rows == 0 {
		return ledger.ErrAlreadyConsumed
	}
	return nil
}

func (r *UniquenessRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, domain ledger.Domain, key []byte) (*ledger.Record, error) {
	row, err := r.queries.GetUniquenessKeyForUpdate(ctx, tx, sqlc.GetUniquenessKeyForUpdateParams{
		Domain: domain.String(),
		Key:    key,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, ledger.ErrUnknownKey
		}
		return nil, infra.WrapRepoErr("failed to lock uniqueness key", err)
	}
	return converter.RecordFromInfra(row), nil
}

func (r *UniquenessRepository) Retire(ctx context.Context, tx sqlc.DBTX, rec *ledger.Record) error {
	err := r.queries.RetireUniquenessKey(ctx, tx, sqlc.RetireUniquenessKeyParams{
		Domain:    rec.Domain().String(),
		Key:       rec.Key(),
		Consumer:  pgconv.AddressToText(rec.Consumer()),
		Successor: rec.Successor(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to retire uniqueness key", err)
	}
	return nil
}
