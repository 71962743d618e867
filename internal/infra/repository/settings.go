package repository

import (
	"context"

	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

type SettingsWriteQueries interface {
	GetSettings(ctx context.Context, db sqlc.DBTX) (sqlc.Settings, error)
	GetSettingsForUpdate(ctx context.Context, db sqlc.DBTX) (sqlc.Settings, error)
	InsertSettingsIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSettingsIfAbsentParams) (int64, error)
	UpdateSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSettingsParams) error
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      sqlc.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db sqlc.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsRepository) Get(ctx context.Context, tx sqlc.DBTX) (*governance.Settings, error) {
	row, err := r.queries.GetSettings(ctx, tx)
	return r.load(row, err)
}

func (r *SettingsRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX) (*governance.Settings, error) {
	row, err := r.queries.GetSettingsForUpdate(ctx, tx)
	return r.load(row, err)
}

func (r *SettingsRepository) load(row sqlc.Settings, err error) (*governance.Settings, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, governance.ErrNotSeeded
		}
		return nil, infra.WrapRepoErr("failed to get settings", err)
	}
	s, err := converter.SettingsFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode settings", err)
	}
	return s, nil
}

func (r *SettingsRepository) InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, s *governance.Settings) (bool, error) {
	rows, err := r.queries.InsertSettingsIfAbsent(ctx, tx, converter.SettingsToInsertParams(s))
	if err != nil {
		return false, infra.WrapRepoErr("failed to seed settings", err)
	}
	return rows > 0, nil
}

func (r *SettingsRepository) Update(ctx context.Context, tx sqlc.DBTX, s *governance.Settings) error {
	if err := r.queries.UpdateSettings(ctx, tx, converter.SettingsToUpdateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update settings", err)
	}
	return nil
}
