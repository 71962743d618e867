package readstore

import (
	"context"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"
)

type SettingsReadQueries interface {
	GetSettings(ctx context.Context, db sqlc.DBTX) (sqlc.Settings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) Get(ctx context.Context) (*queries.SettingsView, error) {
	row, err := r.queries.GetSettings(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("settings not seeded", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get settings", err)
	}
	shirtFee, err := pgconv.NumericToBigInt(row.ShirtFee)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode shirt fee", err)
	}
	shippingFee, err := pgconv.NumericToBigInt(row.ShippingFee)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode shipping fee", err)
	}
	return &queries.SettingsView{
		Owner:                  row.Owner,
		Verifier:               row.Verifier,
		FeeRecipient:           row.FeeRecipient,
		RoyaltyRecipient:       row.RoyaltyRecipient,
		RoyaltyBps:             uint32(row.RoyaltyBps),
		MembershipFeeRecipient: row.MembershipFeeRecipient,
		ShirtFee:               shirtFee,
		ShippingFee:            shippingFee,
		ShirtRoyaltyBps:        uint32(row.ShirtRoyaltyBps),
	}, nil
}
