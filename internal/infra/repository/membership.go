package repository

import (
	"context"

	"voucher-ledger/internal/domain/membership"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/ethereum/go-ethereum/common"
)

type PackageWriteQueries interface {
	InsertMemberPackage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMemberPackageParams) (int64, error)
	GetMemberPackageForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.MemberPackages, error)
	UpdateMemberPackage(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMemberPackageParams) error
}

type PackageRepository struct {
	queries PackageWriteQueries
	db      sqlc.DBTX
}

func NewPackageRepository(queries PackageWriteQueries, db sqlc.DBTX) *PackageRepository {
	return &PackageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PackageRepository) Create(ctx context.Context, tx sqlc.DBTX, p *membership.Package) error {
	rows, err := r.queries.InsertMemberPackage(ctx, tx, converter.PackageToInsertParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to create package", err)
	}
	if rows == 0 {
		return membership.ErrPackageExists
	}
	return nil
}

func (r *PackageRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uint64) (*membership.Package, error) {
	row, err := r.queries.GetMemberPackageForUpdate(ctx, tx, int64(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, membership.ErrPackageNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock package", err)
	}
	p, err := converter.PackageFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode package", err)
	}
	return p, nil
}

func (r *PackageRepository) Update(ctx context.Context, tx sqlc.DBTX, p *membership.Package) error {
	if err := r.queries.UpdateMemberPackage(ctx, tx, converter.PackageToUpdateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to update package", err)
	}
	return nil
}

type SubscriptionWriteQueries interface {
	GetSubscriptionForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSubscriptionForUpdateParams) (sqlc.Subscriptions, error)
	UpsertSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSubscriptionParams) error
	HasActiveSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.HasActiveSubscriptionParams) (bool, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
	db      sqlc.DBTX
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries, db sqlc.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionRepository) FindOrNew(ctx context.Context, tx sqlc.DBTX, subscriber common.Address, packageID uint64) (*membership.Subscription, error) {
	row, err := r.queries.GetSubscriptionForUpdate(ctx, tx, sqlc.GetSubscriptionForUpdateParams{
		Subscriber: pgconv.AddressToText(subscriber),
		PackageID:  int64(packageID),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return membership.NewSubscription(subscriber, packageID), nil
		}
		return nil, infra.WrapRepoErr("failed to lock subscription", err)
	}
	return converter.SubscriptionFromInfra(row), nil
}

func (r *SubscriptionRepository) Save(ctx context.Context, tx sqlc.DBTX, s *membership.Subscription) error {
	err := r.queries.UpsertSubscription(ctx, tx, sqlc.UpsertSubscriptionParams{
		Subscriber:     pgconv.AddressToText(s.Subscriber()),
		PackageID:      int64(s.PackageID()),
		ExpirationTime: int64(s.ExpirationTime()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) HasActive(ctx context.Context, tx sqlc.DBTX, subscriber common.Address, now uint64) (bool, error) {
	active, err := r.queries.HasActiveSubscription(ctx, tx, sqlc.HasActiveSubscriptionParams{
		Subscriber: pgconv.AddressToText(subscriber),
		Now:        int64(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check subscription", err)
	}
	return active, nil
}
