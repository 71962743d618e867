package readstore

import (
	"context"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
)

type MembershipReadQueries interface {
	GetMemberPackage(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.MemberPackages, error)
	ListActiveMemberPackages(ctx context.Context, db sqlc.DBTX) ([]sqlc.MemberPackages, error)
	ListSubscriptionsBySubscriber(ctx context.Context, db sqlc.DBTX, subscriber string) ([]sqlc.Subscriptions, error)
}

type MembershipReadStore struct {
	queries MembershipReadQueries
	db      sqlc.DBTX
}

func NewMembershipReadStore(queries MembershipReadQueries, db sqlc.DBTX) *MembershipReadStore {
	return &MembershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipReadStore) FindPackage(ctx context.Context, id uint64) (*queries.PackageView, error) {
	row, err := r.queries.GetMemberPackage(ctx, r.db, int64(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}
	return toPackageView(row)
}

func (r *MembershipReadStore) ListActivePackages(ctx context.Context) ([]*queries.PackageView, error) {
	rows, err := r.queries.ListActiveMemberPackages(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	result := make([]*queries.PackageView, 0, len(rows))
	for _, row := range rows {
		v, err := toPackageView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *MembershipReadStore) ListSubscriptions(ctx context.Context, subscriber common.Address) ([]*queries.SubscriptionView, error) {
	rows, err := r.queries.ListSubscriptionsBySubscriber(ctx, r.db, pgconv.AddressToText(subscriber))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions", err)
	}
	result := make([]*queries.SubscriptionView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SubscriptionView{
			Subscriber:     row.Subscriber,
			PackageID:      uint64(row.PackageID),
			ExpirationTime: uint64(row.ExpirationTime),
		}
	}
	return result, nil
}

func toPackageView(row sqlc.MemberPackages) (*queries.PackageView, error) {
	price, err := pgconv.NumericToBigInt(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode package price", err)
	}
	return &queries.PackageView{
		ID:           uint64(row.ID),
		Name:         row.Name,
		Price:        price,
		PaymentToken: row.PaymentToken,
		MaxSold:      uint64(row.MaxSold),
		Sold:         uint64(row.Sold),
		StartTime:    uint64(row.StartTime),
		EndTime:      uint64(row.EndTime),
		Duration:     uint64(row.Duration),
		Active:       row.Active,
	}, nil
}
