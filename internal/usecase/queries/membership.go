package queries

import (
	"context"

	"voucher-ledger/internal/domain/membership"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/clock"

	"github.com/ethereum/go-ethereum/common"
)

type MembershipReadStore interface {
	FindPackage(ctx context.Context, id uint64) (*PackageView, error)
	ListActivePackages(ctx context.Context) ([]*PackageView, error)
	ListSubscriptions(ctx context.Context, subscriber common.Address) ([]*SubscriptionView, error)
}

type MembershipQueries interface {
	GetPackage(ctx context.Context, id uint64) (*PackageView, error)
	ListActivePackages(ctx context.Context) ([]*PackageView, error)
	ListSubscriptions(ctx context.Context, subscriber common.Address) ([]*SubscriptionView, error)
}

type membershipQueriesImpl struct {
	repo  MembershipReadStore
	clock clock.Clock
}

func NewMembershipQueries(repo MembershipReadStore, clk clock.Clock) MembershipQueries {
	return &membershipQueriesImpl{repo: repo, clock: clk}
}

func (q *membershipQueriesImpl) GetPackage(ctx context.Context, id uint64) (*PackageView, error) {
	v, err := q.repo.FindPackage(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, membership.ErrPackageNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *membershipQueriesImpl) ListActivePackages(ctx context.Context) ([]*PackageView, error) {
	return q.repo.ListActivePackages(ctx)
}

func (q *membershipQueriesImpl) ListSubscriptions(ctx context.Context, subscriber common.Address) ([]*SubscriptionView, error) {
	views, err := q.repo.ListSubscriptions(ctx, subscriber)
	if err != nil {
		return nil, err
	}
	now := clock.Unix(q.clock)
	for _, v := range views {
		v.Active = v.ExpirationTime > now
	}
	return views, nil
}
