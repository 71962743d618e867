package queries

import (
	"context"
	"math/big"

	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/domain/merch"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/ethereum/go-ethereum/common"
)

type MerchReadStore interface {
	FindListing(ctx context.Context, address common.Address) (*ListingView, error)
	ListListings(ctx context.Context, addresses []common.Address) ([]*ListingView, error)
	// FindBalance returns a zero balance for unknown holders.
	FindBalance(ctx context.Context, holder common.Address) (*BalanceView, error)
}

type StoreQueries interface {
	EstimateCost(ctx context.Context, designs []merch.Design) (*big.Int, error)
	GetListing(ctx context.Context, address common.Address) (*ListingView, error)
	GetBalance(ctx context.Context, holder common.Address) (*BalanceView, error)
}

type storeQueriesImpl struct {
	repo     MerchReadStore
	settings SettingsReadStore
}

func NewStoreQueries(repo MerchReadStore, settings SettingsReadStore) StoreQueries {
	return &storeQueriesImpl{repo: repo, settings: settings}
}

// EstimateCost prices an order without locking anything; buyShirt re-checks
// under locks.
func (q *storeQueriesImpl) EstimateCost(ctx context.Context, designs []merch.Design) (*big.Int, error) {
	views, err := q.repo.ListListings(ctx, merch.Contracts(designs))
	if err != nil {
		return nil, err
	}
	listings := make(map[common.Address]*merch.Listing, len(views))
	for _, v := range views {
		addr := pgconv.TextToAddress(v.Address)
		listings[addr] = merch.ReconstructListing(addr, pgconv.TextToAddress(v.Owner), v.Active)
	}
	if err := merch.Validate(designs, listings); err != nil {
		return nil, err
	}

	s, err := q.settings.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, governance.ErrNotSeeded
		}
		return nil, err
	}
	pricing := merch.Pricing{ShirtFee: s.ShirtFee, ShippingFee: s.ShippingFee, RoyaltyBps: s.ShirtRoyaltyBps}
	return pricing.Estimate(len(designs)), nil
}

func (q *storeQueriesImpl) GetListing(ctx context.Context, address common.Address) (*ListingView, error) {
	v, err := q.repo.FindListing(ctx, address)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, merch.ErrListingMissing
		}
		return nil, err
	}
	return v, nil
}

func (q *storeQueriesImpl) GetBalance(ctx context.Context, holder common.Address) (*BalanceView, error) {
	return q.repo.FindBalance(ctx, holder)
}
