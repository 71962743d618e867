//go:build unit

package queries_test

import (
	"context"
	"time"

	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockCollectionStore struct {
	mock.Mock
}

func (m *mockCollectionStore) FindByID(ctx context.Context, id uint64) (*queries.CollectionView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.CollectionView)
	return v, args.Error(1)
}

func (m *mockCollectionStore) ListByArtist(ctx context.Context, artist common.Address) ([]*queries.CollectionView, error) {
	args := m.Called(ctx, artist)
	v, _ := args.Get(0).([]*queries.CollectionView)
	return v, args.Error(1)
}

func (m *mockCollectionStore) FindToken(ctx context.Context, collectionID, tokenID uint64) (*queries.TokenView, error) {
	args := m.Called(ctx, collectionID, tokenID)
	v, _ := args.Get(0).(*queries.TokenView)
	return v, args.Error(1)
}

func (m *mockCollectionStore) FindLayer(ctx context.Context, hash []byte) (*queries.LayerView, error) {
	args := m.Called(ctx, hash)
	v, _ := args.Get(0).(*queries.LayerView)
	return v, args.Error(1)
}

type mockPayoutStore struct {
	mock.Mock
}

func (m *mockPayoutStore) ListByReference(ctx context.Context, reference string) ([]*queries.PayoutView, error) {
	args := m.Called(ctx, reference)
	v, _ := args.Get(0).([]*queries.PayoutView)
	return v, args.Error(1)
}

func (m *mockPayoutStore) ListByPayeeFirstPage(ctx context.Context, payee common.Address, limit int32) ([]*queries.PayoutView, error) {
	args := m.Called(ctx, payee, limit)
	v, _ := args.Get(0).([]*queries.PayoutView)
	return v, args.Error(1)
}

func (m *mockPayoutStore) ListByPayeeKeyset(ctx context.Context, payee common.Address, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PayoutView, error) {
	args := m.Called(ctx, payee, lastCreatedAt, lastID, limit)
	v, _ := args.Get(0).([]*queries.PayoutView)
	return v, args.Error(1)
}

type mockMerchStore struct {
	mock.Mock
}

func (m *mockMerchStore) FindListing(ctx context.Context, address common.Address) (*queries.ListingView, error) {
	args := m.Called(ctx, address)
	v, _ := args.Get(0).(*queries.ListingView)
	return v, args.Error(1)
}

func (m *mockMerchStore) ListListings(ctx context.Context, addresses []common.Address) ([]*queries.ListingView, error) {
	args := m.Called(ctx, addresses)
	v, _ := args.Get(0).([]*queries.ListingView)
	return v, args.Error(1)
}

func (m *mockMerchStore) FindBalance(ctx context.Context, holder common.Address) (*queries.BalanceView, error) {
	args := m.Called(ctx, holder)
	v, _ := args.Get(0).(*queries.BalanceView)
	return v, args.Error(1)
}

type mockSettingsStore struct {
	mock.Mock
}

func (m *mockSettingsStore) Get(ctx context.Context) (*queries.SettingsView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*queries.SettingsView)
	return v, args.Error(1)
}
