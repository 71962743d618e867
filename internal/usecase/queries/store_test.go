//go:build unit

package queries_test

import (
	"context"
	"math/big"
	"testing"

	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/domain/merch"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	nftA = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	nftB = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
)

func pricedSettings() *queries.SettingsView {
	return &queries.SettingsView{
		ShirtFee:        big.NewInt(50),
		ShippingFee:     big.NewInt(10),
		ShirtRoyaltyBps: 2000,
	}
}

func TestStoreQueries_EstimateCost(t *testing.T) {
	designs := []merch.Design{
		{{NFT: nftA, TokenID: big.NewInt(1)}, {NFT: nftB, TokenID: big.NewInt(2)}},
		{{NFT: nftA, TokenID: big.NewInt(3)}},
	}

	tests := []struct {
		name     string
		listings []*queries.ListingView
		settings *queries.SettingsView
		setErr   error
		want     *big.Int
		wantErr  error
	}{
		{
			name: "two shirts plus shipping once",
			listings: []*queries.ListingView{
				{Address: nftA.Hex(), Owner: artist.Hex(), Active: true},
				{Address: nftB.Hex(), Owner: artist.Hex(), Active: true},
			},
			settings: pricedSettings(),
			want:     big.NewInt(110),
		},
		{
			name: "無効化された NFT",
			listings: []*queries.ListingView{
				{Address: nftA.Hex(), Owner: artist.Hex(), Active: true},
				{Address: nftB.Hex(), Owner: artist.Hex(), Active: false},
			},
			wantErr: merch.ErrNotWhitelisted,
		},
		{
			name: "unlisted NFT",
			listings: []*queries.ListingView{
				{Address: nftA.Hex(), Owner: artist.Hex(), Active: true},
			},
			wantErr: merch.ErrNotWhitelisted,
		},
		{
			name: "settings not seeded",
			listings: []*queries.ListingView{
				{Address: nftA.Hex(), Owner: artist.Hex(), Active: true},
				{Address: nftB.Hex(), Owner: artist.Hex(), Active: true},
			},
			setErr:  infra.WrapRepoErr("settings not seeded", nil, infra.KindNotFound),
			wantErr: governance.ErrNotSeeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockMerchStore)
			store.On("ListListings", mock.Anything, []common.Address{nftA, nftB}).Return(tt.listings, nil)
			settings := new(mockSettingsStore)
			settings.On("Get", mock.Anything).Return(tt.settings, tt.setErr).Maybe()

			got, err := queries.NewStoreQueries(store, settings).EstimateCost(context.Background(), designs)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tt.want.Cmp(got), "got %s", got)
		})
	}
}

func TestStoreQueries_EstimateCostEmptyOrder(t *testing.T) {
	store := new(mockMerchStore)
	store.On("ListListings", mock.Anything, mock.Anything).Return([]*queries.ListingView{}, nil)

	_, err := queries.NewStoreQueries(store, new(mockSettingsStore)).EstimateCost(context.Background(), nil)

	assert.ErrorIs(t, err, merch.ErrEmptyOrder)
}

func TestStoreQueries_GetListing(t *testing.T) {
	store := new(mockMerchStore)
	store.On("FindListing", mock.Anything, nftA).Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))

	_, err := queries.NewStoreQueries(store, new(mockSettingsStore)).GetListing(context.Background(), nftA)

	assert.ErrorIs(t, err, merch.ErrListingMissing)
}
