//go:build unit

package repository_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"voucher-ledger/internal/domain/merch"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	repositorymock "voucher-ledger/tests/mock/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	nftA   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	nftB   = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	holder = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func TestMerchRepository_ListingsForUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMerchWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ListMerchListingsForUpdate(ctx, mockDB, []string{nftA.Hex(), nftB.Hex()}).Return([]sqlc.MerchListings{
		{Address: nftA.Hex(), Owner: holder.Hex(), Active: true},
	}, nil)

	listings, err := repository.NewMerchRepository(mockQueries, mockDB).ListingsForUpdate(ctx, mockDB, []common.Address{nftA, nftB})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, holder, listings[nftA].Owner())
	assert.Nil(t, listings[nftB])
}

func TestMerchRepository_CreateShirt(t *testing.T) {
	ctx := context.Background()
	design := merch.Design{
		{NFT: nftA, TokenID: big.NewInt(1)},
		{NFT: nftB, TokenID: big.NewInt(2)},
	}

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockMerchWriteQueries, sqlc.DBTX)
		expectedID uint64
		errKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: one item row per nft in order",
			setupMock: func(mock *repositorymock.MockMerchWriteQueries, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().InsertMerchShirt(ctx, tx, sqlc.InsertMerchShirtParams{
						Buyer: holder.Hex(),
						Price: pgconv.BigIntToNumeric(big.NewInt(60)),
					}).Return(int64(11), nil),
					mock.EXPECT().InsertMerchShirtItem(ctx, tx, sqlc.InsertMerchShirtItemParams{
						ShirtID: 11, Position: 0, NftAddress: nftA.Hex(), TokenID: pgconv.BigIntToNumeric(big.NewInt(1)),
					}).Return(nil),
					mock.EXPECT().InsertMerchShirtItem(ctx, tx, sqlc.InsertMerchShirtItemParams{
						ShirtID: 11, Position: 1, NftAddress: nftB.Hex(), TokenID: pgconv.BigIntToNumeric(big.NewInt(2)),
					}).Return(nil),
				)
			},
			expectedID: 11,
		},
		{
			name: "error: item insert fails",
			setupMock: func(mock *repositorymock.MockMerchWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertMerchShirt(ctx, tx, gomock.Any()).Return(int64(11), nil)
				mock.EXPECT().InsertMerchShirtItem(ctx, tx, gomock.Any()).Return(errors.New("connection reset"))
			},
			errKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockMerchWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			id, err := repository.NewMerchRepository(mockQueries, mockDB).
				CreateShirt(ctx, mockDB, merch.NewShirt(0, holder, design, big.NewInt(60)))

			if tc.errKind != "" {
				assert.True(t, infra.IsKind(err, tc.errKind))
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestMerchRepository_BalanceForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown holder starts at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMerchWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetMerchBalanceForUpdate(ctx, mockDB, holder.Hex()).Return(sqlc.MerchBalances{}, pgx.ErrNoRows)

		b, err := repository.NewMerchRepository(mockQueries, mockDB).BalanceForUpdate(ctx, mockDB, holder)

		require.NoError(t, err)
		assert.Equal(t, 0, b.Amount().Sign())
	})

	t.Run("credit then save writes the new amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMerchWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMerchRepository(mockQueries, mockDB)
		mockQueries.EXPECT().GetMerchBalanceForUpdate(ctx, mockDB, holder.Hex()).Return(sqlc.MerchBalances{
			Holder: holder.Hex(),
			Amount: pgconv.BigIntToNumeric(big.NewInt(5)),
		}, nil)
		mockQueries.EXPECT().UpsertMerchBalance(ctx, mockDB, sqlc.UpsertMerchBalanceParams{
			Holder: holder.Hex(),
			Amount: pgconv.BigIntToNumeric(big.NewInt(12)),
		}).Return(nil)

		b, err := repo.BalanceForUpdate(ctx, mockDB, holder)
		require.NoError(t, err)
		b.Credit(big.NewInt(7))

		require.NoError(t, repo.SaveBalance(ctx, mockDB, b))
	})
}
