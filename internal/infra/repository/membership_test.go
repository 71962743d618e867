//go:build unit

package repository_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"voucher-ledger/internal/domain/membership"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/tests/common/builder"
	repositorymock "voucher-ledger/tests/mock/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPackageRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(*repositorymock.MockPackageWriteQueries, sqlc.DBTX)
		errIs     error
		errKind   infra.RepositoryErrorKind
	}{
		{
			name: "success",
			setupMock: func(mock *repositorymock.MockPackageWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertMemberPackage(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: 既存IDはDuplicateId",
			setupMock: func(mock *repositorymock.MockPackageWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertMemberPackage(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			errIs: membership.ErrPackageExists,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockPackageWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertMemberPackage(ctx, tx, gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			errKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPackageWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			p, err := builder.NewPackageBuilder().BuildDomain()
			require.NoError(t, err)

			err = repository.NewPackageRepository(mockQueries, mockDB).Create(ctx, mockDB, p)

			switch {
			case tc.errIs != nil:
				require.ErrorIs(t, err, tc.errIs)
			case tc.errKind != "":
				assert.True(t, infra.IsKind(err, tc.errKind))
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestPackageRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: numeric price decodes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPackageWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		price, _ := new(big.Int).SetString("1000000000000000000000", 10)
		mockQueries.EXPECT().GetMemberPackageForUpdate(ctx, mockDB, int64(2)).Return(sqlc.MemberPackages{
			ID:           2,
			Name:         "Gold",
			Price:        pgconv.BigIntToNumeric(price),
			PaymentToken: common.Address{}.Hex(),
			MaxSold:      5,
			Sold:         2,
			StartTime:    10,
			EndTime:      20,
			Duration:     30,
			Active:       true,
		}, nil)

		p, err := repository.NewPackageRepository(mockQueries, mockDB).FindForUpdate(ctx, mockDB, 2)

		require.NoError(t, err)
		assert.Equal(t, 0, price.Cmp(p.Price()))
		assert.Equal(t, uint64(2), p.Sold())
		assert.True(t, p.Active())
	})

	t.Run("error: unknown id is NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPackageWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetMemberPackageForUpdate(ctx, mockDB, int64(3)).Return(sqlc.MemberPackages{}, pgx.ErrNoRows)

		_, err := repository.NewPackageRepository(mockQueries, mockDB).FindForUpdate(ctx, mockDB, 3)

		require.ErrorIs(t, err, membership.ErrPackageNotFound)
	})
}

func TestSubscriptionRepository_FindOrNew(t *testing.T) {
	ctx := context.Background()
	subscriber := builder.DefaultArtist

	t.Run("未購入なら空のサブスクリプション", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetSubscriptionForUpdate(ctx, mockDB, sqlc.GetSubscriptionForUpdateParams{
			Subscriber: subscriber.Hex(),
			PackageID:  1,
		}).Return(sqlc.Subscriptions{}, pgx.ErrNoRows)

		s, err := repository.NewSubscriptionRepository(mockQueries, mockDB).FindOrNew(ctx, mockDB, subscriber, 1)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), s.ExpirationTime())
		assert.Equal(t, subscriber, s.Subscriber())
	})

	t.Run("existing row is loaded then saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSubscriptionRepository(mockQueries, mockDB)
		mockQueries.EXPECT().GetSubscriptionForUpdate(ctx, mockDB, gomock.Any()).Return(sqlc.Subscriptions{
			Subscriber:     subscriber.Hex(),
			PackageID:      1,
			ExpirationTime: 500,
		}, nil)
		mockQueries.EXPECT().UpsertSubscription(ctx, mockDB, sqlc.UpsertSubscriptionParams{
			Subscriber:     subscriber.Hex(),
			PackageID:      1,
			ExpirationTime: 700,
		}).Return(nil)

		s, err := repo.FindOrNew(ctx, mockDB, subscriber, 1)
		require.NoError(t, err)
		require.NoError(t, s.Extend(2, 100, 400))

		require.NoError(t, repo.Save(ctx, mockDB, s))
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetSubscriptionForUpdate(ctx, mockDB, gomock.Any()).Return(sqlc.Subscriptions{}, errors.New("connection reset"))

		_, err := repository.NewSubscriptionRepository(mockQueries, mockDB).FindOrNew(ctx, mockDB, subscriber, 1)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestSubscriptionRepository_HasActive(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().HasActiveSubscription(ctx, mockDB, sqlc.HasActiveSubscriptionParams{
		Subscriber: builder.DefaultArtist.Hex(),
		Now:        int64(builder.BaseTime),
	}).Return(true, nil)

	active, err := repository.NewSubscriptionRepository(mockQueries, mockDB).HasActive(ctx, mockDB, builder.DefaultArtist, builder.BaseTime)

	require.NoError(t, err)
	assert.True(t, active)
}
