//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/tests/common/builder"
	repositorymock "voucher-ledger/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// NextID Tests
// =============================================================================

func TestCollectionRepository_NextID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCollectionWriteQueries, sqlc.DBTX)
		expectedID    uint64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: lock then next id",
			setupMock: func(mock *repositorymock.MockCollectionWriteQueries, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().LockCollectionIDs(ctx, tx).Return(nil),
					mock.EXPECT().NextCollectionID(ctx, tx).Return(int64(4), nil),
				)
			},
			expectedID: 4,
		},
		{
			name: "error: lock fails",
			setupMock: func(mock *repositorymock.MockCollectionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockCollectionIDs(ctx, tx).Return(errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: next id query fails",
			setupMock: func(mock *repositorymock.MockCollectionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockCollectionIDs(ctx, tx).Return(nil)
				mock.EXPECT().NextCollectionID(ctx, tx).Return(int64(0), errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCollectionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCollectionRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			id, err := repo.NextID(ctx, mockDB)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

// =============================================================================
// Create / FindForUpdate / Update Tests
// =============================================================================

func TestCollectionRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(*repositorymock.MockCollectionWriteQueries, sqlc.DBTX)
		errIs     error
		errKind   infra.RepositoryErrorKind
	}{
		{
			name: "success: params carry checksum addresses",
			setupMock: func(mock *repositorymock.MockCollectionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCollection(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertCollectionParams) error {
						assert.Equal(t, builder.DefaultArtist.Hex(), arg.Artist)
						assert.Equal(t, "0x0000000000000000000000000000000000000000", arg.PaymentToken)
						assert.Equal(t, int64(10), arg.MintCap)
						return nil
					})
			},
		},
		{
			name: "error: id collision becomes DuplicateId",
			setupMock: func(mock *repositorymock.MockCollectionWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().InsertCollection(ctx, tx, gomock.Any()).Return(dup)
			},
			errIs: repository.ErrCollectionIDTaken,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockCollectionWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCollection(ctx, tx, gomock.Any()).Return(errors.New("connection reset"))
			},
			errKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCollectionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCollectionRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			c, err := builder.NewCollectionBuilder().BuildDomain()
			require.NoError(t, err)

			err = repo.Create(ctx, mockDB, c)

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

func TestCollectionRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	row := sqlc.Collections{
		ID:           7,
		KeyID:        3,
		Artist:       builder.DefaultArtist.Hex(),
		Name:         "Genesis",
		Symbol:       "GEN",
		BaseUri:      "ipfs://genesis/",
		PaymentToken: "0x0000000000000000000000000000000000000000",
		MintCap:      10,
		StartTime:    100,
		EndTime:      200,
		TotalMinted:  4,
		Upgradeable:  true,
	}

	t.Run("success: row becomes aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCollectionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetCollectionForUpdate(ctx, mockDB, int64(7)).Return(row, nil)

		c, err := repository.NewCollectionRepository(mockQueries, mockDB).FindForUpdate(ctx, mockDB, 7)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), c.ID())
		assert.Equal(t, builder.DefaultArtist, c.Artist())
		assert.Equal(t, uint64(4), c.TotalMinted())
		assert.True(t, c.Upgradeable())
		assert.True(t, c.IsNativePayment())
	})

	t.Run("error: 存在しないIDはNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCollectionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetCollectionForUpdate(ctx, mockDB, int64(9)).Return(sqlc.Collections{}, pgx.ErrNoRows)

		_, err := repository.NewCollectionRepository(mockQueries, mockDB).FindForUpdate(ctx, mockDB, 9)

		require.ErrorIs(t, err, collection.ErrNotFound)
	})
}

func TestCollectionRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCollectionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	c := builder.NewCollectionBuilder().With(func(b *builder.CollectionBuilder) {
		b.TotalMinted = 3
		b.Upgradeable = true
	}).BuildStored()

	mockQueries.EXPECT().UpdateCollection(ctx, mockDB, sqlc.UpdateCollectionParams{
		ID:          1,
		MintCap:     10,
		StartTime:   int64(builder.BaseTime + 86400),
		EndTime:     int64(builder.BaseTime + 172800),
		TotalMinted: 3,
		Upgradeable: true,
	}).Return(nil)

	require.NoError(t, repository.NewCollectionRepository(mockQueries, mockDB).Update(ctx, mockDB, c))
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
