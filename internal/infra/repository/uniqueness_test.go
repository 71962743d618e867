//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/tests/common/builder"
	repositorymock "voucher-ledger/tests/mock/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUniquenessRepository_Record(t *testing.T) {
	ctx := context.Background()
	layer := []byte{0xaa, 0xbb}

	testCases := []struct {
		name      string
		setupMock func(*repositorymock.MockUniquenessWriteQueries, sqlc.DBTX)
		errIs     error
		errKind   infra.RepositoryErrorKind
	}{
		{
			name: "success: first use of the key",
			setupMock: func(mock *repositorymock.MockUniquenessWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertUniquenessKey(ctx, tx, sqlc.InsertUniquenessKeyParams{
					Domain:       "layer",
					Key:          layer,
					Consumer:     builder.DefaultArtist.Hex(),
					CollectionID: pgtype.Int8{Int64: 1, Valid: true},
					TokenID:      pgtype.Int8{Int64: 2, Valid: true},
					ConsumedAt:   int64(builder.BaseTime),
				}).Return(int64(1), nil)
			},
		},
		{
			name: "error: conflict means AlreadyConsumed",
			setupMock: func(mock *repositorymock.MockUniquenessWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertUniquenessKey(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			errIs: ledger.ErrAlreadyConsumed,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockUniquenessWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertUniquenessKey(ctx, tx, gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			errKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUniquenessWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			rec, err := ledger.NewRecord(ledger.DomainLayer, layer, builder.DefaultArtist, builder.BaseTime)
			require.NoError(t, err)
			rec.BindToken(1, 2)

			err = repository.NewUniquenessRepository(mockQueries, mockDB).Record(ctx, mockDB, rec)

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

func TestUniquenessRepository_FindAndRetire(t *testing.T) {
	ctx := context.Background()
	authority := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	oldKey := []byte{0x01}
	newKey := []byte{0x02}

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUniquenessWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewUniquenessRepository(mockQueries, mockDB)

	mockQueries.EXPECT().GetUniquenessKeyForUpdate(ctx, mockDB, sqlc.GetUniquenessKeyForUpdateParams{
		Domain: "layer",
		Key:    oldKey,
	}).Return(sqlc.UniquenessKeys{
		Domain:       "layer",
		Key:          oldKey,
		Consumer:     builder.DefaultArtist.Hex(),
		CollectionID: pgtype.Int8{Int64: 1, Valid: true},
		TokenID:      pgtype.Int8{Int64: 1, Valid: true},
		ConsumedAt:   int64(builder.BaseTime),
	}, nil)
	mockQueries.EXPECT().RetireUniquenessKey(ctx, mockDB, sqlc.RetireUniquenessKeyParams{
		Domain:    "layer",
		Key:       oldKey,
		Consumer:  authority.Hex(),
		Successor: newKey,
	}).Return(nil)

	old, err := repo.FindForUpdate(ctx, mockDB, ledger.DomainLayer, oldKey)
	require.NoError(t, err)
	require.NotNil(t, old.TokenID())
	assert.Equal(t, uint64(1), *old.TokenID())

	successor, err := old.Succeed(newKey, builder.DefaultArtist, authority, builder.BaseTime+10)
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultArtist, successor.Consumer())

	require.NoError(t, repo.Retire(ctx, mockDB, old))
}

func TestUniquenessRepository_FindForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockUniquenessWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().GetUniquenessKeyForUpdate(ctx, mockDB, gomock.Any()).Return(sqlc.UniquenessKeys{}, pgx.ErrNoRows)

	_, err := repository.NewUniquenessRepository(mockQueries, mockDB).FindForUpdate(ctx, mockDB, ledger.DomainLayer, []byte{0x09})

	require.ErrorIs(t, err, ledger.ErrUnknownKey)
}
