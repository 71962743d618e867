//go:build unit

package readstore

import (
	"context"
	"testing"

	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCollectionReadQueries struct {
	mock.Mock
}

func (m *MockCollectionReadQueries) GetCollection(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Collections, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Collections), args.Error(1)
}

func (m *MockCollectionReadQueries) ListCollectionsByArtist(ctx context.Context, db sqlc.DBTX, artist string) ([]sqlc.Collections, error) {
	args := m.Called(ctx, db, artist)
	return args.Get(0).([]sqlc.Collections), args.Error(1)
}

func (m *MockCollectionReadQueries) GetNft(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNftParams) (sqlc.Nfts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Nfts), args.Error(1)
}

func (m *MockCollectionReadQueries) GetUniquenessKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUniquenessKeyParams) (sqlc.UniquenessKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.UniquenessKeys), args.Error(1)
}

var artist = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

func collectionRow() sqlc.Collections {
	return sqlc.Collections{
		ID:           3,
		KeyID:        7,
		Artist:       artist.Hex(),
		Name:         "Layers",
		Symbol:       "LYR",
		BaseUri:      "ipfs://base/",
		PaymentToken: common.Address{}.Hex(),
		MintCap:      100,
		StartTime:    1000,
		EndTime:      2000,
		TotalMinted:  4,
		Upgradeable:  true,
	}
}

func TestCollectionReadStore_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCollectionReadQueries)
			row := collectionRow()
			if tt.mockError != nil {
				row = sqlc.Collections{}
			}
			mockQueries.On("GetCollection", mock.Anything, mock.Anything, int64(3)).Return(row, tt.mockError)

			store := NewCollectionReadStore(mockQueries, nil)
			view, err := store.FindByID(context.Background(), 3)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(3), view.ID)
				assert.Equal(t, uint64(7), view.KeyID)
				assert.Equal(t, artist.Hex(), view.Artist)
				assert.Equal(t, uint64(4), view.TotalMinted)
				assert.True(t, view.Upgradeable)
				assert.Empty(t, view.State)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCollectionReadStore_ListByArtist(t *testing.T) {
	mockQueries := new(MockCollectionReadQueries)
	mockQueries.On("ListCollectionsByArtist", mock.Anything, mock.Anything, artist.Hex()).
		Return([]sqlc.Collections{collectionRow(), collectionRow()}, nil)

	store := NewCollectionReadStore(mockQueries, nil)
	views, err := store.ListByArtist(context.Background(), artist)

	require.NoError(t, err)
	assert.Len(t, views, 2)
	mockQueries.AssertExpectations(t)
}

func TestCollectionReadStore_FindToken(t *testing.T) {
	layer := []byte{0xde, 0xad, 0xbe, 0xef}
	params := sqlc.GetNftParams{CollectionID: 3, TokenID: 1}

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockCollectionReadQueries)
		mockQueries.On("GetNft", mock.Anything, mock.Anything, params).Return(sqlc.Nfts{
			CollectionID: 3,
			TokenID:      1,
			Owner:        artist.Hex(),
			Uri:          "ipfs://base/1",
			LayerHash:    layer,
			MintedAt:     1500,
		}, nil)

		view, err := NewCollectionReadStore(mockQueries, nil).FindToken(context.Background(), 3, 1)

		require.NoError(t, err)
		assert.Equal(t, "0xdeadbeef", view.LayerHash)
		assert.Equal(t, "ipfs://base/1", view.URI)
		assert.Equal(t, uint64(1500), view.MintedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockCollectionReadQueries)
		mockQueries.On("GetNft", mock.Anything, mock.Anything, params).Return(sqlc.Nfts{}, pgx.ErrNoRows)

		view, err := NewCollectionReadStore(mockQueries, nil).FindToken(context.Background(), 3, 1)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCollectionReadStore_FindLayer(t *testing.T) {
	hash := []byte{0x01, 0x02}
	successor := []byte{0x03, 0x04}
	params := sqlc.GetUniquenessKeyParams{Domain: ledger.DomainLayer.String(), Key: hash}
	collectionID, tokenID := uint64(3), uint64(9)

	tests := []struct {
		name      string
		row       sqlc.UniquenessKeys
		mockError error
		check     func(t *testing.T, err error, minted bool, successor string)
	}{
		{
			name: "未使用のレイヤーは minted=false",
			row:  sqlc.UniquenessKeys{},
			// no rows is the normal "free" answer, not an error
			mockError: pgx.ErrNoRows,
			check: func(t *testing.T, err error, minted bool, succ string) {
				require.NoError(t, err)
				assert.False(t, minted)
				assert.Empty(t, succ)
			},
		},
		{
			name: "retired layer points at successor",
			row: sqlc.UniquenessKeys{
				Domain:       ledger.DomainLayer.String(),
				Key:          hash,
				Consumer:     artist.Hex(),
				CollectionID: pgconv.Int8PtrToPgtype(&collectionID),
				TokenID:      pgconv.Int8PtrToPgtype(&tokenID),
				Successor:    successor,
			},
			check: func(t *testing.T, err error, minted bool, succ string) {
				require.NoError(t, err)
				assert.True(t, minted)
				assert.Equal(t, hexutil.Encode(successor), succ)
			},
		},
		{
			name:      "database error",
			row:       sqlc.UniquenessKeys{},
			mockError: assert.AnError,
			check: func(t *testing.T, err error, _ bool, _ string) {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCollectionReadQueries)
			mockQueries.On("GetUniquenessKey", mock.Anything, mock.Anything, params).Return(tt.row, tt.mockError)

			view, err := NewCollectionReadStore(mockQueries, nil).FindLayer(context.Background(), hash)

			if view == nil {
				tt.check(t, err, false, "")
				return
			}
			tt.check(t, err, view.Minted, view.Successor)
			if view.Minted {
				assert.Equal(t, &collectionID, view.CollectionID)
				assert.Equal(t, &tokenID, view.TokenID)
			}
		})
	}
}
