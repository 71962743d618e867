//go:build unit

package readstore

import (
	"context"
	"math/big"
	"testing"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMerchReadQueries struct {
	mock.Mock
}

func (m *MockMerchReadQueries) GetMerchListing(ctx context.Context, db sqlc.DBTX, address string) (sqlc.MerchListings, error) {
	args := m.Called(ctx, db, address)
	return args.Get(0).(sqlc.MerchListings), args.Error(1)
}

func (m *MockMerchReadQueries) ListMerchListings(ctx context.Context, db sqlc.DBTX, addresses []string) ([]sqlc.MerchListings, error) {
	args := m.Called(ctx, db, addresses)
	return args.Get(0).([]sqlc.MerchListings), args.Error(1)
}

func (m *MockMerchReadQueries) GetMerchBalance(ctx context.Context, db sqlc.DBTX, holder string) (sqlc.MerchBalances, error) {
	args := m.Called(ctx, db, holder)
	return args.Get(0).(sqlc.MerchBalances), args.Error(1)
}

var (
	nftAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	holder  = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func TestMerchReadStore_FindListing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockMerchReadQueries)
		mockQueries.On("GetMerchListing", mock.Anything, mock.Anything, nftAddr.Hex()).
			Return(sqlc.MerchListings{Address: nftAddr.Hex(), Owner: artist.Hex(), Active: true}, nil)

		view, err := NewMerchReadStore(mockQueries, nil).FindListing(context.Background(), nftAddr)

		require.NoError(t, err)
		assert.True(t, view.Active)
		assert.Equal(t, artist.Hex(), view.Owner)
	})

	t.Run("未登録", func(t *testing.T) {
		mockQueries := new(MockMerchReadQueries)
		mockQueries.On("GetMerchListing", mock.Anything, mock.Anything, nftAddr.Hex()).
			Return(sqlc.MerchListings{}, pgx.ErrNoRows)

		view, err := NewMerchReadStore(mockQueries, nil).FindListing(context.Background(), nftAddr)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestMerchReadStore_ListListings(t *testing.T) {
	other := common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	mockQueries := new(MockMerchReadQueries)
	mockQueries.On("ListMerchListings", mock.Anything, mock.Anything, []string{nftAddr.Hex(), other.Hex()}).
		Return([]sqlc.MerchListings{{Address: nftAddr.Hex(), Owner: artist.Hex(), Active: true}}, nil)

	views, err := NewMerchReadStore(mockQueries, nil).ListListings(context.Background(), []common.Address{nftAddr, other})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, nftAddr.Hex(), views[0].Address)
	mockQueries.AssertExpectations(t)
}

func TestMerchReadStore_FindBalance(t *testing.T) {
	tests := []struct {
		name      string
		row       sqlc.MerchBalances
		mockError error
		want      *big.Int
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  sqlc.MerchBalances{Holder: holder.Hex(), Amount: pgconv.BigIntToNumeric(big.NewInt(1234))},
			want: big.NewInt(1234),
		},
		{
			name:      "unknown holder has zero balance",
			mockError: pgx.ErrNoRows,
			want:      big.NewInt(0),
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockMerchReadQueries)
			mockQueries.On("GetMerchBalance", mock.Anything, mock.Anything, holder.Hex()).Return(tt.row, tt.mockError)

			view, err := NewMerchReadStore(mockQueries, nil).FindBalance(context.Background(), holder)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, holder.Hex(), view.Holder)
			assert.Equal(t, 0, tt.want.Cmp(view.Amount))
		})
	}
}
