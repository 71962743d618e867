//go:build unit

package readstore

import (
	"context"
	"math/big"
	"testing"
	"time"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPayoutReadQueries struct {
	mock.Mock
}

func (m *MockPayoutReadQueries) ListPayoutsByReference(ctx context.Context, db sqlc.DBTX, reference string) ([]sqlc.Payouts, error) {
	args := m.Called(ctx, db, reference)
	return args.Get(0).([]sqlc.Payouts), args.Error(1)
}

func (m *MockPayoutReadQueries) ListPayoutsByPayeeFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPayoutsByPayeeFirstPageParams) ([]sqlc.Payouts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Payouts), args.Error(1)
}

func (m *MockPayoutReadQueries) ListPayoutsByPayeeKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPayoutsByPayeeKeysetParams) ([]sqlc.Payouts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Payouts), args.Error(1)
}

func payoutRow(amount int64, at time.Time) sqlc.Payouts {
	return sqlc.Payouts{
		ID:        uuid.New(),
		Reference: "collection:3:token:1",
		Asset:     "0x0000000000000000000000000000000000000000",
		Payer:     holder.Hex(),
		Payee:     artist.Hex(),
		Amount:    pgconv.BigIntToNumeric(big.NewInt(amount)),
		Kind:      "artist",
		CreatedAt: pgconv.TimeToPgtype(at),
	}
}

func TestPayoutReadStore_ListByReference(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mockQueries := new(MockPayoutReadQueries)
	mockQueries.On("ListPayoutsByReference", mock.Anything, mock.Anything, "collection:3:token:1").
		Return([]sqlc.Payouts{payoutRow(90, at), payoutRow(10, at)}, nil)

	views, err := NewPayoutReadStore(mockQueries, nil).ListByReference(context.Background(), "collection:3:token:1")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "90", views[0].Amount.String())
	assert.Equal(t, at, views[0].CreatedAt)
	assert.Equal(t, "artist", views[1].Kind)
}

func TestPayoutReadStore_ListByPayee(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	lastID := uuid.New()

	t.Run("first page", func(t *testing.T) {
		mockQueries := new(MockPayoutReadQueries)
		mockQueries.On("ListPayoutsByPayeeFirstPage", mock.Anything, mock.Anything, sqlc.ListPayoutsByPayeeFirstPageParams{
			Payee: artist.Hex(),
			Limit: 21,
		}).Return([]sqlc.Payouts{payoutRow(1, at)}, nil)

		views, err := NewPayoutReadStore(mockQueries, nil).ListByPayeeFirstPage(context.Background(), artist, 21)

		require.NoError(t, err)
		assert.Len(t, views, 1)
		mockQueries.AssertExpectations(t)
	})

	t.Run("keyset", func(t *testing.T) {
		mockQueries := new(MockPayoutReadQueries)
		mockQueries.On("ListPayoutsByPayeeKeyset", mock.Anything, mock.Anything, sqlc.ListPayoutsByPayeeKeysetParams{
			Payee:     artist.Hex(),
			CreatedAt: pgconv.TimeToPgtype(at),
			ID:        lastID,
			Limit:     21,
		}).Return([]sqlc.Payouts{}, nil)

		views, err := NewPayoutReadStore(mockQueries, nil).ListByPayeeKeyset(context.Background(), artist, at, lastID, 21)

		require.NoError(t, err)
		assert.Empty(t, views)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockPayoutReadQueries)
		mockQueries.On("ListPayoutsByPayeeFirstPage", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.Payouts(nil), assert.AnError)

		_, err := NewPayoutReadStore(mockQueries, nil).ListByPayeeFirstPage(context.Background(), artist, 21)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
