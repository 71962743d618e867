//go:build unit

package fee_test

import (
	"math/big"
	"math/rand"
	"testing"

	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	payer     = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	platform  = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
	royalty   = common.HexToAddress("0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65")
	tokenAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

func units(t *testing.T, s string) *big.Int {
	t.Helper()
	v, err := wei.ParseUnits(s, 18)
	require.NoError(t, err)
	return v
}

func TestSplitBps(t *testing.T) {
	t.Run("1000 bps royalty on 0.1", func(t *testing.T) {
		split, err := fee.SplitBps(units(t, "0.1"), 1000)
		require.NoError(t, err)
		assert.Equal(t, units(t, "0.01"), split.Secondary)
		assert.Equal(t, units(t, "0.09"), split.Platform)
	})

	t.Run("truncates toward the platform", func(t *testing.T) {
		split, err := fee.SplitBps(big.NewInt(999), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), split.Secondary.Int64())
		assert.Equal(t, int64(999), split.Platform.Int64())
	})

	t.Run("bounds", func(t *testing.T) {
		split, err := fee.SplitBps(big.NewInt(100), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(100), split.Platform.Int64())

		split, err = fee.SplitBps(big.NewInt(100), fee.MaxBps)
		require.NoError(t, err)
		assert.Equal(t, int64(100), split.Secondary.Int64())
		assert.Equal(t, int64(0), split.Platform.Int64())

		_, err = fee.SplitBps(big.NewInt(100), fee.MaxBps+1)
		require.ErrorIs(t, err, fee.ErrBpsTooHigh)

		_, err = fee.SplitBps(big.NewInt(-1), 10)
		require.ErrorIs(t, err, fee.ErrNegativeAmount)
	})

	t.Run("shares always sum to gross", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		limit := new(big.Int).Lsh(big.NewInt(1), 200)
		for i := 0; i < 500; i++ {
			amount := new(big.Int).Rand(rng, limit)
			bps := uint32(rng.Intn(fee.MaxBps + 1))

			split, err := fee.SplitBps(amount, bps)
			require.NoError(t, err)
			sum := new(big.Int).Add(split.Platform, split.Secondary)
			require.Zero(t, sum.Cmp(amount), "amount=%s bps=%d", amount, bps)
			require.True(t, split.Secondary.Sign() >= 0)
			require.True(t, split.Platform.Sign() >= 0)
		}
	})
}

func TestSplitMany(t *testing.T) {
	a := common.HexToAddress("0x0000000000000000000000000000000000000001")
	b := common.HexToAddress("0x0000000000000000000000000000000000000002")

	shares, rest, err := fee.SplitMany(big.NewInt(1001), []fee.Beneficiary{{Payee: a, Bps: 2500}, {Payee: b, Bps: 2500}})
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, int64(250), shares[0].Amount.Int64())
	assert.Equal(t, int64(250), shares[1].Amount.Int64())
	assert.Equal(t, int64(501), rest.Int64())

	_, _, err = fee.SplitMany(big.NewInt(1), []fee.Beneficiary{{Payee: a, Bps: 6000}, {Payee: b, Bps: 4001}})
	require.ErrorIs(t, err, fee.ErrBpsTooHigh)
}

func TestCheckPaid(t *testing.T) {
	price := big.NewInt(30)

	require.NoError(t, fee.CheckPaid(big.NewInt(30), price))
	require.ErrorIs(t, fee.CheckPaid(big.NewInt(29), price), fee.ErrWrongAmount)
	require.ErrorIs(t, fee.CheckPaid(big.NewInt(31), price), fee.ErrWrongAmount)
	require.ErrorIs(t, fee.CheckPaid(nil, price), fee.ErrWrongAmount)

	require.NoError(t, fee.CheckPaidAtLeast(big.NewInt(30), price))
	under := fee.CheckPaidAtLeast(big.NewInt(29), price)
	require.ErrorIs(t, under, fee.ErrNotEnoughPrice)
	assert.True(t, errs.Is(under, errs.ErrWrongAmount), "underpayment is a WrongAmount")
	require.ErrorIs(t, fee.CheckPaidAtLeast(big.NewInt(31), price), fee.ErrWrongAmount)

	assert.Equal(t, int64(90), fee.ExpectedTotal(price, 3).Int64())
}

func TestTier(t *testing.T) {
	assert.Equal(t, fee.TierStandard, fee.TierOf(false))
	assert.Equal(t, fee.TierMember, fee.TierOf(true))
	assert.Equal(t, uint32(1000), fee.TierStandard.RoyaltyBps(1000))
	assert.Equal(t, uint32(500), fee.TierMember.RoyaltyBps(1000))
	assert.Equal(t, uint32(0), fee.TierMember.RoyaltyBps(1))
}

func TestPlanSplit(t *testing.T) {
	t.Run("native two-way", func(t *testing.T) {
		plan, split, err := fee.PlanSplit(fee.SplitRequest{
			Payer:              payer,
			PlatformRecipient:  platform,
			SecondaryRecipient: royalty,
			Amount:             units(t, "0.1"),
			SecondaryBps:       1000,
		})
		require.NoError(t, err)
		require.Len(t, plan, 2)

		assert.True(t, plan[0].Native())
		assert.Equal(t, royalty, plan[0].Payee)
		assert.Equal(t, fee.PayoutSecondary, plan[0].Kind)
		assert.Equal(t, split.Secondary, plan[0].Amount)
		assert.Equal(t, platform, plan[1].Payee)
		assert.Equal(t, fee.PayoutPlatform, plan[1].Kind)
		assert.Equal(t, units(t, "0.1"), plan.Total())
	})

	t.Run("zero royalty yields one token transfer", func(t *testing.T) {
		plan, _, err := fee.PlanSplit(fee.SplitRequest{
			Asset:              tokenAddr,
			Payer:              payer,
			PlatformRecipient:  platform,
			SecondaryRecipient: royalty,
			Amount:             big.NewInt(500),
		})
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.False(t, plan[0].Native())
		assert.Equal(t, tokenAddr, plan[0].Asset)
	})

	t.Run("free mint yields nothing", func(t *testing.T) {
		plan, _, err := fee.PlanSplit(fee.SplitRequest{Amount: big.NewInt(0), SecondaryBps: 1000})
		require.NoError(t, err)
		assert.Empty(t, plan)
	})
}
