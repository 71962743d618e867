//go:build unit

package merch_test

import (
	"math/big"
	"testing"

	"voucher-ledger/internal/domain/merch"
	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nftA   = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	nftB   = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	nftOff = common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")
	ownerA = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	ownerB = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func listings(t *testing.T) map[common.Address]*merch.Listing {
	t.Helper()
	a, err := merch.NewListing(nftA, ownerA)
	require.NoError(t, err)
	b, err := merch.NewListing(nftB, ownerB)
	require.NoError(t, err)
	off := merch.ReconstructListing(nftOff, ownerB, false)
	return map[common.Address]*merch.Listing{nftA: a, nftB: b, nftOff: off}
}

func item(nft common.Address, id int64) merch.Item {
	return merch.Item{NFT: nft, TokenID: big.NewInt(id)}
}

func pricing() merch.Pricing {
	return merch.Pricing{ShirtFee: big.NewInt(1000), ShippingFee: big.NewInt(30), RoyaltyBps: 2000}
}

func TestEstimate(t *testing.T) {
	assert.Equal(t, int64(30), pricing().Estimate(0).Int64())
	assert.Equal(t, int64(3030), pricing().Estimate(3).Int64())
}

func TestValidate(t *testing.T) {
	ls := listings(t)
	cases := []struct {
		name    string
		designs []merch.Design
		errIs   error
	}{
		{"ok", []merch.Design{{item(nftA, 1)}, {item(nftA, 2), item(nftB, 9)}}, nil},
		{"no shirts", nil, merch.ErrEmptyOrder},
		{"empty shirt", []merch.Design{{item(nftA, 1)}, {}}, merch.ErrEmptyShirt},
		{"unknown nft", []merch.Design{{item(common.Address{1}, 1)}}, merch.ErrNotWhitelisted},
		{"inactive listing", []merch.Design{{item(nftA, 1), item(nftOff, 1)}}, merch.ErrNotWhitelisted},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := merch.Validate(c.designs, ls)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestRoyalties(t *testing.T) {
	ls := listings(t)

	t.Run("pool shared equally", func(t *testing.T) {
		credits, platform, err := pricing().Royalties(merch.Design{item(nftA, 1), item(nftB, 2), item(nftA, 3)}, ls)
		require.NoError(t, err)
		require.Len(t, credits, 3)
		// pool 200, 66 each, 2 wei dust stays with the platform
		for _, c := range credits {
			assert.Equal(t, int64(66), c.Amount.Int64())
		}
		assert.Equal(t, ownerA, credits[0].Holder)
		assert.Equal(t, ownerB, credits[1].Holder)
		assert.Equal(t, int64(802), platform.Int64())
	})

	t.Run("zero royalty credits nobody", func(t *testing.T) {
		p := pricing()
		p.RoyaltyBps = 0
		credits, platform, err := p.Royalties(merch.Design{item(nftA, 1)}, ls)
		require.NoError(t, err)
		assert.Empty(t, credits)
		assert.Equal(t, int64(1000), platform.Int64())
	})
}

func TestListing(t *testing.T) {
	_, err := merch.NewListing(common.Address{}, ownerA)
	require.ErrorIs(t, err, merch.ErrZeroAddress)

	l, err := merch.NewListing(nftA, ownerA)
	require.NoError(t, err)
	assert.True(t, l.Active())
	l.SetActive(false)
	assert.False(t, l.Active())
	require.NoError(t, l.SetOwner(ownerB))
	assert.Equal(t, ownerB, l.Owner())
	require.ErrorIs(t, l.SetOwner(common.Address{}), merch.ErrZeroAddress)

	require.NoError(t, merch.SameLength(2, 2))
	require.ErrorIs(t, merch.SameLength(2, 1), merch.ErrLengthMismatch)
	require.ErrorIs(t, merch.SameLength(0, 0), merch.ErrLengthMismatch)
}

func TestBalance(t *testing.T) {
	b := merch.NewBalance(ownerA)
	_, err := b.Withdraw()
	require.ErrorIs(t, err, merch.ErrZeroBalance)
	assert.True(t, errs.Is(err, errs.ErrInvalidParameters))

	b.Credit(big.NewInt(66))
	b.Credit(big.NewInt(0))
	b.Credit(big.NewInt(34))
	out, err := b.Withdraw()
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.Int64())
	assert.Zero(t, b.Amount().Sign())
}
