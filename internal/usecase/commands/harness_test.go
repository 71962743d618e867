//go:build unit

package commands_test

import (
	"math/big"
	"testing"
	"time"

	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/tests/common/builder"
	"voucher-ledger/tests/common/memuow"
	"voucher-ledger/tests/common/signer"

	"github.com/ethereum/go-ethereum/common"
)

var (
	feeRecipient        = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
	royaltyRecipient    = common.HexToAddress("0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65")
	membershipRecipient = common.HexToAddress("0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc")
	stranger            = common.HexToAddress("0x976EA74026E726554dB657fA54763abd0C3a0aa9")
)

const ether = 1_000_000_000_000_000_000

type harness struct {
	store     *memuow.Store
	clock     *clock.MockClock
	authority *signer.Wallet
	chain     commands.Chain
}

// newHarness seeds settings with a 10% mint royalty and a shirt priced at 50
// (20% royalty pool) plus 10 shipping, and parks the clock at builder.BaseTime.
func newHarness(t *testing.T) *harness {
	t.Helper()

	authority := signer.Authority()
	store := memuow.New()
	store.Seed(governance.Params{
		Owner:                  authority.Address(),
		Verifier:               authority.Address(),
		FeeRecipient:           feeRecipient,
		RoyaltyRecipient:       royaltyRecipient,
		RoyaltyBps:             1000,
		MembershipFeeRecipient: membershipRecipient,
		ShirtFee:               big.NewInt(50),
		ShippingFee:            big.NewInt(10),
		ShirtRoyaltyBps:        2000,
	})

	return &harness{
		store:     store,
		clock:     clock.NewMockClock(time.Unix(int64(builder.BaseTime), 0)),
		authority: authority,
		chain:     commands.Chain{ID: big.NewInt(signer.DefaultChainID)},
	}
}

func (h *harness) now() uint64 {
	return clock.Unix(h.clock)
}

func (h *harness) owner() common.Address {
	return h.authority.Address()
}

func wei(v int64) *big.Int {
	return big.NewInt(v)
}

func etherFraction(num, den int64) *big.Int {
	v := new(big.Int).Mul(big.NewInt(ether), big.NewInt(num))
	return v.Quo(v, big.NewInt(den))
}

// payees flattens a plan for comparison.
func payees(plan fee.Plan) map[common.Address]string {
	out := make(map[common.Address]string, len(plan))
	for _, t := range plan {
		out[t.Payee] = t.Amount.String()
	}
	return out
}
