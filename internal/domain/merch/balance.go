package merch

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Balance is royalty credited to a holder and not yet withdrawn. It never
// goes negative.
type Balance struct {
	holder common.Address
	amount *big.Int
}

func NewBalance(holder common.Address) *Balance {
	return &Balance{holder: holder, amount: new(big.Int)}
}

func ReconstructBalance(holder common.Address, amount *big.Int) *Balance {
	return &Balance{holder: holder, amount: amount}
}

func (b *Balance) Holder() common.Address { return b.holder }
func (b *Balance) Amount() *big.Int       { return new(big.Int).Set(b.amount) }

func (b *Balance) Credit(amount *big.Int) {
	if amount.Sign() <= 0 {
		return
	}
	b.amount = new(big.Int).Add(b.amount, amount)
}

// Withdraw empties the balance and returns what it held.
func (b *Balance) Withdraw() (*big.Int, error) {
	if b.amount.Sign() <= 0 {
		return nil, ErrZeroBalance
	}
	out := b.amount
	b.amount = new(big.Int)
	return out, nil
}
