package fee

import (
	"math/big"

	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

// MaxBps is 100% in basis points.
const MaxBps = 10_000

var (
	ErrWrongAmount    = errs.Mark(errs.New("paid amount does not match the expected total"), errs.ErrWrongAmount)
	ErrNotEnoughPrice = errs.Mark(errs.New("paid amount is below the price"), errs.ErrWrongAmount)
	ErrBpsTooHigh     = errs.Mark(errs.New("basis points exceed 10000"), errs.ErrInvalidParameters)
	ErrNegativeAmount = errs.Mark(errs.New("amount is negative"), errs.ErrInvalidParameters)
)

var bpsDenominator = big.NewInt(MaxBps)

type Split struct {
	Platform  *big.Int
	Secondary *big.Int
}

// SplitBps cuts amount into a secondary share of bps/10000 (truncated) and a
// platform share holding the rest, so the two always add up to amount.
func SplitBps(amount *big.Int, bps uint32) (Split, error) {
	if bps > MaxBps {
		return Split{}, ErrBpsTooHigh
	}
	if amount.Sign() < 0 {
		return Split{}, ErrNegativeAmount
	}
	secondary := mulBps(amount, bps)
	return Split{
		Platform:  new(big.Int).Sub(amount, secondary),
		Secondary: secondary,
	}, nil
}

func mulBps(amount *big.Int, bps uint32) *big.Int {
	v := new(big.Int).Mul(amount, big.NewInt(int64(bps)))
	return v.Quo(v, bpsDenominator)
}

type Beneficiary struct {
	Payee common.Address
	Bps   uint32
}

type Share struct {
	Payee  common.Address
	Amount *big.Int
}

// SplitMany gives each beneficiary its bps of amount; the platform keeps the
// remainder, rounding dust included.
func SplitMany(amount *big.Int, beneficiaries []Beneficiary) ([]Share, *big.Int, error) {
	if amount.Sign() < 0 {
		return nil, nil, ErrNegativeAmount
	}
	var total uint64
	for _, b := range beneficiaries {
		total += uint64(b.Bps)
	}
	if total > MaxBps {
		return nil, nil, ErrBpsTooHigh
	}

	platform := new(big.Int).Set(amount)
	shares := make([]Share, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		v := mulBps(amount, b.Bps)
		platform.Sub(platform, v)
		shares = append(shares, Share{Payee: b.Payee, Amount: v})
	}
	return shares, platform, nil
}

// ExpectedTotal is unitPrice × quantity.
func ExpectedTotal(unitPrice *big.Int, quantity uint64) *big.Int {
	return new(big.Int).Mul(unitPrice, new(big.Int).SetUint64(quantity))
}

// CheckPaid requires paid to equal expected exactly.
func CheckPaid(paid, expected *big.Int) error {
	if paid == nil || paid.Cmp(expected) != 0 {
		return ErrWrongAmount
	}
	return nil
}

// CheckPaidAtLeast distinguishes underpayment (NotEnoughPrice) from
// overpayment (WrongAmount).
func CheckPaidAtLeast(paid, expected *big.Int) error {
	if paid == nil {
		return ErrNotEnoughPrice
	}
	switch paid.Cmp(expected) {
	case -1:
		return ErrNotEnoughPrice
	case 1:
		return ErrWrongAmount
	}
	return nil
}
