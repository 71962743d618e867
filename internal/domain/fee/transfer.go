package fee

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type PayoutKind string

const (
	PayoutPlatform   PayoutKind = "platform"
	PayoutSecondary  PayoutKind = "secondary"
	PayoutMembership PayoutKind = "membership"
	PayoutMerch      PayoutKind = "merch"
	PayoutWithdrawal PayoutKind = "withdrawal"
)

func (k PayoutKind) String() string {
	return string(k)
}

// Transfer moves Amount of Asset from Payer to Payee. The zero asset address
// is the native coin, anything else a token pulled with transferFrom.
type Transfer struct {
	Asset  common.Address
	Payer  common.Address
	Payee  common.Address
	Amount *big.Int
	Kind   PayoutKind
}

func (t Transfer) Native() bool {
	return t.Asset == (common.Address{})
}

type Plan []Transfer

// Add appends a transfer; zero amounts are dropped.
func (p Plan) Add(t Transfer) Plan {
	if t.Amount == nil || t.Amount.Sign() == 0 {
		return p
	}
	return append(p, t)
}

func (p Plan) Total() *big.Int {
	sum := new(big.Int)
	for _, t := range p {
		sum.Add(sum, t.Amount)
	}
	return sum
}

type SplitRequest struct {
	Asset              common.Address
	Payer              common.Address
	PlatformRecipient  common.Address
	SecondaryRecipient common.Address
	Amount             *big.Int
	SecondaryBps       uint32
}

// PlanSplit turns a two-way split into transfers, secondary first.
func PlanSplit(req SplitRequest) (Plan, Split, error) {
	split, err := SplitBps(req.Amount, req.SecondaryBps)
	if err != nil {
		return nil, Split{}, err
	}
	var plan Plan
	plan = plan.Add(Transfer{
		Asset:  req.Asset,
		Payer:  req.Payer,
		Payee:  req.SecondaryRecipient,
		Amount: split.Secondary,
		Kind:   PayoutSecondary,
	})
	plan = plan.Add(Transfer{
		Asset:  req.Asset,
		Payer:  req.Payer,
		Payee:  req.PlatformRecipient,
		Amount: split.Platform,
		Kind:   PayoutPlatform,
	})
	return plan, split, nil
}
