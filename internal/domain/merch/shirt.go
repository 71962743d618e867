package merch

import (
	"math/big"

	"voucher-ledger/internal/domain/fee"

	"github.com/ethereum/go-ethereum/common"
)

// Item is one NFT printed on a shirt.
type Item struct {
	NFT     common.Address
	TokenID *big.Int
}

// Design is the list of NFTs printed on one shirt.
type Design []Item

type Pricing struct {
	ShirtFee    *big.Int
	ShippingFee *big.Int
	RoyaltyBps  uint32
}

// Estimate is shirts × shirtFee + shippingFee; shipping is charged once per order.
func (p Pricing) Estimate(shirts int) *big.Int {
	total := fee.ExpectedTotal(p.ShirtFee, uint64(shirts))
	return total.Add(total, p.ShippingFee)
}

// Validate checks every design is non-empty and only uses active listings.
func Validate(designs []Design, listings map[common.Address]*Listing) error {
	if len(designs) == 0 {
		return ErrEmptyOrder
	}
	for _, d := range designs {
		if len(d) == 0 {
			return ErrEmptyShirt
		}
		for _, it := range d {
			l, ok := listings[it.NFT]
			if !ok || !l.Active() {
				return ErrNotWhitelisted
			}
		}
	}
	return nil
}

// Contracts lists the distinct NFT contracts an order touches, in first-seen order.
func Contracts(designs []Design) []common.Address {
	seen := make(map[common.Address]struct{})
	var out []common.Address
	for _, d := range designs {
		for _, it := range d {
			if _, ok := seen[it.NFT]; ok {
				continue
			}
			seen[it.NFT] = struct{}{}
			out = append(out, it.NFT)
		}
	}
	return out
}

// Credit is royalty owed to a listing owner.
type Credit struct {
	Holder common.Address
	Amount *big.Int
}

// Royalties splits one shirt's royalty pool equally between its NFTs. The
// platform keeps the shirt fee minus what was credited, rounding dust included.
func (p Pricing) Royalties(d Design, listings map[common.Address]*Listing) ([]Credit, *big.Int, error) {
	if len(d) == 0 {
		return nil, nil, ErrEmptyShirt
	}
	pool, err := fee.SplitBps(p.ShirtFee, p.RoyaltyBps)
	if err != nil {
		return nil, nil, err
	}
	each := new(big.Int).Quo(pool.Secondary, big.NewInt(int64(len(d))))

	credits := make([]Credit, 0, len(d))
	platform := new(big.Int).Set(p.ShirtFee)
	for _, it := range d {
		l, ok := listings[it.NFT]
		if !ok {
			return nil, nil, ErrNotWhitelisted
		}
		if each.Sign() == 0 {
			continue
		}
		credits = append(credits, Credit{Holder: l.Owner(), Amount: new(big.Int).Set(each)})
		platform.Sub(platform, each)
	}
	return credits, platform, nil
}

// Shirt is one purchased shirt.
type Shirt struct {
	id     uint64
	buyer  common.Address
	design Design
	price  *big.Int
}

func NewShirt(id uint64, buyer common.Address, design Design, price *big.Int) *Shirt {
	return &Shirt{id: id, buyer: buyer, design: design, price: price}
}

func (s *Shirt) ID() uint64            { return s.id }
func (s *Shirt) Buyer() common.Address { return s.buyer }
func (s *Shirt) Design() Design        { return s.design }
func (s *Shirt) Price() *big.Int       { return s.price }
