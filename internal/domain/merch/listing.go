package merch

import "github.com/ethereum/go-ethereum/common"

// Listing is an NFT contract that may be printed on shirts. Royalties for
// its tokens go to the listing owner.
type Listing struct {
	address common.Address
	owner   common.Address
	active  bool
}

func NewListing(address, owner common.Address) (*Listing, error) {
	if address == (common.Address{}) || owner == (common.Address{}) {
		return nil, ErrZeroAddress
	}
	return &Listing{address: address, owner: owner, active: true}, nil
}

func ReconstructListing(address, owner common.Address, active bool) *Listing {
	return &Listing{address: address, owner: owner, active: active}
}

func (l *Listing) Address() common.Address { return l.address }
func (l *Listing) Owner() common.Address   { return l.owner }
func (l *Listing) Active() bool            { return l.active }

func (l *Listing) SetActive(active bool) {
	l.active = active
}

func (l *Listing) SetOwner(owner common.Address) error {
	if owner == (common.Address{}) {
		return ErrZeroAddress
	}
	l.owner = owner
	return nil
}

// SameLength guards the bulk whitelist calls, which take parallel lists.
func SameLength(first int, rest ...int) error {
	if first == 0 {
		return ErrLengthMismatch
	}
	for _, n := range rest {
		if n != first {
			return ErrLengthMismatch
		}
	}
	return nil
}
