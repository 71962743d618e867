package request

import (
	"math/big"

	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
)

// UpdateSettingsRequest changes only the fields that are present.
type UpdateSettingsRequest struct {
	Owner                  *string `json:"owner"`
	Verifier               *string `json:"verifier"`
	FeeRecipient           *string `json:"fee_recipient"`
	RoyaltyRecipient       *string `json:"royalty_recipient"`
	RoyaltyBps             *uint32 `json:"royalty_bps"`
	MembershipFeeRecipient *string `json:"membership_fee_recipient"`
	ShirtFee               *string `json:"shirt_fee"`
	ShippingFee            *string `json:"shipping_fee"`
	ShirtRoyaltyBps        *uint32 `json:"shirt_royalty_bps"`
}

func (r *UpdateSettingsRequest) ToChange() (governance.Change, error) {
	var (
		c   governance.Change
		err error
	)
	addresses := []struct {
		src *string
		dst **common.Address
	}{
		{r.Owner, &c.Owner},
		{r.Verifier, &c.Verifier},
		{r.FeeRecipient, &c.FeeRecipient},
		{r.RoyaltyRecipient, &c.RoyaltyRecipient},
		{r.MembershipFeeRecipient, &c.MembershipFeeRecipient},
	}
	for _, a := range addresses {
		if a.src == nil {
			continue
		}
		addr, err := ParseAddress(*a.src)
		if err != nil {
			return governance.Change{}, err
		}
		*a.dst = &addr
	}
	if c.ShirtFee, err = optionalAmount(r.ShirtFee); err != nil {
		return governance.Change{}, err
	}
	if c.ShippingFee, err = optionalAmount(r.ShippingFee); err != nil {
		return governance.Change{}, err
	}
	c.RoyaltyBps = r.RoyaltyBps
	c.ShirtRoyaltyBps = r.ShirtRoyaltyBps
	return c, nil
}

func optionalAmount(s *string) (*big.Int, error) {
	if s == nil {
		return nil, nil
	}
	return wei.Parse(*s)
}
