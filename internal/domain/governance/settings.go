package governance

import (
	"math/big"

	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNotOwner       = errs.Mark(errs.New("caller is not the owner"), errs.ErrUnauthorized)
	ErrZeroAddress    = errs.Mark(errs.New("address must not be zero"), errs.ErrInvalidParameters)
	ErrInvalidBps     = errs.Mark(errs.New("basis points exceed 10000"), errs.ErrInvalidParameters)
	ErrNegativeAmount = errs.Mark(errs.New("fee must not be negative"), errs.ErrInvalidParameters)
	ErrNotSeeded      = errs.Mark(errs.New("settings have not been seeded"), errs.ErrNotFound)
)

// Settings is the single configuration record every capability check reads.
type Settings struct {
	owner                  common.Address
	verifier               common.Address
	feeRecipient           common.Address
	royaltyRecipient       common.Address
	royaltyBps             uint32
	membershipFeeRecipient common.Address
	shirtFee               *big.Int
	shippingFee            *big.Int
	shirtRoyaltyBps        uint32
}

type Params struct {
	Owner                  common.Address
	Verifier               common.Address
	FeeRecipient           common.Address
	RoyaltyRecipient       common.Address
	RoyaltyBps             uint32
	MembershipFeeRecipient common.Address
	ShirtFee               *big.Int
	ShippingFee            *big.Int
	ShirtRoyaltyBps        uint32
}

// NewSettings validates the initial values. Unset recipients fall back to the
// fee recipient.
func NewSettings(p Params) (*Settings, error) {
	if p.Owner == (common.Address{}) || p.Verifier == (common.Address{}) || p.FeeRecipient == (common.Address{}) {
		return nil, ErrZeroAddress
	}
	if p.RoyaltyRecipient == (common.Address{}) {
		p.RoyaltyRecipient = p.FeeRecipient
	}
	if p.MembershipFeeRecipient == (common.Address{}) {
		p.MembershipFeeRecipient = p.FeeRecipient
	}
	if p.RoyaltyBps > fee.MaxBps || p.ShirtRoyaltyBps > fee.MaxBps {
		return nil, ErrInvalidBps
	}
	if p.ShirtFee == nil {
		p.ShirtFee = new(big.Int)
	}
	if p.ShippingFee == nil {
		p.ShippingFee = new(big.Int)
	}
	if p.ShirtFee.Sign() < 0 || p.ShippingFee.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	return ReconstructSettings(p), nil
}

func ReconstructSettings(p Params) *Settings {
	return &Settings{
		owner:                  p.Owner,
		verifier:               p.Verifier,
		feeRecipient:           p.FeeRecipient,
		royaltyRecipient:       p.RoyaltyRecipient,
		royaltyBps:             p.RoyaltyBps,
		membershipFeeRecipient: p.MembershipFeeRecipient,
		shirtFee:               p.ShirtFee,
		shippingFee:            p.ShippingFee,
		shirtRoyaltyBps:        p.ShirtRoyaltyBps,
	}
}

func (s *Settings) Owner() common.Address                  { return s.owner }
func (s *Settings) Verifier() common.Address               { return s.verifier }
func (s *Settings) FeeRecipient() common.Address           { return s.feeRecipient }
func (s *Settings) RoyaltyRecipient() common.Address       { return s.royaltyRecipient }
func (s *Settings) RoyaltyBps() uint32                     { return s.royaltyBps }
func (s *Settings) MembershipFeeRecipient() common.Address { return s.membershipFeeRecipient }
func (s *Settings) ShirtFee() *big.Int                     { return new(big.Int).Set(s.shirtFee) }
func (s *Settings) ShippingFee() *big.Int                  { return new(big.Int).Set(s.shippingFee) }
func (s *Settings) ShirtRoyaltyBps() uint32                { return s.shirtRoyaltyBps }

func (s *Settings) Params() Params {
	return Params{
		Owner:                  s.owner,
		Verifier:               s.verifier,
		FeeRecipient:           s.feeRecipient,
		RoyaltyRecipient:       s.royaltyRecipient,
		RoyaltyBps:             s.royaltyBps,
		MembershipFeeRecipient: s.membershipFeeRecipient,
		ShirtFee:               s.ShirtFee(),
		ShippingFee:            s.ShippingFee(),
		ShirtRoyaltyBps:        s.shirtRoyaltyBps,
	}
}

func (s *Settings) RequireOwner(actor common.Address) error {
	if actor != s.owner {
		return ErrNotOwner
	}
	return nil
}

// Change holds the setters to apply; nil fields are left alone.
type Change struct {
	Owner                  *common.Address
	Verifier               *common.Address
	FeeRecipient           *common.Address
	RoyaltyRecipient       *common.Address
	RoyaltyBps             *uint32
	MembershipFeeRecipient *common.Address
	ShirtFee               *big.Int
	ShippingFee            *big.Int
	ShirtRoyaltyBps        *uint32
}

func (c Change) Empty() bool {
	return c == Change{}
}

// Apply runs every setter in c as actor. Validation happens before any field
// is written, so a failed change leaves s untouched.
func (s *Settings) Apply(actor common.Address, c Change) error {
	if err := s.RequireOwner(actor); err != nil {
		return err
	}

	for _, addr := range []*common.Address{c.Owner, c.Verifier, c.FeeRecipient, c.RoyaltyRecipient, c.MembershipFeeRecipient} {
		if addr != nil && *addr == (common.Address{}) {
			return ErrZeroAddress
		}
	}
	for _, bps := range []*uint32{c.RoyaltyBps, c.ShirtRoyaltyBps} {
		if bps != nil && *bps > fee.MaxBps {
			return ErrInvalidBps
		}
	}
	for _, amount := range []*big.Int{c.ShirtFee, c.ShippingFee} {
		if amount != nil && amount.Sign() < 0 {
			return ErrNegativeAmount
		}
	}

	setAddr(&s.verifier, c.Verifier)
	setAddr(&s.feeRecipient, c.FeeRecipient)
	setAddr(&s.royaltyRecipient, c.RoyaltyRecipient)
	setAddr(&s.membershipFeeRecipient, c.MembershipFeeRecipient)
	if c.RoyaltyBps != nil {
		s.royaltyBps = *c.RoyaltyBps
	}
	if c.ShirtRoyaltyBps != nil {
		s.shirtRoyaltyBps = *c.ShirtRoyaltyBps
	}
	if c.ShirtFee != nil {
		s.shirtFee = new(big.Int).Set(c.ShirtFee)
	}
	if c.ShippingFee != nil {
		s.shippingFee = new(big.Int).Set(c.ShippingFee)
	}
	// ownership last: the other setters were authorized by the old owner
	setAddr(&s.owner, c.Owner)
	return nil
}

func setAddr(dst *common.Address, v *common.Address) {
	if v != nil {
		*dst = *v
	}
}
