package membership

import (
	"math"
	"math/big"
	"strings"

	"voucher-ledger/internal/domain/fee"

	"github.com/ethereum/go-ethereum/common"
)

// maxStored bounds ids, counts and timestamps to a BIGINT column.
const maxStored = math.MaxInt64

// Package is a purchasable member package. Its id is chosen by the owner.
type Package struct {
	id           uint64
	name         string
	price        *big.Int
	paymentToken common.Address
	maxSold      uint64
	sold         uint64
	startTime    uint64
	endTime      uint64
	duration     uint64
	active       bool
}

type PackageParams struct {
	Name         string
	Price        *big.Int
	PaymentToken common.Address
	MaxSold      uint64
	StartTime    uint64
	EndTime      uint64
	Duration     uint64
}

func (p PackageParams) validate(now uint64) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price == nil || p.Price.Sign() <= 0 {
		return ErrInvalidPrice
	}
	if p.MaxSold > maxStored || p.StartTime > maxStored || p.EndTime > maxStored || p.Duration > maxStored {
		return ErrOutOfRange
	}
	if p.StartTime > p.EndTime || p.EndTime < now {
		return ErrInvalidTime
	}
	if p.Duration == 0 {
		return ErrInvalidDuration
	}
	if p.MaxSold == 0 {
		return ErrInvalidMaxSold
	}
	return nil
}

func NewPackage(id uint64, p PackageParams, now uint64) (*Package, error) {
	if id > maxStored {
		return nil, ErrOutOfRange
	}
	if err := p.validate(now); err != nil {
		return nil, err
	}
	return &Package{
		id:           id,
		name:         p.Name,
		price:        new(big.Int).Set(p.Price),
		paymentToken: p.PaymentToken,
		maxSold:      p.MaxSold,
		startTime:    p.StartTime,
		endTime:      p.EndTime,
		duration:     p.Duration,
		active:       true,
	}, nil
}

func ReconstructPackage(id uint64, p PackageParams, sold uint64, active bool) *Package {
	return &Package{
		id:           id,
		name:         p.Name,
		price:        p.Price,
		paymentToken: p.PaymentToken,
		maxSold:      p.MaxSold,
		sold:         sold,
		startTime:    p.StartTime,
		endTime:      p.EndTime,
		duration:     p.Duration,
		active:       active,
	}
}

func (p *Package) ID() uint64                   { return p.id }
func (p *Package) Name() string                 { return p.name }
func (p *Package) Price() *big.Int              { return new(big.Int).Set(p.price) }
func (p *Package) PaymentToken() common.Address { return p.paymentToken }
func (p *Package) MaxSold() uint64              { return p.maxSold }
func (p *Package) Sold() uint64                 { return p.sold }
func (p *Package) StartTime() uint64            { return p.startTime }
func (p *Package) EndTime() uint64              { return p.endTime }
func (p *Package) Duration() uint64             { return p.duration }
func (p *Package) Active() bool                 { return p.active }

// Update replaces every parameter. Sold stays, so maxSold may not drop below it.
func (p *Package) Update(params PackageParams, now uint64) error {
	if err := params.validate(now); err != nil {
		return err
	}
	if params.MaxSold < p.sold {
		return ErrInvalidMaxSold
	}
	p.name = params.Name
	p.price = new(big.Int).Set(params.Price)
	p.paymentToken = params.PaymentToken
	p.maxSold = params.MaxSold
	p.startTime = params.StartTime
	p.endTime = params.EndTime
	p.duration = params.Duration
	return nil
}

func (p *Package) Deactivate() {
	p.active = false
}

// PurchaseCheck validates a purchase of quantity units for paid, in this
// order: deactivated, not started, ended, sold out, then the amount.
func (p *Package) PurchaseCheck(quantity uint64, paid *big.Int, now uint64) error {
	if quantity == 0 {
		return ErrZeroQuantity
	}
	if !p.active {
		return ErrPackageDeactivated
	}
	if now < p.startTime {
		return ErrPackageNotStarted
	}
	if now > p.endTime {
		return ErrPackageEnded
	}
	if p.sold > p.maxSold || quantity > p.maxSold-p.sold {
		return ErrPackageSoldOut
	}
	if _, err := periodLength(quantity, p.duration); err != nil {
		return err
	}
	return fee.CheckPaidAtLeast(paid, p.Total(quantity))
}

func (p *Package) Total(quantity uint64) *big.Int {
	return fee.ExpectedTotal(p.price, quantity)
}

// Sell runs PurchaseCheck and books the units.
func (p *Package) Sell(quantity uint64, paid *big.Int, now uint64) error {
	if err := p.PurchaseCheck(quantity, paid, now); err != nil {
		return err
	}
	p.sold += quantity
	return nil
}
