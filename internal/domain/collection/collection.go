package collection

import (
	"math"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// maxStored is the largest count or timestamp a BIGINT column keeps.
const maxStored = math.MaxInt64

// Collection is a sale window: a mint cap plus [startTime, endTime], where an
// endTime of zero leaves the window open forever.
type Collection struct {
	id           uint64
	keyID        uint64
	artist       common.Address
	name         string
	symbol       string
	baseURI      string
	paymentToken common.Address
	mintCap      uint64
	startTime    uint64
	endTime      uint64
	totalMinted  uint64
	upgradeable  bool
}

type Params struct {
	KeyID        uint64
	Artist       common.Address
	Name         string
	Symbol       string
	BaseURI      string
	PaymentToken common.Address
	MintCap      uint64
	StartTime    uint64
	EndTime      uint64
}

func NewCollection(id uint64, p Params) (*Collection, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrEmptyName
	}
	if p.MintCap == 0 {
		return nil, ErrZeroCap
	}
	if p.KeyID > maxStored || p.MintCap > maxStored || p.StartTime > maxStored || p.EndTime > maxStored {
		return nil, ErrOutOfRange
	}
	if !validWindow(p.StartTime, p.EndTime) {
		return nil, ErrInvalidWindow
	}

	return &Collection{
		id:           id,
		keyID:        p.KeyID,
		artist:       p.Artist,
		name:         p.Name,
		symbol:       p.Symbol,
		baseURI:      p.BaseURI,
		paymentToken: p.PaymentToken,
		mintCap:      p.MintCap,
		startTime:    p.StartTime,
		endTime:      p.EndTime,
	}, nil
}

func ReconstructCollection(id uint64, p Params, totalMinted uint64, upgradeable bool) *Collection {
	return &Collection{
		id:           id,
		keyID:        p.KeyID,
		artist:       p.Artist,
		name:         p.Name,
		symbol:       p.Symbol,
		baseURI:      p.BaseURI,
		paymentToken: p.PaymentToken,
		mintCap:      p.MintCap,
		startTime:    p.StartTime,
		endTime:      p.EndTime,
		totalMinted:  totalMinted,
		upgradeable:  upgradeable,
	}
}

func (c *Collection) ID() uint64                   { return c.id }
func (c *Collection) KeyID() uint64                { return c.keyID }
func (c *Collection) Artist() common.Address       { return c.artist }
func (c *Collection) Name() string                 { return c.name }
func (c *Collection) Symbol() string               { return c.symbol }
func (c *Collection) BaseURI() string              { return c.baseURI }
func (c *Collection) PaymentToken() common.Address { return c.paymentToken }
func (c *Collection) MintCap() uint64              { return c.mintCap }
func (c *Collection) StartTime() uint64            { return c.startTime }
func (c *Collection) EndTime() uint64              { return c.endTime }
func (c *Collection) TotalMinted() uint64          { return c.totalMinted }
func (c *Collection) Upgradeable() bool            { return c.upgradeable }

// IsNativePayment reports whether mints are paid in the chain's native asset.
func (c *Collection) IsNativePayment() bool {
	return c.paymentToken == (common.Address{})
}

func (c *Collection) StateAt(now uint64) State {
	return WindowState(c.startTime, c.endTime, now)
}

func (c *Collection) SoldOut() bool {
	return c.totalMinted >= c.mintCap
}

// MintCheck fails unless a mint is possible at now.
func (c *Collection) MintCheck(now uint64) error {
	switch c.StateAt(now) {
	case StateNotStarted:
		return ErrNotStartedYet
	case StateEnded:
		return ErrEnded
	}
	if c.SoldOut() {
		return ErrSoldOut
	}
	return nil
}

// Mint checks the window and reserves the next token id.
func (c *Collection) Mint(now uint64) (uint64, error) {
	if err := c.MintCheck(now); err != nil {
		return 0, err
	}
	c.totalMinted++
	return c.totalMinted, nil
}

func (c *Collection) RequireArtist(actor common.Address) error {
	if actor != c.artist {
		return ErrNotArtist
	}
	return nil
}

func (c *Collection) UpdateCap(actor common.Address, mintCap uint64) error {
	if err := c.RequireArtist(actor); err != nil {
		return err
	}
	if mintCap == 0 {
		return ErrZeroCap
	}
	if mintCap > maxStored {
		return ErrOutOfRange
	}
	if mintCap < c.totalMinted {
		return ErrCapBelowMinted
	}
	c.mintCap = mintCap
	return nil
}

func (c *Collection) UpdateStart(actor common.Address, start uint64) error {
	if err := c.RequireArtist(actor); err != nil {
		return err
	}
	if start > maxStored {
		return ErrOutOfRange
	}
	if !validWindow(start, c.endTime) {
		return ErrInvalidWindow
	}
	c.startTime = start
	return nil
}

func (c *Collection) UpdateEnd(actor common.Address, end uint64) error {
	if err := c.RequireArtist(actor); err != nil {
		return err
	}
	if end > maxStored {
		return ErrOutOfRange
	}
	if !validWindow(c.startTime, end) {
		return ErrInvalidWindow
	}
	c.endTime = end
	return nil
}

func (c *Collection) SetUpgradeable(actor common.Address, upgradeable bool) error {
	if err := c.RequireArtist(actor); err != nil {
		return err
	}
	c.upgradeable = upgradeable
	return nil
}

// UpgradeCheck fails unless tokens of this collection may be re-layered at now.
// An upgrade is allowed before the sale opens, only a closed window blocks it.
func (c *Collection) UpgradeCheck(now uint64) error {
	if !c.upgradeable {
		return ErrNotUpgradeable
	}
	if c.StateAt(now) == StateEnded {
		return ErrEnded
	}
	return nil
}

func validWindow(start, end uint64) bool {
	return end == 0 || end >= start
}
