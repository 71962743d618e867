package voucher

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Voucher is an authorization produced by the off-chain authority. The set is
// closed: only the kinds below can be verified.
type Voucher interface {
	encode(chainID *big.Int) ([]byte, error)
	expiresAt() uint64
	signature() []byte
}

// Mint authorizes Sender to mint one token with the given layer combination.
type Mint struct {
	CollectionID uint64
	Sender       common.Address
	Fee          *big.Int
	URI          string
	LayerHash    []byte
	Expiry       uint64
	Signature    []byte
}

func (m Mint) encode(chainID *big.Int) ([]byte, error) {
	return mintArgs.Pack(
		chainID,
		u256(m.CollectionID),
		m.Sender,
		amount(m.Fee),
		m.URI,
		nonNil(m.LayerHash),
		u256(m.Expiry),
	)
}

func (m Mint) expiresAt() uint64 { return m.Expiry }
func (m Mint) signature() []byte { return m.Signature }

// Collection authorizes Sender to open a sale window with these parameters.
type Collection struct {
	KeyID        uint64
	Sender       common.Address
	Name         string
	Symbol       string
	BaseURI      string
	PaymentToken common.Address
	MintCap      uint64
	StartTime    uint64
	EndTime      uint64
	Expiry       uint64
	Signature    []byte
}

func (c Collection) encode(chainID *big.Int) ([]byte, error) {
	return collectionArgs.Pack(
		chainID,
		u256(c.KeyID),
		c.Sender,
		c.Name,
		c.Symbol,
		c.BaseURI,
		c.PaymentToken,
		u256(c.MintCap),
		u256(c.StartTime),
		u256(c.EndTime),
		u256(c.Expiry),
	)
}

func (c Collection) expiresAt() uint64 { return c.Expiry }
func (c Collection) signature() []byte { return c.Signature }

// Upgrade authorizes the owner of a token to swap its layer combination.
type Upgrade struct {
	CollectionID uint64
	TokenID      uint64
	Sender       common.Address
	Fee          *big.Int
	URI          string
	OldLayerHash []byte
	NewLayerHash []byte
	Expiry       uint64
	Signature    []byte
}

func (u Upgrade) encode(chainID *big.Int) ([]byte, error) {
	return upgradeArgs.Pack(
		chainID,
		u256(u.CollectionID),
		u256(u.TokenID),
		u.Sender,
		amount(u.Fee),
		u.URI,
		nonNil(u.OldLayerHash),
		nonNil(u.NewLayerHash),
		u256(u.Expiry),
	)
}

func (u Upgrade) expiresAt() uint64 { return u.Expiry }
func (u Upgrade) signature() []byte { return u.Signature }

func u256(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

func amount(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
