package queries

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// CollectionView is a sale window as stored. State is filled in by the
// queries layer from the ledger clock.
type CollectionView struct {
	ID           uint64 `json:"id"`
	KeyID        uint64 `json:"key_id"`
	Artist       string `json:"artist"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	BaseURI      string `json:"base_uri"`
	PaymentToken string `json:"payment_token"`
	MintCap      uint64 `json:"mint_cap"`
	StartTime    uint64 `json:"start_time"`
	EndTime      uint64 `json:"end_time"`
	TotalMinted  uint64 `json:"total_minted"`
	Upgradeable  bool   `json:"upgradeable"`
	State        string `json:"state"`
}

type TokenView struct {
	CollectionID uint64 `json:"collection_id"`
	TokenID      uint64 `json:"token_id"`
	Owner        string `json:"owner"`
	URI          string `json:"uri"`
	LayerHash    string `json:"layer_hash"`
	MintedAt     uint64 `json:"minted_at"`
}

// LayerView answers "is this layer minted". A retired layer stays minted and
// points at its successor.
type LayerView struct {
	Hash         string  `json:"hash"`
	Minted       bool    `json:"minted"`
	Consumer     string  `json:"consumer,omitempty"`
	CollectionID *uint64 `json:"collection_id,omitempty"`
	TokenID      *uint64 `json:"token_id,omitempty"`
	Successor    string  `json:"successor,omitempty"`
}

type PackageView struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Price        *big.Int `json:"price"`
	PaymentToken string   `json:"payment_token"`
	MaxSold      uint64   `json:"max_sold"`
	Sold         uint64   `json:"sold"`
	StartTime    uint64   `json:"start_time"`
	EndTime      uint64   `json:"end_time"`
	Duration     uint64   `json:"duration"`
	Active       bool     `json:"active"`
}

type SubscriptionView struct {
	Subscriber     string `json:"subscriber"`
	PackageID      uint64 `json:"package_id"`
	ExpirationTime uint64 `json:"expiration_time"`
	Active         bool   `json:"active"`
}

type SettingsView struct {
	Owner                  string   `json:"owner"`
	Verifier               string   `json:"verifier"`
	FeeRecipient           string   `json:"fee_recipient"`
	RoyaltyRecipient       string   `json:"royalty_recipient"`
	RoyaltyBps             uint32   `json:"royalty_bps"`
	MembershipFeeRecipient string   `json:"membership_fee_recipient"`
	ShirtFee               *big.Int `json:"shirt_fee"`
	ShippingFee            *big.Int `json:"shipping_fee"`
	ShirtRoyaltyBps        uint32   `json:"shirt_royalty_bps"`
}

type ListingView struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Active  bool   `json:"active"`
}

type BalanceView struct {
	Holder string   `json:"holder"`
	Amount *big.Int `json:"amount"`
}

type PayoutView struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Asset     string    `json:"asset"`
	Payer     string    `json:"payer"`
	Payee     string    `json:"payee"`
	Amount    *big.Int  `json:"amount"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type AccountView struct {
	Address     string     `json:"address"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
