package response

import (
	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
)

type CollectionResponse struct {
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

func (m *Mapper) Collection(v *queries.CollectionView) (*CollectionResponse, error) {
	var res CollectionResponse
	if err := m.copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func (m *Mapper) Collections(vs []*queries.CollectionView) ([]CollectionResponse, error) {
	res := make([]CollectionResponse, 0, len(vs))
	if err := m.copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type CreateCollectionResponse struct {
	ID uint64 `json:"id"`
}

type TokenResponse struct {
	CollectionID uint64 `json:"collection_id"`
	TokenID      uint64 `json:"token_id"`
	Owner        string `json:"owner"`
	URI          string `json:"uri"`
	LayerHash    string `json:"layer_hash"`
	MintedAt     uint64 `json:"minted_at"`
}

func (m *Mapper) Token(v *queries.TokenView) (*TokenResponse, error) {
	var res TokenResponse
	if err := m.copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type LayerResponse struct {
	Hash         string  `json:"hash"`
	Minted       bool    `json:"minted"`
	Consumer     string  `json:"consumer,omitempty"`
	CollectionID *uint64 `json:"collection_id,omitempty"`
	TokenID      *uint64 `json:"token_id,omitempty"`
	Successor    string  `json:"successor,omitempty"`
}

func FromLayerView(v *queries.LayerView) *LayerResponse {
	return &LayerResponse{
		Hash:         v.Hash,
		Minted:       v.Minted,
		Consumer:     v.Consumer,
		CollectionID: v.CollectionID,
		TokenID:      v.TokenID,
		Successor:    v.Successor,
	}
}

type TransferResponse struct {
	Asset  string `json:"asset"`
	Payer  string `json:"payer"`
	Payee  string `json:"payee"`
	Amount Amount `json:"amount"`
	Kind   string `json:"kind"`
}

func (m *Mapper) Transfers(plan fee.Plan) ([]TransferResponse, error) {
	res := make([]TransferResponse, 0, len(plan))
	if err := m.copy(&res, plan); err != nil {
		return nil, err
	}
	return res, nil
}

type MintResponse struct {
	CollectionID uint64             `json:"collection_id"`
	TokenID      uint64             `json:"token_id"`
	Tier         string             `json:"tier"`
	Transfers    []TransferResponse `json:"transfers"`
}

func (m *Mapper) Mint(r *commands.MintResult) (*MintResponse, error) {
	transfers, err := m.Transfers(r.Transfers)
	if err != nil {
		return nil, err
	}
	return &MintResponse{
		CollectionID: r.CollectionID,
		TokenID:      r.TokenID,
		Tier:         string(r.Tier),
		Transfers:    transfers,
	}, nil
}
