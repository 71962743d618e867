package request

import (
	"voucher-ledger/internal/usecase/commands"
)

type CreateCollectionRequest struct {
	KeyID        uint64 `json:"key_id"`
	Name         string `json:"name" binding:"required,max=200"`
	Symbol       string `json:"symbol" binding:"max=32"`
	BaseURI      string `json:"base_uri"`
	PaymentToken string `json:"payment_token"`
	MintCap      uint64 `json:"mint_cap"`
	StartTime    uint64 `json:"start_time"`
	EndTime      uint64 `json:"end_time"`
	Expiry       uint64 `json:"expiry" binding:"required"`
	Signature    string `json:"signature" binding:"required"`
}

func (r *CreateCollectionRequest) ToCommand() (commands.CreateCollectionRequest, error) {
	token, err := optionalAddress(r.PaymentToken)
	if err != nil {
		return commands.CreateCollectionRequest{}, err
	}
	sig, err := ParseHex(r.Signature)
	if err != nil {
		return commands.CreateCollectionRequest{}, err
	}
	return commands.CreateCollectionRequest{
		KeyID:        r.KeyID,
		Name:         r.Name,
		Symbol:       r.Symbol,
		BaseURI:      r.BaseURI,
		PaymentToken: token,
		MintCap:      r.MintCap,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Expiry:       r.Expiry,
		Signature:    sig,
	}, nil
}

type MintCapRequest struct {
	MintCap *uint64 `json:"mint_cap" binding:"required"`
}

type StartTimeRequest struct {
	StartTime *uint64 `json:"start_time" binding:"required"`
}

// EndTimeRequest accepts 0 for an open-ended sale.
type EndTimeRequest struct {
	EndTime *uint64 `json:"end_time" binding:"required"`
}

type UpgradeableRequest struct {
	Upgradeable *bool `json:"upgradeable" binding:"required"`
}

type MintRequest struct {
	URI       string `json:"uri" binding:"required"`
	Fee       string `json:"fee" binding:"required"`
	LayerHash string `json:"layer_hash" binding:"required"`
	Expiry    uint64 `json:"expiry" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Paid      string `json:"paid"`
}

func (r *MintRequest) ToCommand(collectionID uint64) (commands.MintRequest, error) {
	fee, err := parseAmount(r.Fee)
	if err != nil {
		return commands.MintRequest{}, err
	}
	paid, err := parseAmount(r.Paid)
	if err != nil {
		return commands.MintRequest{}, err
	}
	layer, err := ParseHex(r.LayerHash)
	if err != nil {
		return commands.MintRequest{}, err
	}
	sig, err := ParseHex(r.Signature)
	if err != nil {
		return commands.MintRequest{}, err
	}
	return commands.MintRequest{
		CollectionID: collectionID,
		URI:          r.URI,
		Fee:          fee,
		LayerHash:    layer,
		Expiry:       r.Expiry,
		Signature:    sig,
		Paid:         paid,
	}, nil
}

type UpgradeRequest struct {
	URI          string `json:"uri" binding:"required"`
	Fee          string `json:"fee" binding:"required"`
	OldLayerHash string `json:"old_layer_hash" binding:"required"`
	NewLayerHash string `json:"new_layer_hash" binding:"required"`
	Expiry       uint64 `json:"expiry" binding:"required"`
	Signature    string `json:"signature" binding:"required"`
	Paid         string `json:"paid"`
}

func (r *UpgradeRequest) ToCommand(collectionID, tokenID uint64) (commands.UpgradeRequest, error) {
	fee, err := parseAmount(r.Fee)
	if err != nil {
		return commands.UpgradeRequest{}, err
	}
	paid, err := parseAmount(r.Paid)
	if err != nil {
		return commands.UpgradeRequest{}, err
	}
	oldLayer, err := ParseHex(r.OldLayerHash)
	if err != nil {
		return commands.UpgradeRequest{}, err
	}
	newLayer, err := ParseHex(r.NewLayerHash)
	if err != nil {
		return commands.UpgradeRequest{}, err
	}
	sig, err := ParseHex(r.Signature)
	if err != nil {
		return commands.UpgradeRequest{}, err
	}
	return commands.UpgradeRequest{
		CollectionID: collectionID,
		TokenID:      tokenID,
		URI:          r.URI,
		Fee:          fee,
		OldLayerHash: oldLayer,
		NewLayerHash: newLayer,
		Expiry:       r.Expiry,
		Signature:    sig,
		Paid:         paid,
	}, nil
}
