package request

import (
	"math/big"

	"voucher-ledger/internal/domain/merch"
	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

var ErrEmptyDesign = errs.Mark(errs.New("shirt design has no items"), errs.ErrInvalidParameters)

type DesignItem struct {
	NFT     string `json:"nft" binding:"required"`
	TokenID string `json:"token_id" binding:"required"`
}

// EstimateRequest lists one design per shirt.
type EstimateRequest struct {
	Designs [][]DesignItem `json:"designs" binding:"required"`
}

func (r *EstimateRequest) ToDesigns() ([]merch.Design, error) {
	designs := make([]merch.Design, len(r.Designs))
	for i, items := range r.Designs {
		if len(items) == 0 {
			return nil, ErrEmptyDesign
		}
		d := make(merch.Design, len(items))
		for j, it := range items {
			nft, err := ParseAddress(it.NFT)
			if err != nil {
				return nil, err
			}
			id, err := parseAmount(it.TokenID)
			if err != nil {
				return nil, err
			}
			d[j] = merch.Item{NFT: nft, TokenID: id}
		}
		designs[i] = d
	}
	return designs, nil
}

type OrderRequest struct {
	EstimateRequest
	Paid string `json:"paid" binding:"required"`
}

func (r *OrderRequest) ToCommand() ([]merch.Design, *big.Int, error) {
	designs, err := r.ToDesigns()
	if err != nil {
		return nil, nil, err
	}
	paid, err := parseAmount(r.Paid)
	if err != nil {
		return nil, nil, err
	}
	return designs, paid, nil
}

type WhitelistRequest struct {
	Addresses []string `json:"addresses" binding:"required"`
	Owners    []string `json:"owners" binding:"required"`
}

func (r *WhitelistRequest) ToCommand() ([]common.Address, []common.Address, error) {
	addresses, err := parseAddresses(r.Addresses)
	if err != nil {
		return nil, nil, err
	}
	owners, err := parseAddresses(r.Owners)
	if err != nil {
		return nil, nil, err
	}
	return addresses, owners, nil
}

type ListingStatusRequest struct {
	Addresses []string `json:"addresses" binding:"required"`
	Statuses  []bool   `json:"statuses" binding:"required"`
}

func (r *ListingStatusRequest) ToCommand() ([]common.Address, []bool, error) {
	addresses, err := parseAddresses(r.Addresses)
	if err != nil {
		return nil, nil, err
	}
	return addresses, r.Statuses, nil
}
