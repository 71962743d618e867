package response

import (
	"math/big"

	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
)

type EstimateResponse struct {
	Shirts int    `json:"shirts"`
	Total  Amount `json:"total"`
}

type OrderResponse struct {
	ShirtIDs  []uint64           `json:"shirt_ids"`
	Transfers []TransferResponse `json:"transfers"`
}

func (m *Mapper) Order(r *commands.OrderResult) (*OrderResponse, error) {
	transfers, err := m.Transfers(r.Transfers)
	if err != nil {
		return nil, err
	}
	return &OrderResponse{ShirtIDs: r.ShirtIDs, Transfers: transfers}, nil
}

type ListingResponse struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Active  bool   `json:"active"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{Address: v.Address, Owner: v.Owner, Active: v.Active}
}

type BalanceResponse struct {
	Holder string `json:"holder"`
	Amount Amount `json:"amount"`
}

func (m *Mapper) Balance(v *queries.BalanceView) (*BalanceResponse, error) {
	var res BalanceResponse
	if err := m.copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type WithdrawalResponse struct {
	Holder string `json:"holder"`
	Amount Amount `json:"amount"`
}

func (m *Mapper) Withdrawal(holder string, amount *big.Int) *WithdrawalResponse {
	return &WithdrawalResponse{Holder: holder, Amount: m.Amount(amount)}
}
