package response

import (
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
)

type PackageResponse struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Price        Amount `json:"price"`
	PaymentToken string `json:"payment_token"`
	MaxSold      uint64 `json:"max_sold"`
	Sold         uint64 `json:"sold"`
	StartTime    uint64 `json:"start_time"`
	EndTime      uint64 `json:"end_time"`
	Duration     uint64 `json:"duration"`
	Active       bool   `json:"active"`
}

func (m *Mapper) Package(v *queries.PackageView) (*PackageResponse, error) {
	var res PackageResponse
	if err := m.copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func (m *Mapper) Packages(vs []*queries.PackageView) ([]PackageResponse, error) {
	res := make([]PackageResponse, 0, len(vs))
	if err := m.copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type SubscriptionResponse struct {
	Subscriber     string `json:"subscriber"`
	PackageID      uint64 `json:"package_id"`
	ExpirationTime uint64 `json:"expiration_time"`
	Active         bool   `json:"active"`
}

func FromSubscriptionViews(vs []*queries.SubscriptionView) []SubscriptionResponse {
	res := make([]SubscriptionResponse, len(vs))
	for i, v := range vs {
		res[i] = SubscriptionResponse{
			Subscriber:     v.Subscriber,
			PackageID:      v.PackageID,
			ExpirationTime: v.ExpirationTime,
			Active:         v.Active,
		}
	}
	return res
}

type SubscribeResponse struct {
	PackageID      uint64             `json:"package_id"`
	ExpirationTime uint64             `json:"expiration_time"`
	Transfers      []TransferResponse `json:"transfers"`
}

func (m *Mapper) Subscribe(r *commands.SubscribeResult) (*SubscribeResponse, error) {
	transfers, err := m.Transfers(r.Transfers)
	if err != nil {
		return nil, err
	}
	return &SubscribeResponse{
		PackageID:      r.PackageID,
		ExpirationTime: r.ExpirationTime,
		Transfers:      transfers,
	}, nil
}
