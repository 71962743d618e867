package request

import (
	"voucher-ledger/internal/domain/membership"
	"voucher-ledger/internal/usecase/commands"
)

type PackageRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Price        string `json:"price" binding:"required"`
	PaymentToken string `json:"payment_token"`
	MaxSold      uint64 `json:"max_sold"`
	StartTime    uint64 `json:"start_time"`
	EndTime      uint64 `json:"end_time"`
	Duration     uint64 `json:"duration" binding:"required"`
}

func (r *PackageRequest) ToParams() (membership.PackageParams, error) {
	price, err := parseAmount(r.Price)
	if err != nil {
		return membership.PackageParams{}, err
	}
	token, err := optionalAddress(r.PaymentToken)
	if err != nil {
		return membership.PackageParams{}, err
	}
	return membership.PackageParams{
		Name:         r.Name,
		Price:        price,
		PaymentToken: token,
		MaxSold:      r.MaxSold,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Duration:     r.Duration,
	}, nil
}

// AddPackageRequest carries the caller-chosen package id.
type AddPackageRequest struct {
	ID uint64 `json:"id"`
	PackageRequest
}

type SubscribeRequest struct {
	Quantity uint64 `json:"quantity"`
	Paid     string `json:"paid"`
}

func (r *SubscribeRequest) ToCommand(packageID uint64) (commands.SubscribeRequest, error) {
	paid, err := parseAmount(r.Paid)
	if err != nil {
		return commands.SubscribeRequest{}, err
	}
	return commands.SubscribeRequest{PackageID: packageID, Quantity: r.Quantity, Paid: paid}, nil
}
