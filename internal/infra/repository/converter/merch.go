package converter

import (
	"voucher-ledger/internal/domain/merch"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

func ListingFromInfra(row sqlc.MerchListings) *merch.Listing {
	return merch.ReconstructListing(
		pgconv.TextToAddress(row.Address),
		pgconv.TextToAddress(row.Owner),
		row.Active,
	)
}

func BalanceFromInfra(row sqlc.MerchBalances) (*merch.Balance, error) {
	amount, err := pgconv.NumericToBigInt(row.Amount)
	if err != nil {
		return nil, err
	}
	return merch.ReconstructBalance(pgconv.TextToAddress(row.Holder), amount), nil
}
