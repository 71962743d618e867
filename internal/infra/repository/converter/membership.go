package converter

import (
	"voucher-ledger/internal/domain/membership"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

func PackageToInsertParams(p *membership.Package) sqlc.InsertMemberPackageParams {
	return sqlc.InsertMemberPackageParams{
		ID:           int64(p.ID()),
		Name:         p.Name(),
		Price:        pgconv.BigIntToNumeric(p.Price()),
		PaymentToken: pgconv.AddressToText(p.PaymentToken()),
		MaxSold:      int64(p.MaxSold()),
		StartTime:    int64(p.StartTime()),
		EndTime:      int64(p.EndTime()),
		Duration:     int64(p.Duration()),
	}
}

func PackageToUpdateParams(p *membership.Package) sqlc.UpdateMemberPackageParams {
	return sqlc.UpdateMemberPackageParams{
		ID:           int64(p.ID()),
		Name:         p.Name(),
		Price:        pgconv.BigIntToNumeric(p.Price()),
		PaymentToken: pgconv.AddressToText(p.PaymentToken()),
		MaxSold:      int64(p.MaxSold()),
		StartTime:    int64(p.StartTime()),
		EndTime:      int64(p.EndTime()),
		Duration:     int64(p.Duration()),
		Sold:         int64(p.Sold()),
		Active:       p.Active(),
	}
}

func PackageFromInfra(row sqlc.MemberPackages) (*membership.Package, error) {
	price, err := pgconv.NumericToBigInt(row.Price)
	if err != nil {
		return nil, err
	}
	return membership.ReconstructPackage(
		uint64(row.ID),
		membership.PackageParams{
			Name:         row.Name,
			Price:        price,
			PaymentToken: pgconv.TextToAddress(row.PaymentToken),
			MaxSold:      uint64(row.MaxSold),
			StartTime:    uint64(row.StartTime),
			EndTime:      uint64(row.EndTime),
			Duration:     uint64(row.Duration),
		},
		uint64(row.Sold),
		row.Active,
	), nil
}

func SubscriptionFromInfra(row sqlc.Subscriptions) *membership.Subscription {
	return membership.ReconstructSubscription(
		pgconv.TextToAddress(row.Subscriber),
		uint64(row.PackageID),
		uint64(row.ExpirationTime),
	)
}
