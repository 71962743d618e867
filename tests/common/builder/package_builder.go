//go:build unit || e2e

package builder

import (
	"math/big"

	"voucher-ledger/internal/domain/membership"
)

type PackageBuilder struct {
	ID     uint64
	Params membership.PackageParams
	Sold   uint64
	Active bool
	Now    uint64
}

// NewPackageBuilder: "Standard", 0.001 native, 100 units, open for a day
// from BaseTime, one day per unit.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		ID: 0,
		Params: membership.PackageParams{
			Name:      "Standard",
			Price:     big.NewInt(1_000_000_000_000_000),
			MaxSold:   100,
			StartTime: BaseTime,
			EndTime:   BaseTime + 86400,
			Duration:  86400,
		},
		Active: true,
		Now:    BaseTime,
	}
}

func (b *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(b)
	return b
}

func (b *PackageBuilder) BuildDomain() (*membership.Package, error) {
	return membership.NewPackage(b.ID, b.Params, b.Now)
}

func (b *PackageBuilder) BuildStored() *membership.Package {
	return membership.ReconstructPackage(b.ID, b.Params, b.Sold, b.Active)
}
