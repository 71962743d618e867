//go:build unit || e2e

package builder

import (
	"voucher-ledger/internal/domain/collection"

	"github.com/ethereum/go-ethereum/common"
)

var DefaultArtist = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

const BaseTime = uint64(1_700_000_000)

type CollectionBuilder struct {
	ID          uint64
	Params      collection.Params
	TotalMinted uint64
	Upgradeable bool
}

func NewCollectionBuilder() *CollectionBuilder {
	return &CollectionBuilder{
		ID: 1,
		Params: collection.Params{
			KeyID:     1,
			Artist:    DefaultArtist,
			Name:      "Genesis",
			Symbol:    "GEN",
			BaseURI:   "ipfs://genesis/",
			MintCap:   10,
			StartTime: BaseTime + 86400,
			EndTime:   BaseTime + 172800,
		},
	}
}

func (b *CollectionBuilder) With(mutate func(*CollectionBuilder)) *CollectionBuilder {
	mutate(b)
	return b
}

func (b *CollectionBuilder) WithWindow(start, end uint64) *CollectionBuilder {
	b.Params.StartTime = start
	b.Params.EndTime = end
	return b
}

func (b *CollectionBuilder) WithCap(mintCap uint64) *CollectionBuilder {
	b.Params.MintCap = mintCap
	return b
}

func (b *CollectionBuilder) BuildDomain() (*collection.Collection, error) {
	return collection.NewCollection(b.ID, b.Params)
}

// BuildStored skips creation validation, like a row loaded from the database.
func (b *CollectionBuilder) BuildStored() *collection.Collection {
	return collection.ReconstructCollection(b.ID, b.Params, b.TotalMinted, b.Upgradeable)
}
