package converter

import (
	"voucher-ledger/internal/domain/collection"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

func CollectionToInsertParams(c *collection.Collection) sqlc.InsertCollectionParams {
	return sqlc.InsertCollectionParams{
		ID:           int64(c.ID()),
		KeyID:        int64(c.KeyID()),
		Artist:       pgconv.AddressToText(c.Artist()),
		Name:         c.Name(),
		Symbol:       c.Symbol(),
		BaseUri:      c.BaseURI(),
		PaymentToken: pgconv.AddressToText(c.PaymentToken()),
		MintCap:      int64(c.MintCap()),
		StartTime:    int64(c.StartTime()),
		EndTime:      int64(c.EndTime()),
	}
}

func CollectionToUpdateParams(c *collection.Collection) sqlc.UpdateCollectionParams {
	return sqlc.UpdateCollectionParams{
		ID:          int64(c.ID()),
		MintCap:     int64(c.MintCap()),
		StartTime:   int64(c.StartTime()),
		EndTime:     int64(c.EndTime()),
		TotalMinted: int64(c.TotalMinted()),
		Upgradeable: c.Upgradeable(),
	}
}

func CollectionFromInfra(row sqlc.Collections) *collection.Collection {
	return collection.ReconstructCollection(
		uint64(row.ID),
		collection.Params{
			KeyID:        uint64(row.KeyID),
			Artist:       pgconv.TextToAddress(row.Artist),
			Name:         row.Name,
			Symbol:       row.Symbol,
			BaseURI:      row.BaseUri,
			PaymentToken: pgconv.TextToAddress(row.PaymentToken),
			MintCap:      uint64(row.MintCap),
			StartTime:    uint64(row.StartTime),
			EndTime:      uint64(row.EndTime),
		},
		uint64(row.TotalMinted),
		row.Upgradeable,
	)
}

func TokenToInsertParams(t *collection.Token, mintedAt uint64) sqlc.InsertNftParams {
	return sqlc.InsertNftParams{
		CollectionID: int64(t.CollectionID()),
		TokenID:      int64(t.TokenID()),
		Owner:        pgconv.AddressToText(t.Owner()),
		Uri:          t.URI(),
		LayerHash:    t.LayerHash(),
		MintedAt:     int64(mintedAt),
	}
}

func TokenFromInfra(row sqlc.Nfts) *collection.Token {
	return collection.ReconstructToken(
		uint64(row.CollectionID),
		uint64(row.TokenID),
		pgconv.TextToAddress(row.Owner),
		row.Uri,
		row.LayerHash,
	)
}
