package converter

import (
	"voucher-ledger/internal/domain/ledger"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

func RecordToInsertParams(r *ledger.Record) sqlc.InsertUniquenessKeyParams {
	return sqlc.InsertUniquenessKeyParams{
		Domain:       r.Domain().String(),
		Key:          r.Key(),
		Consumer:     pgconv.AddressToText(r.Consumer()),
		CollectionID: pgconv.Int8PtrToPgtype(r.CollectionID()),
		TokenID:      pgconv.Int8PtrToPgtype(r.TokenID()),
		ConsumedAt:   int64(r.ConsumedAt()),
	}
}

func RecordFromInfra(row sqlc.UniquenessKeys) *ledger.Record {
	return ledger.ReconstructRecord(
		ledger.Domain(row.Domain),
		row.Key,
		pgconv.TextToAddress(row.Consumer),
		pgconv.Uint64PtrFromPgtype(row.CollectionID),
		pgconv.Uint64PtrFromPgtype(row.TokenID),
		row.Successor,
		uint64(row.ConsumedAt),
	)
}
