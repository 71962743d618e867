package readstore

import (
	"context"

	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type CollectionReadQueries interface {
	GetCollection(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Collections, error)
	ListCollectionsByArtist(ctx context.Context, db sqlc.DBTX, artist string) ([]sqlc.Collections, error)
	GetNft(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNftParams) (sqlc.Nfts, error)
	GetUniquenessKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetUniquenessKeyParams) (sqlc.UniquenessKeys, error)
}

type CollectionReadStore struct {
	queries CollectionReadQueries
	db      sqlc.DBTX
}

func NewCollectionReadStore(queries CollectionReadQueries, db sqlc.DBTX) *CollectionReadStore {
	return &CollectionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CollectionReadStore) FindByID(ctx context.Context, id uint64) (*queries.CollectionView, error) {
	row, err := r.queries.GetCollection(ctx, r.db, int64(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("collection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collection by ID", err)
	}
	return toCollectionView(row), nil
}

func (r *CollectionReadStore) ListByArtist(ctx context.Context, artist common.Address) ([]*queries.CollectionView, error) {
	rows, err := r.queries.ListCollectionsByArtist(ctx, r.db, pgconv.AddressToText(artist))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list collections by artist", err)
	}
	result := make([]*queries.CollectionView, len(rows))
	for i, row := range rows {
		result[i] = toCollectionView(row)
	}
	return result, nil
}

func (r *CollectionReadStore) FindToken(ctx context.Context, collectionID, tokenID uint64) (*queries.TokenView, error) {
	row, err := r.queries.GetNft(ctx, r.db, sqlc.GetNftParams{
		CollectionID: int64(collectionID),
		TokenID:      int64(tokenID),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find token", err)
	}
	return &queries.TokenView{
		CollectionID: uint64(row.CollectionID),
		TokenID:      uint64(row.TokenID),
		Owner:        row.Owner,
		URI:          row.Uri,
		LayerHash:    hexutil.Encode(row.LayerHash),
		MintedAt:     uint64(row.MintedAt),
	}, nil
}

func (r *CollectionReadStore) FindLayer(ctx context.Context, hash []byte) (*queries.LayerView, error) {
	row, err := r.queries.GetUniquenessKey(ctx, r.db, sqlc.GetUniquenessKeyParams{
		Domain: ledger.DomainLayer.String(),
		Key:    hash,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &queries.LayerView{Hash: hexutil.Encode(hash)}, nil
		}
		return nil, infra.WrapRepoErr("failed to find layer", err)
	}
	view := &queries.LayerView{
		Hash:         hexutil.Encode(row.Key),
		Minted:       true,
		Consumer:     row.Consumer,
		CollectionID: pgconv.Uint64PtrFromPgtype(row.CollectionID),
		TokenID:      pgconv.Uint64PtrFromPgtype(row.TokenID),
	}
	if len(row.Successor) > 0 {
		view.Successor = hexutil.Encode(row.Successor)
	}
	return view, nil
}

func toCollectionView(row sqlc.Collections) *queries.CollectionView {
	return &queries.CollectionView{
		ID:           uint64(row.ID),
		KeyID:        uint64(row.KeyID),
		Artist:       row.Artist,
		Name:         row.Name,
		Symbol:       row.Symbol,
		BaseURI:      row.BaseUri,
		PaymentToken: row.PaymentToken,
		MintCap:      uint64(row.MintCap),
		StartTime:    uint64(row.StartTime),
		EndTime:      uint64(row.EndTime),
		TotalMinted:  uint64(row.TotalMinted),
		Upgradeable:  row.Upgradeable,
	}
}
