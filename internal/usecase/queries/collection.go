package queries

import (
	"context"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/clock"

	"github.com/ethereum/go-ethereum/common"
)

type CollectionReadStore interface {
	FindByID(ctx context.Context, id uint64) (*CollectionView, error)
	ListByArtist(ctx context.Context, artist common.Address) ([]*CollectionView, error)
	FindToken(ctx context.Context, collectionID, tokenID uint64) (*TokenView, error)
	// FindLayer returns a view with Minted false for unknown hashes.
	FindLayer(ctx context.Context, hash []byte) (*LayerView, error)
}

type CollectionQueries interface {
	Get(ctx context.Context, id uint64) (*CollectionView, error)
	ListByArtist(ctx context.Context, artist common.Address) ([]*CollectionView, error)
	GetToken(ctx context.Context, collectionID, tokenID uint64) (*TokenView, error)
	Layer(ctx context.Context, hash []byte) (*LayerView, error)
}

type collectionQueriesImpl struct {
	repo  CollectionReadStore
	clock clock.Clock
}

func NewCollectionQueries(repo CollectionReadStore, clk clock.Clock) CollectionQueries {
	return &collectionQueriesImpl{repo: repo, clock: clk}
}

func (q *collectionQueriesImpl) Get(ctx context.Context, id uint64) (*CollectionView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, collection.ErrNotFound
		}
		return nil, err
	}
	q.withState(v)
	return v, nil
}

func (q *collectionQueriesImpl) ListByArtist(ctx context.Context, artist common.Address) ([]*CollectionView, error) {
	views, err := q.repo.ListByArtist(ctx, artist)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.withState(v)
	}
	return views, nil
}

func (q *collectionQueriesImpl) GetToken(ctx context.Context, collectionID, tokenID uint64) (*TokenView, error) {
	v, err := q.repo.FindToken(ctx, collectionID, tokenID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, collection.ErrTokenNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *collectionQueriesImpl) Layer(ctx context.Context, hash []byte) (*LayerView, error) {
	if len(hash) == 0 {
		return nil, collection.ErrEmptyLayer
	}
	return q.repo.FindLayer(ctx, hash)
}

func (q *collectionQueriesImpl) withState(v *CollectionView) {
	v.State = collection.WindowState(v.StartTime, v.EndTime, clock.Unix(q.clock)).String()
}
