package queries

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

type PayoutReadStore interface {
	ListByReference(ctx context.Context, reference string) ([]*PayoutView, error)
	ListByPayeeFirstPage(ctx context.Context, payee common.Address, limit int32) ([]*PayoutView, error)
	ListByPayeeKeyset(ctx context.Context, payee common.Address, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PayoutView, error)
}

type PayoutQueries interface {
	ListByReference(ctx context.Context, reference string) ([]*PayoutView, error)
	ListByPayee(ctx context.Context, payee common.Address, cursor *Cursor, limit int) ([]*PayoutView, *Cursor, error)
}

type payoutQueriesImpl struct {
	repo PayoutReadStore
}

func NewPayoutQueries(repo PayoutReadStore) PayoutQueries {
	return &payoutQueriesImpl{repo: repo}
}

func (q *payoutQueriesImpl) ListByReference(ctx context.Context, reference string) ([]*PayoutView, error) {
	return q.repo.ListByReference(ctx, reference)
}

func (q *payoutQueriesImpl) ListByPayee(ctx context.Context, payee common.Address, cursor *Cursor, limit int) ([]*PayoutView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*PayoutView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListByPayeeFirstPage(ctx, payee, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.ListByPayeeKeyset(ctx, payee, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
