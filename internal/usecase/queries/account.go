package queries

import (
	"context"

	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

var ErrAccountNotFound = errs.Mark(errs.New("account not found"), errs.ErrNotFound)

type AccountReadStore interface {
	FindByAddress(ctx context.Context, address common.Address) (*AccountView, error)
}

type AccountQueries interface {
	GetCurrent(ctx context.Context, address common.Address) (*AccountView, error)
}

type accountQueriesImpl struct {
	readStore AccountReadStore
}

func NewAccountQueries(readStore AccountReadStore) AccountQueries {
	return &accountQueriesImpl{
		readStore: readStore,
	}
}

func (q *accountQueriesImpl) GetCurrent(ctx context.Context, address common.Address) (*AccountView, error) {
	account, err := q.readStore.FindByAddress(ctx, address)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}
