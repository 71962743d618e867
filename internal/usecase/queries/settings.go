package queries

import (
	"context"

	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/infra"
)

type SettingsReadStore interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	repo SettingsReadStore
}

func NewSettingsQueries(repo SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{repo: repo}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	v, err := q.repo.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, governance.ErrNotSeeded
		}
		return nil, err
	}
	return v, nil
}
