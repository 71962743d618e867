package components

import (
	"voucher-ledger/internal/infra/events"
	"voucher-ledger/internal/infra/readstore"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/infra/uow"
	"voucher-ledger/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	// write repositories are built per transaction inside the unit of work
	uow.NewPostgresUoW,
	fx.Annotate(
		NewSQLQueries,
		fx.As(new(events.OutboxRelayQueries)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Account
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AccountReadQueries)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		// Collection
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CollectionReadQueries)),
		),
		fx.Annotate(
			readstore.NewCollectionReadStore,
			fx.As(new(queries.CollectionReadStore)),
		),
		// Membership
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MembershipReadQueries)),
		),
		fx.Annotate(
			readstore.NewMembershipReadStore,
			fx.As(new(queries.MembershipReadStore)),
		),
		// Merch
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MerchReadQueries)),
		),
		fx.Annotate(
			readstore.NewMerchReadStore,
			fx.As(new(queries.MerchReadStore)),
		),
		// Payout
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PayoutReadQueries)),
		),
		fx.Annotate(
			readstore.NewPayoutReadStore,
			fx.As(new(queries.PayoutReadStore)),
		),
		// Settings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettingsReadQueries)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
