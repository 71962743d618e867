package shared

import (
	"context"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/domain/membership"
	"voucher-ledger/internal/domain/merch"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"

	"github.com/ethereum/go-ethereum/common"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Settings() SettingsRepository
	Collections() CollectionRepository
	Tokens() TokenRepository
	Uniqueness() UniquenessRepository
	Packages() PackageRepository
	Subscriptions() SubscriptionRepository
	Payouts() PayoutRepository
	Outbox() OutboxRepository
	Merch() MerchRepository
	Accounts() AccountRepository
	DB() sqlc.DBTX
}

type SettingsRepository interface {
	Get(ctx context.Context, tx sqlc.DBTX) (*governance.Settings, error)
	GetForUpdate(ctx context.Context, tx sqlc.DBTX) (*governance.Settings, error)
	// InsertIfAbsent reports whether s was written.
	InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, s *governance.Settings) (bool, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *governance.Settings) error
}

type CollectionRepository interface {
	// NextID serializes id assignment until the transaction ends.
	NextID(ctx context.Context, tx sqlc.DBTX) (uint64, error)
	Create(ctx context.Context, tx sqlc.DBTX, c *collection.Collection) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uint64) (*collection.Collection, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *collection.Collection) error
}

type TokenRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *collection.Token, mintedAt uint64) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, collectionID, tokenID uint64) (*collection.Token, error)
	UpdateLayer(ctx context.Context, tx sqlc.DBTX, t *collection.Token) error
}

type UniquenessRepository interface {
	// Record fails with ledger.ErrAlreadyConsumed when the key exists.
	Record(ctx context.Context, tx sqlc.DBTX, r *ledger.Record) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, domain ledger.Domain, key []byte) (*ledger.Record, error)
	Retire(ctx context.Context, tx sqlc.DBTX, r *ledger.Record) error
}

type PackageRepository interface {
	// Create fails with membership.ErrPackageExists on a taken id.
	Create(ctx context.Context, tx sqlc.DBTX, p *membership.Package) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uint64) (*membership.Package, error)
	Update(ctx context.Context, tx sqlc.DBTX, p *membership.Package) error
}

type SubscriptionRepository interface {
	// FindOrNew returns an empty subscription when the pair has none yet.
	FindOrNew(ctx context.Context, tx sqlc.DBTX, subscriber common.Address, packageID uint64) (*membership.Subscription, error)
	Save(ctx context.Context, tx sqlc.DBTX, s *membership.Subscription) error
	HasActive(ctx context.Context, tx sqlc.DBTX, subscriber common.Address, now uint64) (bool, error)
}

type PayoutRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, p Payout) error
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, e event.Event) error
}

type MerchRepository interface {
	SaveListing(ctx context.Context, tx sqlc.DBTX, l *merch.Listing) error
	// ListingsForUpdate returns the known listings among addresses, keyed by address.
	ListingsForUpdate(ctx context.Context, tx sqlc.DBTX, addresses []common.Address) (map[common.Address]*merch.Listing, error)
	CreateShirt(ctx context.Context, tx sqlc.DBTX, s *merch.Shirt) (uint64, error)
	// BalanceForUpdate returns a zero balance for unknown holders.
	BalanceForUpdate(ctx context.Context, tx sqlc.DBTX, holder common.Address) (*merch.Balance, error)
	SaveBalance(ctx context.Context, tx sqlc.DBTX, b *merch.Balance) error
}

type AccountRepository interface {
	RecordLogin(ctx context.Context, tx sqlc.DBTX, address common.Address) error
}
