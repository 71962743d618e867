//go:build unit

package memuow

import (
	"context"
	"math/big"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/domain/membership"
	"voucher-ledger/internal/domain/merch"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/common"
)

type memTx struct {
	st *state
}

var _ shared.Tx = (*memTx)(nil)

func (t *memTx) Settings() shared.SettingsRepository          { return settingsRepo{t.st} }
func (t *memTx) Collections() shared.CollectionRepository     { return collectionRepo{t.st} }
func (t *memTx) Tokens() shared.TokenRepository               { return tokenRepo{t.st} }
func (t *memTx) Uniqueness() shared.UniquenessRepository      { return uniquenessRepo{t.st} }
func (t *memTx) Packages() shared.PackageRepository           { return packageRepo{t.st} }
func (t *memTx) Subscriptions() shared.SubscriptionRepository { return subscriptionRepo{t.st} }
func (t *memTx) Payouts() shared.PayoutRepository             { return payoutRepo{t.st} }
func (t *memTx) Outbox() shared.OutboxRepository              { return outboxRepo{t.st} }
func (t *memTx) Merch() shared.MerchRepository                { return merchRepo{t.st} }
func (t *memTx) Accounts() shared.AccountRepository           { return accountRepo{t.st} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

type settingsRepo struct{ st *state }

func (r settingsRepo) Get(_ context.Context, _ sqlc.DBTX) (*governance.Settings, error) {
	if r.st.settings == nil {
		return nil, governance.ErrNotSeeded
	}
	return governance.ReconstructSettings(copyParams(*r.st.settings)), nil
}

func (r settingsRepo) GetForUpdate(ctx context.Context, db sqlc.DBTX) (*governance.Settings, error) {
	return r.Get(ctx, db)
}

func (r settingsRepo) InsertIfAbsent(_ context.Context, _ sqlc.DBTX, s *governance.Settings) (bool, error) {
	if r.st.settings != nil {
		return false, nil
	}
	p := copyParams(s.Params())
	r.st.settings = &p
	return true, nil
}

func (r settingsRepo) Update(_ context.Context, _ sqlc.DBTX, s *governance.Settings) error {
	p := copyParams(s.Params())
	r.st.settings = &p
	return nil
}

func copyParams(p governance.Params) governance.Params {
	if p.ShirtFee != nil {
		p.ShirtFee = new(big.Int).Set(p.ShirtFee)
	}
	if p.ShippingFee != nil {
		p.ShippingFee = new(big.Int).Set(p.ShippingFee)
	}
	return p
}

type collectionRepo struct{ st *state }

func (r collectionRepo) NextID(_ context.Context, _ sqlc.DBTX) (uint64, error) {
	var maxID uint64
	for id := range r.st.collections {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

func (r collectionRepo) Create(_ context.Context, _ sqlc.DBTX, c *collection.Collection) error {
	r.st.collections[c.ID()] = rowOf(c)
	return nil
}

func (r collectionRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uint64) (*collection.Collection, error) {
	row, ok := r.st.collections[id]
	if !ok {
		return nil, collection.ErrNotFound
	}
	return row.build(id), nil
}

func (r collectionRepo) Update(_ context.Context, _ sqlc.DBTX, c *collection.Collection) error {
	r.st.collections[c.ID()] = rowOf(c)
	return nil
}

type tokenRepo struct{ st *state }

func (r tokenRepo) Create(_ context.Context, _ sqlc.DBTX, t *collection.Token, _ uint64) error {
	r.st.tokens[tokenKey{t.CollectionID(), t.TokenID()}] = tokenRow{owner: t.Owner(), uri: t.URI(), layer: t.LayerHash()}
	return nil
}

func (r tokenRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, collectionID, tokenID uint64) (*collection.Token, error) {
	row, ok := r.st.tokens[tokenKey{collectionID, tokenID}]
	if !ok {
		return nil, collection.ErrTokenNotFound
	}
	return collection.ReconstructToken(collectionID, tokenID, row.owner, row.uri, row.layer), nil
}

func (r tokenRepo) UpdateLayer(_ context.Context, _ sqlc.DBTX, t *collection.Token) error {
	r.st.tokens[tokenKey{t.CollectionID(), t.TokenID()}] = tokenRow{owner: t.Owner(), uri: t.URI(), layer: t.LayerHash()}
	return nil
}

type uniquenessRepo struct{ st *state }

func (r uniquenessRepo) Record(_ context.Context, _ sqlc.DBTX, rec *ledger.Record) error {
	k := recordKey{rec.Domain(), string(rec.Key())}
	if _, ok := r.st.records[k]; ok {
		return ledger.ErrAlreadyConsumed
	}
	r.st.records[k] = copyRecord(rec)
	return nil
}

func (r uniquenessRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, domain ledger.Domain, key []byte) (*ledger.Record, error) {
	rec, ok := r.st.records[recordKey{domain, string(key)}]
	if !ok {
		return nil, ledger.ErrUnknownKey
	}
	return copyRecord(rec), nil
}

func (r uniquenessRepo) Retire(_ context.Context, _ sqlc.DBTX, rec *ledger.Record) error {
	r.st.records[recordKey{rec.Domain(), string(rec.Key())}] = copyRecord(rec)
	return nil
}

type packageRepo struct{ st *state }

func (r packageRepo) Create(_ context.Context, _ sqlc.DBTX, p *membership.Package) error {
	if _, ok := r.st.packages[p.ID()]; ok {
		return membership.ErrPackageExists
	}
	r.st.packages[p.ID()] = packageRowOf(p)
	return nil
}

func (r packageRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uint64) (*membership.Package, error) {
	row, ok := r.st.packages[id]
	if !ok {
		return nil, membership.ErrPackageNotFound
	}
	return membership.ReconstructPackage(id, row.params, row.sold, row.active), nil
}

func (r packageRepo) Update(_ context.Context, _ sqlc.DBTX, p *membership.Package) error {
	r.st.packages[p.ID()] = packageRowOf(p)
	return nil
}

type subscriptionRepo struct{ st *state }

func (r subscriptionRepo) FindOrNew(_ context.Context, _ sqlc.DBTX, subscriber common.Address, packageID uint64) (*membership.Subscription, error) {
	exp, ok := r.st.subs[subKey{subscriber, packageID}]
	if !ok {
		return membership.NewSubscription(subscriber, packageID), nil
	}
	return membership.ReconstructSubscription(subscriber, packageID, exp), nil
}

func (r subscriptionRepo) Save(_ context.Context, _ sqlc.DBTX, s *membership.Subscription) error {
	r.st.subs[subKey{s.Subscriber(), s.PackageID()}] = s.ExpirationTime()
	return nil
}

func (r subscriptionRepo) HasActive(_ context.Context, _ sqlc.DBTX, subscriber common.Address, now uint64) (bool, error) {
	for k, exp := range r.st.subs {
		if k.subscriber == subscriber && exp > now {
			return true, nil
		}
	}
	return false, nil
}

type payoutRepo struct{ st *state }

func (r payoutRepo) Record(_ context.Context, _ sqlc.DBTX, p shared.Payout) error {
	r.st.payouts = append(r.st.payouts, p)
	return nil
}

type outboxRepo struct{ st *state }

func (r outboxRepo) Append(_ context.Context, _ sqlc.DBTX, e event.Event) error {
	r.st.events = append(r.st.events, e)
	return nil
}

type merchRepo struct{ st *state }

func (r merchRepo) SaveListing(_ context.Context, _ sqlc.DBTX, l *merch.Listing) error {
	r.st.listings[l.Address()] = copyListing(l)
	return nil
}

func (r merchRepo) ListingsForUpdate(_ context.Context, _ sqlc.DBTX, addresses []common.Address) (map[common.Address]*merch.Listing, error) {
	out := make(map[common.Address]*merch.Listing)
	for _, a := range addresses {
		if l, ok := r.st.listings[a]; ok {
			out[a] = copyListing(l)
		}
	}
	return out, nil
}

func (r merchRepo) CreateShirt(_ context.Context, _ sqlc.DBTX, s *merch.Shirt) (uint64, error) {
	id := uint64(len(r.st.shirts) + 1)
	r.st.shirts = append(r.st.shirts, merch.NewShirt(id, s.Buyer(), s.Design(), s.Price()))
	return id, nil
}

func (r merchRepo) BalanceForUpdate(_ context.Context, _ sqlc.DBTX, holder common.Address) (*merch.Balance, error) {
	b, ok := r.st.balances[holder]
	if !ok {
		return merch.NewBalance(holder), nil
	}
	return merch.ReconstructBalance(holder, new(big.Int).Set(b)), nil
}

func (r merchRepo) SaveBalance(_ context.Context, _ sqlc.DBTX, b *merch.Balance) error {
	r.st.balances[b.Holder()] = b.Amount()
	return nil
}

type accountRepo struct{ st *state }

func (r accountRepo) RecordLogin(_ context.Context, _ sqlc.DBTX, address common.Address) error {
	r.st.logins[address]++
	return nil
}
