//go:build unit

// Package memuow is an in-memory shared.UnitOfWork for command tests. Reads
// hand out fresh copies and a failed Within restores the previous state, so
// it rolls back the way a database transaction does.
package memuow

import (
	"context"
	"math/big"
	"sync"

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

type collectionRow struct {
	params      collection.Params
	totalMinted uint64
	upgradeable bool
}

type tokenKey struct {
	collectionID uint64
	tokenID      uint64
}

type tokenRow struct {
	owner common.Address
	uri   string
	layer []byte
}

type recordKey struct {
	domain ledger.Domain
	key    string
}

type packageRow struct {
	params membership.PackageParams
	sold   uint64
	active bool
}

type subKey struct {
	subscriber common.Address
	packageID  uint64
}

type state struct {
	settings    *governance.Params
	collections map[uint64]collectionRow
	tokens      map[tokenKey]tokenRow
	records     map[recordKey]*ledger.Record
	packages    map[uint64]packageRow
	subs        map[subKey]uint64
	listings    map[common.Address]*merch.Listing
	balances    map[common.Address]*big.Int
	shirts      []*merch.Shirt
	payouts     []shared.Payout
	events      []event.Event
	logins      map[common.Address]int
}

func newState() state {
	return state{
		collections: map[uint64]collectionRow{},
		tokens:      map[tokenKey]tokenRow{},
		records:     map[recordKey]*ledger.Record{},
		packages:    map[uint64]packageRow{},
		subs:        map[subKey]uint64{},
		listings:    map[common.Address]*merch.Listing{},
		balances:    map[common.Address]*big.Int{},
		logins:      map[common.Address]int{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s state) clone() state {
	c := s
	c.collections = cloneMap(s.collections)
	c.tokens = cloneMap(s.tokens)
	c.records = make(map[recordKey]*ledger.Record, len(s.records))
	for k, r := range s.records {
		c.records[k] = copyRecord(r)
	}
	c.packages = cloneMap(s.packages)
	c.subs = cloneMap(s.subs)
	c.listings = make(map[common.Address]*merch.Listing, len(s.listings))
	for k, l := range s.listings {
		c.listings[k] = copyListing(l)
	}
	c.balances = cloneMap(s.balances)
	c.shirts = append([]*merch.Shirt(nil), s.shirts...)
	c.payouts = append([]shared.Payout(nil), s.payouts...)
	c.events = append([]event.Event(nil), s.events...)
	c.logins = cloneMap(s.logins)
	return c
}

type Store struct {
	mu sync.Mutex
	st state
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{st: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{st: &s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

// Seed writes settings directly, bypassing validation.
func (s *Store) Seed(p governance.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.settings = &p
}

func (s *Store) PutCollection(c *collection.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.collections[c.ID()] = rowOf(c)
}

func (s *Store) PutPackage(p *membership.Package) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.packages[p.ID()] = packageRowOf(p)
}

func (s *Store) PutSubscription(sub *membership.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.subs[subKey{sub.Subscriber(), sub.PackageID()}] = sub.ExpirationTime()
}

func (s *Store) PutListing(l *merch.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.listings[l.Address()] = copyListing(l)
}

func (s *Store) Settings() *governance.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.settings == nil {
		return nil
	}
	return governance.ReconstructSettings(*s.st.settings)
}

func (s *Store) Collection(id uint64) (*collection.Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.collections[id]
	if !ok {
		return nil, false
	}
	return row.build(id), true
}

func (s *Store) Token(collectionID, tokenID uint64) (*collection.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.tokens[tokenKey{collectionID, tokenID}]
	if !ok {
		return nil, false
	}
	return collection.ReconstructToken(collectionID, tokenID, row.owner, row.uri, row.layer), true
}

func (s *Store) Record(domain ledger.Domain, key []byte) (*ledger.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.records[recordKey{domain, string(key)}]
	if !ok {
		return nil, false
	}
	return copyRecord(r), true
}

func (s *Store) Package(id uint64) (*membership.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.packages[id]
	if !ok {
		return nil, false
	}
	return membership.ReconstructPackage(id, row.params, row.sold, row.active), true
}

// Expiration is zero for pairs that never subscribed.
func (s *Store) Expiration(subscriber common.Address, packageID uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.subs[subKey{subscriber, packageID}]
}

func (s *Store) Listing(addr common.Address) (*merch.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.st.listings[addr]
	if !ok {
		return nil, false
	}
	return copyListing(l), true
}

func (s *Store) Balance(holder common.Address) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.st.balances[holder]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (s *Store) Shirts() []*merch.Shirt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*merch.Shirt(nil), s.st.shirts...)
}

func (s *Store) Payouts() []shared.Payout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.Payout(nil), s.st.payouts...)
}

func (s *Store) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.st.events...)
}

// EventKinds lists the outbox in append order.
func (s *Store) EventKinds() []event.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]event.Kind, len(s.st.events))
	for i, e := range s.st.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (s *Store) Logins(addr common.Address) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.logins[addr]
}

func rowOf(c *collection.Collection) collectionRow {
	return collectionRow{
		params: collection.Params{
			KeyID:        c.KeyID(),
			Artist:       c.Artist(),
			Name:         c.Name(),
			Symbol:       c.Symbol(),
			BaseURI:      c.BaseURI(),
			PaymentToken: c.PaymentToken(),
			MintCap:      c.MintCap(),
			StartTime:    c.StartTime(),
			EndTime:      c.EndTime(),
		},
		totalMinted: c.TotalMinted(),
		upgradeable: c.Upgradeable(),
	}
}

func (r collectionRow) build(id uint64) *collection.Collection {
	return collection.ReconstructCollection(id, r.params, r.totalMinted, r.upgradeable)
}

func packageRowOf(p *membership.Package) packageRow {
	return packageRow{
		params: membership.PackageParams{
			Name:         p.Name(),
			Price:        p.Price(),
			PaymentToken: p.PaymentToken(),
			MaxSold:      p.MaxSold(),
			StartTime:    p.StartTime(),
			EndTime:      p.EndTime(),
			Duration:     p.Duration(),
		},
		sold:   p.Sold(),
		active: p.Active(),
	}
}

func copyRecord(r *ledger.Record) *ledger.Record {
	return ledger.ReconstructRecord(
		r.Domain(), r.Key(), r.Consumer(),
		copyID(r.CollectionID()), copyID(r.TokenID()),
		r.Successor(), r.ConsumedAt(),
	)
}

func copyID(id *uint64) *uint64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyListing(l *merch.Listing) *merch.Listing {
	return merch.ReconstructListing(l.Address(), l.Owner(), l.Active())
}
