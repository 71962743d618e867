package ledger

import (
	"bytes"

	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

// Domain namespaces uniqueness keys so a layer hash and a voucher digest can
// never collide.
type Domain string

const (
	DomainLayer             Domain = "layer"
	DomainCollectionVoucher Domain = "collection_voucher"
)

func (d Domain) String() string {
	return string(d)
}

var (
	ErrAlreadyConsumed = errs.Mark(errs.New("uniqueness key already consumed"), errs.ErrAlreadyConsumed)
	ErrEmptyKey        = errs.Mark(errs.New("uniqueness key is empty"), errs.ErrInvalidParameters)
	ErrUnknownKey      = errs.Mark(errs.New("uniqueness key not recorded"), errs.ErrNotFound)
)

// Record marks a key as consumed. Records are append-only: once written the
// key stays consumed, only its consumer and successor may be rewritten.
type Record struct {
	domain       Domain
	key          []byte
	consumer     common.Address
	collectionID *uint64
	tokenID      *uint64
	successor    []byte
	consumedAt   uint64
}

func NewRecord(domain Domain, key []byte, consumer common.Address, now uint64) (*Record, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &Record{
		domain:     domain,
		key:        bytes.Clone(key),
		consumer:   consumer,
		consumedAt: now,
	}, nil
}

func ReconstructRecord(
	domain Domain,
	key []byte,
	consumer common.Address,
	collectionID, tokenID *uint64,
	successor []byte,
	consumedAt uint64,
) *Record {
	return &Record{
		domain:       domain,
		key:          key,
		consumer:     consumer,
		collectionID: collectionID,
		tokenID:      tokenID,
		successor:    successor,
		consumedAt:   consumedAt,
	}
}

func (r *Record) Domain() Domain           { return r.domain }
func (r *Record) Key() []byte              { return bytes.Clone(r.key) }
func (r *Record) Consumer() common.Address { return r.consumer }
func (r *Record) CollectionID() *uint64    { return r.collectionID }
func (r *Record) TokenID() *uint64         { return r.tokenID }
func (r *Record) Successor() []byte        { return bytes.Clone(r.successor) }
func (r *Record) ConsumedAt() uint64       { return r.consumedAt }

// BindToken ties a layer key to the token minted with it.
func (r *Record) BindToken(collectionID, tokenID uint64) {
	r.collectionID = &collectionID
	r.tokenID = &tokenID
}

// Succeed hands the token binding over to a new record for newKey and retires r:
// r stays consumed, now by the authority, and points at its successor.
func (r *Record) Succeed(newKey []byte, actor, authority common.Address, now uint64) (*Record, error) {
	next, err := NewRecord(r.domain, newKey, actor, now)
	if err != nil {
		return nil, err
	}
	next.collectionID = r.collectionID
	next.tokenID = r.tokenID

	r.consumer = authority
	r.successor = bytes.Clone(newKey)
	return next, nil
}
