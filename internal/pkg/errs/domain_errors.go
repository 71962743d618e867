package errs

import "errors"

// Failure kinds shared by every ledger operation. Domain packages mark their
// own sentinels with one of these so the transport layer can map a whole family
// to one status.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrExpired           = errors.New("expired")
	ErrWrongAmount       = errors.New("wrong amount")
	ErrAlreadyConsumed   = errors.New("already consumed")
	ErrNotStartedYet     = errors.New("not started yet")
	ErrEnded             = errors.New("ended")
	ErrSoldOut           = errors.New("sold out")
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrNotFound          = errors.New("not found")
)

// Kind returns the first failure kind err is marked with, or nil.
func Kind(err error) error {
	for _, k := range kinds {
		if Is(err, k) {
			return k
		}
	}
	return nil
}

var kinds = []error{
	ErrUnauthorized,
	ErrInvalidSignature,
	ErrExpired,
	ErrWrongAmount,
	ErrAlreadyConsumed,
	ErrNotStartedYet,
	ErrEnded,
	ErrSoldOut,
	ErrInvalidParameters,
	ErrDuplicateID,
	ErrNotFound,
}
