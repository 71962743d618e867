package merch

import "voucher-ledger/internal/pkg/errs"

var (
	ErrLengthMismatch = errs.Mark(errs.New("list lengths differ"), errs.ErrInvalidParameters)
	ErrEmptyOrder     = errs.Mark(errs.New("order has no shirts"), errs.ErrInvalidParameters)
	ErrEmptyShirt     = errs.Mark(errs.New("shirt has no nfts"), errs.ErrInvalidParameters)
	ErrNotWhitelisted = errs.Mark(errs.New("nft is not whitelisted"), errs.ErrInvalidParameters)
	ErrZeroBalance    = errs.Mark(errs.New("nothing to withdraw"), errs.ErrInvalidParameters)
	ErrZeroAddress    = errs.Mark(errs.New("address must not be zero"), errs.ErrInvalidParameters)
	ErrListingMissing = errs.Mark(errs.New("nft listing not found"), errs.ErrNotFound)
)
