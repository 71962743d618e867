package collection

import "voucher-ledger/internal/pkg/errs"

var (
	ErrNotArtist      = errs.Mark(errs.New("caller is not the collection artist"), errs.ErrUnauthorized)
	ErrNotTokenOwner  = errs.Mark(errs.New("caller does not own the token"), errs.ErrUnauthorized)
	ErrNotStartedYet  = errs.Mark(errs.New("sale has not started yet"), errs.ErrNotStartedYet)
	ErrEnded          = errs.Mark(errs.New("sale has ended"), errs.ErrEnded)
	ErrSoldOut        = errs.Mark(errs.New("mint cap reached"), errs.ErrSoldOut)
	ErrEmptyName      = errs.Mark(errs.New("collection name is empty"), errs.ErrInvalidParameters)
	ErrZeroCap        = errs.Mark(errs.New("mint cap must be positive"), errs.ErrInvalidParameters)
	ErrCapBelowMinted = errs.Mark(errs.New("mint cap is below the minted supply"), errs.ErrInvalidParameters)
	ErrOutOfRange     = errs.Mark(errs.New("value exceeds the storable range"), errs.ErrInvalidParameters)
	ErrInvalidWindow  = errs.Mark(errs.New("end time is before start time"), errs.ErrInvalidParameters)
	ErrNotUpgradeable = errs.Mark(errs.New("collection is not upgradeable"), errs.ErrInvalidParameters)
	ErrLayerMismatch  = errs.Mark(errs.New("token layer does not match"), errs.ErrInvalidParameters)
	ErrEmptyLayer     = errs.Mark(errs.New("layer hash is empty"), errs.ErrInvalidParameters)
	ErrNotFound       = errs.Mark(errs.New("collection not found"), errs.ErrNotFound)
	ErrTokenNotFound  = errs.Mark(errs.New("token not found"), errs.ErrNotFound)
)
