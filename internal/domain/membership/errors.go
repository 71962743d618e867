package membership

import "voucher-ledger/internal/pkg/errs"

var (
	ErrInvalidPrice    = errs.Mark(errs.New("invalid package price"), errs.ErrInvalidParameters)
	ErrInvalidTime     = errs.Mark(errs.New("invalid package time"), errs.ErrInvalidParameters)
	ErrInvalidDuration = errs.Mark(errs.New("invalid package duration"), errs.ErrInvalidParameters)
	ErrInvalidMaxSold  = errs.Mark(errs.New("invalid max package sold"), errs.ErrInvalidParameters)
	ErrEmptyName       = errs.Mark(errs.New("package name is empty"), errs.ErrInvalidParameters)
	ErrZeroQuantity    = errs.Mark(errs.New("quantity must be positive"), errs.ErrInvalidParameters)
	ErrOutOfRange      = errs.Mark(errs.New("package value out of range"), errs.ErrInvalidParameters)
	ErrPeriodOverflow  = errs.Mark(errs.New("subscription period out of range"), errs.ErrInvalidParameters)

	ErrPackageNotFound    = errs.Mark(errs.New("invalid creator package id"), errs.ErrNotFound)
	ErrPackageExists      = errs.Mark(errs.New("creator package id already exists"), errs.ErrDuplicateID)
	ErrPackageDeactivated = errs.Mark(errs.New("package deactivated"), errs.ErrEnded)
	ErrPackageNotStarted  = errs.Mark(errs.New("package not started"), errs.ErrNotStartedYet)
	ErrPackageEnded       = errs.Mark(errs.New("package ended"), errs.ErrEnded)
	ErrPackageSoldOut     = errs.Mark(errs.New("package sold out"), errs.ErrSoldOut)
)
