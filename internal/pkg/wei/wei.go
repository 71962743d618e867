// Package wei converts between integer base-unit amounts and their decimal
// renderings.
package wei

import (
	"math/big"
	"strings"

	"voucher-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errs.Mark(errs.New("invalid amount"), errs.ErrInvalidParameters)

// Parse reads a non-negative base-10 integer amount in base units.
func Parse(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidAmount
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	return v, nil
}

// ParseUnits reads a decimal token amount ("0.1") and scales it to base units.
// Fractions finer than the token's precision are rejected.
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return nil, ErrInvalidAmount
	}
	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, ErrInvalidAmount
	}
	return scaled.BigInt(), nil
}

// FormatUnits renders base units as a token amount, trailing zeros trimmed.
func FormatUnits(v *big.Int, decimals int32) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -decimals).String()
}

func String(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// Zero returns a fresh zero amount.
func Zero() *big.Int {
	return new(big.Int)
}
