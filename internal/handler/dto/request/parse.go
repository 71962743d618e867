package request

import (
	"math/big"
	"strings"

	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrInvalidAddress = errs.Mark(errs.New("invalid address"), errs.ErrInvalidParameters)
	ErrInvalidHex     = errs.Mark(errs.New("invalid hex bytes"), errs.ErrInvalidParameters)
)

// ParseAddress accepts a 0x-prefixed 20 byte hex address in any letter case.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, errs.Wrapf(ErrInvalidAddress, "%q", s)
	}
	return common.HexToAddress(s), nil
}

// optionalAddress maps "" to the zero address, the native coin.
func optionalAddress(s string) (common.Address, error) {
	if strings.TrimSpace(s) == "" {
		return common.Address{}, nil
	}
	return ParseAddress(s)
}

func parseAddresses(ss []string) ([]common.Address, error) {
	out := make([]common.Address, len(ss))
	for i, s := range ss {
		a, err := ParseAddress(s)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

func ParseHex(s string) ([]byte, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidHex, "%q", s)
	}
	return b, nil
}

// parseAmount reads a wei string; "" means zero.
func parseAmount(s string) (*big.Int, error) {
	if strings.TrimSpace(s) == "" {
		return wei.Zero(), nil
	}
	return wei.Parse(s)
}
