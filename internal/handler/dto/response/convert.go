package response

import (
	"math/big"

	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/wei"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Amount is a base-unit integer plus its token-unit rendering.
type Amount struct {
	Wei   string `json:"wei"`
	Units string `json:"units"`
}

func NewAmount(v *big.Int, decimals int32) Amount {
	return Amount{Wei: wei.String(v), Units: wei.FormatUnits(v, decimals)}
}

// Mapper copies read views into response DTOs.
type Mapper struct {
	decimals int32
	option   copier.Option
}

func NewMapper(decimals int32) *Mapper {
	m := &Mapper{decimals: decimals}
	m.option = copier.Option{
		Converters: []copier.TypeConverter{
			{
				SrcType: &big.Int{},
				DstType: Amount{},
				Fn: func(src any) (any, error) {
					v, _ := src.(*big.Int)
					return NewAmount(v, decimals), nil
				},
			},
			{
				SrcType: common.Address{},
				DstType: copier.String,
				Fn: func(src any) (any, error) {
					return src.(common.Address).Hex(), nil
				},
			},
			{
				SrcType: uuid.UUID{},
				DstType: copier.String,
				Fn: func(src any) (any, error) {
					return src.(uuid.UUID).String(), nil
				},
			},
		},
	}
	return m
}

func (m *Mapper) Amount(v *big.Int) Amount {
	return NewAmount(v, m.decimals)
}

func (m *Mapper) copy(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, m.option); err != nil {
		return errs.Wrap(err, "copy response")
	}
	return nil
}
