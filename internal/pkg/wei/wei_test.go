//go:build unit

package wei_test

import (
	"math/big"
	"testing"

	"voucher-ledger/internal/pkg/wei"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := wei.Parse("100000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", v.String())

	for _, in := range []string{"", "-1", "0x10", "1.5", "abc"} {
		_, err := wei.Parse(in)
		assert.ErrorIs(t, err, wei.ErrInvalidAmount, in)
	}
}

func TestParseUnits(t *testing.T) {
	v, err := wei.ParseUnits("0.1", 18)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", v.String())

	v, err = wei.ParseUnits("12", 6)
	require.NoError(t, err)
	assert.Equal(t, "12000000", v.String())

	_, err = wei.ParseUnits("0.0000001", 6)
	assert.ErrorIs(t, err, wei.ErrInvalidAmount)

	_, err = wei.ParseUnits("-1", 18)
	assert.ErrorIs(t, err, wei.ErrInvalidAmount)
}

func TestFormatUnits(t *testing.T) {
	v, _ := new(big.Int).SetString("90000000000000000", 10)
	assert.Equal(t, "0.09", wei.FormatUnits(v, 18))
	assert.Equal(t, "0", wei.FormatUnits(nil, 18))
	assert.Equal(t, "1.5", wei.FormatUnits(big.NewInt(1500000), 6))
}
