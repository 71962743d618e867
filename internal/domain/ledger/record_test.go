//go:build unit

package ledger_test

import (
	"testing"

	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	buyer     = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	authority = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

func TestNewRecord(t *testing.T) {
	_, err := ledger.NewRecord(ledger.DomainLayer, nil, buyer, 1)
	require.ErrorIs(t, err, ledger.ErrEmptyKey)

	r, err := ledger.NewRecord(ledger.DomainLayer, []byte{0xaa}, buyer, 10)
	require.NoError(t, err)
	assert.Equal(t, buyer, r.Consumer())
	assert.Nil(t, r.TokenID())
	assert.Equal(t, uint64(10), r.ConsumedAt())

	r.BindToken(3, 7)
	require.NotNil(t, r.TokenID())
	assert.Equal(t, uint64(3), *r.CollectionID())
	assert.Equal(t, uint64(7), *r.TokenID())
}

func TestRecord_Succeed(t *testing.T) {
	old, err := ledger.NewRecord(ledger.DomainLayer, []byte("old"), buyer, 10)
	require.NoError(t, err)
	old.BindToken(1, 2)

	next, err := old.Succeed([]byte("new"), buyer, authority, 20)
	require.NoError(t, err)

	assert.Equal(t, authority, old.Consumer(), "retired key is held by the authority")
	assert.Equal(t, []byte("new"), old.Successor())
	assert.Equal(t, []byte("old"), old.Key())

	assert.Equal(t, buyer, next.Consumer())
	assert.Equal(t, ledger.DomainLayer, next.Domain())
	assert.Equal(t, uint64(2), *next.TokenID())
	assert.Empty(t, next.Successor())

	_, err = old.Succeed(nil, buyer, authority, 20)
	require.ErrorIs(t, err, ledger.ErrEmptyKey)
}

func TestErrAlreadyConsumedKind(t *testing.T) {
	assert.True(t, errs.Is(ledger.ErrAlreadyConsumed, errs.ErrAlreadyConsumed))
}
