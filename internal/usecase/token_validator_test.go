//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"voucher-ledger/internal/pkg/jwt"
	"voucher-ledger/internal/usecase"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)
	v := usecase.NewTokenValidator(svc)
	addr := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	access, err := svc.GenerateAccessToken(addr)
	require.NoError(t, err)
	got, err := v.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	refresh, err := svc.GenerateRefreshToken(addr)
	require.NoError(t, err)
	_, err = v.ValidateToken(refresh)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = v.ValidateToken("not-a-token")
	assert.Error(t, err)
}
