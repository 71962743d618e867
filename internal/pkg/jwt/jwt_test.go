//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"voucher-ledger/internal/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var actor = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)

	access, err := svc.GenerateAccessToken(actor)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(actor)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, actor, claims.Actor())

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)

	t.Run("期限切れ", func(t *testing.T) {
		expired := jwt.NewService("secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(actor)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Minute, time.Hour).GenerateAccessToken(actor)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
