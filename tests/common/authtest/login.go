//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/pkg/cookie"
	"voucher-ledger/tests/common/builder"
	"voucher-ledger/tests/common/httptest"
	"voucher-ledger/tests/common/signer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Session is what a wallet holds after a successful login.
type Session struct {
	AccessToken string
	Cookies     []*http.Cookie
}

// Login runs the challenge and signature round trip for wallet.
func Login(t *testing.T, router *gin.Engine, wallet *signer.Wallet) Session {
	t.Helper()

	b := builder.NewAuthBuilder().WithWallet(wallet)

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/challenge", b.ChallengeDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var challenge resdto.ChallengeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &challenge))

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", b.LoginDTO(challenge.Message), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.NotEmpty(t, access.Value)

	return Session{AccessToken: access.Value, Cookies: w.Result().Cookies()}
}

func Logout(t *testing.T, router *gin.Engine, s Session) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, s.Cookies, s.AccessToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
