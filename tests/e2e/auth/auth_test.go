//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "voucher-ledger/internal/handler/dto/request"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/pkg/cookie"
	"voucher-ledger/tests/common/authtest"
	"voucher-ledger/tests/common/builder"
	"voucher-ledger/tests/common/dbtest"
	"voucher-ledger/tests/common/httptest"
	"voucher-ledger/tests/common/signer"
	"voucher-ledger/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	challengeURL = "/api/auth/challenge"
	loginURL     = "/api/auth/login"
	logoutURL    = "/api/auth/logout"
	refreshURL   = "/api/auth/refresh"
	meURL        = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) challenge(b *builder.AuthBuilder) resdto.ChallengeResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, challengeURL, b.ChallengeDTO(), "")
	var res resdto.ChallengeResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *authSuite) TestLogin() {
	s.Run("署名したチャレンジでログインしアカウントが記録される", func() {
		t := s.T()
		wallet := signer.NewWallet()

		session := authtest.Login(t, s.Router, wallet)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "accounts", "address = $1 AND last_login_at IS NOT NULL", wallet.Address().Hex()))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, session.AccessToken)
		var me resdto.AccountResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, wallet.Address().Hex(), me.Address)
	})

	s.Run("チャレンジは一度しか使えない", func() {
		t := s.T()
		b := builder.NewAuthBuilder()
		login := b.LoginDTO(s.challenge(b).Message)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, login, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, login, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid login signature")
	})

	s.Run("別のウォレットの署名は拒否される", func() {
		t := s.T()
		b := builder.NewAuthBuilder()
		message := s.challenge(b).Message

		forged := builder.NewAuthBuilder().LoginDTO(message)
		forged.Address = b.Wallet.Address().Hex()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, forged, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid login signature")
		require.Zero(t, dbtest.CountRows(t, s.DB, "accounts", ""))
	})

	s.Run("チャレンジ無しのログインは拒否される", func() {
		t := s.T()
		login := builder.NewAuthBuilder().LoginDTO("never issued")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, login, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("不正なアドレス", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, challengeURL, reqdto.ChallengeRequest{Address: "0x1234"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid address")
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("クッキーでトークンを更新できる", func() {
		t := s.T()
		session := authtest.Login(t, s.Router, signer.NewWallet())

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, session.Cookies, "")
		var res resdto.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
		require.Positive(t, res.ExpiresIn)
		require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))
	})

	s.Run("無効なリフレッシュトークン", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqdto.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})

	s.Run("アクセストークンはリフレッシュに使えない", func() {
		t := s.T()
		session := authtest.Login(t, s.Router, signer.NewWallet())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqdto.RefreshRequest{RefreshToken: session.AccessToken}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("トークン無し", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが消える", func() {
		t := s.T()
		session := authtest.Login(t, s.Router, signer.NewWallet())

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, session.Cookies, session.AccessToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, access)
		require.Negative(t, access.MaxAge)
	})

	s.Run("未認証のログアウトは401", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
