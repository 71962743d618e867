//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"voucher-ledger/internal/domain/auth"
	"voucher-ledger/internal/handler/api"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/cookie"
	"voucher-ledger/internal/pkg/jwt"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/tests/common/httptest"
	commandsmock "voucher-ledger/tests/mock/commands"
	queriesmock "voucher-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockAuthCommands
	accounts *queriesmock.MockAccountQueries
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.accounts = queriesmock.NewMockAccountQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	h := api.NewAuthHandler(s.cmds, s.accounts, config.NewTestConfig(), jwtService)

	s.router.POST("/auth/challenge", h.Challenge)
	s.router.POST("/auth/login", h.Login)
	s.router.POST("/auth/refresh", h.Refresh)
	s.router.POST("/auth/logout", fakeAuth, h.Logout)
	s.router.GET("/auth/me", fakeAuth, h.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestChallenge() {
	s.Run("success: 署名用メッセージを返す", func() {
		issued := &commands.IssuedChallenge{
			Challenge: auth.Challenge{Address: testActor, Nonce: "n-1"},
			Message:   "voucher-ledger wants you to sign in",
		}
		s.cmds.EXPECT().IssueChallenge(gomock.Any(), testActor).Return(issued, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/challenge", map[string]any{"address": testActor.Hex()}, "")

		var body resdto.ChallengeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("n-1", body.Nonce)
		s.Equal(issued.Message, body.Message)
	})

	s.Run("error: 400 for a malformed address", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/challenge", map[string]any{"address": "alice"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid address")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := map[string]any{"address": testActor.Hex(), "signature": "0x0102"}

	s.Run("success: cookie を設定する", func() {
		s.cmds.EXPECT().Login(gomock.Any(), testActor, []byte{0x01, 0x02}).Return(&commands.LoginResult{
			Address:   testActor,
			TokenPair: &commands.TokenPair{AccessToken: "a1", RefreshToken: "r1"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("a1", res.AccessToken)
		s.Equal(int64(900), res.ExpiresIn)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal("a1", access.Value)
		s.True(access.HttpOnly)
		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refresh)
		s.Equal(cookie.RefreshTokenPath, refresh.Path)
	})

	rejected := []struct {
		name string
		err  error
	}{
		{name: "no challenge", err: auth.ErrChallengeNotFound},
		{name: "signer mismatch", err: auth.ErrSignerMismatch},
		{name: "challenge expired", err: commands.ErrChallengeExpired},
	}
	for _, tc := range rejected {
		s.Run("error: 401 "+tc.name, func() {
			s.cmds.EXPECT().Login(gomock.Any(), testActor, gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid login signature")
			s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
		})
	}

	s.Run("error: 500 when the challenge store is down", func() {
		s.cmds.EXPECT().Login(gomock.Any(), testActor, gomock.Any()).Return(nil, errors.New("redis: connection refused"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("success: refresh cookie からトークンを更新", func() {
		s.cmds.EXPECT().RefreshToken(gomock.Any(), "r1").Return(&commands.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "r1"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		var res resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("a2", res.AccessToken)
		s.Equal("r2", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
	})

	s.Run("success: body token without cookie", func() {
		s.cmds.EXPECT().RefreshToken(gomock.Any(), "r1").Return(&commands.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", map[string]any{"refresh_token": "r1"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 and cookies cleared for an invalid token", func() {
		s.cmds.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, commands.ErrTokenValidation)
		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "stale"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
		cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Negative(cleared.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestLogoutAndMe() {
	s.Run("logout: 204 and cookies cleared", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("", httptest.ExtractCookie(rec, cookie.AccessTokenCookieName).Value)
	})

	s.Run("me: returns the account", func() {
		s.accounts.EXPECT().GetCurrent(gomock.Any(), testActor).Return(&queries.AccountView{Address: testActor.Hex()}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, bearer)

		var body resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(testActor.Hex(), body.Address)
	})

	s.Run("me: 404 before the first recorded login", func() {
		s.accounts.EXPECT().GetCurrent(gomock.Any(), testActor).Return(nil, queries.ErrAccountNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "account not found")
	})
}
