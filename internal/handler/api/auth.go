package api

import (
	"log/slog"
	"net/http"

	reqdto "voucher-ledger/internal/handler/dto/request"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/cookie"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/jwt"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var ErrNoRefreshToken = errs.New("refresh token required")

type AuthHandler struct {
	cmds       commands.AuthCommands
	accounts   queries.AccountQueries
	cookies    config.CookieConfig
	jwtService *jwt.Service
}

func NewAuthHandler(
	cmds commands.AuthCommands,
	accounts queries.AccountQueries,
	cfg config.Config,
	jwtService *jwt.Service,
) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		accounts:   accounts,
		cookies:    cfg.Cookie,
		jwtService: jwtService,
	}
}

// @Summary Issue login challenge
// @Description Issue a one-time message for the wallet to personal-sign
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ChallengeRequest true "Challenge request"
// @Success 201 {object} resdto.ChallengeResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/challenge [post]
func (h *AuthHandler) Challenge(c *gin.Context) {
	var req reqdto.ChallengeRequest
	if !bindJSON(c, &req) {
		return
	}
	address, err := req.ToAddress()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid address", nil)
		return
	}
	issued, err := h.cmds.IssueChallenge(c.Request.Context(), address)
	if err != nil {
		httperr.Abort(c, err, "Failed to issue challenge")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssuedChallenge(issued))
}

// @Summary Wallet login
// @Description Verify the signed challenge and set token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	address, sig, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), address, sig)
	if err != nil {
		if httperr.StatusOf(err) == http.StatusInternalServerError {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		slog.Info("login rejected", "address", address.Hex(), "error", err.Error())
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid login signature", nil)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Address:     result.Address.Hex(),
		AccessToken: result.TokenPair.AccessToken,
		ExpiresIn:   int64(h.jwtService.AccessDuration().Seconds()),
	})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh cookie or body token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, ErrNoRefreshToken, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		cookie.ClearTokenCookies(c, h.cookies)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   int64(h.jwtService.AccessDuration().Seconds()),
	})
}

// @Summary Logout
// @Description Clear the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless, so logout only drops the cookies
	cookie.ClearTokenCookies(c, h.cookies)
	c.Status(http.StatusNoContent)
}

// @Summary Current account
// @Description Get the authenticated account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	account, err := h.accounts.GetCurrent(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err, "Failed to load account")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(account))
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(
		c,
		h.cookies,
		pair.AccessToken,
		pair.RefreshToken,
		h.jwtService.AccessDuration(),
		h.jwtService.RefreshDuration(),
	)
}
