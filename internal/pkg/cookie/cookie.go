package cookie

import (
	"net/http"
	"strings"
	"time"

	"voucher-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// the refresh token is only sent to the auth endpoints
	RefreshTokenPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, "/", accessToken, int(accessExpiry.Seconds()))
	set(c, cfg, RefreshTokenCookieName, RefreshTokenPath, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "/", "", -1)
	set(c, cfg, RefreshTokenCookieName, RefreshTokenPath, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	return get(c, AccessTokenCookieName)
}

func GetRefreshToken(c *gin.Context) string {
	return get(c, RefreshTokenCookieName)
}

func set(c *gin.Context, cfg config.CookieConfig, name, path, value string, maxAge int) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(name, value, maxAge, path, cfg.Domain, cfg.Secure, true)
}

func get(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
