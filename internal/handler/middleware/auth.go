package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"voucher-ledger/internal/pkg/cookie"
	"voucher-ledger/internal/usecase"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the caller's address from the access token cookie or
// a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

func SetActor(c *gin.Context, actor common.Address) {
	c.Set(ctxActorKey, actor)
}

// GetActor returns the authenticated address set by RequireAuth.
func GetActor(c *gin.Context) (common.Address, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return common.Address{}, false
	}
	actor, ok := v.(common.Address)
	return actor, ok
}
