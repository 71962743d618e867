package middleware

import (
	"log/slog"
	"slices"

	"voucher-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware exposes X-Request-ID so browser clients can quote it.
// Credentials are refused for a wildcard origin, which cors.New would panic on.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowAll := slices.Contains(cfg.AllowOrigins, "*")
	corsCfg := cors.Config{
		AllowAllOrigins:  allowAll,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), requestIDHeader),
		AllowCredentials: cfg.AllowCredentials && !allowAll,
		MaxAge:           cfg.MaxAge,
	}
	if !allowAll {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if allowAll && cfg.AllowCredentials {
		slog.Warn("CORS credentials disabled for wildcard origin")
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
