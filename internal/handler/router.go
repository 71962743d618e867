package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voucher-ledger/internal/handler/api"
	"voucher-ledger/internal/handler/middleware"
	"voucher-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Auth       *api.AuthHandler
	Collection *api.CollectionHandler
	Membership *api.MembershipHandler
	Settings   *api.SettingsHandler
	Store      *api.StoreHandler
	Payout     *api.PayoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/challenge", Handler: h.Auth.Challenge},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: requireAuth},
			})
		}

		collections := apiGroup.Group("/collections")
		{
			addRoutes(collections, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Collection.Create, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Collection.Get},
				{Method: http.MethodPut, Path: "/:id/mint-cap", Handler: h.Collection.UpdateMintCap, Mw: requireAuth},
				{Method: http.MethodPut, Path: "/:id/start-time", Handler: h.Collection.UpdateStartTime, Mw: requireAuth},
				{Method: http.MethodPut, Path: "/:id/end-time", Handler: h.Collection.UpdateEndTime, Mw: requireAuth},
				{Method: http.MethodPut, Path: "/:id/upgradeable", Handler: h.Collection.SetUpgradeable, Mw: requireAuth},
				{Method: http.MethodPost, Path: "/:id/mints", Handler: h.Collection.Mint, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/:id/tokens/:tokenId", Handler: h.Collection.GetToken},
				{Method: http.MethodPost, Path: "/:id/tokens/:tokenId/upgrade", Handler: h.Collection.Upgrade, Mw: requireAuth},
			})
		}
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/artists/:address/collections", Handler: h.Collection.ListByArtist},
			{Method: http.MethodGet, Path: "/layers/:hash", Handler: h.Collection.Layer},
		})

		packages := apiGroup.Group("/packages")
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Membership.ListPackages},
				{Method: http.MethodPost, Path: "", Handler: h.Membership.AddPackage, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Membership.GetPackage},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Membership.UpdatePackage, Mw: requireAuth},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Membership.DeactivatePackage, Mw: requireAuth},
				{Method: http.MethodPost, Path: "/:id/subscriptions", Handler: h.Membership.Subscribe, Mw: requireAuth},
			})
		}
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/members/:address/subscriptions", Handler: h.Membership.ListSubscriptions},
			{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.Get},
			{Method: http.MethodPatch, Path: "/settings", Handler: h.Settings.Update, Mw: requireAuth},
		})

		store := apiGroup.Group("/store")
		{
			addRoutes(store, []route{
				{Method: http.MethodPost, Path: "/estimate", Handler: h.Store.Estimate},
				{Method: http.MethodPost, Path: "/orders", Handler: h.Store.Order, Mw: requireAuth},
				{Method: http.MethodPost, Path: "/whitelist", Handler: h.Store.Whitelist, Mw: requireAuth},
				{Method: http.MethodPut, Path: "/whitelist/status", Handler: h.Store.SetStatus, Mw: requireAuth},
				{Method: http.MethodPut, Path: "/whitelist/owners", Handler: h.Store.SetOwners, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/nfts/:address", Handler: h.Store.Listing},
				{Method: http.MethodGet, Path: "/balances/:address", Handler: h.Store.Balance},
				{Method: http.MethodPost, Path: "/withdrawals", Handler: h.Store.Withdraw, Mw: requireAuth},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/accounts/:address/payouts", Handler: h.Payout.ListByAccount},
			{Method: http.MethodGet, Path: "/payouts", Handler: h.Payout.ListByReference},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
