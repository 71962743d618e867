package components

import (
	"voucher-ledger/internal/handler"
	"voucher-ledger/internal/handler/api"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/middleware"
	"voucher-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewMapper,
		api.NewAuthHandler,
		api.NewCollectionHandler,
		api.NewMembershipHandler,
		api.NewSettingsHandler,
		api.NewStoreHandler,
		api.NewPayoutHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewMapper(cfg config.Config) *resdto.Mapper {
	return resdto.NewMapper(cfg.Chain.TokenDecimals)
}

func NewHandlers(
	auth *api.AuthHandler,
	collection *api.CollectionHandler,
	membership *api.MembershipHandler,
	settings *api.SettingsHandler,
	store *api.StoreHandler,
	payout *api.PayoutHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Collection: collection,
		Membership: membership,
		Settings:   settings,
		Store:      store,
		Payout:     payout,
	}
}
