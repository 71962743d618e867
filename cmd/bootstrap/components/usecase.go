package components

import (
	"math/big"

	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/usecase"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewChain,
	NewAuthSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCollectionCommands,
		commands.NewMintCommands,
		commands.NewMembershipCommands,
		commands.NewGovernanceCommands,
		commands.NewStoreCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewCollectionQueries,
		queries.NewMembershipQueries,
		queries.NewSettingsQueries,
		queries.NewStoreQueries,
		queries.NewPayoutQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewChain(cfg config.Config) commands.Chain {
	return commands.Chain{ID: big.NewInt(cfg.Chain.ChainID)}
}

func NewAuthSettings(cfg config.Config) commands.AuthSettings {
	return commands.AuthSettings{
		Domain:       cfg.Chain.LoginDomain,
		ChallengeTTL: cfg.Redis.ChallengeTTL,
	}
}
