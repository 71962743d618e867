package bootstrap

import (
	"voucher-ledger/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module order is start order: the schema is migrated before settings are
// seeded and before the relay starts reading the outbox.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	GovernanceModule,
	EventsModule,
	components.HandlerModule,
)
