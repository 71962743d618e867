package bootstrap

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/infra/db"
	"voucher-ledger/internal/infra/migrate"
	"voucher-ledger/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(
		RunMigrations,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// RunMigrations applies pending atlas migrations before anything else starts.
func RunMigrations(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Migration.Enabled {
				logger.Info("schema migration skipped")
				return nil
			}
			client, err := migrate.NewAtlasClient(cfg.Migration)
			if err != nil {
				return err
			}
			return migrate.NewRunner(client, cfg.Migration, logger).Apply(ctx, cfg.DB.BuildDSN())
		},
	})
}
