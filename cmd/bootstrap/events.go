package bootstrap

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/infra/events"
	"voucher-ledger/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(StartRelay),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) events.Publisher {
	publisher := events.NewPublisher(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

func NewRelay(
	logger *slog.Logger,
	queries events.OutboxRelayQueries,
	pool *pgxpool.Pool,
	publisher events.Publisher,
	cfg config.Config,
) *events.Relay {
	return events.NewRelay(logger, queries, events.PoolRunner(pool), publisher, cfg.Kafka)
}

// StartRelay runs the outbox relay for the lifetime of the app. Its stop hook
// is registered after the publisher's, so fx drains the relay first.
func StartRelay(lc fx.Lifecycle, relay *events.Relay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
