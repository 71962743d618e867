package migrate

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

var ErrMigrationFailed = errs.New("schema migration failed")

// Applier is the slice of the atlas client the runner needs.
type Applier interface {
	MigrateApply(ctx context.Context, params *atlasexec.MigrateApplyParams) (*atlasexec.MigrateApply, error)
}

type Runner struct {
	applier Applier
	cfg     config.MigrationConfig
	logger  *slog.Logger
}

func NewRunner(applier Applier, cfg config.MigrationConfig, logger *slog.Logger) *Runner {
	return &Runner{applier: applier, cfg: cfg, logger: logger}
}

// NewAtlasClient shells out to the atlas binary named in cfg.
func NewAtlasClient(cfg config.MigrationConfig) (*atlasexec.Client, error) {
	client, err := atlasexec.NewClient(".", cfg.AtlasBin)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create atlas client")
	}
	return client, nil
}

// Apply brings the database at dsn up to the latest migration. It is a no-op
// when migrations are disabled.
func (r *Runner) Apply(ctx context.Context, dsn string) error {
	if !r.cfg.Enabled {
		r.logger.Info("schema migration skipped")
		return nil
	}

	res, err := r.applier.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DirURL: r.cfg.Dir,
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "atlas migrate apply"), ErrMigrationFailed)
	}

	r.logger.Info("schema migrated",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
	return nil
}
