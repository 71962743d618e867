//go:build unit

package migrate_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"voucher-ledger/internal/infra/migrate"
	"voucher-ledger/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplier struct {
	params *atlasexec.MigrateApplyParams
	err    error
}

func (f *fakeApplier) MigrateApply(_ context.Context, params *atlasexec.MigrateApplyParams) (*atlasexec.MigrateApply, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &atlasexec.MigrateApply{Current: "", Target: "001"}, nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunner_Apply(t *testing.T) {
	ctx := context.Background()
	dsn := "postgres://u:p@localhost:5432/ledger?sslmode=disable"

	t.Run("applies the configured directory", func(t *testing.T) {
		applier := &fakeApplier{}
		cfg := config.MigrationConfig{Enabled: true, Dir: "file://migrations"}

		err := migrate.NewRunner(applier, cfg, discard).Apply(ctx, dsn)

		require.NoError(t, err)
		require.NotNil(t, applier.params)
		assert.Equal(t, dsn, applier.params.URL)
		assert.Equal(t, "file://migrations", applier.params.DirURL)
	})

	t.Run("disabled", func(t *testing.T) {
		applier := &fakeApplier{}

		err := migrate.NewRunner(applier, config.MigrationConfig{}, discard).Apply(ctx, dsn)

		require.NoError(t, err)
		assert.Nil(t, applier.params)
	})

	t.Run("atlas failure", func(t *testing.T) {
		applier := &fakeApplier{err: assert.AnError}
		cfg := config.MigrationConfig{Enabled: true, Dir: "file://migrations"}

		err := migrate.NewRunner(applier, cfg, discard).Apply(ctx, dsn)

		assert.ErrorIs(t, err, migrate.ErrMigrationFailed)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
