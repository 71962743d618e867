//go:build unit

package commands_test

import (
	"context"
	"testing"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/tests/common/builder"
	"voucher-ledger/tests/common/signer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) createRequest(keyID uint64, name string) commands.CreateCollectionRequest {
	v := h.authority.SignCollection(voucher.Collection{
		KeyID:     keyID,
		Sender:    builder.DefaultArtist,
		Name:      name,
		Symbol:    "SYM",
		BaseURI:   "ipfs://base/",
		MintCap:   5,
		StartTime: h.now(),
		EndTime:   h.now() + day,
		Expiry:    h.now() + 600,
	}, signer.DefaultChainID)
	return commands.CreateCollectionRequest{
		KeyID:     v.KeyID,
		Name:      v.Name,
		Symbol:    v.Symbol,
		BaseURI:   v.BaseURI,
		MintCap:   v.MintCap,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		Expiry:    v.Expiry,
		Signature: v.Signature,
	}
}

func TestCollectionCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ids are assigned in order", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCollectionCommands(h.store, h.chain, h.clock)

		first, err := uc.Create(ctx, builder.DefaultArtist, h.createRequest(1, "First"))
		require.NoError(t, err)
		second, err := uc.Create(ctx, builder.DefaultArtist, h.createRequest(2, "Second"))
		require.NoError(t, err)

		assert.Equal(t, uint64(1), first)
		assert.Equal(t, uint64(2), second)
		c, ok := h.store.Collection(2)
		require.True(t, ok)
		assert.Equal(t, "Second", c.Name())
		assert.Equal(t, builder.DefaultArtist, c.Artist())
		assert.Equal(t, []event.Kind{event.CollectionCreated, event.CollectionCreated}, h.store.EventKinds())
	})

	t.Run("同じバウチャーは再利用できない", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCollectionCommands(h.store, h.chain, h.clock)
		req := h.createRequest(1, "First")

		_, err := uc.Create(ctx, builder.DefaultArtist, req)
		require.NoError(t, err)
		_, err = uc.Create(ctx, builder.DefaultArtist, req)

		assert.ErrorIs(t, err, ledger.ErrAlreadyConsumed)
		_, ok := h.store.Collection(2)
		assert.False(t, ok)
	})

	t.Run("voucher for another artist", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCollectionCommands(h.store, h.chain, h.clock)

		_, err := uc.Create(ctx, stranger, h.createRequest(1, "First"))

		assert.ErrorIs(t, err, voucher.ErrInvalidSignature)
	})

	t.Run("invalid parameters release the voucher", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCollectionCommands(h.store, h.chain, h.clock)
		req := h.createRequest(1, "")

		_, err := uc.Create(ctx, builder.DefaultArtist, req)

		assert.ErrorIs(t, err, collection.ErrEmptyName)
		assert.Empty(t, h.store.EventKinds())
	})
}

func TestCollectionCommands_Updates(t *testing.T) {
	ctx := context.Background()
	artist := builder.DefaultArtist

	setup := func(t *testing.T) (*harness, commands.CollectionCommands) {
		h := newHarness(t)
		h.store.PutCollection(builder.NewCollectionBuilder().With(func(b *builder.CollectionBuilder) {
			b.TotalMinted = 3
		}).BuildStored())
		return h, commands.NewCollectionCommands(h.store, h.chain, h.clock)
	}

	tests := []struct {
		name    string
		run     func(uc commands.CollectionCommands) error
		wantErr error
		check   func(t *testing.T, c *collection.Collection)
	}{
		{
			name: "cap raised",
			run:  func(uc commands.CollectionCommands) error { return uc.UpdateCap(ctx, artist, 1, 20) },
			check: func(t *testing.T, c *collection.Collection) {
				assert.Equal(t, uint64(20), c.MintCap())
			},
		},
		{
			name:    "cap below minted",
			run:     func(uc commands.CollectionCommands) error { return uc.UpdateCap(ctx, artist, 1, 2) },
			wantErr: collection.ErrCapBelowMinted,
		},
		{
			name:    "only the artist",
			run:     func(uc commands.CollectionCommands) error { return uc.UpdateCap(ctx, stranger, 1, 20) },
			wantErr: collection.ErrNotArtist,
		},
		{
			name:    "start after end",
			run:     func(uc commands.CollectionCommands) error { return uc.UpdateStart(ctx, artist, 1, builder.BaseTime+3*day) },
			wantErr: collection.ErrInvalidWindow,
		},
		{
			name: "end zero opens the window forever",
			run:  func(uc commands.CollectionCommands) error { return uc.UpdateEnd(ctx, artist, 1, 0) },
			check: func(t *testing.T, c *collection.Collection) {
				assert.Equal(t, collection.StateOpen, c.StateAt(1<<40))
			},
		},
		{
			name: "upgradeable toggled",
			run:  func(uc commands.CollectionCommands) error { return uc.SetUpgradeable(ctx, artist, 1, true) },
			check: func(t *testing.T, c *collection.Collection) {
				assert.True(t, c.Upgradeable())
			},
		},
		{
			name:    "unknown collection",
			run:     func(uc commands.CollectionCommands) error { return uc.SetUpgradeable(ctx, artist, 5, true) },
			wantErr: collection.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := setup(t)

			err := tt.run(uc)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, h.store.EventKinds())
				return
			}
			require.NoError(t, err)
			c, _ := h.store.Collection(1)
			tt.check(t, c)
			assert.Equal(t, []event.Kind{event.CollectionUpdated}, h.store.EventKinds())
		})
	}
}
