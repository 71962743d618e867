package commands

import (
	"bytes"
	"context"
	"math/big"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type MintRequest struct {
	CollectionID uint64
	URI          string
	Fee          *big.Int
	LayerHash    []byte
	Expiry       uint64
	Signature    []byte
	Paid         *big.Int
}

type UpgradeRequest struct {
	CollectionID uint64
	TokenID      uint64
	URI          string
	Fee          *big.Int
	OldLayerHash []byte
	NewLayerHash []byte
	Expiry       uint64
	Signature    []byte
	Paid         *big.Int
}

type MintResult struct {
	CollectionID uint64
	TokenID      uint64
	Tier         fee.Tier
	Transfers    fee.Plan
}

type MintCommands interface {
	Mint(ctx context.Context, actor common.Address, req MintRequest) (*MintResult, error)
	Upgrade(ctx context.Context, actor common.Address, req UpgradeRequest) (*MintResult, error)
}

type mintCommandsImpl struct {
	uow   shared.UnitOfWork
	chain Chain
	clock clock.Clock
}

func NewMintCommands(uow shared.UnitOfWork, chain Chain, clk clock.Clock) MintCommands {
	return &mintCommandsImpl{uow: uow, chain: chain, clock: clk}
}

type tokenEvent struct {
	CollectionID uint64 `json:"collection_id"`
	TokenID      uint64 `json:"token_id"`
	Owner        string `json:"owner"`
	URI          string `json:"uri"`
	LayerHash    string `json:"layer_hash"`
	OldLayerHash string `json:"old_layer_hash,omitempty"`
	Fee          string `json:"fee"`
	Tier         string `json:"tier"`
}

// Mint order of checks: voucher, sale window and cap, layer uniqueness, paid amount.
func (uc *mintCommandsImpl) Mint(ctx context.Context, actor common.Address, req MintRequest) (*MintResult, error) {
	now := clock.Unix(uc.clock)

	var result *MintResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}
		if _, err := uc.chain.verifier(settings).Verify(voucher.Mint{
			CollectionID: req.CollectionID,
			Sender:       actor,
			Fee:          req.Fee,
			URI:          req.URI,
			LayerHash:    req.LayerHash,
			Expiry:       req.Expiry,
			Signature:    req.Signature,
		}, now); err != nil {
			return err
		}

		c, err := tx.Collections().FindForUpdate(ctx, tx.DB(), req.CollectionID)
		if err != nil {
			return err
		}
		tokenID, err := c.Mint(now)
		if err != nil {
			return err
		}

		record, err := ledger.NewRecord(ledger.DomainLayer, req.LayerHash, actor, now)
		if err != nil {
			return err
		}
		record.BindToken(c.ID(), tokenID)
		if err := tx.Uniqueness().Record(ctx, tx.DB(), record); err != nil {
			return err
		}

		if err := fee.CheckPaid(req.Paid, req.Fee); err != nil {
			return err
		}

		token, err := collection.NewToken(c.ID(), tokenID, actor, req.URI, req.LayerHash)
		if err != nil {
			return err
		}
		if err := tx.Collections().Update(ctx, tx.DB(), c); err != nil {
			return err
		}
		if err := tx.Tokens().Create(ctx, tx.DB(), token, now); err != nil {
			return err
		}

		tier, plan, err := uc.split(ctx, tx, settings, c, actor, req.Paid, now)
		if err != nil {
			return err
		}
		if err := book(ctx, tx, tokenReference(c.ID(), tokenID), plan); err != nil {
			return err
		}

		result = &MintResult{CollectionID: c.ID(), TokenID: tokenID, Tier: tier, Transfers: plan}
		return emit(ctx, tx, event.New(event.NFTMinted, idKey(c.ID()), tokenEvent{
			CollectionID: c.ID(),
			TokenID:      tokenID,
			Owner:        actor.Hex(),
			URI:          req.URI,
			LayerHash:    hexutil.Encode(req.LayerHash),
			Fee:          req.Paid.String(),
			Tier:         string(tier),
		}))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Upgrade re-layers a token. The old layer key stays consumed, now held by
// the verifier authority, and points at the new key.
func (uc *mintCommandsImpl) Upgrade(ctx context.Context, actor common.Address, req UpgradeRequest) (*MintResult, error) {
	now := clock.Unix(uc.clock)

	var result *MintResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}

		c, err := tx.Collections().FindForUpdate(ctx, tx.DB(), req.CollectionID)
		if err != nil {
			return err
		}
		if !c.Upgradeable() {
			return collection.ErrNotUpgradeable
		}
		token, err := tx.Tokens().FindForUpdate(ctx, tx.DB(), req.CollectionID, req.TokenID)
		if err != nil {
			return err
		}
		if err := token.RequireOwner(actor); err != nil {
			return err
		}
		if !bytes.Equal(token.LayerHash(), req.OldLayerHash) {
			return collection.ErrLayerMismatch
		}

		if _, err := uc.chain.verifier(settings).Verify(voucher.Upgrade{
			CollectionID: req.CollectionID,
			TokenID:      req.TokenID,
			Sender:       actor,
			Fee:          req.Fee,
			URI:          req.URI,
			OldLayerHash: req.OldLayerHash,
			NewLayerHash: req.NewLayerHash,
			Expiry:       req.Expiry,
			Signature:    req.Signature,
		}, now); err != nil {
			return err
		}
		if err := c.UpgradeCheck(now); err != nil {
			return err
		}

		old, err := tx.Uniqueness().FindForUpdate(ctx, tx.DB(), ledger.DomainLayer, req.OldLayerHash)
		if err != nil {
			return err
		}
		next, err := old.Succeed(req.NewLayerHash, actor, settings.Verifier(), now)
		if err != nil {
			return err
		}
		if err := tx.Uniqueness().Record(ctx, tx.DB(), next); err != nil {
			return err
		}
		if err := tx.Uniqueness().Retire(ctx, tx.DB(), old); err != nil {
			return err
		}

		if err := fee.CheckPaid(req.Paid, req.Fee); err != nil {
			return err
		}

		if err := token.Relayer(req.OldLayerHash, req.NewLayerHash, req.URI); err != nil {
			return err
		}
		if err := tx.Tokens().UpdateLayer(ctx, tx.DB(), token); err != nil {
			return err
		}

		tier, plan, err := uc.split(ctx, tx, settings, c, actor, req.Paid, now)
		if err != nil {
			return err
		}
		if err := book(ctx, tx, tokenReference(c.ID(), req.TokenID)+":upgrade:"+hexutil.Encode(req.NewLayerHash), plan); err != nil {
			return err
		}

		result = &MintResult{CollectionID: c.ID(), TokenID: req.TokenID, Tier: tier, Transfers: plan}
		return emit(ctx, tx, event.New(event.NFTUpgraded, idKey(c.ID()), tokenEvent{
			CollectionID: c.ID(),
			TokenID:      req.TokenID,
			Owner:        actor.Hex(),
			URI:          req.URI,
			LayerHash:    hexutil.Encode(req.NewLayerHash),
			OldLayerHash: hexutil.Encode(req.OldLayerHash),
			Fee:          req.Paid.String(),
			Tier:         string(tier),
		}))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// split applies the artist's tier to the royalty cut and plans the transfers:
// royalty to the royalty recipient, the rest to the fee recipient.
func (uc *mintCommandsImpl) split(
	ctx context.Context,
	tx shared.Tx,
	settings *governance.Settings,
	c *collection.Collection,
	payer common.Address,
	paid *big.Int,
	now uint64,
) (fee.Tier, fee.Plan, error) {
	member, err := tx.Subscriptions().HasActive(ctx, tx.DB(), c.Artist(), now)
	if err != nil {
		return "", nil, err
	}
	tier := fee.TierOf(member)

	plan, _, err := fee.PlanSplit(fee.SplitRequest{
		Asset:              c.PaymentToken(),
		Payer:              payer,
		PlatformRecipient:  settings.FeeRecipient(),
		SecondaryRecipient: settings.RoyaltyRecipient(),
		Amount:             paid,
		SecondaryBps:       tier.RoyaltyBps(settings.RoyaltyBps()),
	})
	if err != nil {
		return "", nil, err
	}
	return tier, plan, nil
}
