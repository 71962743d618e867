package commands

import (
	"context"

	"voucher-ledger/internal/domain/collection"
	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/ledger"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/common"
)

type CreateCollectionRequest struct {
	KeyID        uint64
	Name         string
	Symbol       string
	BaseURI      string
	PaymentToken common.Address
	MintCap      uint64
	StartTime    uint64
	EndTime      uint64
	Expiry       uint64
	Signature    []byte
}

type CollectionCommands interface {
	Create(ctx context.Context, actor common.Address, req CreateCollectionRequest) (uint64, error)
	UpdateCap(ctx context.Context, actor common.Address, id, mintCap uint64) error
	UpdateStart(ctx context.Context, actor common.Address, id, start uint64) error
	UpdateEnd(ctx context.Context, actor common.Address, id, end uint64) error
	SetUpgradeable(ctx context.Context, actor common.Address, id uint64, upgradeable bool) error
}

type collectionCommandsImpl struct {
	uow   shared.UnitOfWork
	chain Chain
	clock clock.Clock
}

func NewCollectionCommands(uow shared.UnitOfWork, chain Chain, clk clock.Clock) CollectionCommands {
	return &collectionCommandsImpl{uow: uow, chain: chain, clock: clk}
}

type collectionEvent struct {
	ID          uint64 `json:"id"`
	KeyID       uint64 `json:"key_id"`
	Artist      string `json:"artist"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	MintCap     uint64 `json:"mint_cap"`
	StartTime   uint64 `json:"start_time"`
	EndTime     uint64 `json:"end_time"`
	TotalMinted uint64 `json:"total_minted"`
	Upgradeable bool   `json:"upgradeable"`
}

func collectionPayload(c *collection.Collection) collectionEvent {
	return collectionEvent{
		ID:          c.ID(),
		KeyID:       c.KeyID(),
		Artist:      c.Artist().Hex(),
		Name:        c.Name(),
		Symbol:      c.Symbol(),
		MintCap:     c.MintCap(),
		StartTime:   c.StartTime(),
		EndTime:     c.EndTime(),
		TotalMinted: c.TotalMinted(),
		Upgradeable: c.Upgradeable(),
	}
}

// Create opens a sale window authorized by a collection voucher. The voucher
// digest is consumed, so the same voucher cannot open a second window.
func (uc *collectionCommandsImpl) Create(ctx context.Context, actor common.Address, req CreateCollectionRequest) (uint64, error) {
	now := clock.Unix(uc.clock)

	var createdID uint64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}

		digest, err := uc.chain.verifier(settings).Verify(voucher.Collection{
			KeyID:        req.KeyID,
			Sender:       actor,
			Name:         req.Name,
			Symbol:       req.Symbol,
			BaseURI:      req.BaseURI,
			PaymentToken: req.PaymentToken,
			MintCap:      req.MintCap,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Expiry:       req.Expiry,
			Signature:    req.Signature,
		}, now)
		if err != nil {
			return err
		}

		record, err := ledger.NewRecord(ledger.DomainCollectionVoucher, digest, actor, now)
		if err != nil {
			return err
		}
		if err := tx.Uniqueness().Record(ctx, tx.DB(), record); err != nil {
			return err
		}

		id, err := tx.Collections().NextID(ctx, tx.DB())
		if err != nil {
			return err
		}
		c, err := collection.NewCollection(id, collection.Params{
			KeyID:        req.KeyID,
			Artist:       actor,
			Name:         req.Name,
			Symbol:       req.Symbol,
			BaseURI:      req.BaseURI,
			PaymentToken: req.PaymentToken,
			MintCap:      req.MintCap,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
		})
		if err != nil {
			return err
		}
		if err := tx.Collections().Create(ctx, tx.DB(), c); err != nil {
			return err
		}
		createdID = id
		return emit(ctx, tx, event.New(event.CollectionCreated, idKey(id), collectionPayload(c)))
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *collectionCommandsImpl) UpdateCap(ctx context.Context, actor common.Address, id, mintCap uint64) error {
	return uc.update(ctx, id, func(c *collection.Collection) error {
		return c.UpdateCap(actor, mintCap)
	})
}

func (uc *collectionCommandsImpl) UpdateStart(ctx context.Context, actor common.Address, id, start uint64) error {
	return uc.update(ctx, id, func(c *collection.Collection) error {
		return c.UpdateStart(actor, start)
	})
}

func (uc *collectionCommandsImpl) UpdateEnd(ctx context.Context, actor common.Address, id, end uint64) error {
	return uc.update(ctx, id, func(c *collection.Collection) error {
		return c.UpdateEnd(actor, end)
	})
}

func (uc *collectionCommandsImpl) SetUpgradeable(ctx context.Context, actor common.Address, id uint64, upgradeable bool) error {
	return uc.update(ctx, id, func(c *collection.Collection) error {
		return c.SetUpgradeable(actor, upgradeable)
	})
}

func (uc *collectionCommandsImpl) update(ctx context.Context, id uint64, mutate func(*collection.Collection) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Collections().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := mutate(c); err != nil {
			return err
		}
		if err := tx.Collections().Update(ctx, tx.DB(), c); err != nil {
			return err
		}
		return emit(ctx, tx, event.New(event.CollectionUpdated, idKey(id), collectionPayload(c)))
	})
}
