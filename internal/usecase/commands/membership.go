package commands

import (
	"context"
	"math/big"
	"strconv"

	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/domain/membership"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/common"
)

type SubscribeRequest struct {
	PackageID uint64
	Quantity  uint64
	Paid      *big.Int
}

type SubscribeResult struct {
	PackageID      uint64
	ExpirationTime uint64
	Transfers      fee.Plan
}

type MembershipCommands interface {
	AddPackage(ctx context.Context, actor common.Address, id uint64, params membership.PackageParams) error
	UpdatePackage(ctx context.Context, actor common.Address, id uint64, params membership.PackageParams) error
	DeactivatePackage(ctx context.Context, actor common.Address, id uint64) error
	Subscribe(ctx context.Context, actor common.Address, req SubscribeRequest) (*SubscribeResult, error)
}

type membershipCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMembershipCommands(uow shared.UnitOfWork, clk clock.Clock) MembershipCommands {
	return &membershipCommandsImpl{uow: uow, clock: clk}
}

type packageEvent struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	PaymentToken string `json:"payment_token"`
	MaxSold      uint64 `json:"max_sold"`
	Sold         uint64 `json:"sold"`
	StartTime    uint64 `json:"start_time"`
	EndTime      uint64 `json:"end_time"`
	Duration     uint64 `json:"duration"`
	Active       bool   `json:"active"`
}

func packagePayload(p *membership.Package) packageEvent {
	return packageEvent{
		ID:           p.ID(),
		Name:         p.Name(),
		Price:        p.Price().String(),
		PaymentToken: p.PaymentToken().Hex(),
		MaxSold:      p.MaxSold(),
		Sold:         p.Sold(),
		StartTime:    p.StartTime(),
		EndTime:      p.EndTime(),
		Duration:     p.Duration(),
		Active:       p.Active(),
	}
}

type subscribedEvent struct {
	Subscriber     string `json:"subscriber"`
	PackageID      uint64 `json:"package_id"`
	Quantity       uint64 `json:"quantity"`
	ExpirationTime uint64 `json:"expiration_time"`
	Paid           string `json:"paid"`
}

func (uc *membershipCommandsImpl) AddPackage(ctx context.Context, actor common.Address, id uint64, params membership.PackageParams) error {
	now := clock.Unix(uc.clock)
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireSettingsOwner(ctx, tx, actor); err != nil {
			return err
		}
		p, err := membership.NewPackage(id, params, now)
		if err != nil {
			return err
		}
		if err := tx.Packages().Create(ctx, tx.DB(), p); err != nil {
			return err
		}
		return emit(ctx, tx, event.New(event.PackageAdded, idKey(id), packagePayload(p)))
	})
}

func (uc *membershipCommandsImpl) UpdatePackage(ctx context.Context, actor common.Address, id uint64, params membership.PackageParams) error {
	now := clock.Unix(uc.clock)
	return uc.updatePackage(ctx, actor, id, func(p *membership.Package) error {
		return p.Update(params, now)
	})
}

func (uc *membershipCommandsImpl) DeactivatePackage(ctx context.Context, actor common.Address, id uint64) error {
	return uc.updatePackage(ctx, actor, id, func(p *membership.Package) error {
		p.Deactivate()
		return nil
	})
}

func (uc *membershipCommandsImpl) updatePackage(ctx context.Context, actor common.Address, id uint64, mutate func(*membership.Package) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireSettingsOwner(ctx, tx, actor); err != nil {
			return err
		}
		p, err := tx.Packages().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := mutate(p); err != nil {
			return err
		}
		if err := tx.Packages().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		return emit(ctx, tx, event.New(event.PackageUpdated, idKey(id), packagePayload(p)))
	})
}

// Subscribe buys quantity periods of a package. The full price goes to the
// membership fee recipient.
func (uc *membershipCommandsImpl) Subscribe(ctx context.Context, actor common.Address, req SubscribeRequest) (*SubscribeResult, error) {
	now := clock.Unix(uc.clock)

	var result *SubscribeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}
		p, err := tx.Packages().FindForUpdate(ctx, tx.DB(), req.PackageID)
		if err != nil {
			return err
		}
		if err := p.Sell(req.Quantity, req.Paid, now); err != nil {
			return err
		}

		sub, err := tx.Subscriptions().FindOrNew(ctx, tx.DB(), actor, p.ID())
		if err != nil {
			return err
		}
		if err := sub.Extend(req.Quantity, p.Duration(), now); err != nil {
			return err
		}

		if err := tx.Packages().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		if err := tx.Subscriptions().Save(ctx, tx.DB(), sub); err != nil {
			return err
		}

		var plan fee.Plan
		plan = plan.Add(fee.Transfer{
			Asset:  p.PaymentToken(),
			Payer:  actor,
			Payee:  settings.MembershipFeeRecipient(),
			Amount: req.Paid,
			Kind:   fee.PayoutMembership,
		})
		reference := "subscription:" + actor.Hex() + ":" + idKey(p.ID()) + ":" + strconv.FormatUint(sub.ExpirationTime(), 10)
		if err := book(ctx, tx, reference, plan); err != nil {
			return err
		}

		result = &SubscribeResult{PackageID: p.ID(), ExpirationTime: sub.ExpirationTime(), Transfers: plan}
		return emit(ctx, tx, event.New(event.MembershipSubscribed, actor.Hex(), subscribedEvent{
			Subscriber:     actor.Hex(),
			PackageID:      p.ID(),
			Quantity:       req.Quantity,
			ExpirationTime: sub.ExpirationTime(),
			Paid:           req.Paid.String(),
		}))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
