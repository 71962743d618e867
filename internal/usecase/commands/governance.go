package commands

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/common"
)

var ErrEmptyChange = errs.Mark(errs.New("no settings to change"), errs.ErrInvalidParameters)

type GovernanceCommands interface {
	// Seed writes the initial settings unless they already exist.
	Seed(ctx context.Context, params governance.Params) (bool, error)
	Apply(ctx context.Context, actor common.Address, change governance.Change) error
}

type governanceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewGovernanceCommands(uow shared.UnitOfWork) GovernanceCommands {
	return &governanceCommandsImpl{uow: uow}
}

type settingsEvent struct {
	Owner                  string `json:"owner"`
	Verifier               string `json:"verifier"`
	FeeRecipient           string `json:"fee_recipient"`
	RoyaltyRecipient       string `json:"royalty_recipient"`
	RoyaltyBps             uint32 `json:"royalty_bps"`
	MembershipFeeRecipient string `json:"membership_fee_recipient"`
	ShirtFee               string `json:"shirt_fee"`
	ShippingFee            string `json:"shipping_fee"`
	ShirtRoyaltyBps        uint32 `json:"shirt_royalty_bps"`
}

func settingsPayload(s *governance.Settings) settingsEvent {
	return settingsEvent{
		Owner:                  s.Owner().Hex(),
		Verifier:               s.Verifier().Hex(),
		FeeRecipient:           s.FeeRecipient().Hex(),
		RoyaltyRecipient:       s.RoyaltyRecipient().Hex(),
		RoyaltyBps:             s.RoyaltyBps(),
		MembershipFeeRecipient: s.MembershipFeeRecipient().Hex(),
		ShirtFee:               s.ShirtFee().String(),
		ShippingFee:            s.ShippingFee().String(),
		ShirtRoyaltyBps:        s.ShirtRoyaltyBps(),
	}
}

func (uc *governanceCommandsImpl) Seed(ctx context.Context, params governance.Params) (bool, error) {
	s, err := governance.NewSettings(params)
	if err != nil {
		return false, err
	}

	var written bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Settings().InsertIfAbsent(ctx, tx.DB(), s)
		if err != nil {
			return err
		}
		written = ok
		if !ok {
			return nil
		}
		return emit(ctx, tx, event.New(event.SettingsChanged, "settings", settingsPayload(s)))
	})
	if err != nil {
		return false, err
	}
	if written {
		slog.Info("governance settings seeded", "owner", s.Owner().Hex(), "verifier", s.Verifier().Hex())
	}
	return written, nil
}

func (uc *governanceCommandsImpl) Apply(ctx context.Context, actor common.Address, change governance.Change) error {
	if change.Empty() {
		return ErrEmptyChange
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().GetForUpdate(ctx, tx.DB())
		if err != nil {
			return err
		}
		if err := s.Apply(actor, change); err != nil {
			return err
		}
		if err := tx.Settings().Update(ctx, tx.DB(), s); err != nil {
			return err
		}
		return emit(ctx, tx, event.New(event.SettingsChanged, "settings", settingsPayload(s)))
	})
}
