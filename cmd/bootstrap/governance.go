package bootstrap

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/wei"
	"voucher-ledger/internal/usecase/commands"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/fx"
)

var ErrInvalidSeed = errs.New("invalid governance seed configuration")

var GovernanceModule = fx.Module("governance",
	fx.Invoke(SeedSettings),
)

// SeedParams builds the first settings row from the environment.
func SeedParams(cfg config.Config) (governance.Params, error) {
	addresses := map[string]string{
		"OWNER_ADDRESS":            cfg.Chain.OwnerAddress,
		"VERIFIER_ADDRESS":         cfg.Chain.VerifierAddress,
		"FEE_RECIPIENT":            cfg.Chain.FeeRecipient,
		"ROYALTY_RECIPIENT":        cfg.Chain.RoyaltyRecipient,
		"MEMBERSHIP_FEE_RECIPIENT": cfg.Chain.MembershipFeeRecipient,
	}
	for name, v := range addresses {
		if v != "" && !common.IsHexAddress(v) {
			return governance.Params{}, errs.Wrapf(ErrInvalidSeed, "%s is not an address: %q", name, v)
		}
	}

	shirtFee, err := wei.ParseUnits(cfg.Merch.ShirtFee, cfg.Chain.TokenDecimals)
	if err != nil {
		return governance.Params{}, errs.Mark(errs.Wrap(err, "MERCH_SHIRT_FEE"), ErrInvalidSeed)
	}
	shippingFee, err := wei.ParseUnits(cfg.Merch.ShippingFee, cfg.Chain.TokenDecimals)
	if err != nil {
		return governance.Params{}, errs.Mark(errs.Wrap(err, "MERCH_SHIPPING_FEE"), ErrInvalidSeed)
	}

	return governance.Params{
		Owner:                  common.HexToAddress(cfg.Chain.OwnerAddress),
		Verifier:               common.HexToAddress(cfg.Chain.VerifierAddress),
		FeeRecipient:           common.HexToAddress(cfg.Chain.FeeRecipient),
		RoyaltyRecipient:       common.HexToAddress(cfg.Chain.RoyaltyRecipient),
		RoyaltyBps:             cfg.Chain.RoyaltyBps,
		MembershipFeeRecipient: common.HexToAddress(cfg.Chain.MembershipFeeRecipient),
		ShirtFee:               shirtFee,
		ShippingFee:            shippingFee,
		ShirtRoyaltyBps:        cfg.Merch.ShirtRoyaltyBps,
	}, nil
}

// SeedSettings writes the configured settings once. Later starts keep
// whatever the owner has changed since.
func SeedSettings(lc fx.Lifecycle, cfg config.Config, cmds commands.GovernanceCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params, err := SeedParams(cfg)
			if err != nil {
				return err
			}
			seeded, err := cmds.Seed(ctx, params)
			if err != nil {
				return err
			}
			if seeded {
				logger.Info("governance settings seeded", "owner", params.Owner.Hex())
			}
			return nil
		},
	})
}
