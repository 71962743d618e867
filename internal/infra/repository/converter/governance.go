package converter

import (
	"voucher-ledger/internal/domain/governance"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

func SettingsToInsertParams(s *governance.Settings) sqlc.InsertSettingsIfAbsentParams {
	return sqlc.InsertSettingsIfAbsentParams(SettingsToUpdateParams(s))
}

func SettingsToUpdateParams(s *governance.Settings) sqlc.UpdateSettingsParams {
	return sqlc.UpdateSettingsParams{
		Owner:                  pgconv.AddressToText(s.Owner()),
		Verifier:               pgconv.AddressToText(s.Verifier()),
		FeeRecipient:           pgconv.AddressToText(s.FeeRecipient()),
		RoyaltyRecipient:       pgconv.AddressToText(s.RoyaltyRecipient()),
		RoyaltyBps:             int32(s.RoyaltyBps()),
		MembershipFeeRecipient: pgconv.AddressToText(s.MembershipFeeRecipient()),
		ShirtFee:               pgconv.BigIntToNumeric(s.ShirtFee()),
		ShippingFee:            pgconv.BigIntToNumeric(s.ShippingFee()),
		ShirtRoyaltyBps:        int32(s.ShirtRoyaltyBps()),
	}
}

func SettingsFromInfra(row sqlc.Settings) (*governance.Settings, error) {
	shirtFee, err := pgconv.NumericToBigInt(row.ShirtFee)
	if err != nil {
		return nil, err
	}
	shippingFee, err := pgconv.NumericToBigInt(row.ShippingFee)
	if err != nil {
		return nil, err
	}
	return governance.ReconstructSettings(governance.Params{
		Owner:                  pgconv.TextToAddress(row.Owner),
		Verifier:               pgconv.TextToAddress(row.Verifier),
		FeeRecipient:           pgconv.TextToAddress(row.FeeRecipient),
		RoyaltyRecipient:       pgconv.TextToAddress(row.RoyaltyRecipient),
		RoyaltyBps:             uint32(row.RoyaltyBps),
		MembershipFeeRecipient: pgconv.TextToAddress(row.MembershipFeeRecipient),
		ShirtFee:               shirtFee,
		ShippingFee:            shippingFee,
		ShirtRoyaltyBps:        uint32(row.ShirtRoyaltyBps),
	}), nil
}
