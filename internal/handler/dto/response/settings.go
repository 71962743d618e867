package response

import "voucher-ledger/internal/usecase/queries"

type SettingsResponse struct {
	Owner                  string `json:"owner"`
	Verifier               string `json:"verifier"`
	FeeRecipient           string `json:"fee_recipient"`
	RoyaltyRecipient       string `json:"royalty_recipient"`
	RoyaltyBps             uint32 `json:"royalty_bps"`
	MembershipFeeRecipient string `json:"membership_fee_recipient"`
	ShirtFee               Amount `json:"shirt_fee"`
	ShippingFee            Amount `json:"shipping_fee"`
	ShirtRoyaltyBps        uint32 `json:"shirt_royalty_bps"`
}

func (m *Mapper) Settings(v *queries.SettingsView) (*SettingsResponse, error) {
	var res SettingsResponse
	if err := m.copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
