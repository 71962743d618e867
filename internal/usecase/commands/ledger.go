package commands

import (
	"context"
	"strconv"

	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/usecase/shared"
)

type payoutRecorded struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Asset     string `json:"asset"`
	Payer     string `json:"payer"`
	Payee     string `json:"payee"`
	Amount    string `json:"amount"`
	Kind      string `json:"kind"`
}

// book records every transfer of plan as a payout row and a payout.recorded event.
func book(ctx context.Context, tx shared.Tx, reference string, plan fee.Plan) error {
	for _, t := range plan {
		p := shared.NewPayout(reference, t)
		if err := tx.Payouts().Record(ctx, tx.DB(), p); err != nil {
			return err
		}
		payload := payoutRecorded{
			ID:        p.ID.String(),
			Reference: reference,
			Asset:     t.Asset.Hex(),
			Payer:     t.Payer.Hex(),
			Payee:     t.Payee.Hex(),
			Amount:    t.Amount.String(),
			Kind:      t.Kind.String(),
		}
		if err := emit(ctx, tx, event.New(event.PayoutRecorded, t.Payee.Hex(), payload)); err != nil {
			return err
		}
	}
	return nil
}

func emit(ctx context.Context, tx shared.Tx, e event.Event) error {
	return tx.Outbox().Append(ctx, tx.DB(), e)
}

func idKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func tokenReference(collectionID, tokenID uint64) string {
	return "collection:" + idKey(collectionID) + ":token:" + idKey(tokenID)
}
