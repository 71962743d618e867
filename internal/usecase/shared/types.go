package shared

import (
	"voucher-ledger/internal/domain/fee"

	"github.com/google/uuid"
)

// Payout is a recorded value transfer. Reference names the operation that
// caused it ("mint:1:3", "subscription:0x...:2").
type Payout struct {
	ID        uuid.UUID
	Reference string
	Transfer  fee.Transfer
}

func NewPayout(reference string, t fee.Transfer) Payout {
	return Payout{ID: uuid.New(), Reference: reference, Transfer: t}
}
