package commands

import (
	"context"
	"math/big"

	"voucher-ledger/internal/domain/auth"
	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/domain/voucher"

	"github.com/ethereum/go-ethereum/common"
)

// Chain identifies the deployment every voucher is signed for.
type Chain struct {
	ID *big.Int
}

func (c Chain) verifier(s *governance.Settings) *voucher.Verifier {
	return voucher.NewVerifier(c.ID, s.Verifier())
}

type ChallengeStore interface {
	Put(ctx context.Context, c auth.Challenge) error
	// Take fails with auth.ErrChallengeNotFound when nothing is pending.
	Take(ctx context.Context, address common.Address) (auth.Challenge, error)
}
