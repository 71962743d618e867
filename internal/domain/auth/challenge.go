package auth

import (
	"fmt"
	"strings"
	"time"

	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

var (
	ErrChallengeNotFound = errs.Mark(errs.New("no pending login challenge"), errs.ErrUnauthorized)
	ErrSignerMismatch    = errs.Mark(errs.New("challenge was not signed by the address"), errs.ErrInvalidSignature)
	ErrZeroAddress       = errs.Mark(errs.New("address must not be zero"), errs.ErrInvalidParameters)
)

// Challenge is a one-time login message. The wallet personal-signs Message
// and the signature is checked against Address.
type Challenge struct {
	Address   common.Address
	Nonce     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func NewChallenge(address common.Address, now time.Time, ttl time.Duration) (Challenge, error) {
	if address == (common.Address{}) {
		return Challenge{}, ErrZeroAddress
	}
	now = now.UTC().Truncate(time.Second)
	return Challenge{
		Address:   address,
		Nonce:     uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

func (c Challenge) Message(domain string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s wants you to sign in with your account:\n", domain)
	b.WriteString(c.Address.Hex())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Nonce: %s\n", c.Nonce)
	fmt.Fprintf(&b, "Issued At: %s\n", c.IssuedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Expiration Time: %s", c.ExpiresAt.Format(time.RFC3339))
	return b.String()
}

func (c Challenge) ExpiredAt(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
