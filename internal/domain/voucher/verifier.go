package voucher

import (
	"math/big"

	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidSignature = errs.Mark(errs.New("voucher: invalid signature"), errs.ErrInvalidSignature)
	ErrExpired          = errs.Mark(errs.New("voucher: expired"), errs.ErrExpired)
)

// Verifier checks vouchers against one trusted authority on one chain.
type Verifier struct {
	chainID   *big.Int
	authority common.Address
}

func NewVerifier(chainID *big.Int, authority common.Address) *Verifier {
	return &Verifier{chainID: new(big.Int).Set(chainID), authority: authority}
}

func (v *Verifier) Authority() common.Address { return v.authority }

func (v *Verifier) ChainID() *big.Int { return new(big.Int).Set(v.chainID) }

// Verify recovers the signer of vc and checks it against the authority, then
// the expiry (inclusive). It returns the voucher digest for callers that key
// on it.
func (v *Verifier) Verify(vc Voucher, now uint64) ([]byte, error) {
	digest, err := Digest(vc, v.chainID)
	if err != nil {
		return nil, err
	}
	signer, err := RecoverTextSigner(digest, vc.signature())
	if err != nil {
		return nil, err
	}
	if signer != v.authority {
		return nil, ErrInvalidSignature
	}
	if now > vc.expiresAt() {
		return nil, ErrExpired
	}
	return digest, nil
}
