//go:build unit || e2e

package builder

import (
	reqdto "voucher-ledger/internal/handler/dto/request"
	"voucher-ledger/tests/common/signer"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type AuthBuilder struct {
	Wallet *signer.Wallet
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{Wallet: signer.NewWallet()}
}

func (a *AuthBuilder) WithWallet(w *signer.Wallet) *AuthBuilder {
	a.Wallet = w
	return a
}

func (a *AuthBuilder) ChallengeDTO() reqdto.ChallengeRequest {
	return reqdto.ChallengeRequest{Address: a.Wallet.Address().Hex()}
}

// LoginDTO personal-signs the challenge message returned by the server.
func (a *AuthBuilder) LoginDTO(message string) reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Address:   a.Wallet.Address().Hex(),
		Signature: hexutil.Encode(a.Wallet.SignText([]byte(message))),
	}
}
