package response

import (
	"time"

	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
)

type ChallengeResponse struct {
	Address   string    `json:"address"`
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromIssuedChallenge(c *commands.IssuedChallenge) *ChallengeResponse {
	return &ChallengeResponse{
		Address:   c.Challenge.Address.Hex(),
		Nonce:     c.Challenge.Nonce,
		Message:   c.Message,
		IssuedAt:  c.Challenge.IssuedAt,
		ExpiresAt: c.Challenge.ExpiresAt,
	}
}

type LoginResponse struct {
	Address     string `json:"address"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AccountResponse struct {
	Address     string     `json:"address"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func FromAccountView(v *queries.AccountView) *AccountResponse {
	return &AccountResponse{
		Address:     v.Address,
		CreatedAt:   v.CreatedAt,
		LastLoginAt: v.LastLoginAt,
	}
}
