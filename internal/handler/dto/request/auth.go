package request

import (
	"github.com/ethereum/go-ethereum/common"
)

type ChallengeRequest struct {
	Address string `json:"address" binding:"required"`
}

func (r *ChallengeRequest) ToAddress() (common.Address, error) {
	return ParseAddress(r.Address)
}

type LoginRequest struct {
	Address   string `json:"address" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

func (r *LoginRequest) ToCommand() (common.Address, []byte, error) {
	address, err := ParseAddress(r.Address)
	if err != nil {
		return common.Address{}, nil, err
	}
	sig, err := ParseHex(r.Signature)
	if err != nil {
		return common.Address{}, nil, err
	}
	return address, sig, nil
}

// RefreshRequest is optional when the refresh cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
