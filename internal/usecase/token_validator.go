package usecase

import (
	"voucher-ledger/internal/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (common.Address, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts access tokens only; a refresh token is not a session.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (common.Address, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return common.Address{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return common.Address{}, jwt.ErrInvalidToken
	}
	return claims.Actor(), nil
}
