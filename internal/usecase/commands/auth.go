package commands

import (
	"context"
	"log/slog"
	"time"

	"voucher-ledger/internal/domain/auth"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/jwt"
	"voucher-ledger/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrChallengeExpired = errs.Mark(errs.New("login challenge expired"), errs.ErrExpired)
	ErrTokenGeneration  = errs.New("token generation failed")
	ErrTokenValidation  = errs.Mark(errs.New("token validation failed"), errs.ErrUnauthorized)
)

type LoginResult struct {
	Address   common.Address
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type IssuedChallenge struct {
	Challenge auth.Challenge
	Message   string
}

// AuthSettings are the login knobs taken from configuration.
type AuthSettings struct {
	Domain       string
	ChallengeTTL time.Duration
}

type AuthCommands interface {
	IssueChallenge(ctx context.Context, address common.Address) (*IssuedChallenge, error)
	Login(ctx context.Context, address common.Address, signature []byte) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	challenges ChallengeStore
	jwtService *jwt.Service
	settings   AuthSettings
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	challenges ChallengeStore,
	jwtService *jwt.Service,
	settings AuthSettings,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		challenges: challenges,
		jwtService: jwtService,
		settings:   settings,
		clock:      clk,
	}
}

func (a *authCommandsImpl) IssueChallenge(ctx context.Context, address common.Address) (*IssuedChallenge, error) {
	c, err := auth.NewChallenge(address, a.clock.Now(), a.settings.ChallengeTTL)
	if err != nil {
		return nil, err
	}
	if err := a.challenges.Put(ctx, c); err != nil {
		return nil, err
	}
	return &IssuedChallenge{Challenge: c, Message: c.Message(a.settings.Domain)}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, address common.Address, signature []byte) (*LoginResult, error) {
	c, err := a.challenges.Take(ctx, address)
	if err != nil {
		return nil, err
	}
	if c.ExpiredAt(a.clock.Now()) {
		return nil, ErrChallengeExpired
	}

	signer, err := voucher.RecoverTextSigner([]byte(c.Message(a.settings.Domain)), signature)
	if err != nil {
		return nil, err
	}
	if signer != address {
		return nil, auth.ErrSignerMismatch
	}

	pair, err := a.issue(address)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().RecordLogin(ctx, tx.DB(), address)
	})
	if err != nil {
		// Continue without failing - last login is not critical
		slog.Warn("failed to record login", "address", address.Hex(), "error", err.Error())
	}

	return &LoginResult{Address: address, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(_ context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}
	return a.issue(claims.Actor())
}

func (a *authCommandsImpl) issue(address common.Address) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(address)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(address)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
