package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"voucher-ledger/internal/domain/auth"
	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

const challengeKeyPrefix = "auth:challenge:"

type challengeEnvelope struct {
	Nonce     string    `json:"nonce"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ChallengeStore keeps at most one pending login challenge per address.
type ChallengeStore struct {
	client *redis.Client
}

func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{client: client}
}

func (s *ChallengeStore) Put(ctx context.Context, c auth.Challenge) error {
	raw, err := json.Marshal(challengeEnvelope{
		Nonce:     c.Nonce,
		IssuedAt:  c.IssuedAt,
		ExpiresAt: c.ExpiresAt,
	})
	if err != nil {
		return errs.Wrap(err, "encode challenge")
	}
	ttl := time.Until(c.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := s.client.Set(ctx, challengeKey(c.Address), raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "store challenge")
	}
	return nil
}

// Take returns and deletes the pending challenge, so each one is usable once.
func (s *ChallengeStore) Take(ctx context.Context, address common.Address) (auth.Challenge, error) {
	raw, err := s.client.GetDel(ctx, challengeKey(address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Challenge{}, auth.ErrChallengeNotFound
		}
		return auth.Challenge{}, errs.Wrap(err, "take challenge")
	}
	var env challengeEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return auth.Challenge{}, errs.Wrap(err, "decode challenge")
	}
	return auth.Challenge{
		Address:   address,
		Nonce:     env.Nonce,
		IssuedAt:  env.IssuedAt,
		ExpiresAt: env.ExpiresAt,
	}, nil
}

func challengeKey(address common.Address) string {
	return challengeKeyPrefix + address.Hex()
}
