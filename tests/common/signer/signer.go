//go:build unit || e2e

package signer

import (
	"crypto/ecdsa"
	"math/big"

	"voucher-ledger/internal/domain/voucher"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// AuthorityKey is hardhat account #0, the authority in config.NewTestConfig.
const AuthorityKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const DefaultChainID = 31337

type Wallet struct {
	key *ecdsa.PrivateKey
}

func NewWallet() *Wallet {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return &Wallet{key: key}
}

func FromHex(hexKey string) *Wallet {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		panic(err)
	}
	return &Wallet{key: key}
}

func Authority() *Wallet {
	return FromHex(AuthorityKey)
}

func (w *Wallet) Address() common.Address {
	return crypto.PubkeyToAddress(w.key.PublicKey)
}

// SignText personal-signs msg, v in {27, 28} like wallets do.
func (w *Wallet) SignText(msg []byte) []byte {
	sig, err := crypto.Sign(accounts.TextHash(msg), w.key)
	if err != nil {
		panic(err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig
}

func (w *Wallet) sign(v voucher.Voucher, chainID int64) []byte {
	digest, err := voucher.Digest(v, big.NewInt(chainID))
	if err != nil {
		panic(err)
	}
	return w.SignText(digest)
}

func (w *Wallet) SignMint(m voucher.Mint, chainID int64) voucher.Mint {
	m.Signature = w.sign(m, chainID)
	return m
}

func (w *Wallet) SignCollection(c voucher.Collection, chainID int64) voucher.Collection {
	c.Signature = w.sign(c, chainID)
	return c
}

func (w *Wallet) SignUpgrade(u voucher.Upgrade, chainID int64) voucher.Upgrade {
	u.Signature = w.sign(u, chainID)
	return u
}
