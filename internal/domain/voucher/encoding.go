package voucher

import (
	"math/big"

	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

var (
	uint256Type = mustType("uint256")
	addressType = mustType("address")
	stringType  = mustType("string")
	bytesType   = mustType("bytes")
)

// Field order is part of the signed message; never reorder.
var (
	mintArgs = arguments(
		uint256Type, // chain id
		uint256Type, // collection id
		addressType, // sender
		uint256Type, // fee
		stringType,  // uri
		bytesType,   // layer hash
		uint256Type, // expiry
	)
	collectionArgs = arguments(
		uint256Type, // chain id
		uint256Type, // key id
		addressType, // sender
		stringType,  // name
		stringType,  // symbol
		stringType,  // base uri
		addressType, // payment token
		uint256Type, // mint cap
		uint256Type, // start time
		uint256Type, // end time
		uint256Type, // expiry
	)
	upgradeArgs = arguments(
		uint256Type, // chain id
		uint256Type, // collection id
		uint256Type, // token id
		addressType, // sender
		uint256Type, // fee
		stringType,  // uri
		bytesType,   // old layer hash
		bytesType,   // new layer hash
		uint256Type, // expiry
	)
)

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic("voucher: bad abi type " + t + ": " + err.Error())
	}
	return typ
}

func arguments(types ...abi.Type) abi.Arguments {
	args := make(abi.Arguments, len(types))
	for i, t := range types {
		args[i] = abi.Argument{Type: t}
	}
	return args
}

// Digest is keccak256 of the ABI-encoded fields, the 32 bytes the authority signs.
func Digest(v Voucher, chainID *big.Int) ([]byte, error) {
	payload, err := v.encode(chainID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "encode voucher"), errs.ErrInvalidParameters)
	}
	return keccak256(payload), nil
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// RecoverTextSigner returns the address that personal-signed msg
// ("\x19Ethereum Signed Message:\n" + len + msg).
func RecoverTextSigner(msg, sig []byte) (common.Address, error) {
	return recoverSigner(accounts.TextHash(msg), sig)
}

func recoverSigner(hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}
	if normalized[crypto.RecoveryIDOffset] > 1 {
		return common.Address{}, ErrInvalidSignature
	}
	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, errs.Wrap(ErrInvalidSignature, err.Error())
	}
	return crypto.PubkeyToAddress(*pub), nil
}
