package collection

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

type Token struct {
	collectionID uint64
	tokenID      uint64
	owner        common.Address
	uri          string
	layerHash    []byte
}

func NewToken(collectionID, tokenID uint64, owner common.Address, uri string, layerHash []byte) (*Token, error) {
	if len(layerHash) == 0 {
		return nil, ErrEmptyLayer
	}
	return &Token{
		collectionID: collectionID,
		tokenID:      tokenID,
		owner:        owner,
		uri:          uri,
		layerHash:    bytes.Clone(layerHash),
	}, nil
}

func ReconstructToken(collectionID, tokenID uint64, owner common.Address, uri string, layerHash []byte) *Token {
	return &Token{
		collectionID: collectionID,
		tokenID:      tokenID,
		owner:        owner,
		uri:          uri,
		layerHash:    layerHash,
	}
}

func (t *Token) CollectionID() uint64  { return t.collectionID }
func (t *Token) TokenID() uint64       { return t.tokenID }
func (t *Token) Owner() common.Address { return t.owner }
func (t *Token) URI() string           { return t.uri }
func (t *Token) LayerHash() []byte     { return bytes.Clone(t.layerHash) }

func (t *Token) RequireOwner(actor common.Address) error {
	if actor != t.owner {
		return ErrNotTokenOwner
	}
	return nil
}

// Relayer swaps the layer combination; oldLayer must be the current one.
func (t *Token) Relayer(oldLayer, newLayer []byte, uri string) error {
	if !bytes.Equal(t.layerHash, oldLayer) {
		return ErrLayerMismatch
	}
	if len(newLayer) == 0 {
		return ErrEmptyLayer
	}
	t.layerHash = bytes.Clone(newLayer)
	t.uri = uri
	return nil
}
