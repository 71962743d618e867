//go:build e2e

package ledger_test

import (
	"fmt"
	"math/big"
	"net/http"
	"testing"
	"time"

	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/voucher"
	reqdto "voucher-ledger/internal/handler/dto/request"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/tests/common/authtest"
	"voucher-ledger/tests/common/dbtest"
	"voucher-ledger/tests/common/httptest"
	"voucher-ledger/tests/common/signer"
	"voucher-ledger/tests/e2e"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ledgerSuite struct {
	e2e.SharedSuite
	authority *signer.Wallet
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.authority = signer.Authority()
}

var oneEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

func (s *ledgerSuite) now() uint64 {
	return uint64(time.Now().Unix())
}

func (s *ledgerSuite) collectionRequest(artist *signer.Wallet, keyID uint64) reqdto.CreateCollectionRequest {
	v := s.authority.SignCollection(voucher.Collection{
		KeyID:     keyID,
		Sender:    artist.Address(),
		Name:      "Genesis",
		Symbol:    "GEN",
		BaseURI:   "ipfs://genesis/",
		MintCap:   2,
		StartTime: s.now() - 60,
		Expiry:    s.now() + 3600,
	}, s.Config.Chain.ChainID)

	return reqdto.CreateCollectionRequest{
		KeyID:     v.KeyID,
		Name:      v.Name,
		Symbol:    v.Symbol,
		BaseURI:   v.BaseURI,
		MintCap:   v.MintCap,
		StartTime: v.StartTime,
		Expiry:    v.Expiry,
		Signature: hexutil.Encode(v.Signature),
	}
}

func (s *ledgerSuite) mintRequest(buyer *signer.Wallet, collectionID uint64, layer string, paid *big.Int) reqdto.MintRequest {
	v := s.authority.SignMint(voucher.Mint{
		CollectionID: collectionID,
		Sender:       buyer.Address(),
		Fee:          oneEther,
		URI:          "ipfs://genesis/" + layer,
		LayerHash:    crypto.Keccak256([]byte(layer)),
		Expiry:       s.now() + 3600,
	}, s.Config.Chain.ChainID)

	return reqdto.MintRequest{
		URI:       v.URI,
		Fee:       v.Fee.String(),
		LayerHash: hexutil.Encode(v.LayerHash),
		Expiry:    v.Expiry,
		Signature: hexutil.Encode(v.Signature),
		Paid:      paid.String(),
	}
}

func (s *ledgerSuite) createCollection(t *testing.T, artist *signer.Wallet) resdto.CollectionResponse {
	session := authtest.Login(t, s.Router, artist)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/collections", s.collectionRequest(artist, 1), session.AccessToken)
	var res resdto.CollectionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *ledgerSuite) TestCollectionVoucher() {
	s.Run("署名済みバウチャーでコレクションを作成できる", func() {
		t := s.T()
		artist := signer.NewWallet()

		created := s.createCollection(t, artist)
		require.Equal(t, artist.Address().Hex(), created.Artist)
		require.Equal(t, uint64(2), created.MintCap)
		require.Zero(t, created.TotalMinted)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/artists/%s/collections", artist.Address().Hex()), nil, "")
		var list []resdto.CollectionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, created.ID, list[0].ID)
	})

	s.Run("同じバウチャーは二度使えない", func() {
		t := s.T()
		artist := signer.NewWallet()
		session := authtest.Login(t, s.Router, artist)
		req := s.collectionRequest(artist, 7)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/collections", req, session.AccessToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/collections", req, session.AccessToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "collections", ""))
	})

	s.Run("他人宛てのバウチャーは署名エラー", func() {
		t := s.T()
		session := authtest.Login(t, s.Router, signer.NewWallet())
		req := s.collectionRequest(signer.NewWallet(), 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/collections", req, session.AccessToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Zero(t, dbtest.CountRows(t, s.DB, "collections", ""))
	})
}

func (s *ledgerSuite) TestMint() {
	s.Run("ミントで支払いが分配されイベントが発行される", func() {
		t := s.T()
		created := s.createCollection(t, signer.NewWallet())
		buyer := signer.NewWallet()
		session := authtest.Login(t, s.Router, buyer)

		url := fmt.Sprintf("/api/collections/%d/mints", created.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, s.mintRequest(buyer, created.ID, "layer-1", oneEther), session.AccessToken)
		var minted resdto.MintResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &minted)
		require.Equal(t, created.ID, minted.CollectionID)
		require.NotEmpty(t, minted.Transfers)

		reference := fmt.Sprintf("collection:%d:token:%d", minted.CollectionID, minted.TokenID)
		require.Equal(t, oneEther.String(), dbtest.PayoutSum(t, s.DB, reference))

		kinds := dbtest.OutboxKinds(t, s.DB)
		require.Contains(t, kinds, event.CollectionCreated.String())
		require.Contains(t, kinds, event.NFTMinted.String())
		require.Contains(t, kinds, event.PayoutRecorded.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/layers/"+hexutil.Encode(crypto.Keccak256([]byte("layer-1"))), nil, "")
		var layer resdto.LayerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &layer)
		require.True(t, layer.Minted)
		require.Equal(t, buyer.Address().Hex(), layer.Consumer)

		// the relay publishes to the log when no brokers are configured
		require.Eventually(t, func() bool {
			return dbtest.CountRows(t, s.DB, "outbox_events", "status = 'pending'") == 0
		}, 5*time.Second, 100*time.Millisecond)
	})

	s.Run("同じレイヤーは二度ミントできない", func() {
		t := s.T()
		created := s.createCollection(t, signer.NewWallet())
		buyer := signer.NewWallet()
		session := authtest.Login(t, s.Router, buyer)
		url := fmt.Sprintf("/api/collections/%d/mints", created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, s.mintRequest(buyer, created.ID, "layer-1", oneEther), session.AccessToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, s.mintRequest(buyer, created.ID, "layer-1", oneEther), session.AccessToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "nfts", ""))
	})

	s.Run("支払額が違えば何も記録されない", func() {
		t := s.T()
		created := s.createCollection(t, signer.NewWallet())
		buyer := signer.NewWallet()
		session := authtest.Login(t, s.Router, buyer)
		url := fmt.Sprintf("/api/collections/%d/mints", created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, s.mintRequest(buyer, created.ID, "layer-2", big.NewInt(1)), session.AccessToken)
		require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())
		require.Zero(t, dbtest.CountRows(t, s.DB, "nfts", ""))
		require.Zero(t, dbtest.CountRows(t, s.DB, "payouts", ""))
		require.Zero(t, dbtest.CountRows(t, s.DB, "uniqueness_keys", "domain <> 'collection_voucher'"))
	})

	s.Run("上限に達したら売り切れ", func() {
		t := s.T()
		created := s.createCollection(t, signer.NewWallet())
		buyer := signer.NewWallet()
		session := authtest.Login(t, s.Router, buyer)
		url := fmt.Sprintf("/api/collections/%d/mints", created.ID)

		for i := range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, s.mintRequest(buyer, created.ID, fmt.Sprintf("layer-%d", i), oneEther), session.AccessToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, s.mintRequest(buyer, created.ID, "layer-9", oneEther), session.AccessToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
