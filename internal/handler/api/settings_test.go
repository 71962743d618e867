//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"voucher-ledger/internal/domain/governance"
	"voucher-ledger/internal/handler/api"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/tests/common/httptest"
	commandsmock "voucher-ledger/tests/mock/commands"
	queriesmock "voucher-ledger/tests/mock/queries"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockGovernanceCommands
	q        *queriesmock.MockSettingsQueries
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	s.router = newEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockGovernanceCommands(s.mockCtrl)
	s.q = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	h := api.NewSettingsHandler(s.cmds, s.q, newMapper())

	s.router.GET("/settings", h.Get)
	s.router.PATCH("/settings", fakeAuth, h.Update)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func settingsView() *queries.SettingsView {
	return &queries.SettingsView{
		Owner:           testActor.Hex(),
		Verifier:        testActor.Hex(),
		FeeRecipient:    feeRecipient.Hex(),
		RoyaltyBps:      1000,
		ShirtFee:        milliEther(50),
		ShippingFee:     milliEther(10),
		ShirtRoyaltyBps: 2000,
	}
}

func (s *SettingsHandlerTestSuite) TestGet() {
	s.Run("success: 金額は wei と単位で返す", func() {
		s.q.EXPECT().Get(gomock.Any()).Return(settingsView(), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings", nil, "")

		var body resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(uint32(1000), body.RoyaltyBps)
		s.Equal("0.05", body.ShirtFee.Units)
		s.Equal("10000000000000000", body.ShippingFee.Wei)
	})

	s.Run("error: 404 before seeding", func() {
		s.q.EXPECT().Get(gomock.Any()).Return(nil, governance.ErrNotSeeded)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not been seeded")
	})
}

func (s *SettingsHandlerTestSuite) TestUpdate() {
	s.Run("success: 指定したフィールドだけ変更する", func() {
		s.cmds.EXPECT().Apply(gomock.Any(), testActor, gomock.Any()).
			DoAndReturn(func(_ any, _ common.Address, change governance.Change) error {
				s.Require().NotNil(change.FeeRecipient)
				s.Equal(artist, *change.FeeRecipient)
				s.Require().NotNil(change.RoyaltyBps)
				s.Equal(uint32(500), *change.RoyaltyBps)
				s.Nil(change.Owner)
				s.Nil(change.ShirtFee)
				return nil
			})
		s.q.EXPECT().Get(gomock.Any()).Return(settingsView(), nil)

		body := map[string]any{"fee_recipient": artist.Hex(), "royalty_bps": 500}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/settings", body, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a malformed address", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/settings", map[string]any{"owner": "0xnope"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 403 for non-owner", func() {
		s.cmds.EXPECT().Apply(gomock.Any(), testActor, gomock.Any()).Return(governance.ErrNotOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/settings", map[string]any{"royalty_bps": 1}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not the owner")
	})

	s.Run("error: 400 for an empty change", func() {
		s.cmds.EXPECT().Apply(gomock.Any(), testActor, governance.Change{}).Return(commands.ErrEmptyChange)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/settings", map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no settings to change")
	})
}
