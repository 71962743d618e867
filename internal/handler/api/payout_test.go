//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"voucher-ledger/internal/handler/api"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/tests/common/httptest"
	queriesmock "voucher-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PayoutHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	q        *queriesmock.MockPayoutQueries
}

func (s *PayoutHandlerTestSuite) SetupTest() {
	s.router = newEngine()
	s.mockCtrl = gomock.NewController(s.T())
	s.q = queriesmock.NewMockPayoutQueries(s.mockCtrl)
	h := api.NewPayoutHandler(s.q, newMapper())

	s.router.GET("/accounts/:address/payouts", h.ListByAccount)
	s.router.GET("/payouts", h.ListByReference)
}

func (s *PayoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPayoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutHandlerTestSuite))
}

func payoutView(reference string) *queries.PayoutView {
	return &queries.PayoutView{
		ID:        uuid.New(),
		Reference: reference,
		Asset:     "0x0000000000000000000000000000000000000000",
		Payer:     testActor.Hex(),
		Payee:     feeRecipient.Hex(),
		Amount:    milliEther(10),
		Kind:      "platform",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *PayoutHandlerTestSuite) TestListByAccount() {
	s.Run("success: カーソルと件数を渡し次ページを返す", func() {
		view := payoutView("mint:1:1")
		s.q.EXPECT().ListByPayee(gomock.Any(), feeRecipient, &queries.Cursor{After: "abc"}, 1).
			Return([]*queries.PayoutView{view}, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/"+feeRecipient.Hex()+"/payouts?after=abc&limit=1", nil, "")

		var body resdto.PayoutPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(view.ID.String(), body.Items[0].ID)
		s.Equal("0.01", body.Items[0].Amount.Units)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: 400 for a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/"+feeRecipient.Hex()+"/payouts?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 for a broken cursor", func() {
		s.q.EXPECT().ListByPayee(gomock.Any(), feeRecipient, gomock.Any(), 0).Return(nil, nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/accounts/"+feeRecipient.Hex()+"/payouts?after=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *PayoutHandlerTestSuite) TestListByReference() {
	s.Run("success: returns every payout of the operation", func() {
		s.q.EXPECT().ListByReference(gomock.Any(), "mint:1:1").
			Return([]*queries.PayoutView{payoutView("mint:1:1"), payoutView("mint:1:1")}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts?reference=mint:1:1", nil, "")

		var body []resdto.PayoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: reference は必須", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Reference is required")
	})
}
