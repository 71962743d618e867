package api

import (
	"net/http"
	"strconv"

	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidLimit     = errs.Mark(errs.New("invalid limit"), errs.ErrInvalidParameters)
	ErrMissingReference = errs.Mark(errs.New("reference is required"), errs.ErrInvalidParameters)
)

type PayoutHandler struct {
	q      queries.PayoutQueries
	mapper *resdto.Mapper
}

func NewPayoutHandler(q queries.PayoutQueries, mapper *resdto.Mapper) *PayoutHandler {
	return &PayoutHandler{q: q, mapper: mapper}
}

// @Summary Payout history
// @Description Payouts received by an account, newest first
// @Tags payouts
// @Produce json
// @Param address path string true "Payee"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PayoutPageResponse
// @Failure 400 {object} httperr.Response
// @Router /accounts/{address}/payouts [get]
func (h *PayoutHandler) ListByAccount(c *gin.Context) {
	payee, ok := addressParam(c, "address")
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, ErrInvalidLimit, "Invalid limit", nil)
			return
		}
		limit = v
	}
	cursor := &queries.Cursor{After: c.Query("after")}

	views, next, err := h.q.ListByPayee(c.Request.Context(), payee, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list payouts")
		return
	}
	res, err := h.mapper.PayoutPage(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Payouts of one operation
// @Tags payouts
// @Produce json
// @Param reference query string true "Operation reference, e.g. mint:1:3"
// @Success 200 {array} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Router /payouts [get]
func (h *PayoutHandler) ListByReference(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, ErrMissingReference, "Reference is required", nil)
		return
	}
	views, err := h.q.ListByReference(c.Request.Context(), reference)
	if err != nil {
		httperr.Abort(c, err, "Failed to list payouts")
		return
	}
	res, err := h.mapper.Payouts(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
