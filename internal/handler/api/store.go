package api

import (
	"net/http"

	reqdto "voucher-ledger/internal/handler/dto/request"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	cmds   commands.StoreCommands
	q      queries.StoreQueries
	mapper *resdto.Mapper
}

func NewStoreHandler(cmds commands.StoreCommands, q queries.StoreQueries, mapper *resdto.Mapper) *StoreHandler {
	return &StoreHandler{cmds: cmds, q: q, mapper: mapper}
}

// @Summary Estimate order cost
// @Tags store
// @Accept json
// @Produce json
// @Param request body reqdto.EstimateRequest true "Shirt designs"
// @Success 200 {object} resdto.EstimateResponse
// @Failure 400 {object} httperr.Response
// @Router /store/estimate [post]
func (h *StoreHandler) Estimate(c *gin.Context) {
	var req reqdto.EstimateRequest
	if !bindJSON(c, &req) {
		return
	}
	designs, err := req.ToDesigns()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	total, err := h.q.EstimateCost(c.Request.Context(), designs)
	if err != nil {
		httperr.Abort(c, err, "Estimate failed")
		return
	}
	c.JSON(http.StatusOK, resdto.EstimateResponse{Shirts: len(designs), Total: h.mapper.Amount(total)})
}

// @Summary Buy shirts
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Router /store/orders [post]
func (h *StoreHandler) Order(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.OrderRequest
	if !bindJSON(c, &req) {
		return
	}
	designs, paid, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	result, err := h.cmds.BuyShirts(c.Request.Context(), actor, designs, paid)
	if err != nil {
		httperr.Abort(c, err, "Order failed")
		return
	}
	res, err := h.mapper.Order(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Whitelist NFT contracts
// @Tags store
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.WhitelistRequest true "Contracts and royalty owners"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /store/whitelist [post]
func (h *StoreHandler) Whitelist(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.WhitelistRequest
	if !bindJSON(c, &req) {
		return
	}
	addresses, owners, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err := h.cmds.Whitelist(c.Request.Context(), actor, addresses, owners); err != nil {
		httperr.Abort(c, err, "Whitelist failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change listing status
// @Tags store
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ListingStatusRequest true "Contracts and statuses"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /store/whitelist/status [put]
func (h *StoreHandler) SetStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ListingStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	addresses, statuses, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err := h.cmds.SetStatus(c.Request.Context(), actor, addresses, statuses); err != nil {
		httperr.Abort(c, err, "Change status failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change royalty owners
// @Tags store
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.WhitelistRequest true "Contracts and royalty owners"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /store/whitelist/owners [put]
func (h *StoreHandler) SetOwners(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.WhitelistRequest
	if !bindJSON(c, &req) {
		return
	}
	addresses, owners, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err := h.cmds.SetOwners(c.Request.Context(), actor, addresses, owners); err != nil {
		httperr.Abort(c, err, "Change owners failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Listing status
// @Tags store
// @Produce json
// @Param address path string true "NFT contract"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} httperr.Response
// @Router /store/nfts/{address} [get]
func (h *StoreHandler) Listing(c *gin.Context) {
	address, ok := addressParam(c, "address")
	if !ok {
		return
	}
	view, err := h.q.GetListing(c.Request.Context(), address)
	if err != nil {
		httperr.Abort(c, err, "Failed to load listing")
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Royalty balance
// @Tags store
// @Produce json
// @Param address path string true "Holder"
// @Success 200 {object} resdto.BalanceResponse
// @Router /store/balances/{address} [get]
func (h *StoreHandler) Balance(c *gin.Context) {
	holder, ok := addressParam(c, "address")
	if !ok {
		return
	}
	view, err := h.q.GetBalance(c.Request.Context(), holder)
	if err != nil {
		httperr.Abort(c, err, "Failed to load balance")
		return
	}
	res, err := h.mapper.Balance(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Withdraw royalties
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WithdrawalResponse
// @Failure 400 {object} httperr.Response
// @Router /store/withdrawals [post]
func (h *StoreHandler) Withdraw(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	amount, err := h.cmds.Withdraw(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err, "Withdraw failed")
		return
	}
	c.JSON(http.StatusOK, h.mapper.Withdrawal(actor.Hex(), amount))
}
