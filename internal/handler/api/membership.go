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

type MembershipHandler struct {
	cmds   commands.MembershipCommands
	q      queries.MembershipQueries
	mapper *resdto.Mapper
}

func NewMembershipHandler(cmds commands.MembershipCommands, q queries.MembershipQueries, mapper *resdto.Mapper) *MembershipHandler {
	return &MembershipHandler{cmds: cmds, q: q, mapper: mapper}
}

// @Summary Add package
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddPackageRequest true "Package"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /packages [post]
func (h *MembershipHandler) AddPackage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AddPackageRequest
	if !bindJSON(c, &req) {
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err := h.cmds.AddPackage(c.Request.Context(), actor, req.ID, params); err != nil {
		httperr.Abort(c, err, "Add package failed")
		return
	}
	h.respondPackage(c, http.StatusCreated, req.ID)
}

// @Summary Update package
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Param request body reqdto.PackageRequest true "Package"
// @Success 200 {object} resdto.PackageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [put]
func (h *MembershipHandler) UpdatePackage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.PackageRequest
	if !bindJSON(c, &req) {
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err := h.cmds.UpdatePackage(c.Request.Context(), actor, id, params); err != nil {
		httperr.Abort(c, err, "Update package failed")
		return
	}
	h.respondPackage(c, http.StatusOK, id)
}

// @Summary Deactivate package
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /packages/{id}/deactivate [post]
func (h *MembershipHandler) DeactivatePackage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeactivatePackage(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, "Deactivate package failed")
		return
	}
	h.respondPackage(c, http.StatusOK, id)
}

// @Summary List active packages
// @Tags membership
// @Produce json
// @Success 200 {array} resdto.PackageResponse
// @Router /packages [get]
func (h *MembershipHandler) ListPackages(c *gin.Context) {
	views, err := h.q.ListActivePackages(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list packages")
		return
	}
	res, err := h.mapper.Packages(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get package
// @Tags membership
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [get]
func (h *MembershipHandler) GetPackage(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	h.respondPackage(c, http.StatusOK, id)
}

// @Summary Subscribe
// @Description Buy quantity periods of a package
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Param request body reqdto.SubscribeRequest true "Subscription"
// @Success 201 {object} resdto.SubscribeResponse
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /packages/{id}/subscriptions [post]
func (h *MembershipHandler) Subscribe(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SubscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	result, err := h.cmds.Subscribe(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err, "Subscribe failed")
		return
	}
	res, err := h.mapper.Subscribe(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List subscriptions
// @Tags membership
// @Produce json
// @Param address path string true "Subscriber address"
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /members/{address}/subscriptions [get]
func (h *MembershipHandler) ListSubscriptions(c *gin.Context) {
	subscriber, ok := addressParam(c, "address")
	if !ok {
		return
	}
	views, err := h.q.ListSubscriptions(c.Request.Context(), subscriber)
	if err != nil {
		httperr.Abort(c, err, "Failed to list subscriptions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(views))
}

func (h *MembershipHandler) respondPackage(c *gin.Context, status int, id uint64) {
	view, err := h.q.GetPackage(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load package")
		return
	}
	res, err := h.mapper.Package(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
