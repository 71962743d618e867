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

type SettingsHandler struct {
	cmds   commands.GovernanceCommands
	q      queries.SettingsQueries
	mapper *resdto.Mapper
}

func NewSettingsHandler(cmds commands.GovernanceCommands, q queries.SettingsQueries, mapper *resdto.Mapper) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q, mapper: mapper}
}

// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Failure 404 {object} httperr.Response
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	h.respond(c)
}

// @Summary Update settings
// @Description Owner-only; only the fields present are changed
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Changed fields"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /settings [patch]
func (h *SettingsHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	change, err := req.ToChange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err := h.cmds.Apply(c.Request.Context(), actor, change); err != nil {
		httperr.Abort(c, err, "Update settings failed")
		return
	}
	h.respond(c)
}

func (h *SettingsHandler) respond(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load settings")
		return
	}
	res, err := h.mapper.Settings(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
