package api

import (
	"context"
	"net/http"

	reqdto "voucher-ledger/internal/handler/dto/request"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	cmds   commands.CollectionCommands
	mints  commands.MintCommands
	q      queries.CollectionQueries
	mapper *resdto.Mapper
}

func NewCollectionHandler(
	cmds commands.CollectionCommands,
	mints commands.MintCommands,
	q queries.CollectionQueries,
	mapper *resdto.Mapper,
) *CollectionHandler {
	return &CollectionHandler{cmds: cmds, mints: mints, q: q, mapper: mapper}
}

// @Summary Create collection
// @Description Create a sale window from a verifier-signed voucher
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCollectionRequest true "Collection voucher"
// @Success 201 {object} resdto.CollectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateCollectionRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err, "Create collection failed")
		return
	}
	h.respondCollection(c, http.StatusCreated, id)
}

// @Summary Get collection
// @Tags collections
// @Produce json
// @Param id path int true "Collection ID"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 404 {object} httperr.Response
// @Router /collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	h.respondCollection(c, http.StatusOK, id)
}

// @Summary List artist collections
// @Tags collections
// @Produce json
// @Param address path string true "Artist address"
// @Success 200 {array} resdto.CollectionResponse
// @Failure 400 {object} httperr.Response
// @Router /artists/{address}/collections [get]
func (h *CollectionHandler) ListByArtist(c *gin.Context) {
	artist, ok := addressParam(c, "address")
	if !ok {
		return
	}
	views, err := h.q.ListByArtist(c.Request.Context(), artist)
	if err != nil {
		httperr.Abort(c, err, "Failed to list collections")
		return
	}
	res, err := h.mapper.Collections(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update mint cap
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Param request body reqdto.MintCapRequest true "New cap, 0 for unlimited"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 403 {object} httperr.Response
// @Router /collections/{id}/mint-cap [put]
func (h *CollectionHandler) UpdateMintCap(c *gin.Context) {
	var req reqdto.MintCapRequest
	h.update(c, &req, func(ctx context.Context, actor common.Address, id uint64) error {
		return h.cmds.UpdateCap(ctx, actor, id, *req.MintCap)
	})
}

// @Summary Update start time
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Param request body reqdto.StartTimeRequest true "New start time"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 403 {object} httperr.Response
// @Router /collections/{id}/start-time [put]
func (h *CollectionHandler) UpdateStartTime(c *gin.Context) {
	var req reqdto.StartTimeRequest
	h.update(c, &req, func(ctx context.Context, actor common.Address, id uint64) error {
		return h.cmds.UpdateStart(ctx, actor, id, *req.StartTime)
	})
}

// @Summary Update end time
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Param request body reqdto.EndTimeRequest true "New end time, 0 for open-ended"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 403 {object} httperr.Response
// @Router /collections/{id}/end-time [put]
func (h *CollectionHandler) UpdateEndTime(c *gin.Context) {
	var req reqdto.EndTimeRequest
	h.update(c, &req, func(ctx context.Context, actor common.Address, id uint64) error {
		return h.cmds.UpdateEnd(ctx, actor, id, *req.EndTime)
	})
}

// @Summary Toggle upgrades
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Param request body reqdto.UpgradeableRequest true "Upgrade flag"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 403 {object} httperr.Response
// @Router /collections/{id}/upgradeable [put]
func (h *CollectionHandler) SetUpgradeable(c *gin.Context) {
	var req reqdto.UpgradeableRequest
	h.update(c, &req, func(ctx context.Context, actor common.Address, id uint64) error {
		return h.cmds.SetUpgradeable(ctx, actor, id, *req.Upgradeable)
	})
}

// @Summary Mint
// @Description Redeem a mint voucher within the sale window
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Param request body reqdto.MintRequest true "Mint voucher"
// @Success 201 {object} resdto.MintResponse
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collections/{id}/mints [post]
func (h *CollectionHandler) Mint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.MintRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	result, err := h.mints.Mint(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err, "Mint failed")
		return
	}
	h.respondMint(c, result)
}

// @Summary Get token
// @Tags collections
// @Produce json
// @Param id path int true "Collection ID"
// @Param tokenId path int true "Token ID"
// @Success 200 {object} resdto.TokenResponse
// @Failure 404 {object} httperr.Response
// @Router /collections/{id}/tokens/{tokenId} [get]
func (h *CollectionHandler) GetToken(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	tokenID, ok := uintParam(c, "tokenId")
	if !ok {
		return
	}
	view, err := h.q.GetToken(c.Request.Context(), id, tokenID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load token")
		return
	}
	res, err := h.mapper.Token(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Upgrade token
// @Description Re-key a token to a new layer with an upgrade voucher
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collection ID"
// @Param tokenId path int true "Token ID"
// @Param request body reqdto.UpgradeRequest true "Upgrade voucher"
// @Success 201 {object} resdto.MintResponse
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /collections/{id}/tokens/{tokenId}/upgrade [post]
func (h *CollectionHandler) Upgrade(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	tokenID, ok := uintParam(c, "tokenId")
	if !ok {
		return
	}
	var req reqdto.UpgradeRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id, tokenID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	result, err := h.mints.Upgrade(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err, "Upgrade failed")
		return
	}
	h.respondMint(c, result)
}

// @Summary Layer status
// @Description Report whether a layer hash has been minted
// @Tags collections
// @Produce json
// @Param hash path string true "0x-prefixed layer hash"
// @Success 200 {object} resdto.LayerResponse
// @Failure 400 {object} httperr.Response
// @Router /layers/{hash} [get]
func (h *CollectionHandler) Layer(c *gin.Context) {
	hash, err := reqdto.ParseHex(c.Param("hash"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid layer hash", nil)
		return
	}
	view, err := h.q.Layer(c.Request.Context(), hash)
	if err != nil {
		httperr.Abort(c, err, "Failed to load layer")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLayerView(view))
}

func (h *CollectionHandler) update(c *gin.Context, req any, apply func(ctx context.Context, actor common.Address, id uint64) error) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if !bindJSON(c, req) {
		return
	}
	if err := apply(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, "Update collection failed")
		return
	}
	h.respondCollection(c, http.StatusOK, id)
}

func (h *CollectionHandler) respondCollection(c *gin.Context, status int, id uint64) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load collection")
		return
	}
	res, err := h.mapper.Collection(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

func (h *CollectionHandler) respondMint(c *gin.Context, result *commands.MintResult) {
	res, err := h.mapper.Mint(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}
