package api

import (
	"net/http"
	"strconv"

	reqdto "voucher-ledger/internal/handler/dto/request"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/handler/middleware"
	"voucher-ledger/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

var (
	ErrUnauthenticated = errs.New("no authenticated actor")
	ErrInvalidID       = errs.Mark(errs.New("invalid id"), errs.ErrInvalidParameters)
)

func requireActor(c *gin.Context) (common.Address, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, ErrUnauthenticated, "Unauthorized", nil)
		return common.Address{}, false
	}
	return actor, true
}

func uintParam(c *gin.Context, name string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(ErrInvalidID, name), "Invalid "+name, nil)
		return 0, false
	}
	return v, true
}

func addressParam(c *gin.Context, name string) (common.Address, bool) {
	addr, err := reqdto.ParseAddress(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid address", nil)
		return common.Address{}, false
	}
	return addr, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
