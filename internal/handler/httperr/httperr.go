package httperr

import (
	"net/http"

	"voucher-ledger/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var statuses = map[error]int{
	errs.ErrUnauthorized:      http.StatusForbidden,
	errs.ErrInvalidSignature:  http.StatusUnprocessableEntity,
	errs.ErrExpired:           http.StatusUnprocessableEntity,
	errs.ErrWrongAmount:       http.StatusPaymentRequired,
	errs.ErrAlreadyConsumed:   http.StatusConflict,
	errs.ErrDuplicateID:       http.StatusConflict,
	errs.ErrSoldOut:           http.StatusConflict,
	errs.ErrNotStartedYet:     http.StatusConflict,
	errs.ErrEnded:             http.StatusConflict,
	errs.ErrInvalidParameters: http.StatusBadRequest,
	errs.ErrNotFound:          http.StatusNotFound,
}

// StatusOf maps a ledger failure to its HTTP status. Unclassified errors are 500.
func StatusOf(err error) int {
	if status, ok := statuses[errs.Kind(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Abort responds with the status of err's failure kind. Classified errors
// expose their own message; anything else is reported as fallback.
func Abort(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	msg := fallback
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}
