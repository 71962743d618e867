//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	marked := func(kind error) error {
		return errs.Wrap(errs.Mark(errs.New("boom"), kind), "context")
	}
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", marked(errs.ErrUnauthorized), http.StatusForbidden},
		{"invalid signature", marked(errs.ErrInvalidSignature), http.StatusUnprocessableEntity},
		{"expired", marked(errs.ErrExpired), http.StatusUnprocessableEntity},
		{"wrong amount", marked(errs.ErrWrongAmount), http.StatusPaymentRequired},
		{"already consumed", marked(errs.ErrAlreadyConsumed), http.StatusConflict},
		{"duplicate id", marked(errs.ErrDuplicateID), http.StatusConflict},
		{"sold out", marked(errs.ErrSoldOut), http.StatusConflict},
		{"not started", marked(errs.ErrNotStartedYet), http.StatusConflict},
		{"ended", marked(errs.ErrEnded), http.StatusConflict},
		{"invalid parameters", marked(errs.ErrInvalidParameters), http.StatusBadRequest},
		{"not found", marked(errs.ErrNotFound), http.StatusNotFound},
		{"unclassified", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}
