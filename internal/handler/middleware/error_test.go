//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/", h)
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
	t.Helper()
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandler(t *testing.T) {
	t.Run("本文の無い公開エラーを書き出す", func(t *testing.T) {
		w := serve(newEngine(func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "layer already minted"
			_ = c.Error(gin.Error{Err: errors.New("dup"), Type: gin.ErrorTypePublic, Meta: resp})
			c.Abort()
		}))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "layer already minted", decode(t, w).Error.Message)
	})

	t.Run("書き込み済みのレスポンスは変えない", func(t *testing.T) {
		w := serve(newEngine(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusPaymentRequired, errors.New("short"), "paid amount does not match", nil)
		}))

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Equal(t, "paid amount does not match", decode(t, w).Error.Message)
	})

	t.Run("panic is reported as 500", func(t *testing.T) {
		w := serve(newEngine(func(c *gin.Context) {
			panic("boom")
		}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decode(t, w).Error.Message)
	})
}
