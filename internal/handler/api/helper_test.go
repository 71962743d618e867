//go:build unit

package api_test

import (
	"math/big"
	"net/http"

	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/middleware"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

const (
	testDecimals = 18
	bearer       = "bearer-token"
)

var (
	testActor    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	feeRecipient = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
	artist       = common.HexToAddress("0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65")
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

// fakeAuth treats any bearer token as testActor.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	middleware.SetActor(c, testActor)
	c.Next()
}

func newMapper() *resdto.Mapper {
	return resdto.NewMapper(testDecimals)
}

// milliEther returns n/1000 of one token in base units.
func milliEther(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e15))
}
