package handlers

import (
	"net/http"

	"statechain-entity/internal/policy"

	"github.com/gin-gonic/gin"
)

// FeeInfo handles GET /info/fee. It returns the operating policy snapshot
// wallets must conform with in the protocol.
func FeeInfo(policies *policy.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, policies.Current())
	}
}
