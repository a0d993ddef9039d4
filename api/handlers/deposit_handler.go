package handlers

import (
	"errors"
	"net/http"

	"statechain-entity/internal/deposit"
	"statechain-entity/internal/logger"

	"github.com/gin-gonic/gin"
)

// DepositInitRequest is the wallet's opening message: its chosen auth token
// and the public key it will later prove ownership of the deposit with.
type DepositInitRequest struct {
	Auth     string `json:"auth" binding:"required"`
	ProofKey string `json:"proof_key" binding:"required"`
}

// DepositInit handles POST /deposit/init.
func DepositInit(svc *deposit.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DepositInitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"kind":  "validation",
				"error": "auth and proof_key are required",
			})
			return
		}

		res, err := svc.InitiateDeposit(c.Request.Context(), req.Auth, req.ProofKey)
		if err != nil {
			writeDepositError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// writeDepositError maps the service error taxonomy to HTTP responses with a
// stable machine-readable kind. Internal causes are logged, not returned.
func writeDepositError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, deposit.ErrAuthRequired),
		errors.Is(err, deposit.ErrProofKeyRequired),
		errors.Is(err, deposit.ErrProofKeyFormat):
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":  "validation",
			"error": err.Error(),
		})
	case errors.Is(err, deposit.ErrIdentifierConflict):
		logger.Log.Errorf("Deposit init failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"kind":  "conflict",
			"error": deposit.ErrIdentifierConflict.Error(),
		})
	case errors.Is(err, deposit.ErrStoreUnavailable):
		logger.Log.Errorf("Deposit init failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"kind":  "unavailable",
			"error": deposit.ErrStoreUnavailable.Error(),
		})
	default:
		logger.Log.Errorf("Deposit init failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"kind":  "internal",
			"error": "internal server error",
		})
	}
}
