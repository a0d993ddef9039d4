package api

import (
	"net/http"

	"statechain-entity/api/handlers"
	"statechain-entity/api/middleware"
	"statechain-entity/internal/config"
	"statechain-entity/internal/deposit"
	"statechain-entity/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter wires the HTTP surface of the statechain entity.
func SetupRouter(svc *deposit.Service, policies *policy.Store, cfg config.DepositConfig) *gin.Engine {
	router := gin.Default()

	// The rate limiter keys on the client IP; without this, a client could
	// rotate the key with forged X-Forwarded-For headers. A nil proxy list
	// never fails.
	_ = router.SetTrustedProxies(nil)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if limit := middleware.PerClientLimit(cfg.RateLimit, cfg.RateBurst); limit != nil {
		router.POST("/deposit/init", limit, handlers.DepositInit(svc))
	} else {
		router.POST("/deposit/init", handlers.DepositInit(svc))
	}
	router.GET("/info/fee", handlers.FeeInfo(policies))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Unmatched routes answer with a JSON error body.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"kind":  "not_found",
			"error": "not found",
		})
	})

	return router
}
