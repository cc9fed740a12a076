package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-revshare/internal/api/middleware"
	"github.com/feral-file/ff-revshare/internal/metrics"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check and metrics endpoints (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Revenue endpoints (deposits require authentication)
		v1.POST("/deposits", middleware.Auth(authCfg), handler.CreateDeposit)
		v1.GET("/revenue/breakdown", handler.GetRevenueBreakdown)

		// Distribution endpoints (triggering a round requires authentication)
		v1.POST("/distributions", middleware.Auth(authCfg), handler.CreateDistribution)
		v1.GET("/distributions", handler.ListDistributions)
		v1.GET("/distributions/:id", handler.GetDistribution)
		v1.POST("/distributions/:id/claims", handler.ClaimReward)

		// Vault and wallet endpoints (public read access)
		v1.GET("/vault/stats", handler.GetVaultStats)
		v1.GET("/wallets/:address/rewards", handler.GetWalletRewards)
		v1.GET("/wallets/:address/share", handler.GetWalletShare)
	}
}
