package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-revshare/internal/api/shared/dto"
	"github.com/feral-file/ff-revshare/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateDeposit records a revenue deposit (requires authentication)
	// POST /api/v1/deposits
	CreateDeposit(c *gin.Context)

	// CreateDistribution triggers a distribution round out of schedule (requires authentication)
	// POST /api/v1/distributions
	CreateDistribution(c *gin.Context)

	// ListDistributions retrieves the round history, newest first
	// GET /api/v1/distributions?limit=<limit>&offset=<offset>
	ListDistributions(c *gin.Context)

	// GetDistribution retrieves a round with its shares
	// GET /api/v1/distributions/:id
	GetDistribution(c *gin.Context)

	// ClaimReward records the claim of a wallet on a round
	// POST /api/v1/distributions/:id/claims
	ClaimReward(c *gin.Context)

	// GetVaultStats retrieves the vault totals and the distribution cadence
	// GET /api/v1/vault/stats
	GetVaultStats(c *gin.Context)

	// GetWalletRewards retrieves the rewards of a wallet across all rounds
	// GET /api/v1/wallets/:address/rewards
	GetWalletRewards(c *gin.Context)

	// GetWalletShare retrieves the share a wallet would hold in a round created now
	// GET /api/v1/wallets/:address/share
	GetWalletShare(c *gin.Context)

	// GetRevenueBreakdown aggregates deposits per source
	// GET /api/v1/revenue/breakdown?source=<source1>,<source2>&from=<rfc3339>&to=<rfc3339>
	GetRevenueBreakdown(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// CreateDeposit records a revenue deposit
func (h *handler) CreateDeposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateDeposit(c.Request.Context(), req)
	if err != nil {
		respondExecutorError(c, err, "Failed to create deposit")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// CreateDistribution drains the vault into a new round
func (h *handler) CreateDistribution(c *gin.Context) {
	response, err := h.executor.CreateDistribution(c.Request.Context())
	if err != nil {
		respondExecutorError(c, err, "Failed to create distribution")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListDistributions retrieves the round history with pagination
func (h *handler) ListDistributions(c *gin.Context) {
	queryParams, err := ParseListDistributionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListDistributions(c.Request.Context(), &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondExecutorError(c, err, "Failed to list distributions")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetDistribution retrieves a round by its ID
func (h *handler) GetDistribution(c *gin.Context) {
	distributionID := c.Param("id")
	if distributionID == "" {
		respondBadRequest(c, "Distribution ID is required")
		return
	}

	response, err := h.executor.GetDistribution(c.Request.Context(), distributionID)
	if err != nil {
		respondExecutorError(c, err, "Failed to get distribution")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ClaimReward records the claim of a wallet on a round
func (h *handler) ClaimReward(c *gin.Context) {
	distributionID := c.Param("id")
	if distributionID == "" {
		respondBadRequest(c, "Distribution ID is required")
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.ClaimReward(c.Request.Context(), distributionID, req)
	if err != nil {
		respondExecutorError(c, err, "Failed to claim reward")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetVaultStats retrieves the vault totals
func (h *handler) GetVaultStats(c *gin.Context) {
	response, err := h.executor.GetVaultStats(c.Request.Context())
	if err != nil {
		respondExecutorError(c, err, "Failed to get vault stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetWalletRewards retrieves the rewards of a wallet
func (h *handler) GetWalletRewards(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	response, err := h.executor.GetWalletRewards(c.Request.Context(), address)
	if err != nil {
		respondExecutorError(c, err, "Failed to get wallet rewards")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetWalletShare retrieves the projected share of a wallet
func (h *handler) GetWalletShare(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	response, err := h.executor.GetWalletShare(c.Request.Context(), address)
	if err != nil {
		respondExecutorError(c, err, "Failed to get wallet share")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRevenueBreakdown aggregates deposits per source
func (h *handler) GetRevenueBreakdown(c *gin.Context) {
	queryParams, err := ParseRevenueBreakdownQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetRevenueBreakdown(c.Request.Context(), queryParams.Sources, queryParams.from, queryParams.to)
	if err != nil {
		respondExecutorError(c, err, "Failed to get revenue breakdown")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "ff-revshare-api",
	})
}
