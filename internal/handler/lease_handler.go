package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/internal/repository"
	"github.com/propertyhub/internal/service"
	"github.com/propertyhub/pkg/response"
)

// LeaseHandler handles the lease ledger API
type LeaseHandler struct {
	leaseService *service.LeaseService
}

// NewLeaseHandler creates a new LeaseHandler
func NewLeaseHandler(leaseService *service.LeaseService) *LeaseHandler {
	return &LeaseHandler{
		leaseService: leaseService,
	}
}

// Get handles a lease detail lookup with nested property, tenant and
// payment history.
// GET /api/leases/:leaseId
func (h *LeaseHandler) Get(c *gin.Context) {
	leaseID, err := strconv.ParseUint(c.Param("leaseId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid lease id")
		return
	}

	lease, err := h.leaseService.GetByID(uint(leaseID))
	if err != nil {
		if errors.Is(err, repository.ErrLeaseNotFound) {
			response.NotFound(c, "lease not found")
			return
		}
		response.InternalError(c, "failed to fetch lease")
		return
	}

	response.Success(c, lease)
}

// RegisterRoutes registers the lease routes
func (h *LeaseHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	rg.GET("/leases/:leaseId", authMiddleware, h.Get)
}
