package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/internal/middleware"
	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/internal/repository"
	"github.com/propertyhub/internal/service"
	"github.com/propertyhub/pkg/response"
)

// MaintenanceHandler handles the maintenance ticket API
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// List handles the enriched request listing, optionally scoped to one
// tenant profile.
// GET /api/maintenance?tenantId=N
func (h *MaintenanceHandler) List(c *gin.Context) {
	var tenantID *uint
	if v := c.Query("tenantId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid tenant id")
			return
		}
		parsed := uint(id)
		tenantID = &parsed
	}

	requests, err := h.maintenanceService.List(tenantID)
	if err != nil {
		response.InternalError(c, "failed to fetch maintenance requests")
		return
	}

	response.Success(c, requests)
}

// Create handles ticket creation by the authenticated tenant
// POST /api/maintenance/create
func (h *MaintenanceHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req service.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.maintenanceService.Create(caller, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotTenant):
			response.Forbidden(c, "only tenants can create maintenance requests")
		case errors.Is(err, repository.ErrTenantNotFound):
			response.NotFound(c, "Tenant profile not found")
		default:
			response.InternalError(c, "failed to create maintenance request")
		}
		return
	}

	response.Created(c, request)
}

// UpdateStatus handles ticket status transitions
// PUT /api/maintenance/:id/status
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid request id")
		return
	}

	var req struct {
		Status models.RequestStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.maintenanceService.UpdateStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.BadRequest(c, "invalid status")
		case errors.Is(err, repository.ErrRequestNotFound):
			response.NotFound(c, "maintenance request not found")
		default:
			response.InternalError(c, "failed to update status")
		}
		return
	}

	response.Success(c, gin.H{"message": "status updated successfully"})
}

// RegisterRoutes registers the maintenance routes. Listing is public;
// mutations require authentication.
func (h *MaintenanceHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	maintenance := rg.Group("/maintenance")
	{
		maintenance.GET("", h.List)
		maintenance.POST("/create", authMiddleware, h.Create)
		maintenance.PUT("/:id/status", authMiddleware, h.UpdateStatus)
	}
}
