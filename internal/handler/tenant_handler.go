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

// TenantHandler handles the tenant self-service API
type TenantHandler struct {
	leaseService       *service.LeaseService
	maintenanceService *service.MaintenanceService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(leaseService *service.LeaseService, maintenanceService *service.MaintenanceService) *TenantHandler {
	return &TenantHandler{
		leaseService:       leaseService,
		maintenanceService: maintenanceService,
	}
}

// ListLeases resolves the user's tenant profile and lists its leases
// GET /api/tenants/:id/leases (id is the user id)
func (h *TenantHandler) ListLeases(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	leases, err := h.leaseService.ListForUser(uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			response.NotFound(c, "Tenant profile not found")
			return
		}
		response.InternalError(c, "failed to fetch leases")
		return
	}

	response.Success(c, leases)
}

// ListPayments lists payments on any of a tenant profile's leases
// GET /api/tenants/:id/payments (id is the tenant profile id)
func (h *TenantHandler) ListPayments(c *gin.Context) {
	tenantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid tenant id")
		return
	}

	payments, err := h.leaseService.ListPaymentsForTenant(uint(tenantID))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			response.NotFound(c, "Tenant profile not found")
			return
		}
		response.InternalError(c, "failed to fetch payments")
		return
	}

	response.Success(c, payments)
}

// ListRequests lists a tenant profile's maintenance requests
// GET /api/tenants/:id/maintenance-requests (id is the tenant profile id)
func (h *TenantHandler) ListRequests(c *gin.Context) {
	tenantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid tenant id")
		return
	}

	requests, err := h.maintenanceService.ListByTenant(uint(tenantID))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			response.NotFound(c, "Tenant profile not found")
			return
		}
		response.InternalError(c, "failed to fetch maintenance requests")
		return
	}

	response.Success(c, requests)
}

// RegisterRoutes registers the tenant self-service routes for admin and
// tenant roles.
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	tenants := rg.Group("/tenants")
	tenants.Use(authMiddleware, middleware.RequireRoles(models.RoleAdmin, models.RoleTenant))
	{
		// one param name for the whole group; leases take a user id,
		// the other two take a tenant profile id
		tenants.GET("/:id/leases", h.ListLeases)
		tenants.GET("/:id/payments", h.ListPayments)
		tenants.GET("/:id/maintenance-requests", h.ListRequests)
	}
}
