package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/internal/repository"
	"github.com/propertyhub/internal/service"
	"github.com/propertyhub/pkg/response"
)

// DashboardHandler handles the role-scoped dashboard API
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Get handles the dashboard aggregation for a user
// GET /api/dashboard/:userId
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(uint(userID))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, repository.ErrTenantNotFound):
			response.NotFound(c, "Tenant profile not found")
		case errors.Is(err, service.ErrRoleForbidden):
			response.Forbidden(c, "unauthorized access")
		default:
			response.InternalError(c, "failed to fetch dashboard data")
		}
		return
	}

	response.Success(c, dashboard)
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	rg.GET("/dashboard/:userId", authMiddleware, h.Get)
}
