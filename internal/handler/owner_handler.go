package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/propertyhub/internal/middleware"
	"github.com/propertyhub/internal/service"
	"github.com/propertyhub/pkg/response"
)

// OwnerHandler handles the owner self-service API
type OwnerHandler struct {
	dashboardService *service.DashboardService
	userService      *service.UserService
}

// NewOwnerHandler creates a new OwnerHandler
func NewOwnerHandler(dashboardService *service.DashboardService, userService *service.UserService) *OwnerHandler {
	return &OwnerHandler{
		dashboardService: dashboardService,
		userService:      userService,
	}
}

// Dashboard returns the owner bundle for the authenticated caller
// GET /api/owners
func (h *OwnerHandler) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	dashboard, err := h.dashboardService.OwnerDashboard(user.ID)
	if err != nil {
		response.InternalError(c, "failed to fetch owner dashboard data")
		return
	}

	response.Success(c, dashboard)
}

// ListAll returns every owner-role user
// GET /api/owners/all
func (h *OwnerHandler) ListAll(c *gin.Context) {
	owners, err := h.userService.ListAllOwners()
	if err != nil {
		response.InternalError(c, "failed to fetch owners")
		return
	}

	response.Success(c, gin.H{"owners": owners})
}

// RegisterRoutes registers the owner routes
func (h *OwnerHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	owners := rg.Group("/owners")
	owners.Use(authMiddleware)
	{
		owners.GET("", h.Dashboard)
		owners.GET("/all", h.ListAll)
	}
}
