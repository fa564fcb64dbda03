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

// AdminHandler handles the admin-only property and user directory API
type AdminHandler struct {
	propertyService *service.PropertyService
	userService     *service.UserService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(propertyService *service.PropertyService, userService *service.UserService) *AdminHandler {
	return &AdminHandler{
		propertyService: propertyService,
		userService:     userService,
	}
}

// ListProperties handles the admin property listing, newest first
// GET /api/admin/properties
func (h *AdminHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListAdmin()
	if err != nil {
		response.InternalError(c, "failed to fetch properties")
		return
	}

	response.Success(c, properties)
}

// CreateProperty handles admin property creation
// POST /api/admin/properties
func (h *AdminHandler) CreateProperty(c *gin.Context) {
	var req service.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	property, err := h.propertyService.Create(&req)
	if err != nil {
		response.InternalError(c, "failed to create property")
		return
	}

	response.Created(c, property)
}

// UpdateProperty handles the allow-listed property patch
// PUT /api/admin/properties/:id
func (h *AdminHandler) UpdateProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	var patch service.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	property, err := h.propertyService.Update(uint(id), &patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPatch):
			response.BadRequest(c, "no valid fields to update")
		case errors.Is(err, repository.ErrPropertyNotFound):
			response.NotFound(c, "property not found")
		default:
			response.InternalError(c, "failed to update property")
		}
		return
	}

	response.Success(c, property)
}

// DeleteProperty handles property deletion with its associations
// DELETE /api/admin/properties/:id
func (h *AdminHandler) DeleteProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	if err := h.propertyService.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			response.NotFound(c, "property not found")
			return
		}
		response.InternalError(c, "failed to delete property")
		return
	}

	response.NoContent(c)
}

// ListUsers handles the full user directory with property counts
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		response.InternalError(c, "failed to fetch users")
		return
	}

	response.Success(c, users)
}

// ListTenants handles the tenant directory
// GET /api/admin/users/tenants
func (h *AdminHandler) ListTenants(c *gin.Context) {
	tenants, err := h.userService.ListTenants()
	if err != nil {
		response.InternalError(c, "failed to fetch tenants")
		return
	}

	response.Success(c, tenants)
}

// ListOwners handles the owner directory
// GET /api/admin/users/owners
func (h *AdminHandler) ListOwners(c *gin.Context) {
	owners, err := h.userService.ListOwners()
	if err != nil {
		response.InternalError(c, "failed to fetch owners")
		return
	}

	response.Success(c, owners)
}

// CreateUser handles admin user creation
// POST /api/admin/users/create
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.Conflict(c, "username or email already exists")
			return
		}
		response.InternalError(c, "failed to create user")
		return
	}

	response.Created(c, user)
}

// UpdateUser handles the allow-listed user patch
// PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var patch service.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.userService.Update(uint(id), &patch, caller.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrRoleChangeForbidden):
			response.Forbidden(c, "only admins can change roles")
		case errors.Is(err, service.ErrEmptyPatch):
			response.BadRequest(c, "no valid fields to update")
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		default:
			response.InternalError(c, "failed to update user")
		}
		return
	}

	response.Success(c, gin.H{"message": "user updated successfully"})
}

// DeleteUser handles hard user deletion
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.userService.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to delete user")
		return
	}

	response.NoContent(c)
}

// RegisterRoutes registers the admin routes behind the admin role gate
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(authMiddleware, middleware.RequireRoles(models.RoleAdmin))
	{
		properties := admin.Group("/properties")
		{
			properties.GET("", h.ListProperties)
			properties.POST("", h.CreateProperty)
			properties.PUT("/:id", h.UpdateProperty)
			properties.DELETE("/:id", h.DeleteProperty)
		}

		users := admin.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/tenants", h.ListTenants)
			users.GET("/owners", h.ListOwners)
			users.POST("/create", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
		}
	}
}
