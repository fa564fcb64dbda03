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

// PropertyHandler handles the public property catalog API
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// parseFilter builds a PropertyFilter from query parameters. Every
// filter is optional and independently combinable.
func parseFilter(c *gin.Context) (repository.PropertyFilter, error) {
	var filter repository.PropertyFilter

	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &price
	}
	if v := c.Query("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Bedrooms = &n
	}
	if v := c.Query("bathrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Bathrooms = &n
	}

	filter.Type = models.PropertyType(c.Query("type"))
	filter.Category = models.PropertyCategory(c.Query("category"))
	filter.Status = models.PropertyStatus(c.Query("status"))

	for _, v := range c.QueryArray("amenities") {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.AmenityIDs = append(filter.AmenityIDs, uint(id))
	}

	return filter, nil
}

// List handles the filtered property search
// GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, "invalid filter parameters")
		return
	}

	properties, err := h.propertyService.List(filter)
	if err != nil {
		response.InternalError(c, "failed to fetch properties")
		return
	}

	response.Success(c, properties)
}

// ListMine handles the authenticated owner's property list
// GET /api/properties/me
func (h *PropertyHandler) ListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	properties, err := h.propertyService.ListByOwner(user.ID)
	if err != nil {
		response.InternalError(c, "failed to fetch properties")
		return
	}

	response.Success(c, properties)
}

// Get handles a single property lookup
// GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	property, err := h.propertyService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			response.NotFound(c, "property not found")
			return
		}
		response.InternalError(c, "failed to fetch property")
		return
	}

	response.Success(c, property)
}

// Create handles property creation
// POST /api/properties
func (h *PropertyHandler) Create(c *gin.Context) {
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

// ReplaceAmenities handles the atomic replacement of a property's
// amenity set. An empty list clears it.
// PUT /api/properties/:id/amenities
func (h *PropertyHandler) ReplaceAmenities(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	var req struct {
		Amenities []uint `json:"amenities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.propertyService.ReplaceAmenities(uint(id), req.Amenities); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			response.NotFound(c, "property not found")
			return
		}
		response.InternalError(c, "failed to update amenities")
		return
	}

	response.Success(c, gin.H{"message": "OK"})
}

// ListAmenities handles the amenity catalog listing
// GET /api/amenities
func (h *PropertyHandler) ListAmenities(c *gin.Context) {
	amenities, err := h.propertyService.ListAmenities()
	if err != nil {
		response.InternalError(c, "failed to fetch amenities")
		return
	}

	response.Success(c, amenities)
}

// CreateAmenity handles amenity creation
// POST /api/amenities
func (h *PropertyHandler) CreateAmenity(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	amenity, err := h.propertyService.CreateAmenity(req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityExists) {
			response.Conflict(c, "amenity already exists")
			return
		}
		response.InternalError(c, "failed to create amenity")
		return
	}

	response.Created(c, amenity)
}

// DeleteAmenity handles amenity deletion
// DELETE /api/amenities/:id
func (h *PropertyHandler) DeleteAmenity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid amenity id")
		return
	}

	if err := h.propertyService.DeleteAmenity(uint(id)); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			response.NotFound(c, "amenity not found")
			return
		}
		response.InternalError(c, "failed to delete amenity")
		return
	}

	response.NoContent(c)
}

// RegisterRoutes registers the public property and amenity routes
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	properties := rg.Group("/properties")
	{
		properties.GET("", h.List)
		properties.GET("/me", authMiddleware, h.ListMine)
		properties.GET("/:id", h.Get)
		properties.POST("", authMiddleware, h.Create)
		properties.PUT("/:id/amenities", authMiddleware, h.ReplaceAmenities)
	}

	amenities := rg.Group("/amenities")
	{
		amenities.GET("", h.ListAmenities)
		amenities.POST("", authMiddleware, middleware.RequireRoles(models.RoleAdmin), h.CreateAmenity)
		amenities.DELETE("/:id", authMiddleware, middleware.RequireRoles(models.RoleAdmin), h.DeleteAmenity)
	}
}
