package service

import (
	"errors"

	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/internal/repository"
)

var (
	ErrEmptyPatch = errors.New("no valid fields to update")
)

// PropertyService handles property catalog operations
type PropertyService struct {
	propertyRepo *repository.PropertyRepository
	amenityRepo  *repository.AmenityRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo *repository.PropertyRepository, amenityRepo *repository.AmenityRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		amenityRepo:  amenityRepo,
	}
}

// CreatePropertyRequest requires every listed field; numeric fields are
// typed so non-numeric input is rejected at binding time.
type CreatePropertyRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Type        models.PropertyType     `json:"type" binding:"required,oneof=rent sale"`
	Category    models.PropertyCategory `json:"category" binding:"required,oneof=residential commercial industrial"`
	Description string                  `json:"description" binding:"required"`
	Address     string                  `json:"address" binding:"required"`
	Price       *float64                `json:"price" binding:"required"`
	Bedrooms    *int                    `json:"bedrooms" binding:"required"`
	Bathrooms   *int                    `json:"bathrooms" binding:"required"`
	SquareFeet  *int                    `json:"square_feet" binding:"required"`
	Status      models.PropertyStatus   `json:"status" binding:"required,oneof=available occupied maintenance"`
	Image       string                  `json:"image" binding:"required"`
	Location    string                  `json:"location" binding:"required"`
	OwnerID     uint                    `json:"owner_id" binding:"required"`
}

// PropertyView is a property with amenities flattened to a name list
type PropertyView struct {
	models.Property
	Amenities []string `json:"amenities"`
}

func toView(p models.Property) PropertyView {
	names := make([]string, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		names = append(names, a.Name)
	}
	return PropertyView{Property: p, Amenities: names}
}

func toViews(properties []models.Property) []PropertyView {
	views := make([]PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, toView(p))
	}
	return views
}

// Create persists a new property and returns it with an empty amenity list
func (s *PropertyService) Create(req *CreatePropertyRequest) (*PropertyView, error) {
	property := &models.Property{
		Title:       req.Title,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		Price:       *req.Price,
		Bedrooms:    *req.Bedrooms,
		Bathrooms:   *req.Bathrooms,
		SquareFeet:  *req.SquareFeet,
		Status:      req.Status,
		Image:       req.Image,
		Location:    req.Location,
		OwnerID:     req.OwnerID,
	}

	if err := s.propertyRepo.Create(property); err != nil {
		return nil, err
	}

	view := toView(*property)
	return &view, nil
}

// List retrieves properties matching the filter
func (s *PropertyService) List(filter repository.PropertyFilter) ([]PropertyView, error) {
	properties, err := s.propertyRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return toViews(properties), nil
}

// ListByOwner retrieves the authenticated owner's properties
func (s *PropertyService) ListByOwner(ownerID uint) ([]PropertyView, error) {
	properties, err := s.propertyRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return toViews(properties), nil
}

// ListAdmin retrieves all properties, newest first
func (s *PropertyService) ListAdmin() ([]PropertyView, error) {
	properties, err := s.propertyRepo.List(repository.PropertyFilter{NewestFirst: true})
	if err != nil {
		return nil, err
	}
	return toViews(properties), nil
}

// GetByID retrieves a single property
func (s *PropertyService) GetByID(id uint) (*PropertyView, error) {
	property, err := s.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	view := toView(*property)
	return &view, nil
}

// PropertyPatch is the closed set of mutable property fields. Nil
// fields are left untouched.
type PropertyPatch struct {
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	Price       *float64                 `json:"price"`
	Status      *models.PropertyStatus   `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	Type        *models.PropertyType     `json:"type" binding:"omitempty,oneof=rent sale"`
	Category    *models.PropertyCategory `json:"category" binding:"omitempty,oneof=residential commercial industrial"`
}

func (p *PropertyPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	return fields
}

// Update applies a patch restricted to the mutable fields and returns
// the updated property.
func (s *PropertyService) Update(id uint, patch *PropertyPatch) (*PropertyView, error) {
	fields := patch.fields()
	if len(fields) == 0 {
		return nil, ErrEmptyPatch
	}

	if err := s.propertyRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// ReplaceAmenities replaces the full amenity set for a property. An
// empty id list clears the associations.
func (s *PropertyService) ReplaceAmenities(propertyID uint, amenityIDs []uint) error {
	if _, err := s.propertyRepo.GetByID(propertyID); err != nil {
		return err
	}
	return s.propertyRepo.ReplaceAmenities(propertyID, amenityIDs)
}

// Delete removes a property and its amenity associations
func (s *PropertyService) Delete(id uint) error {
	return s.propertyRepo.Delete(id)
}

// ListAmenities retrieves the amenity catalog
func (s *PropertyService) ListAmenities() ([]models.Amenity, error) {
	return s.amenityRepo.List()
}

// CreateAmenity adds a new amenity to the catalog
func (s *PropertyService) CreateAmenity(name string) (*models.Amenity, error) {
	amenity := &models.Amenity{Name: name}
	if err := s.amenityRepo.Create(amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// DeleteAmenity removes an amenity and its property associations
func (s *PropertyService) DeleteAmenity(id uint) error {
	return s.amenityRepo.Delete(id)
}
