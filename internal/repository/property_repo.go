package repository

import (
	"errors"

	"github.com/propertyhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
)

// PropertyFilter holds the optional, independently combinable search
// filters. Nil fields are not applied. AmenityIDs require the property
// to carry every listed amenity.
type PropertyFilter struct {
	MinPrice    *float64
	MaxPrice    *float64
	Bedrooms    *int
	Bathrooms   *int
	Type        models.PropertyType
	Category    models.PropertyCategory
	Status      models.PropertyStatus
	AmenityIDs  []uint
	OwnerID     *uint
	NewestFirst bool
}

// PropertyRepository handles property and amenity-association data access
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetByID retrieves a property with its amenities
func (r *PropertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	result := r.db.Preload("Amenities").First(&property, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return &property, nil
}

// List retrieves properties matching the filter, amenities preloaded
func (r *PropertyRepository) List(filter PropertyFilter) ([]models.Property, error) {
	q := r.db.Preload("Amenities").Model(&models.Property{})

	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Bedrooms != nil && *filter.Bedrooms > 0 {
		q = q.Where("bedrooms >= ?", *filter.Bedrooms)
	}
	if filter.Bathrooms != nil && *filter.Bathrooms > 0 {
		q = q.Where("bathrooms >= ?", *filter.Bathrooms)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.OwnerID != nil {
		q = q.Where("owner_id = ?", *filter.OwnerID)
	}

	// AND semantics: one EXISTS per requested amenity
	for _, amenityID := range filter.AmenityIDs {
		q = q.Where(
			"EXISTS (SELECT 1 FROM property_amenities pa WHERE pa.property_id = properties.id AND pa.amenity_id = ?)",
			amenityID,
		)
	}

	if filter.NewestFirst {
		q = q.Order("created_at DESC")
	}

	var properties []models.Property
	if err := q.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// ListByOwner retrieves all properties owned by a user
func (r *PropertyRepository) ListByOwner(ownerID uint) ([]models.Property, error) {
	ownerFilter := ownerID
	return r.List(PropertyFilter{OwnerID: &ownerFilter})
}

// ListAll retrieves all properties without amenity preloading
func (r *PropertyRepository) ListAll() ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// ListAllByOwner retrieves an owner's properties without amenity preloading
func (r *PropertyRepository) ListAllByOwner(ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Where("owner_id = ?", ownerID).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// UpdateFields applies the given column updates to a property
func (r *PropertyRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Property{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// ReplaceAmenities atomically replaces the full amenity set for a
// property: delete everything, then insert the new associations. An
// empty list clears the set.
func (r *PropertyRepository) ReplaceAmenities(propertyID uint, amenityIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM property_amenities WHERE property_id = ?", propertyID).Error; err != nil {
			return err
		}
		for _, amenityID := range amenityIDs {
			if err := tx.Exec(
				"INSERT INTO property_amenities (property_id, amenity_id) VALUES (?, ?)",
				propertyID, amenityID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountAmenityLinks counts the association rows for a property
func (r *PropertyRepository) CountAmenityLinks(propertyID uint) (int64, error) {
	var count int64
	err := r.db.Table("property_amenities").Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}

// Delete removes the amenity associations and the property row as one
// atomic unit.
func (r *PropertyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM property_amenities WHERE property_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Property{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPropertyNotFound
		}
		return nil
	})
}
