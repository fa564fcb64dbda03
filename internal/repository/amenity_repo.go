package repository

import (
	"errors"

	"github.com/propertyhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAmenityNotFound = errors.New("amenity not found")
	ErrAmenityExists   = errors.New("amenity already exists")
)

// AmenityRepository handles amenity data access
type AmenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository creates a new AmenityRepository
func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

// List retrieves all amenities
func (r *AmenityRepository) List() ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := r.db.Order("name").Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

// Create creates a new amenity
func (r *AmenityRepository) Create(amenity *models.Amenity) error {
	var count int64
	if err := r.db.Model(&models.Amenity{}).Where("name = ?", amenity.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAmenityExists
	}
	return r.db.Create(amenity).Error
}

// Delete removes an amenity and its property associations as one unit
func (r *AmenityRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM property_amenities WHERE amenity_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Amenity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAmenityNotFound
		}
		return nil
	})
}
