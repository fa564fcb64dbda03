package repository

import (
	"errors"

	"github.com/propertyhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrLeaseNotFound = errors.New("lease not found")
)

// LeaseRepository handles lease data access
type LeaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new LeaseRepository
func NewLeaseRepository(db *gorm.DB) *LeaseRepository {
	return &LeaseRepository{db: db}
}

// Create creates a new lease
func (r *LeaseRepository) Create(lease *models.Lease) error {
	return r.db.Create(lease).Error
}

// GetDetailByID retrieves a lease with its property, tenant (and the
// tenant's user) and full payment history.
func (r *LeaseRepository) GetDetailByID(id uint) (*models.Lease, error) {
	var lease models.Lease
	result := r.db.
		Preload("Property").
		Preload("Tenant").
		Preload("Tenant.User").
		Preload("Payments").
		First(&lease, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLeaseNotFound
		}
		return nil, result.Error
	}
	return &lease, nil
}

// ListAll retrieves all leases
func (r *LeaseRepository) ListAll() ([]models.Lease, error) {
	var leases []models.Lease
	if err := r.db.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// ListByTenant retrieves all leases for a tenant profile
func (r *LeaseRepository) ListByTenant(tenantID uint) ([]models.Lease, error) {
	var leases []models.Lease
	if err := r.db.Where("tenant_id = ?", tenantID).Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// ListByPropertyOwner retrieves leases on properties owned by a user.
// The scope anchors on the property owner, not the lease or tenant.
func (r *LeaseRepository) ListByPropertyOwner(ownerID uint) ([]models.Lease, error) {
	var leases []models.Lease
	err := r.db.
		Where("property_id IN (?)", r.db.Model(&models.Property{}).Select("id").Where("owner_id = ?", ownerID)).
		Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return leases, nil
}
