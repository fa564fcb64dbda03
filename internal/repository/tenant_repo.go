package repository

import (
	"errors"
	"time"

	"github.com/propertyhub/internal/models"
	"gorm.io/gorm"
)

// ErrTenantNotFound means the tenant profile row is absent. For a
// tenant-role user this is "profile not provisioned" and must not be
// collapsed into ErrUserNotFound by callers.
var ErrTenantNotFound = errors.New("tenant profile not found")

// TenantRepository handles tenant-profile data access
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new TenantRepository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant profile
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID retrieves a tenant profile by ID
func (r *TenantRepository) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	result := r.db.First(&tenant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, result.Error
	}
	return &tenant, nil
}

// GetByUserID retrieves the tenant profile for a user
func (r *TenantRepository) GetByUserID(userID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	result := r.db.Where("user_id = ?", userID).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, result.Error
	}
	return &tenant, nil
}

// OwnerTenant is the owner-dashboard tenants view: tenant contact info
// with the property and lease date range, scoped by property ownership.
type OwnerTenant struct {
	TenantID      uint      `json:"tenant_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PropertyID    uint      `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	Address       string    `json:"address"`
	LeaseStart    time.Time `json:"lease_start"`
	LeaseEnd      time.Time `json:"lease_end"`
}

// ListByPropertyOwner joins users through tenant profiles, properties
// and leases, keeping only tenants on the given owner's properties.
func (r *TenantRepository) ListByPropertyOwner(ownerID uint) ([]OwnerTenant, error) {
	var rows []OwnerTenant
	err := r.db.Table("users u").
		Select("u.id AS tenant_id, u.username, u.email, t.property_id, p.title AS property_title, p.address, l.start_date AS lease_start, l.end_date AS lease_end").
		Joins("JOIN tenants t ON u.id = t.user_id").
		Joins("JOIN properties p ON t.property_id = p.id").
		Joins("JOIN leases l ON t.id = l.tenant_id").
		Where("p.owner_id = ?", ownerID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
