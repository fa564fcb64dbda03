package repository

import (
	"errors"
	"time"

	"github.com/propertyhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("maintenance request not found")
)

// MaintenanceRepository handles maintenance request data access
type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create creates a new maintenance request
func (r *MaintenanceRepository) Create(request *models.MaintenanceRequest) error {
	return r.db.Create(request).Error
}

// RequestListing is a maintenance row enriched with the property title
// and the tenant's username.
type RequestListing struct {
	ID            uint                 `json:"id"`
	PropertyID    uint                 `json:"property_id"`
	TenantID      uint                 `json:"tenant_id"`
	Description   string               `json:"description"`
	Status        models.RequestStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	PropertyTitle string               `json:"property_title"`
	TenantName    string               `json:"tenant_name"`
}

// ListEnriched retrieves requests joined with property title and tenant
// username, optionally scoped to one tenant profile.
func (r *MaintenanceRepository) ListEnriched(tenantID *uint) ([]RequestListing, error) {
	var rows []RequestListing
	q := r.db.Table("maintenance_requests mr").
		Select("mr.id, mr.property_id, mr.tenant_id, mr.description, mr.status, mr.created_at, p.title AS property_title, u.username AS tenant_name").
		Joins("JOIN properties p ON mr.property_id = p.id").
		Joins("JOIN tenants t ON mr.tenant_id = t.id").
		Joins("JOIN users u ON t.user_id = u.id")
	if tenantID != nil {
		q = q.Where("mr.tenant_id = ?", *tenantID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll retrieves all maintenance requests
func (r *MaintenanceRepository) ListAll() ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	if err := r.db.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByTenant retrieves all requests filed by a tenant profile
func (r *MaintenanceRepository) ListByTenant(tenantID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	if err := r.db.Where("tenant_id = ?", tenantID).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByPropertyOwner retrieves requests on properties owned by a user
func (r *MaintenanceRepository) ListByPropertyOwner(ownerID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := r.db.
		Where("property_id IN (?)", r.db.Model(&models.Property{}).Select("id").Where("owner_id = ?", ownerID)).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus sets the status of a request
func (r *MaintenanceRepository) UpdateStatus(id uint, status models.RequestStatus) error {
	result := r.db.Model(&models.MaintenanceRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
