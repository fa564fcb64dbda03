package service

import (
	"errors"

	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/internal/repository"
)

var (
	ErrNotTenant     = errors.New("only tenants can create maintenance requests")
	ErrInvalidStatus = errors.New("invalid status")
)

// MaintenanceService handles maintenance request tracking
type MaintenanceService struct {
	maintenanceRepo *repository.MaintenanceRepository
	tenantRepo      *repository.TenantRepository
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(
	maintenanceRepo *repository.MaintenanceRepository,
	tenantRepo *repository.TenantRepository,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		tenantRepo:      tenantRepo,
	}
}

// List retrieves enriched requests, optionally scoped to one tenant
func (s *MaintenanceService) List(tenantID *uint) ([]repository.RequestListing, error) {
	return s.maintenanceRepo.ListEnriched(tenantID)
}

// ListByTenant retrieves the raw requests filed by a tenant profile.
// Fails with repository.ErrTenantNotFound for an unknown profile id.
func (s *MaintenanceService) ListByTenant(tenantID uint) ([]models.MaintenanceRequest, error) {
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		return nil, err
	}
	return s.maintenanceRepo.ListByTenant(tenantID)
}

// CreateRequest represents a new maintenance ticket
type CreateRequest struct {
	PropertyID  uint   `json:"property_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Create files a new ticket for the caller's tenant profile. Only
// tenant-role callers may create requests; a tenant-role caller with no
// profile fails with repository.ErrTenantNotFound. Status always starts
// at pending.
func (s *MaintenanceService) Create(caller *models.User, req *CreateRequest) (*models.MaintenanceRequest, error) {
	if caller.Role != models.RoleTenant {
		return nil, ErrNotTenant
	}

	tenant, err := s.tenantRepo.GetByUserID(caller.ID)
	if err != nil {
		return nil, err
	}

	request := &models.MaintenanceRequest{
		PropertyID:  req.PropertyID,
		TenantID:    tenant.ID,
		Description: req.Description,
		Status:      models.RequestPending,
	}

	if err := s.maintenanceRepo.Create(request); err != nil {
		return nil, err
	}

	return request, nil
}

// UpdateStatus moves a ticket to one of the closed set of states
func (s *MaintenanceService) UpdateStatus(id uint, status models.RequestStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.maintenanceRepo.UpdateStatus(id, status)
}
