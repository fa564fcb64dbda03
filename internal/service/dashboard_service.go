package service

import (
	"errors"

	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/internal/repository"
)

// ErrRoleForbidden means the user's role matched none of the dashboard
// branches.
var ErrRoleForbidden = errors.New("role not permitted")

// DashboardService assembles the role-scoped dashboard bundles. The
// three roles have fundamentally different authorization boundaries:
// admin sees global state, an owner's scope anchors on property
// ownership, a tenant's scope anchors on the tenant profile.
type DashboardService struct {
	userRepo        *repository.UserRepository
	tenantRepo      *repository.TenantRepository
	propertyRepo    *repository.PropertyRepository
	leaseRepo       *repository.LeaseRepository
	paymentRepo     *repository.PaymentRepository
	maintenanceRepo *repository.MaintenanceRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	userRepo *repository.UserRepository,
	tenantRepo *repository.TenantRepository,
	propertyRepo *repository.PropertyRepository,
	leaseRepo *repository.LeaseRepository,
	paymentRepo *repository.PaymentRepository,
	maintenanceRepo *repository.MaintenanceRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		tenantRepo:      tenantRepo,
		propertyRepo:    propertyRepo,
		leaseRepo:       leaseRepo,
		paymentRepo:     paymentRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// AdminDashboard is the unscoped global view
type AdminDashboard struct {
	Properties []models.Property           `json:"properties"`
	Leases     []models.Lease              `json:"leases"`
	Payments   []models.RentPayment        `json:"payments"`
	Requests   []models.MaintenanceRequest `json:"requests"`
	Users      []models.User               `json:"users"`
}

// OwnerDashboard is scoped to properties owned by one user
type OwnerDashboard struct {
	Properties []models.Property           `json:"properties"`
	Payments   []models.RentPayment        `json:"payments"`
	Leases     []models.Lease              `json:"leases"`
	Requests   []models.MaintenanceRequest `json:"requests"`
	Tenants    []repository.OwnerTenant    `json:"tenants"`
}

// TenantDashboard is scoped to one tenant profile
type TenantDashboard struct {
	Leases   []models.Lease              `json:"leases"`
	Payments []models.RentPayment        `json:"payments"`
	Requests []models.MaintenanceRequest `json:"requests"`
}

// GetDashboard looks up the user and returns the bundle for its role.
// The three role branches plus the forbidden fallback are mutually
// exclusive and exhaustive.
func (s *DashboardService) GetDashboard(userID uint) (interface{}, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleAdmin:
		return s.adminDashboard()
	case models.RoleOwner:
		return s.OwnerDashboard(userID)
	case models.RoleTenant:
		return s.tenantDashboard(userID)
	default:
		return nil, ErrRoleForbidden
	}
}

func (s *DashboardService) adminDashboard() (*AdminDashboard, error) {
	properties, err := s.propertyRepo.ListAll()
	if err != nil {
		return nil, err
	}
	leases, err := s.leaseRepo.ListAll()
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListAll()
	if err != nil {
		return nil, err
	}
	requests, err := s.maintenanceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		Properties: properties,
		Leases:     leases,
		Payments:   payments,
		Requests:   requests,
		Users:      users,
	}, nil
}

// OwnerDashboard assembles the owner bundle. Every list anchors its
// scope on the property owner, not on the lease or tenant directly.
// Exported because the owner self-service endpoint serves the same
// bundle for the authenticated caller.
func (s *DashboardService) OwnerDashboard(ownerID uint) (*OwnerDashboard, error) {
	properties, err := s.propertyRepo.ListAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByPropertyOwner(ownerID)
	if err != nil {
		return nil, err
	}
	leases, err := s.leaseRepo.ListByPropertyOwner(ownerID)
	if err != nil {
		return nil, err
	}
	requests, err := s.maintenanceRepo.ListByPropertyOwner(ownerID)
	if err != nil {
		return nil, err
	}
	tenants, err := s.tenantRepo.ListByPropertyOwner(ownerID)
	if err != nil {
		return nil, err
	}

	return &OwnerDashboard{
		Properties: properties,
		Payments:   payments,
		Leases:     leases,
		Requests:   requests,
		Tenants:    tenants,
	}, nil
}

func (s *DashboardService) tenantDashboard(userID uint) (*TenantDashboard, error) {
	// A tenant-role user without a provisioned profile is reported as
	// "tenant profile not found", never as a missing user.
	tenant, err := s.tenantRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	leases, err := s.leaseRepo.ListByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	requests, err := s.maintenanceRepo.ListByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}

	return &TenantDashboard{
		Leases:   leases,
		Payments: payments,
		Requests: requests,
	}, nil
}
