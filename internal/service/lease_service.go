package service

import (
	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/internal/repository"
)

// LeaseService handles the lease and payment ledger
type LeaseService struct {
	leaseRepo   *repository.LeaseRepository
	tenantRepo  *repository.TenantRepository
	paymentRepo *repository.PaymentRepository
}

// NewLeaseService creates a new LeaseService
func NewLeaseService(
	leaseRepo *repository.LeaseRepository,
	tenantRepo *repository.TenantRepository,
	paymentRepo *repository.PaymentRepository,
) *LeaseService {
	return &LeaseService{
		leaseRepo:   leaseRepo,
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
	}
}

// GetByID retrieves a lease with its property, tenant (including the
// tenant's user) and full payment history nested under the lease fields.
func (s *LeaseService) GetByID(id uint) (*models.Lease, error) {
	return s.leaseRepo.GetDetailByID(id)
}

// ListForUser resolves the tenant profile for a user and returns that
// tenant's leases. Fails with repository.ErrTenantNotFound when the
// profile is not provisioned.
func (s *LeaseService) ListForUser(userID uint) ([]models.Lease, error) {
	tenant, err := s.tenantRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.leaseRepo.ListByTenant(tenant.ID)
}

// ListPaymentsForTenant retrieves payments on any of a tenant's leases.
// Fails with repository.ErrTenantNotFound for an unknown profile id
// rather than reporting an empty ledger.
func (s *LeaseService) ListPaymentsForTenant(tenantID uint) ([]models.RentPayment, error) {
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByTenant(tenantID)
}
