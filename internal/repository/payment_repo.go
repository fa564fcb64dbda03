package repository

import (
	"github.com/propertyhub/internal/models"
	"gorm.io/gorm"
)

// PaymentRepository handles rent payment data access
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new rent payment
func (r *PaymentRepository) Create(payment *models.RentPayment) error {
	return r.db.Create(payment).Error
}

// ListAll retrieves all rent payments
func (r *PaymentRepository) ListAll() ([]models.RentPayment, error) {
	var payments []models.RentPayment
	if err := r.db.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByTenant retrieves payments on any of a tenant's leases
func (r *PaymentRepository) ListByTenant(tenantID uint) ([]models.RentPayment, error) {
	var payments []models.RentPayment
	err := r.db.
		Where("lease_id IN (?)", r.db.Model(&models.Lease{}).Select("id").Where("tenant_id = ?", tenantID)).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByPropertyOwner retrieves payments on leases whose property
// belongs to the given owner, hopping payments -> leases -> properties.
func (r *PaymentRepository) ListByPropertyOwner(ownerID uint) ([]models.RentPayment, error) {
	var payments []models.RentPayment
	err := r.db.
		Joins("JOIN leases l ON rent_payments.lease_id = l.id").
		Joins("JOIN properties p ON l.property_id = p.id").
		Where("p.owner_id = ?", ownerID).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
