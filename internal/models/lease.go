package models

import (
	"time"
)

// Lease binds one property to one tenant for a date range
type Lease struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PropertyID      uint      `gorm:"index;not null" json:"property_id"`
	TenantID        uint      `gorm:"index;not null" json:"tenant_id"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	MonthlyRent     float64   `gorm:"not null" json:"monthly_rent"`
	SecurityDeposit float64   `json:"security_deposit"`
	Document        string    `gorm:"size:255" json:"document"`
	CreatedAt       time.Time `json:"created_at"`

	// Relations
	Property *Property     `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Tenant   *Tenant       `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Payments []RentPayment `gorm:"foreignKey:LeaseID" json:"payments,omitempty"`
}

// TableName specifies the table name for Lease model
func (Lease) TableName() string {
	return "leases"
}

// PaymentMethod represents how a rent payment was made
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodTelebirr     PaymentMethod = "telebirr"
)

// RentPayment is a payment recorded against exactly one lease
type RentPayment struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	LeaseID     uint          `gorm:"index;not null" json:"lease_id"`
	Amount      float64       `gorm:"not null" json:"amount"`
	PaymentDate time.Time     `gorm:"not null" json:"payment_date"`
	Method      PaymentMethod `gorm:"size:20" json:"method"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TableName specifies the table name for RentPayment model
func (RentPayment) TableName() string {
	return "rent_payments"
}
