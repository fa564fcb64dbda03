package models

import (
	"time"
)

// Tenant is the tenant profile layered on a tenant-role user. A user with
// role=tenant but no Tenant row is "not provisioned", which callers must
// report separately from a missing user.
type Tenant struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	PropertyID uint       `gorm:"index" json:"property_id"`
	LeaseStart *time.Time `json:"lease_start,omitempty"`
	LeaseEnd   *time.Time `json:"lease_end,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	// Relations
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}

// TableName specifies the table name for Tenant model
func (Tenant) TableName() string {
	return "tenants"
}
