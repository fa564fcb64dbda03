package models

import (
	"time"
)

// RequestStatus is the closed set of maintenance ticket states
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
)

// Valid reports whether s is one of the known ticket states.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestInProgress, RequestCompleted:
		return true
	}
	return false
}

// MaintenanceRequest is a ticket created by a tenant for their property
type MaintenanceRequest struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	PropertyID  uint          `gorm:"index;not null" json:"property_id"`
	TenantID    uint          `gorm:"index;not null" json:"tenant_id"`
	Description string        `json:"description"`
	Status      RequestStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TableName specifies the table name for MaintenanceRequest model
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
