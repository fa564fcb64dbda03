package models

import (
	"time"
)

// PropertyType represents the listing type of a property
type PropertyType string

const (
	PropertyTypeRent PropertyType = "rent"
	PropertyTypeSale PropertyType = "sale"
)

// PropertyCategory represents the usage category of a property
type PropertyCategory string

const (
	CategoryResidential PropertyCategory = "residential"
	CategoryCommercial  PropertyCategory = "commercial"
	CategoryIndustrial  PropertyCategory = "industrial"
)

// PropertyStatus represents the occupancy status of a property
type PropertyStatus string

const (
	StatusAvailable   PropertyStatus = "available"
	StatusOccupied    PropertyStatus = "occupied"
	StatusMaintenance PropertyStatus = "maintenance"
)

// Property represents a listed property owned by exactly one user
type Property struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Title       string           `gorm:"size:200;not null" json:"title"`
	Type        PropertyType     `gorm:"size:10;not null;default:'sale'" json:"type"`
	Category    PropertyCategory `gorm:"size:20;not null;default:'residential'" json:"category"`
	Description string           `json:"description"`
	Address     string           `gorm:"size:255;not null" json:"address"`
	Price       float64          `json:"price"`
	Bedrooms    int              `json:"bedrooms"`
	Bathrooms   int              `json:"bathrooms"`
	SquareFeet  int              `gorm:"column:square_feet" json:"square_feet"`
	Status      PropertyStatus   `gorm:"size:20" json:"status"`
	Image       string           `gorm:"size:255" json:"image"`
	Location    string           `gorm:"size:100" json:"location"`
	OwnerID     uint             `gorm:"index;not null" json:"owner_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relations
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"-"`
	Amenities []Amenity `gorm:"many2many:property_amenities" json:"amenities,omitempty"`
}

// TableName specifies the table name for Property model
func (Property) TableName() string {
	return "properties"
}

// Amenity is a named feature attached to properties through the
// property_amenities association table.
type Amenity struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

// TableName specifies the table name for Amenity model
func (Amenity) TableName() string {
	return "amenities"
}
