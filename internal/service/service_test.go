package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/propertyhub/internal/models"
)

// newTestDB opens an in-memory store and migrates the full schema. The
// pool is pinned to one connection so every query sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Amenity{},
		&models.Tenant{},
		&models.Lease{},
		&models.RentPayment{},
		&models.MaintenanceRequest{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProperty(t *testing.T, db *gorm.DB, title string, ownerID uint) *models.Property {
	t.Helper()

	property := &models.Property{
		Title:      title,
		Type:       models.PropertyTypeRent,
		Category:   models.CategoryResidential,
		Address:    "10 Test Street",
		Price:      15000,
		Bedrooms:   2,
		Bathrooms:  1,
		SquareFeet: 900,
		Status:     models.StatusAvailable,
		OwnerID:    ownerID,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func seedTenant(t *testing.T, db *gorm.DB, userID, propertyID uint) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{UserID: userID, PropertyID: propertyID}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedLease(t *testing.T, db *gorm.DB, propertyID, tenantID uint) *models.Lease {
	t.Helper()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lease := &models.Lease{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     start.AddDate(1, 0, 0),
		MonthlyRent: 15000,
	}
	require.NoError(t, db.Create(lease).Error)
	return lease
}

func seedPayment(t *testing.T, db *gorm.DB, leaseID uint, amount float64) *models.RentPayment {
	t.Helper()

	payment := &models.RentPayment{
		LeaseID:     leaseID,
		Amount:      amount,
		PaymentDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Method:      models.MethodBankTransfer,
	}
	require.NoError(t, db.Create(payment).Error)
	return payment
}

func seedRequest(t *testing.T, db *gorm.DB, propertyID, tenantID uint, description string) *models.MaintenanceRequest {
	t.Helper()

	request := &models.MaintenanceRequest{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		Description: description,
		Status:      models.RequestPending,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}
