package seed

import (
	"time"

	"gorm.io/gorm"

	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/pkg/crypto"
)

var amenityNames = []string{
	"Parking",
	"Swimming Pool",
	"Gym",
	"Elevator",
	"Balcony",
	"Garden",
	"Security",
	"Backup Generator",
	"Water Tank",
	"Internet",
}

// Run populates an empty database with a starter dataset: one account per
// role, the amenity catalog, and a handful of listings with an active lease,
// payments and an open maintenance ticket. It is a no-op when any user
// already exists, so restarts never duplicate rows. Everything is inserted
// in a single transaction.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		adminHash, err := crypto.HashPassword("admin123")
		if err != nil {
			return err
		}
		ownerHash, err := crypto.HashPassword("owner123")
		if err != nil {
			return err
		}
		tenantHash, err := crypto.HashPassword("tenant123")
		if err != nil {
			return err
		}

		admin := models.User{
			Username:     "admin",
			Email:        "admin@propertyhub.com",
			PasswordHash: adminHash,
			Role:         models.RoleAdmin,
		}
		owner := models.User{
			Username:     "abebe",
			Email:        "abebe@propertyhub.com",
			PasswordHash: ownerHash,
			Role:         models.RoleOwner,
		}
		tenantUser := models.User{
			Username:     "sara",
			Email:        "sara@propertyhub.com",
			PasswordHash: tenantHash,
			Role:         models.RoleTenant,
		}
		for _, u := range []*models.User{&admin, &owner, &tenantUser} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		amenities := make([]models.Amenity, 0, len(amenityNames))
		for _, name := range amenityNames {
			amenities = append(amenities, models.Amenity{Name: name})
		}
		if err := tx.Create(&amenities).Error; err != nil {
			return err
		}

		properties := []models.Property{
			{
				Title:       "Bole Apartment",
				Type:        models.PropertyTypeRent,
				Category:    models.CategoryResidential,
				Description: "Two bedroom apartment near Bole Medhanealem",
				Address:     "Bole Road, Addis Ababa",
				Price:       25000,
				Bedrooms:    2,
				Bathrooms:   2,
				SquareFeet:  1100,
				Status:      models.StatusOccupied,
				Location:    "Bole",
				OwnerID:     owner.ID,
				Amenities:   []models.Amenity{amenities[0], amenities[3], amenities[9]},
			},
			{
				Title:       "CMC Villa",
				Type:        models.PropertyTypeSale,
				Category:    models.CategoryResidential,
				Description: "Four bedroom villa with a private garden",
				Address:     "CMC, Addis Ababa",
				Price:       14500000,
				Bedrooms:    4,
				Bathrooms:   3,
				SquareFeet:  2800,
				Status:      models.StatusAvailable,
				Location:    "CMC",
				OwnerID:     owner.ID,
				Amenities:   []models.Amenity{amenities[0], amenities[5], amenities[6]},
			},
			{
				Title:       "Kazanchis Office Space",
				Type:        models.PropertyTypeRent,
				Category:    models.CategoryCommercial,
				Description: "Open plan office floor in a commercial tower",
				Address:     "Kazanchis, Addis Ababa",
				Price:       80000,
				Bedrooms:    0,
				Bathrooms:   2,
				SquareFeet:  3200,
				Status:      models.StatusAvailable,
				Location:    "Kazanchis",
				OwnerID:     owner.ID,
				Amenities:   []models.Amenity{amenities[3], amenities[6], amenities[7]},
			},
		}
		if err := tx.Create(&properties).Error; err != nil {
			return err
		}

		leaseStart := time.Now().AddDate(0, -6, 0)
		leaseEnd := leaseStart.AddDate(1, 0, 0)

		tenant := models.Tenant{
			UserID:     tenantUser.ID,
			PropertyID: properties[0].ID,
			LeaseStart: &leaseStart,
			LeaseEnd:   &leaseEnd,
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		lease := models.Lease{
			PropertyID:      properties[0].ID,
			TenantID:        tenant.ID,
			StartDate:       leaseStart,
			EndDate:         leaseEnd,
			MonthlyRent:     25000,
			SecurityDeposit: 50000,
		}
		if err := tx.Create(&lease).Error; err != nil {
			return err
		}

		payments := []models.RentPayment{
			{LeaseID: lease.ID, Amount: 25000, PaymentDate: leaseStart.AddDate(0, 0, 1), Method: models.MethodBankTransfer},
			{LeaseID: lease.ID, Amount: 25000, PaymentDate: leaseStart.AddDate(0, 1, 1), Method: models.MethodTelebirr},
		}
		if err := tx.Create(&payments).Error; err != nil {
			return err
		}

		request := models.MaintenanceRequest{
			PropertyID:  properties[0].ID,
			TenantID:    tenant.ID,
			Description: "Kitchen faucet is leaking",
			Status:      models.RequestPending,
		}
		return tx.Create(&request).Error
	})
}
