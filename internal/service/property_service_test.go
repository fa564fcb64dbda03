package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/internal/repository"
	"github.com/propertyhub/internal/service"
)

func newPropertyService(db *gorm.DB) (*service.PropertyService, *repository.PropertyRepository) {
	propertyRepo := repository.NewPropertyRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	return service.NewPropertyService(propertyRepo, amenityRepo), propertyRepo
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func createRequest(ownerID uint) *service.CreatePropertyRequest {
	return &service.CreatePropertyRequest{
		Title:       "Gerji Condo",
		Type:        models.PropertyTypeRent,
		Category:    models.CategoryResidential,
		Description: "Two bedroom condo",
		Address:     "Gerji, Addis Ababa",
		Price:       floatPtr(18000),
		Bedrooms:    intPtr(2),
		Bathrooms:   intPtr(1),
		SquareFeet:  intPtr(950),
		Status:      models.StatusAvailable,
		Image:       "condo.jpg",
		Location:    "Gerji",
		OwnerID:     ownerID,
	}
}

func TestPropertyCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)
	owner := seedUser(t, db, "owner", models.RoleOwner)

	created, err := svc.Create(createRequest(owner.ID))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Empty(t, created.Amenities)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gerji Condo", got.Title)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.Equal(t, float64(18000), got.Price)
}

func TestPropertyGetUnknown(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)
}

func TestPropertyUpdatePatch(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)
	owner := seedUser(t, db, "owner", models.RoleOwner)
	created, err := svc.Create(createRequest(owner.ID))
	require.NoError(t, err)

	status := models.StatusOccupied
	updated, err := svc.Update(created.ID, &service.PropertyPatch{
		Title:  strPtr("Gerji Condo Renovated"),
		Price:  floatPtr(21000),
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gerji Condo Renovated", updated.Title)
	assert.Equal(t, float64(21000), updated.Price)
	assert.Equal(t, models.StatusOccupied, updated.Status)
	// Untouched fields survive
	assert.Equal(t, "Gerji, Addis Ababa", updated.Address)
}

func TestPropertyUpdateEmptyPatch(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)
	owner := seedUser(t, db, "owner", models.RoleOwner)
	created, err := svc.Create(createRequest(owner.ID))
	require.NoError(t, err)

	_, err = svc.Update(created.ID, &service.PropertyPatch{})
	assert.ErrorIs(t, err, service.ErrEmptyPatch)
}

func TestPropertyUpdateUnknown(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)

	_, err := svc.Update(42, &service.PropertyPatch{Title: strPtr("ghost")})
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)
}

func TestReplaceAmenities(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)
	owner := seedUser(t, db, "owner", models.RoleOwner)
	created, err := svc.Create(createRequest(owner.ID))
	require.NoError(t, err)

	parking, err := svc.CreateAmenity("Parking")
	require.NoError(t, err)
	gym, err := svc.CreateAmenity("Gym")
	require.NoError(t, err)
	pool, err := svc.CreateAmenity("Swimming Pool")
	require.NoError(t, err)

	require.NoError(t, svc.ReplaceAmenities(created.ID, []uint{parking.ID, gym.ID}))
	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Parking", "Gym"}, got.Amenities)

	// Replacement is total, not additive
	require.NoError(t, svc.ReplaceAmenities(created.ID, []uint{pool.ID}))
	got, err = svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Swimming Pool"}, got.Amenities)

	// Replaying the same set is idempotent
	require.NoError(t, svc.ReplaceAmenities(created.ID, []uint{pool.ID}))
	got, err = svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Swimming Pool"}, got.Amenities)

	// An empty list clears all associations
	require.NoError(t, svc.ReplaceAmenities(created.ID, nil))
	got, err = svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Amenities)
}

func TestReplaceAmenitiesUnknownProperty(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)

	err := svc.ReplaceAmenities(42, []uint{1})
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)
}

func TestPropertyDeleteRemovesAmenityLinks(t *testing.T) {
	db := newTestDB(t)
	svc, propertyRepo := newPropertyService(db)
	owner := seedUser(t, db, "owner", models.RoleOwner)
	created, err := svc.Create(createRequest(owner.ID))
	require.NoError(t, err)

	parking, err := svc.CreateAmenity("Parking")
	require.NoError(t, err)
	require.NoError(t, svc.ReplaceAmenities(created.ID, []uint{parking.ID}))

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)

	// No orphaned association rows survive the delete
	links, err := propertyRepo.CountAmenityLinks(created.ID)
	require.NoError(t, err)
	assert.Zero(t, links)

	// The amenity itself stays in the catalog
	amenities, err := svc.ListAmenities()
	require.NoError(t, err)
	assert.Len(t, amenities, 1)
}

func TestPropertyDeleteUnknown(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)

	assert.ErrorIs(t, svc.Delete(42), repository.ErrPropertyNotFound)
}

func TestCreateAmenityDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)

	_, err := svc.CreateAmenity("Parking")
	require.NoError(t, err)

	_, err = svc.CreateAmenity("Parking")
	assert.ErrorIs(t, err, repository.ErrAmenityExists)
}

func TestPropertyListFilters(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newPropertyService(db)
	owner := seedUser(t, db, "owner", models.RoleOwner)

	cheap := createRequest(owner.ID)
	cheap.Title = "Cheap Studio"
	cheap.Price = floatPtr(8000)
	cheap.Bedrooms = intPtr(1)
	_, err := svc.Create(cheap)
	require.NoError(t, err)

	mid := createRequest(owner.ID)
	mid.Title = "Mid Condo"
	mid.Price = floatPtr(18000)
	midView, err := svc.Create(mid)
	require.NoError(t, err)

	posh := createRequest(owner.ID)
	posh.Title = "Posh Villa"
	posh.Price = floatPtr(60000)
	posh.Bedrooms = intPtr(4)
	poshView, err := svc.Create(posh)
	require.NoError(t, err)

	parking, err := svc.CreateAmenity("Parking")
	require.NoError(t, err)
	gym, err := svc.CreateAmenity("Gym")
	require.NoError(t, err)
	require.NoError(t, svc.ReplaceAmenities(midView.ID, []uint{parking.ID, gym.ID}))
	require.NoError(t, svc.ReplaceAmenities(poshView.ID, []uint{parking.ID}))

	// Price range
	got, err := svc.List(repository.PropertyFilter{MinPrice: floatPtr(10000), MaxPrice: floatPtr(30000)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mid Condo", got[0].Title)

	// Bedrooms
	got, err = svc.List(repository.PropertyFilter{Bedrooms: intPtr(4)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Posh Villa", got[0].Title)

	// A single amenity matches every property carrying it
	got, err = svc.List(repository.PropertyFilter{AmenityIDs: []uint{parking.ID}})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Multiple amenity ids require all of them on the same property
	got, err = svc.List(repository.PropertyFilter{AmenityIDs: []uint{parking.ID, gym.ID}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mid Condo", got[0].Title)

	// No filter returns everything
	got, err = svc.List(repository.PropertyFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
