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

func newMaintenanceService(db *gorm.DB) *service.MaintenanceService {
	return service.NewMaintenanceService(
		repository.NewMaintenanceRepository(db),
		repository.NewTenantRepository(db),
	)
}

func TestMaintenanceCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)

	owner := seedUser(t, db, "owner", models.RoleOwner)
	tenantUser := seedUser(t, db, "tenant", models.RoleTenant)
	property := seedProperty(t, db, "Rented", owner.ID)
	tenant := seedTenant(t, db, tenantUser.ID, property.ID)

	request, err := svc.Create(tenantUser, &service.CreateRequest{
		PropertyID:  property.ID,
		Description: "no hot water",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.Equal(t, tenant.ID, request.TenantID)
}

func TestMaintenanceCreateNonTenantRole(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)
	owner := seedUser(t, db, "owner", models.RoleOwner)

	_, err := svc.Create(owner, &service.CreateRequest{
		PropertyID:  1,
		Description: "no hot water",
	})
	assert.ErrorIs(t, err, service.ErrNotTenant)
}

func TestMaintenanceCreateWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)
	orphan := seedUser(t, db, "orphan", models.RoleTenant)

	_, err := svc.Create(orphan, &service.CreateRequest{
		PropertyID:  1,
		Description: "no hot water",
	})
	assert.ErrorIs(t, err, repository.ErrTenantNotFound)
}

func TestMaintenanceUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)

	owner := seedUser(t, db, "owner", models.RoleOwner)
	tenantUser := seedUser(t, db, "tenant", models.RoleTenant)
	property := seedProperty(t, db, "Rented", owner.ID)
	tenant := seedTenant(t, db, tenantUser.ID, property.ID)
	request := seedRequest(t, db, property.ID, tenant.ID, "no hot water")

	require.NoError(t, svc.UpdateStatus(request.ID, models.RequestInProgress))

	var got models.MaintenanceRequest
	require.NoError(t, db.First(&got, request.ID).Error)
	assert.Equal(t, models.RequestInProgress, got.Status)
}

func TestMaintenanceUpdateStatusRejectsUnknownState(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)

	err := svc.UpdateStatus(1, models.RequestStatus("resolved"))
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestMaintenanceUpdateStatusUnknownRequest(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)

	err := svc.UpdateStatus(42, models.RequestCompleted)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}

func TestMaintenanceListEnriched(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)

	owner := seedUser(t, db, "owner", models.RoleOwner)
	tenantUser := seedUser(t, db, "tenant", models.RoleTenant)
	otherUser := seedUser(t, db, "other", models.RoleTenant)
	property := seedProperty(t, db, "Rented", owner.ID)
	tenant := seedTenant(t, db, tenantUser.ID, property.ID)
	other := seedTenant(t, db, otherUser.ID, property.ID)
	seedRequest(t, db, property.ID, tenant.ID, "no hot water")
	seedRequest(t, db, property.ID, other.ID, "door lock broken")

	all, err := svc.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(&tenant.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "no hot water", scoped[0].Description)
	assert.Equal(t, "Rented", scoped[0].PropertyTitle)
	assert.Equal(t, tenantUser.Username, scoped[0].TenantName)
}

func TestMaintenanceListByTenantUnknownProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newMaintenanceService(db)

	_, err := svc.ListByTenant(42)
	assert.ErrorIs(t, err, repository.ErrTenantNotFound)
}
