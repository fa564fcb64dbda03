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

func newDashboardService(db *gorm.DB) *service.DashboardService {
	return service.NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewTenantRepository(db),
		repository.NewPropertyRepository(db),
		repository.NewLeaseRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewMaintenanceRepository(db),
	)
}

// seedTwoOwnerWorld builds two fully disjoint owner scopes so the
// scoping assertions can detect any cross-owner leakage.
func seedTwoOwnerWorld(t *testing.T, db *gorm.DB) (owner, other, tenantUser *models.User, tenant *models.Tenant) {
	t.Helper()

	owner = seedUser(t, db, "owner1", models.RoleOwner)
	other = seedUser(t, db, "owner2", models.RoleOwner)
	tenantUser = seedUser(t, db, "tenant1", models.RoleTenant)
	otherTenantUser := seedUser(t, db, "tenant2", models.RoleTenant)

	p1 := seedProperty(t, db, "Owner One Apartment", owner.ID)
	seedProperty(t, db, "Owner One Villa", owner.ID)
	px := seedProperty(t, db, "Owner Two Office", other.ID)

	tenant = seedTenant(t, db, tenantUser.ID, p1.ID)
	otherTenant := seedTenant(t, db, otherTenantUser.ID, px.ID)

	l1 := seedLease(t, db, p1.ID, tenant.ID)
	lx := seedLease(t, db, px.ID, otherTenant.ID)

	seedPayment(t, db, l1.ID, 15000)
	seedPayment(t, db, l1.ID, 15000)
	seedPayment(t, db, lx.ID, 40000)

	seedRequest(t, db, p1.ID, tenant.ID, "broken window")
	seedRequest(t, db, px.ID, otherTenant.ID, "elevator stuck")

	return owner, other, tenantUser, tenant
}

func TestDashboardAdminSeesEverything(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	seedTwoOwnerWorld(t, db)
	admin := seedUser(t, db, "admin", models.RoleAdmin)

	result, err := svc.GetDashboard(admin.ID)
	require.NoError(t, err)

	dashboard, ok := result.(*service.AdminDashboard)
	require.True(t, ok)
	assert.Len(t, dashboard.Properties, 3)
	assert.Len(t, dashboard.Leases, 2)
	assert.Len(t, dashboard.Payments, 3)
	assert.Len(t, dashboard.Requests, 2)
	assert.Len(t, dashboard.Users, 5)
}

func TestDashboardOwnerScopedToOwnedProperties(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	owner, _, tenantUser, _ := seedTwoOwnerWorld(t, db)

	result, err := svc.GetDashboard(owner.ID)
	require.NoError(t, err)

	dashboard, ok := result.(*service.OwnerDashboard)
	require.True(t, ok)

	assert.Len(t, dashboard.Properties, 2)
	for _, p := range dashboard.Properties {
		assert.Equal(t, owner.ID, p.OwnerID)
	}

	// Only the lease, payments and request on owner1's property; the
	// other owner's 40000 payment must not leak in.
	assert.Len(t, dashboard.Leases, 1)
	require.Len(t, dashboard.Payments, 2)
	for _, p := range dashboard.Payments {
		assert.Equal(t, float64(15000), p.Amount)
	}
	assert.Len(t, dashboard.Requests, 1)
	assert.Equal(t, "broken window", dashboard.Requests[0].Description)

	require.Len(t, dashboard.Tenants, 1)
	assert.Equal(t, tenantUser.Username, dashboard.Tenants[0].Username)
}

func TestDashboardOwnerWithNoPropertiesIsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	seedTwoOwnerWorld(t, db)
	idle := seedUser(t, db, "idleowner", models.RoleOwner)

	result, err := svc.GetDashboard(idle.ID)
	require.NoError(t, err)

	dashboard, ok := result.(*service.OwnerDashboard)
	require.True(t, ok)
	assert.Empty(t, dashboard.Properties)
	assert.Empty(t, dashboard.Leases)
	assert.Empty(t, dashboard.Payments)
	assert.Empty(t, dashboard.Requests)
	assert.Empty(t, dashboard.Tenants)
}

func TestDashboardTenantScopedToProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	_, _, tenantUser, _ := seedTwoOwnerWorld(t, db)

	result, err := svc.GetDashboard(tenantUser.ID)
	require.NoError(t, err)

	dashboard, ok := result.(*service.TenantDashboard)
	require.True(t, ok)
	assert.Len(t, dashboard.Leases, 1)
	assert.Len(t, dashboard.Payments, 2)
	require.Len(t, dashboard.Requests, 1)
	assert.Equal(t, "broken window", dashboard.Requests[0].Description)
}

func TestDashboardTenantWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)
	orphan := seedUser(t, db, "orphan", models.RoleTenant)

	_, err := svc.GetDashboard(orphan.ID)
	assert.ErrorIs(t, err, repository.ErrTenantNotFound)
}

func TestDashboardUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	_, err := svc.GetDashboard(9999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestDashboardUnknownRoleForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	// A row with a role outside the closed set can only come from
	// outside the API surface; the dashboard still refuses it.
	ghost := seedUser(t, db, "ghost", models.RoleTenant)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", ghost.ID).
		Update("role", "superuser").Error)

	_, err := svc.GetDashboard(ghost.ID)
	assert.ErrorIs(t, err, service.ErrRoleForbidden)
}
