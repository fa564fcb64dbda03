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

func newUserService(db *gorm.DB) *service.UserService {
	return service.NewUserService(repository.NewUserRepository(db))
}

func rolePtr(r models.Role) *models.Role { return &r }

func TestUserCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user, err := svc.Create(&service.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
		Role:     models.RoleOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestUserCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	seedUser(t, db, "bob", models.RoleOwner)

	_, err := svc.Create(&service.CreateUserRequest{
		Username: "bob",
		Email:    "fresh@example.com",
		Password: "secret123",
		Role:     models.RoleTenant,
	})
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestUserUpdateRoleRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := seedUser(t, db, "bob", models.RoleTenant)

	err := svc.Update(user.ID, &service.UserPatch{Role: rolePtr(models.RoleOwner)}, models.RoleOwner)
	assert.ErrorIs(t, err, service.ErrRoleChangeForbidden)

	err = svc.Update(user.ID, &service.UserPatch{Role: rolePtr(models.RoleOwner)}, models.RoleAdmin)
	require.NoError(t, err)

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.Equal(t, models.RoleOwner, got.Role)
}

func TestUserUpdateEmptyPatch(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := seedUser(t, db, "bob", models.RoleTenant)

	err := svc.Update(user.ID, &service.UserPatch{}, models.RoleAdmin)
	assert.ErrorIs(t, err, service.ErrEmptyPatch)
}

func TestUserUpdateUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	username := "ghost"
	err := svc.Update(42, &service.UserPatch{Username: &username}, models.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := seedUser(t, db, "bob", models.RoleTenant)

	require.NoError(t, svc.Delete(user.ID))
	assert.ErrorIs(t, svc.Delete(user.ID), repository.ErrUserNotFound)
}

func TestListOwnersWithStats(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	owner := seedUser(t, db, "owner", models.RoleOwner)
	idle := seedUser(t, db, "idleowner", models.RoleOwner)
	seedUser(t, db, "tenant", models.RoleTenant)
	seedProperty(t, db, "First", owner.ID)
	seedProperty(t, db, "Second", owner.ID)

	owners, err := svc.ListOwners()
	require.NoError(t, err)
	require.Len(t, owners, 2)

	byName := map[string]int64{}
	for _, o := range owners {
		assert.Equal(t, models.RoleOwner, o.Role)
		byName[o.Username] = o.PropertyCount
	}
	assert.Equal(t, int64(2), byName[owner.Username])
	assert.Equal(t, int64(0), byName[idle.Username])
}

func TestListTenantsWithLeaseEnd(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	owner := seedUser(t, db, "owner", models.RoleOwner)
	tenantUser := seedUser(t, db, "tenant", models.RoleTenant)
	property := seedProperty(t, db, "Rented", owner.ID)
	seedTenant(t, db, tenantUser.ID, property.ID)

	tenants, err := svc.ListTenants()
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, tenantUser.Username, tenants[0].Username)
}
