package service

import (
	"errors"

	"github.com/propertyhub/internal/models"
	"github.com/propertyhub/internal/repository"
	"github.com/propertyhub/pkg/crypto"
)

var (
	ErrRoleChangeForbidden = errors.New("only admins can change roles")
)

// UserService handles the user directory
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListTenants retrieves tenant-role users with property counts and
// lease end dates.
func (s *UserService) ListTenants() ([]repository.UserListing, error) {
	return s.userRepo.ListWithStats(models.RoleTenant)
}

// ListOwners retrieves owner-role users with property counts
func (s *UserService) ListOwners() ([]repository.UserListing, error) {
	return s.userRepo.ListWithStats(models.RoleOwner)
}

// ListUsers retrieves every user with property counts
func (s *UserService) ListUsers() ([]repository.UserListing, error) {
	return s.userRepo.ListWithStats("")
}

// ListAllOwners retrieves the raw owner-role user records
func (s *UserService) ListAllOwners() ([]models.User, error) {
	return s.userRepo.ListByRole(models.RoleOwner)
}

// CreateUserRequest represents admin user creation
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3,max=50"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6,max=100"`
	Role     models.Role `json:"role" binding:"required,oneof=admin owner tenant"`
}

// Create persists a new user, hashing the password first. Fails with
// ErrUserExists when the username or email is already taken.
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// UserPatch is the closed set of mutable user fields
type UserPatch struct {
	Username *string      `json:"username"`
	Email    *string      `json:"email"`
	Role     *models.Role `json:"role" binding:"omitempty,oneof=admin owner tenant"`
}

// Update applies a patch to a user. Role changes require an admin
// caller; an empty patch fails with ErrEmptyPatch.
func (s *UserService) Update(id uint, patch *UserPatch, callerRole models.Role) error {
	if patch.Role != nil && callerRole != models.RoleAdmin {
		return ErrRoleChangeForbidden
	}

	fields := map[string]interface{}{}
	if patch.Username != nil {
		fields["username"] = *patch.Username
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Role != nil {
		fields["role"] = *patch.Role
	}
	if len(fields) == 0 {
		return ErrEmptyPatch
	}

	return s.userRepo.UpdateFields(id, fields)
}

// Delete hard deletes a user
func (s *UserService) Delete(id uint) error {
	return s.userRepo.Delete(id)
}
