package repository

import (
	"errors"
	"time"

	"github.com/propertyhub/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository handles user data access
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether any user holds the given
// username or email.
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// ListAll retrieves all users
func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByRole retrieves all users with the given role
func (r *UserRepository) ListByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserListing is a directory row with the derived property count and,
// for tenants, the lease end date from the tenant profile.
type UserListing struct {
	ID            uint        `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	CreatedAt     time.Time   `json:"created_at"`
	PropertyCount int64       `json:"property_count"`
	LeaseEnd      *time.Time  `json:"lease_end,omitempty"`
}

// ListWithStats retrieves users with a left-joined property count and
// tenant lease end. An empty role lists every user.
func (r *UserRepository) ListWithStats(role models.Role) ([]UserListing, error) {
	var rows []UserListing
	q := r.db.Table("users u").
		Select("u.id, u.username, u.email, u.role, u.created_at, COUNT(p.id) AS property_count, t.lease_end AS lease_end").
		Joins("LEFT JOIN properties p ON p.owner_id = u.id").
		Joins("LEFT JOIN tenants t ON t.user_id = u.id").
		Group("u.id, u.username, u.email, u.role, u.created_at, t.lease_end")
	if role != "" {
		q = q.Where("u.role = ?", role)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateFields applies the given column updates to a user
func (r *UserRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete hard deletes a user
func (r *UserRepository) Delete(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
