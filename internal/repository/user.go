package repository

import (
	"context"
	"errors"
	"time"

	"brewvibe/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	Stats(ctx context.Context) (*models.UserStats, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no user has the email; callers use the
// nil result to distinguish "unknown account" from a real failure.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("Username or email already taken")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}

// Stats aggregates user counts by role, active status, and signup recency.
func (r *userRepository) Stats(ctx context.Context) (*models.UserStats, error) {
	now := time.Now().UTC()
	stats := &models.UserStats{}

	counts := []struct {
		dst   *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&stats.Total, func(db *gorm.DB) *gorm.DB { return db }},
		{&stats.Admins, func(db *gorm.DB) *gorm.DB { return db.Where("role = ?", models.RoleAdmin) }},
		{&stats.RegularUsers, func(db *gorm.DB) *gorm.DB { return db.Where("role = ?", models.RoleUser) }},
		{&stats.Active, func(db *gorm.DB) *gorm.DB { return db.Where("is_active = ?", true) }},
		{&stats.Inactive, func(db *gorm.DB) *gorm.DB { return db.Where("is_active = ?", false) }},
		{&stats.NewUsersLast7Days, func(db *gorm.DB) *gorm.DB {
			return db.Where("created_at >= ?", now.Add(-7*24*time.Hour))
		}},
		{&stats.NewUsersLast30Days, func(db *gorm.DB) *gorm.DB {
			return db.Where("created_at >= ?", now.Add(-30*24*time.Hour))
		}},
	}

	for _, c := range counts {
		query := c.scope(r.db.WithContext(ctx).Model(&models.User{}))
		if err := query.Count(c.dst).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return stats, nil
}
