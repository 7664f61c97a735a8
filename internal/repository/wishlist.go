package repository

import (
	"context"

	"brewvibe/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository defines persistence operations for user wishlists.
type WishlistRepository interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error)
	Contains(ctx context.Context, userID, recipeID uint) (bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository returns a new WishlistRepository implementation.
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(ctx context.Context, userID, recipeID uint) error {
	item := models.WishlistItem{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Remove deletes the wishlist entry and reports whether one existed.
func (r *wishlistRepository) Remove(ctx context.Context, userID, recipeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.WishlistItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *wishlistRepository) Contains(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
