package service

import (
	"context"
	"errors"

	"brewvibe/internal/models"
	"brewvibe/internal/repository"

	"gorm.io/gorm"
)

type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	recipeRepo   repository.RecipeRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, recipeRepo repository.RecipeRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, recipeRepo: recipeRepo}
}

func (s *WishlistService) List(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(ctx, userID)
}

func (s *WishlistService) Add(ctx context.Context, userID, recipeID uint) error {
	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Recipe", recipeID)
		}
		return err
	}
	if err := s.wishlistRepo.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.NewValidationError("Recipe already in wishlist")
		}
		return err
	}
	return nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, recipeID uint) error {
	removed, err := s.wishlistRepo.Remove(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Wishlist entry", recipeID)
	}
	return nil
}

func (s *WishlistService) Contains(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.wishlistRepo.Contains(ctx, userID, recipeID)
}
