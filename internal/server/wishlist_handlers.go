package server

import (
	"brewvibe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetWishlist handles GET /api/v1/wishlist
func (s *Server) GetWishlist(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	items, err := s.wishlistService.List(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(items)
}

// AddToWishlist handles POST /api/v1/wishlist/:recipeId
func (s *Server) AddToWishlist(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}

	if err := s.wishlistService.Add(c.Context(), userID, recipeID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Recipe added to wishlist",
	})
}

// RemoveFromWishlist handles DELETE /api/v1/wishlist/:recipeId
func (s *Server) RemoveFromWishlist(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}

	if err := s.wishlistService.Remove(c.Context(), userID, recipeID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CheckWishlist handles GET /api/v1/wishlist/check/:recipeId
func (s *Server) CheckWishlist(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}

	inWishlist, err := s.wishlistService.Contains(c.Context(), userID, recipeID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"in_wishlist": inWishlist})
}
