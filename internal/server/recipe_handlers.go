package server

import (
	"brewvibe/internal/models"
	"brewvibe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// recipeRequest is the write payload for recipe create/update. The validator
// catches structural problems early; the service applies the full domain
// rules (enums, slug uniqueness, normalization).
type recipeRequest struct {
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description" validate:"required"`
	Category     string              `json:"category" validate:"required"`
	Difficulty   string              `json:"difficulty"`
	PrepTime     *int                `json:"prep_time" validate:"required"`
	Calories     *int                `json:"calories"`
	Ingredients  []models.Ingredient `json:"ingredients" validate:"required,min=1"`
	Instructions []string            `json:"instructions" validate:"required,min=1"`
	Images       []string            `json:"images"`
	Image        string              `json:"image"`
	Slug         string              `json:"slug"`
}

func (r recipeRequest) toInput() service.RecipeInput {
	return service.RecipeInput{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Difficulty:   r.Difficulty,
		PrepTime:     r.PrepTime,
		Calories:     r.Calories,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Images:       r.Images,
		Image:        r.Image,
		Slug:         r.Slug,
	}
}

// GetRecipes handles GET /api/v1/recipes
// @Summary List recipes
// @Description List recipes with filtering, sorting and pagination
// @Tags recipes
// @Produce json
// @Param search query string false "Match in title or description"
// @Param category query string false "Category filter ('All' disables)"
// @Param difficulty query string false "Difficulty filter"
// @Param prepTime query string false "Prep time bucket: 0-15, 16-30, 31+"
// @Param minRating query number false "Minimum rating"
// @Param featured query bool false "Featured recipes only (rating >= 4)"
// @Param sort query string false "popular, newest, oldest, rating, time"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12, max 100)"
// @Success 200 {object} object{recipes=[]models.Recipe,pagination=models.Pagination}
// @Router /recipes [get]
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	recipes, pagination, err := s.recipeService.ListRecipes(c.Context(), parseRecipeFilter(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"recipes":    recipes,
		"pagination": pagination,
	})
}

// GetRecipe handles GET /api/v1/recipes/:id
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	recipe, err := s.recipeService.GetRecipe(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(recipe)
}

// GetRecipeBySlug handles GET /api/v1/recipes/slug/:slug
func (s *Server) GetRecipeBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid slug"))
	}

	recipe, err := s.recipeService.GetRecipeBySlug(c.Context(), slug)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(recipe)
}

// GetRelatedRecipes handles GET /api/v1/recipes/:id/related
func (s *Server) GetRelatedRecipes(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	related, err := s.recipeService.GetRelated(c.Context(), id, c.QueryInt("limit", 0))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(related)
}

// CreateRecipe handles POST /api/v1/recipes (admin)
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := s.validate.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	recipe, err := s.recipeService.CreateRecipe(c.Context(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// UpdateRecipe handles PUT /api/v1/recipes/:id (admin)
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := s.validate.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	recipe, err := s.recipeService.UpdateRecipe(c.Context(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(recipe)
}

// DeleteRecipe handles DELETE /api/v1/recipes/:id (admin)
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
