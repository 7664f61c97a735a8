// Package service contains the business rules sitting between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"errors"
	"strings"

	"brewvibe/internal/models"
	"brewvibe/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultRelatedLimit = 4
	maxRelatedLimit     = 20
)

type RecipeService struct {
	recipeRepo repository.RecipeRepository
}

// RecipeInput carries the writable recipe fields for create and update.
// PrepTime is a pointer so "missing" is distinguishable from zero.
type RecipeInput struct {
	Title        string
	Description  string
	Category     string
	Difficulty   string
	PrepTime     *int
	Calories     *int
	Ingredients  []models.Ingredient
	Instructions []string
	Images       []string
	Image        string
	Slug         string
}

func NewRecipeService(recipeRepo repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipeRepo: recipeRepo}
}

// ListRecipes runs the filtered listing and computes pagination metadata.
func (s *RecipeService) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, models.Pagination, error) {
	filter = filter.Normalize()
	recipes, total, err := s.recipeRepo.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return recipes, models.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) GetRecipeBySlug(ctx context.Context, slug string) (*models.Recipe, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, models.NewValidationError("Slug is required")
	}
	recipe, err := s.recipeRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", slug)
		}
		return nil, err
	}
	return recipe, nil
}

// GetRelated returns same-category recipes excluding the recipe itself,
// best rated first.
func (s *RecipeService) GetRelated(ctx context.Context, id uint, limit int) ([]*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	if limit > maxRelatedLimit {
		limit = maxRelatedLimit
	}
	return s.recipeRepo.Related(ctx, recipe.ID, recipe.Category, limit)
}

func (s *RecipeService) CreateRecipe(ctx context.Context, in RecipeInput) (*models.Recipe, error) {
	normalized, err := validateRecipeInput(in)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(normalized.Slug)
	if slug == "" {
		slug = models.Slugify(normalized.Title)
	}
	exists, err := s.recipeRepo.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("A recipe with this title already exists")
	}

	recipe := &models.Recipe{
		Slug:         slug,
		Title:        normalized.Title,
		Description:  normalized.Description,
		Category:     normalized.Category,
		Difficulty:   normalized.Difficulty,
		PrepTime:     *normalized.PrepTime,
		Calories:     normalized.Calories,
		Ingredients:  normalized.Ingredients,
		Instructions: normalized.Instructions,
		Images:       normalized.Images,
		Image:        normalized.Image,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, models.NewValidationError("A recipe with this title already exists")
		}
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	normalized, err := validateRecipeInput(in)
	if err != nil {
		return nil, err
	}

	// The slug follows the title unless the caller pinned one explicitly.
	slug := strings.TrimSpace(normalized.Slug)
	if slug == "" {
		slug = recipe.Slug
		if normalized.Title != recipe.Title {
			slug = models.Slugify(normalized.Title)
		}
	}
	if slug != recipe.Slug {
		exists, err := s.recipeRepo.SlugExists(ctx, slug, recipe.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.NewValidationError("A recipe with this title already exists")
		}
	}

	recipe.Slug = slug
	recipe.Title = normalized.Title
	recipe.Description = normalized.Description
	recipe.Category = normalized.Category
	recipe.Difficulty = normalized.Difficulty
	recipe.PrepTime = *normalized.PrepTime
	recipe.Calories = normalized.Calories
	recipe.Ingredients = normalized.Ingredients
	recipe.Instructions = normalized.Instructions
	recipe.Images = normalized.Images
	recipe.Image = normalized.Image

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, models.NewValidationError("A recipe with this title already exists")
		}
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Recipe", id)
		}
		return err
	}
	return nil
}

// validateRecipeInput checks the semantic rules and returns a normalized
// copy: trimmed text, defaulted difficulty and ingredient amounts, blank
// instructions and images dropped.
func validateRecipeInput(in RecipeInput) (RecipeInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)

	if in.Title == "" {
		return in, models.NewValidationError("Title is required")
	}
	if in.Description == "" {
		return in, models.NewValidationError("Description is required")
	}
	if !models.ValidCategory(in.Category) {
		return in, models.NewValidationError("Category must be one of Coffee, Tea, Mocktail")
	}
	if in.Difficulty == "" {
		in.Difficulty = models.DifficultyMedium
	}
	if !models.ValidDifficulty(in.Difficulty) {
		return in, models.NewValidationError("Difficulty must be one of Easy, Medium, Hard")
	}
	if in.PrepTime == nil {
		return in, models.NewValidationError("Prep time is required")
	}
	if *in.PrepTime < 0 {
		return in, models.NewValidationError("Prep time cannot be negative")
	}
	if in.Calories != nil && *in.Calories < 0 {
		return in, models.NewValidationError("Calories cannot be negative")
	}

	if len(in.Ingredients) == 0 {
		return in, models.NewValidationError("At least one ingredient is required")
	}
	ingredients := make([]models.Ingredient, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		ing.Amount = strings.TrimSpace(ing.Amount)
		ing.Unit = strings.TrimSpace(ing.Unit)
		if ing.Name == "" {
			return in, models.NewValidationError("Ingredient names cannot be empty")
		}
		if ing.Amount == "" {
			ing.Amount = "1"
		}
		ingredients = append(ingredients, ing)
	}
	in.Ingredients = ingredients

	instructions := make([]string, 0, len(in.Instructions))
	for _, step := range in.Instructions {
		step = strings.TrimSpace(step)
		if step != "" {
			instructions = append(instructions, step)
		}
	}
	if len(instructions) == 0 {
		return in, models.NewValidationError("At least one instruction step is required")
	}
	in.Instructions = instructions

	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		img = strings.TrimSpace(img)
		if img != "" {
			images = append(images, img)
		}
	}
	in.Images = images

	return in, nil
}
