package service

import (
	"context"
	"testing"

	"brewvibe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func validRecipeInput() RecipeInput {
	return RecipeInput{
		Title:        "Flat White",
		Description:  "Silky espresso drink",
		Category:     models.CategoryCoffee,
		Difficulty:   models.DifficultyEasy,
		PrepTime:     intPtr(8),
		Ingredients:  []models.Ingredient{{Name: "Espresso", Amount: "2", Unit: "shots"}},
		Instructions: []string{"Pull the shots", "Steam the milk"},
	}
}

func TestRecipeService_ListRecipes_Pagination(t *testing.T) {
	t.Parallel()

	repo := noopRecipeRepo()
	var seen models.RecipeFilter
	repo.listFn = func(_ context.Context, f models.RecipeFilter) ([]*models.Recipe, int64, error) {
		seen = f
		return []*models.Recipe{{ID: 1}}, 25, nil
	}

	svc := NewRecipeService(repo)
	recipes, pagination, err := svc.ListRecipes(context.Background(), models.RecipeFilter{
		Page:  -3,
		Limit: 0,
		Sort:  "bogus",
	})
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	// Out-of-range paging coerces to defaults, unknown sort to newest.
	assert.Equal(t, models.DefaultRecipePage, seen.Page)
	assert.Equal(t, models.DefaultRecipeLimit, seen.Limit)
	assert.Equal(t, models.SortNewest, seen.Sort)

	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(25), pagination.TotalRecipes)
	assert.True(t, pagination.HasNextPage)
	assert.False(t, pagination.HasPrevPage)
}

func TestRecipeService_ListRecipes_LimitCap(t *testing.T) {
	t.Parallel()

	repo := noopRecipeRepo()
	var seen models.RecipeFilter
	repo.listFn = func(_ context.Context, f models.RecipeFilter) ([]*models.Recipe, int64, error) {
		seen = f
		return nil, 0, nil
	}

	svc := NewRecipeService(repo)
	_, pagination, err := svc.ListRecipes(context.Background(), models.RecipeFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, models.MaxRecipeLimit, seen.Limit)
	assert.Equal(t, 0, pagination.TotalPages)
	assert.False(t, pagination.HasNextPage)
}

func TestRecipeService_CreateRecipe_Validation(t *testing.T) {
	t.Parallel()

	svc := NewRecipeService(noopRecipeRepo())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*RecipeInput)
	}{
		{"missing title", func(in *RecipeInput) { in.Title = "  " }},
		{"missing description", func(in *RecipeInput) { in.Description = "" }},
		{"unknown category", func(in *RecipeInput) { in.Category = "Smoothie" }},
		{"unknown difficulty", func(in *RecipeInput) { in.Difficulty = "Impossible" }},
		{"missing prep time", func(in *RecipeInput) { in.PrepTime = nil }},
		{"negative prep time", func(in *RecipeInput) { in.PrepTime = intPtr(-1) }},
		{"negative calories", func(in *RecipeInput) { in.Calories = intPtr(-5) }},
		{"no ingredients", func(in *RecipeInput) { in.Ingredients = nil }},
		{"blank ingredient name", func(in *RecipeInput) {
			in.Ingredients = []models.Ingredient{{Name: "   "}}
		}},
		{"no instructions", func(in *RecipeInput) { in.Instructions = []string{"  ", ""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validRecipeInput()
			tt.mutate(&in)
			_, err := svc.CreateRecipe(ctx, in)
			assertValidationError(t, err)
		})
	}
}

func TestRecipeService_CreateRecipe_Normalization(t *testing.T) {
	t.Parallel()

	repo := noopRecipeRepo()
	var created *models.Recipe
	repo.createFn = func(_ context.Context, r *models.Recipe) error {
		created = r
		return nil
	}

	svc := NewRecipeService(repo)
	in := validRecipeInput()
	in.Difficulty = ""
	in.Ingredients = []models.Ingredient{{Name: "  Espresso ", Unit: " shots "}}
	in.Instructions = []string{" Pull the shots ", "", "Serve"}
	in.Images = []string{" /img/a.webp ", "  "}

	recipe, err := svc.CreateRecipe(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "flat-white", recipe.Slug)
	assert.Equal(t, models.DifficultyMedium, recipe.Difficulty)
	assert.Equal(t, "Espresso", recipe.Ingredients[0].Name)
	assert.Equal(t, "1", recipe.Ingredients[0].Amount, "missing amount defaults to 1")
	assert.Equal(t, "shots", recipe.Ingredients[0].Unit)
	assert.Equal(t, models.StringList{"Pull the shots", "Serve"}, recipe.Instructions)
	assert.Equal(t, models.StringList{"/img/a.webp"}, recipe.Images)
}

func TestRecipeService_CreateRecipe_DuplicateSlug(t *testing.T) {
	t.Parallel()

	repo := noopRecipeRepo()
	repo.slugExistsFn = func(_ context.Context, slug string, _ uint) (bool, error) {
		return slug == "flat-white", nil
	}

	svc := NewRecipeService(repo)
	_, err := svc.CreateRecipe(context.Background(), validRecipeInput())
	assertValidationError(t, err)
}

func TestRecipeService_UpdateRecipe_SlugFollowsTitle(t *testing.T) {
	t.Parallel()

	repo := noopRecipeRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Recipe, error) {
		return &models.Recipe{ID: id, Title: "Flat White", Slug: "flat-white"}, nil
	}
	var saved *models.Recipe
	repo.updateFn = func(_ context.Context, r *models.Recipe) error {
		saved = r
		return nil
	}

	svc := NewRecipeService(repo)
	in := validRecipeInput()
	in.Title = "Oat Flat White"
	_, err := svc.UpdateRecipe(context.Background(), 1, in)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "oat-flat-white", saved.Slug)

	// Unchanged title keeps the stored slug.
	in = validRecipeInput()
	_, err = svc.UpdateRecipe(context.Background(), 1, in)
	require.NoError(t, err)
	assert.Equal(t, "flat-white", saved.Slug)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	t.Parallel()

	repo := noopRecipeRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Recipe, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewRecipeService(repo)
	_, err := svc.GetRecipe(context.Background(), 99)
	assertNotFoundError(t, err)
}

func TestRecipeService_GetRelated_DefaultLimit(t *testing.T) {
	t.Parallel()

	repo := noopRecipeRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Recipe, error) {
		return &models.Recipe{ID: id, Category: models.CategoryCoffee}, nil
	}
	var seenLimit int
	var seenCategory string
	repo.relatedFn = func(_ context.Context, _ uint, category string, limit int) ([]*models.Recipe, error) {
		seenLimit = limit
		seenCategory = category
		return nil, nil
	}

	svc := NewRecipeService(repo)
	_, err := svc.GetRelated(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultRelatedLimit, seenLimit)
	assert.Equal(t, models.CategoryCoffee, seenCategory)

	_, err = svc.GetRelated(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Equal(t, maxRelatedLimit, seenLimit)
}
