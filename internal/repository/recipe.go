// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"brewvibe/internal/cache"
	"brewvibe/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// isUniqueViolation reports whether err is a unique-constraint violation.
// Checks the pgx error code (SQLSTATE 23505) first, then falls back to
// message matching so the sqlite test driver is covered too.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	GetBySlug(ctx context.Context, slug string) (*models.Recipe, error)
	List(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int64, error)
	Related(ctx context.Context, recipeID uint, category string, limit int) ([]*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	UpdateRating(ctx context.Context, id uint, rating float64, reviewsCount int) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	err := r.db.WithContext(ctx).Create(recipe).Error
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := cache.Aside(ctx, cache.RecipeKey(id), &recipe, cache.RecipeTTL, func() error {
		return r.db.WithContext(ctx).First(&recipe, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetBySlug(ctx context.Context, slug string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := cache.Aside(ctx, cache.RecipeSlugKey(slug), &recipe, cache.RecipeTTL, func() error {
		return r.db.WithContext(ctx).Where("slug = ?", slug).First(&recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// applyFilter translates the normalized filter into a conjunctive WHERE
// clause. Every active predicate is ANDed; predicates on the same column
// stack rather than overwrite each other.
func applyFilter(db *gorm.DB, f models.RecipeFilter) *gorm.DB {
	if f.Search != "" {
		// LOWER(...) LIKE instead of ILIKE so the same query runs under
		// both postgres and the sqlite test driver.
		like := "%" + strings.ToLower(f.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.Category != "" && f.Category != models.CategoryAll {
		db = db.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" {
		db = db.Where("LOWER(difficulty) = ?", strings.ToLower(f.Difficulty))
	}
	switch f.PrepTime {
	case models.PrepTimeQuick:
		db = db.Where("prep_time <= ?", 15)
	case models.PrepTimeMedium:
		db = db.Where("prep_time BETWEEN ? AND ?", 16, 30)
	case models.PrepTimeLong:
		db = db.Where("prep_time >= ?", 31)
	}
	if f.HasMinRating {
		db = db.Where("rating >= ?", f.MinRating)
	}
	if f.Featured {
		db = db.Where("rating >= ?", 4.0)
	}
	return db
}

// applySort appends the ORDER BY clause for the requested sort key.
// The filter is normalized upstream so unknown keys have already been
// coerced to newest.
func applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case models.SortPopular:
		return db.Order("rating DESC, reviews_count DESC, created_at DESC")
	case models.SortOldest:
		return db.Order("created_at ASC")
	case models.SortRating:
		return db.Order("rating DESC, created_at DESC")
	case models.SortTime:
		return db.Order("prep_time ASC")
	default:
		return db.Order("created_at DESC")
	}
}

func (r *recipeRepository) List(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int64, error) {
	// New session so the Count finisher does not pollute the Find chain.
	filtered := applyFilter(r.db.WithContext(ctx).Model(&models.Recipe{}), filter).
		Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*models.Recipe
	err := applySort(filtered, filter.Sort).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *recipeRepository) Related(ctx context.Context, recipeID uint, category string, limit int) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.WithContext(ctx).
		Where("category = ? AND id <> ?", category, recipeID).
		Order("rating DESC, created_at DESC").
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	cache.InvalidateRecipe(ctx, recipe.ID, recipe.Slug)
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&recipe).Error; err != nil {
		return err
	}
	cache.InvalidateRecipe(ctx, recipe.ID, recipe.Slug)
	return nil
}

func (r *recipeRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRating writes the derived rating fields only, leaving UpdatedAt and
// the rest of the row untouched.
func (r *recipeRepository) UpdateRating(ctx context.Context, id uint, rating float64, reviewsCount int) error {
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"rating":        rating,
			"reviews_count": reviewsCount,
		}).Error
	if err != nil {
		return err
	}
	cache.InvalidateRecipe(ctx, id, "")
	return nil
}
