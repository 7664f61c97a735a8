package repository

import (
	"context"
	"time"

	"brewvibe/internal/models"

	"gorm.io/gorm"
)

// StatsRepository persists tracking events and answers the aggregate
// queries behind the admin dashboard.
type StatsRepository interface {
	TrackRecipeView(ctx context.Context, view *models.RecipeView) error
	TrackVisitor(ctx context.Context, visitor *models.Visitor) error
	CountRecipes(ctx context.Context) (int64, error)
	RecipesByCategory(ctx context.Context) ([]models.CategoryCount, error)
	CountViews(ctx context.Context, since time.Time) (int64, error)
	TopViewedRecipes(ctx context.Context, limit int) ([]models.RecipeViewCount, error)
	CountVisitors(ctx context.Context, since time.Time) (int64, error)
	CountUniqueVisitors(ctx context.Context) (int64, error)
	DailyVisitors(ctx context.Context, since time.Time) ([]models.DailyCount, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository returns a new StatsRepository implementation.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) TrackRecipeView(ctx context.Context, view *models.RecipeView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *statsRepository) TrackVisitor(ctx context.Context, visitor *models.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

func (r *statsRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) RecipesByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	var rows []models.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// CountViews counts recipe views, restricted to rows at or after since
// when since is non-zero.
func (r *statsRepository) CountViews(ctx context.Context, since time.Time) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.RecipeView{})
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *statsRepository) TopViewedRecipes(ctx context.Context, limit int) ([]models.RecipeViewCount, error) {
	var rows []models.RecipeViewCount
	err := r.db.WithContext(ctx).
		Model(&models.RecipeView{}).
		Select("recipe_views.recipe_id, recipes.title, COUNT(*) as views").
		Joins("JOIN recipes ON recipes.id = recipe_views.recipe_id AND recipes.deleted_at IS NULL").
		Group("recipe_views.recipe_id, recipes.title").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) CountVisitors(ctx context.Context, since time.Time) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Visitor{})
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *statsRepository) CountUniqueVisitors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Visitor{}).
		Distinct("ip_address").
		Count(&count).Error
	return count, err
}

func (r *statsRepository) DailyVisitors(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	var rows []models.DailyCount
	err := r.db.WithContext(ctx).
		Model(&models.Visitor{}).
		Select("DATE(created_at) as day, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}
