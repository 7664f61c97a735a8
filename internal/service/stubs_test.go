package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"brewvibe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

// recipeRepoStub is a stub for repository.RecipeRepository.
type recipeRepoStub struct {
	createFn       func(context.Context, *models.Recipe) error
	getByIDFn      func(context.Context, uint) (*models.Recipe, error)
	getBySlugFn    func(context.Context, string) (*models.Recipe, error)
	listFn         func(context.Context, models.RecipeFilter) ([]*models.Recipe, int64, error)
	relatedFn      func(context.Context, uint, string, int) ([]*models.Recipe, error)
	updateFn       func(context.Context, *models.Recipe) error
	deleteFn       func(context.Context, uint) error
	slugExistsFn   func(context.Context, string, uint) (bool, error)
	updateRatingFn func(context.Context, uint, float64, int) error
}

func (s *recipeRepoStub) Create(ctx context.Context, r *models.Recipe) error {
	return s.createFn(ctx, r)
}
func (s *recipeRepoStub) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	return s.getByIDFn(ctx, id)
}
func (s *recipeRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Recipe, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *recipeRepoStub) List(ctx context.Context, f models.RecipeFilter) ([]*models.Recipe, int64, error) {
	return s.listFn(ctx, f)
}
func (s *recipeRepoStub) Related(ctx context.Context, id uint, category string, limit int) ([]*models.Recipe, error) {
	return s.relatedFn(ctx, id, category, limit)
}
func (s *recipeRepoStub) Update(ctx context.Context, r *models.Recipe) error {
	return s.updateFn(ctx, r)
}
func (s *recipeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *recipeRepoStub) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return s.slugExistsFn(ctx, slug, excludeID)
}
func (s *recipeRepoStub) UpdateRating(ctx context.Context, id uint, rating float64, reviews int) error {
	return s.updateRatingFn(ctx, id, rating, reviews)
}

func noopRecipeRepo() *recipeRepoStub {
	return &recipeRepoStub{
		createFn:  func(_ context.Context, _ *models.Recipe) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Recipe, error) { return &models.Recipe{ID: id}, nil },
		getBySlugFn: func(_ context.Context, slug string) (*models.Recipe, error) {
			return &models.Recipe{Slug: slug}, nil
		},
		listFn: func(_ context.Context, _ models.RecipeFilter) ([]*models.Recipe, int64, error) {
			return nil, 0, nil
		},
		relatedFn: func(_ context.Context, _ uint, _ string, _ int) ([]*models.Recipe, error) {
			return nil, nil
		},
		updateFn:       func(_ context.Context, _ *models.Recipe) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		slugExistsFn:   func(_ context.Context, _ string, _ uint) (bool, error) { return false, nil },
		updateRatingFn: func(_ context.Context, _ uint, _ float64, _ int) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint, uint) (*models.Comment, error)
	listByRecipeFn func(context.Context, uint, int, int, uint) ([]*models.Comment, int64, error)
	updateFn       func(context.Context, *models.Comment) error
	deleteFn       func(context.Context, uint) error
	ratingStatsFn  func(context.Context, uint) (int64, int64, error)
	isLikedFn      func(context.Context, uint, uint) (bool, error)
	likeFn         func(context.Context, uint, uint) error
	unlikeFn       func(context.Context, uint, uint) error
	likesCountFn   func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *commentRepoStub) ListByRecipe(ctx context.Context, recipeID uint, limit, offset int, currentUserID uint) ([]*models.Comment, int64, error) {
	return s.listByRecipeFn(ctx, recipeID, limit, offset, currentUserID)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) RatingStats(ctx context.Context, recipeID uint) (int64, int64, error) {
	return s.ratingStatsFn(ctx, recipeID)
}
func (s *commentRepoStub) IsLiked(ctx context.Context, userID, commentID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, commentID)
}
func (s *commentRepoStub) Like(ctx context.Context, userID, commentID uint) error {
	return s.likeFn(ctx, userID, commentID)
}
func (s *commentRepoStub) Unlike(ctx context.Context, userID, commentID uint) error {
	return s.unlikeFn(ctx, userID, commentID)
}
func (s *commentRepoStub) LikesCount(ctx context.Context, commentID uint) (int64, error) {
	return s.likesCountFn(ctx, commentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByRecipeFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Comment, int64, error) {
			return nil, 0, nil
		},
		updateFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
		ratingStatsFn: func(_ context.Context, _ uint) (int64, int64, error) { return 0, 0, nil },
		isLikedFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:        func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:      func(_ context.Context, _, _ uint) error { return nil },
		likesCountFn:  func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// wishlistRepoStub is a stub for repository.WishlistRepository.
type wishlistRepoStub struct {
	addFn        func(context.Context, uint, uint) error
	removeFn     func(context.Context, uint, uint) (bool, error)
	listByUserFn func(context.Context, uint) ([]models.WishlistItem, error)
	containsFn   func(context.Context, uint, uint) (bool, error)
}

func (s *wishlistRepoStub) Add(ctx context.Context, userID, recipeID uint) error {
	return s.addFn(ctx, userID, recipeID)
}
func (s *wishlistRepoStub) Remove(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.removeFn(ctx, userID, recipeID)
}
func (s *wishlistRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *wishlistRepoStub) Contains(ctx context.Context, userID, recipeID uint) (bool, error) {
	return s.containsFn(ctx, userID, recipeID)
}

func noopWishlistRepo() *wishlistRepoStub {
	return &wishlistRepoStub{
		addFn:        func(_ context.Context, _, _ uint) error { return nil },
		removeFn:     func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		listByUserFn: func(_ context.Context, _ uint) ([]models.WishlistItem, error) { return nil, nil },
		containsFn:   func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// statsRepoStub is a stub for repository.StatsRepository.
type statsRepoStub struct {
	trackViewFn      func(context.Context, *models.RecipeView) error
	trackVisitorFn   func(context.Context, *models.Visitor) error
	countRecipesFn   func(context.Context) (int64, error)
	byCategoryFn     func(context.Context) ([]models.CategoryCount, error)
	countViewsFn     func(context.Context, time.Time) (int64, error)
	topViewedFn      func(context.Context, int) ([]models.RecipeViewCount, error)
	countVisitorsFn  func(context.Context, time.Time) (int64, error)
	uniqueVisitorsFn func(context.Context) (int64, error)
	dailyVisitorsFn  func(context.Context, time.Time) ([]models.DailyCount, error)
}

func (s *statsRepoStub) TrackRecipeView(ctx context.Context, v *models.RecipeView) error {
	return s.trackViewFn(ctx, v)
}
func (s *statsRepoStub) TrackVisitor(ctx context.Context, v *models.Visitor) error {
	return s.trackVisitorFn(ctx, v)
}
func (s *statsRepoStub) CountRecipes(ctx context.Context) (int64, error) {
	return s.countRecipesFn(ctx)
}
func (s *statsRepoStub) RecipesByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	return s.byCategoryFn(ctx)
}
func (s *statsRepoStub) CountViews(ctx context.Context, since time.Time) (int64, error) {
	return s.countViewsFn(ctx, since)
}
func (s *statsRepoStub) TopViewedRecipes(ctx context.Context, limit int) ([]models.RecipeViewCount, error) {
	return s.topViewedFn(ctx, limit)
}
func (s *statsRepoStub) CountVisitors(ctx context.Context, since time.Time) (int64, error) {
	return s.countVisitorsFn(ctx, since)
}
func (s *statsRepoStub) CountUniqueVisitors(ctx context.Context) (int64, error) {
	return s.uniqueVisitorsFn(ctx)
}
func (s *statsRepoStub) DailyVisitors(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	return s.dailyVisitorsFn(ctx, since)
}

func noopStatsRepo() *statsRepoStub {
	return &statsRepoStub{
		trackViewFn:    func(_ context.Context, _ *models.RecipeView) error { return nil },
		trackVisitorFn: func(_ context.Context, _ *models.Visitor) error { return nil },
		countRecipesFn: func(_ context.Context) (int64, error) { return 0, nil },
		byCategoryFn:   func(_ context.Context) ([]models.CategoryCount, error) { return nil, nil },
		countViewsFn:   func(_ context.Context, _ time.Time) (int64, error) { return 0, nil },
		topViewedFn: func(_ context.Context, _ int) ([]models.RecipeViewCount, error) {
			return nil, nil
		},
		countVisitorsFn:  func(_ context.Context, _ time.Time) (int64, error) { return 0, nil },
		uniqueVisitorsFn: func(_ context.Context) (int64, error) { return 0, nil },
		dailyVisitorsFn:  func(_ context.Context, _ time.Time) ([]models.DailyCount, error) { return nil, nil },
	}
}
