package server

import (
	"context"
	"time"

	"brewvibe/internal/models"
	"brewvibe/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository is a mock of the RecipeRepository interface
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetBySlug(ctx context.Context, slug string) (*models.Recipe, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) Related(ctx context.Context, recipeID uint, category string, limit int) ([]*models.Recipe, error) {
	args := m.Called(ctx, recipeID, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeRepository) UpdateRating(ctx context.Context, id uint, rating float64, reviewsCount int) error {
	args := m.Called(ctx, id, rating, reviewsCount)
	return args.Error(0)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Comment, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByRecipe(ctx context.Context, recipeID uint, limit, offset int, currentUserID uint) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, recipeID, limit, offset, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) RatingStats(ctx context.Context, recipeID uint) (int64, int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) IsLiked(ctx context.Context, userID, commentID uint) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) Like(ctx context.Context, userID, commentID uint) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) Unlike(ctx context.Context, userID, commentID uint) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) LikesCount(ctx context.Context, commentID uint) (int64, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Stats(ctx context.Context) (*models.UserStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

// MockWishlistRepository is a mock of the WishlistRepository interface
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Add(ctx context.Context, userID, recipeID uint) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockWishlistRepository) Remove(ctx context.Context, userID, recipeID uint) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) ListByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) Contains(ctx context.Context, userID, recipeID uint) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

// MockStatsRepository is a mock of the StatsRepository interface
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) TrackRecipeView(ctx context.Context, view *models.RecipeView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockStatsRepository) TrackVisitor(ctx context.Context, visitor *models.Visitor) error {
	args := m.Called(ctx, visitor)
	return args.Error(0)
}

func (m *MockStatsRepository) CountRecipes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) RecipesByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CategoryCount), args.Error(1)
}

func (m *MockStatsRepository) CountViews(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) TopViewedRecipes(ctx context.Context, limit int) ([]models.RecipeViewCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.RecipeViewCount), args.Error(1)
}

func (m *MockStatsRepository) CountVisitors(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountUniqueVisitors(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) DailyVisitors(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]models.DailyCount), args.Error(1)
}

// newTestServer wires a Server around mock repositories with the services
// constructed on top, mirroring NewServerWithDeps minus DB/Redis/storage.
func newTestServer(recipeRepo *MockRecipeRepository, commentRepo *MockCommentRepository, userRepo *MockUserRepository, wishlistRepo *MockWishlistRepository, statsRepo *MockStatsRepository) *Server {
	s := &Server{validate: validator.New()}
	if recipeRepo != nil {
		s.recipeRepo = recipeRepo
		s.recipeService = service.NewRecipeService(recipeRepo)
	}
	if commentRepo != nil && recipeRepo != nil {
		s.commentRepo = commentRepo
		s.commentService = service.NewCommentService(commentRepo, recipeRepo, nil)
	}
	if userRepo != nil {
		s.userRepo = userRepo
	}
	if wishlistRepo != nil && recipeRepo != nil {
		s.wishlistRepo = wishlistRepo
		s.wishlistService = service.NewWishlistService(wishlistRepo, recipeRepo)
	}
	if statsRepo != nil {
		s.statsRepo = statsRepo
		s.statsService = service.NewStatsService(statsRepo)
	}
	return s
}

// withUserID simulates AuthRequired for handler tests.
func withUserID(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		return c.Next()
	}
}
