package repository

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"brewvibe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sqliteSeq atomic.Int64

// setupSQLiteDB gives each test an isolated in-memory database with the
// schema migrated. The query builder only emits portable SQL, so the same
// clauses run under sqlite here and postgres in production. Each test gets
// a uniquely named shared-cache database so GORM's pooled connections see
// the same data without tests seeing each other's.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", sqliteSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Recipe{},
		&models.Comment{},
		&models.CommentLike{},
		&models.WishlistItem{},
		&models.RecipeView{},
		&models.Visitor{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedRecipe(t *testing.T, db *gorm.DB, r models.Recipe) models.Recipe {
	t.Helper()
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestRecipeRepository_ListPrepTimeBuckets(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, db, models.Recipe{Title: "Quick Espresso", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 10})
	mid := seedRecipe(t, db, models.Recipe{Title: "Pour Over", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 20})
	seedRecipe(t, db, models.Recipe{Title: "Cold Brew", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 40})

	filter := models.RecipeFilter{PrepTime: models.PrepTimeMedium}.Normalize()
	recipes, total, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, mid.ID, recipes[0].ID)
}

func TestRecipeRepository_ListConjunction(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	// Featured requires rating >= 4 on top of any explicit minRating:
	// 4.2 passes minRating 3.5 but is still below nothing; 3.8 passes
	// neither once featured is set.
	seedRecipe(t, db, models.Recipe{Title: "Matcha Latte", Description: "d", Category: models.CategoryTea, Difficulty: models.DifficultyEasy, PrepTime: 10, Rating: 4.2})
	seedRecipe(t, db, models.Recipe{Title: "Chai", Description: "d", Category: models.CategoryTea, Difficulty: models.DifficultyEasy, PrepTime: 10, Rating: 3.8})
	seedRecipe(t, db, models.Recipe{Title: "Iced Tea", Description: "d", Category: models.CategoryTea, Difficulty: models.DifficultyEasy, PrepTime: 10, Rating: 4.9})

	filter := models.RecipeFilter{MinRating: 4.5, HasMinRating: true, Featured: true}.Normalize()
	recipes, total, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Iced Tea", recipes[0].Title)

	// Featured alone keeps everything at 4 or above.
	filter = models.RecipeFilter{Featured: true}.Normalize()
	_, total, err = repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestRecipeRepository_ListSearchCaseInsensitive(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, db, models.Recipe{Title: "Virgin Mojito", Description: "Mint and lime", Category: models.CategoryMocktail, Difficulty: models.DifficultyEasy, PrepTime: 5})
	seedRecipe(t, db, models.Recipe{Title: "Espresso", Description: "Strong MINT-free coffee", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5})
	seedRecipe(t, db, models.Recipe{Title: "Chai", Description: "Spiced tea", Category: models.CategoryTea, Difficulty: models.DifficultyEasy, PrepTime: 5})

	// Matches title on one recipe and description on another.
	filter := models.RecipeFilter{Search: "mInT"}.Normalize()
	_, total, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestRecipeRepository_ListPaginationWindow(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 5; i++ {
		r := models.Recipe{
			Title:       "Recipe " + string(rune('A'+i)),
			Description: "d", Category: models.CategoryCoffee,
			Difficulty: models.DifficultyEasy, PrepTime: 5,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		seedRecipe(t, db, r)
	}

	filter := models.RecipeFilter{Page: 2, Limit: 2, Sort: models.SortOldest}.Normalize()
	recipes, total, err := repo.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Recipe C", recipes[0].Title)
	assert.Equal(t, "Recipe D", recipes[1].Title)
}

func TestRecipeRepository_ListSortRating(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	seedRecipe(t, db, models.Recipe{Title: "Low", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5, Rating: 2.0})
	seedRecipe(t, db, models.Recipe{Title: "High", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5, Rating: 4.8})
	seedRecipe(t, db, models.Recipe{Title: "Mid", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5, Rating: 3.3})

	filter := models.RecipeFilter{Sort: models.SortRating}.Normalize()
	recipes, _, err := repo.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "High", recipes[0].Title)
	assert.Equal(t, "Mid", recipes[1].Title)
	assert.Equal(t, "Low", recipes[2].Title)
}

func TestRecipeRepository_DuplicateSlug(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	first := models.Recipe{Title: "Flat White", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5}
	require.NoError(t, repo.Create(ctx, &first))
	assert.Equal(t, "flat-white", first.Slug)

	dup := models.Recipe{Title: "Flat White", Description: "other", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5}
	err := repo.Create(ctx, &dup)
	assert.True(t, errors.Is(err, ErrDuplicate))

	exists, err := repo.SlugExists(ctx, "flat-white", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(ctx, "flat-white", first.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRecipeRepository_RelatedExcludesSelf(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	self := seedRecipe(t, db, models.Recipe{Title: "Latte", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5, Rating: 4.0})
	seedRecipe(t, db, models.Recipe{Title: "Mocha", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5, Rating: 4.5})
	seedRecipe(t, db, models.Recipe{Title: "Cappuccino", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5, Rating: 3.5})
	seedRecipe(t, db, models.Recipe{Title: "Green Tea", Description: "d", Category: models.CategoryTea, Difficulty: models.DifficultyEasy, PrepTime: 5, Rating: 5.0})

	related, err := repo.Related(ctx, self.ID, self.Category, 4)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "Mocha", related[0].Title)
	assert.Equal(t, "Cappuccino", related[1].Title)
}

func TestRecipeRepository_UpdateRatingTargetsDerivedFieldsOnly(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	r := seedRecipe(t, db, models.Recipe{Title: "Latte", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5})

	require.NoError(t, repo.UpdateRating(ctx, r.ID, 4.5, 2))

	var reloaded models.Recipe
	require.NoError(t, db.First(&reloaded, r.ID).Error)
	assert.Equal(t, 4.5, reloaded.Rating)
	assert.Equal(t, 2, reloaded.ReviewsCount)
	assert.Equal(t, "Latte", reloaded.Title)
}

func TestWishlistRepository_AddRemoveContains(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWishlistRepository(db)
	ctx := context.Background()

	r := seedRecipe(t, db, models.Recipe{Title: "Latte", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5})

	require.NoError(t, repo.Add(ctx, 1, r.ID))

	err := repo.Add(ctx, 1, r.ID)
	assert.True(t, errors.Is(err, ErrDuplicate))

	ok, err := repo.Contains(ctx, 1, r.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	items, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Latte", items[0].Recipe.Title)

	removed, err := repo.Remove(ctx, 1, r.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, 1, r.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStatsRepository_DashboardQueries(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	latte := seedRecipe(t, db, models.Recipe{Title: "Latte", Description: "d", Category: models.CategoryCoffee, Difficulty: models.DifficultyEasy, PrepTime: 5})
	chai := seedRecipe(t, db, models.Recipe{Title: "Chai", Description: "d", Category: models.CategoryTea, Difficulty: models.DifficultyEasy, PrepTime: 5})

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.TrackRecipeView(ctx, &models.RecipeView{RecipeID: latte.ID, IPAddress: "10.0.0.1"}))
	}
	require.NoError(t, repo.TrackRecipeView(ctx, &models.RecipeView{RecipeID: chai.ID, IPAddress: "10.0.0.2"}))

	require.NoError(t, repo.TrackVisitor(ctx, &models.Visitor{IPAddress: "10.0.0.1", Path: "/"}))
	require.NoError(t, repo.TrackVisitor(ctx, &models.Visitor{IPAddress: "10.0.0.1", Path: "/recipes"}))
	require.NoError(t, repo.TrackVisitor(ctx, &models.Visitor{IPAddress: "10.0.0.2", Path: "/"}))

	total, err := repo.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	byCategory, err := repo.RecipesByCategory(ctx)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	views, err := repo.CountViews(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), views)

	recent, err := repo.CountViews(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(4), recent)

	top, err := repo.TopViewedRecipes(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, latte.ID, top[0].RecipeID)
	assert.Equal(t, "Latte", top[0].Title)
	assert.Equal(t, int64(3), top[0].Views)

	visitors, err := repo.CountVisitors(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), visitors)

	unique, err := repo.CountUniqueVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unique)

	daily, err := repo.DailyVisitors(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, int64(3), daily[0].Count)
}
