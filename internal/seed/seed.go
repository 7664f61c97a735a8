// Package seed provides database seeding utilities for development and
// testing: a curated set of recipes embedded as YAML, a default admin
// account, and gofakeit-backed factories for bulk fake data.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"brewvibe/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed recipes.yml
var recipesYAML []byte

// recipeFixture is the YAML shape of one embedded recipe.
type recipeFixture struct {
	Title        string  `yaml:"title"`
	Slug         string  `yaml:"slug"`
	Description  string  `yaml:"description"`
	Category     string  `yaml:"category"`
	Difficulty   string  `yaml:"difficulty"`
	PrepTime     int     `yaml:"prep_time"`
	Calories     *int    `yaml:"calories"`
	Image        string  `yaml:"image"`
	Rating       float64 `yaml:"rating"`
	ReviewsCount int     `yaml:"reviews_count"`
	Ingredients  []struct {
		Name   string `yaml:"name"`
		Amount string `yaml:"amount"`
		Unit   string `yaml:"unit"`
	} `yaml:"ingredients"`
	Instructions []string `yaml:"instructions"`
}

type recipeFile struct {
	Recipes []recipeFixture `yaml:"recipes"`
}

// Seeder populates the database with development data.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes seedable data. Users are kept so re-seeding does not
// invalidate existing logins.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	for _, model := range []interface{}{
		&models.CommentLike{},
		&models.Comment{},
		&models.WishlistItem{},
		&models.RecipeView{},
		&models.Recipe{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Recipes upserts the embedded curated recipes by slug. Existing rows are
// refreshed in place so the seeder is safe to run repeatedly.
func (s *Seeder) Recipes() (int, error) {
	var file recipeFile
	if err := yaml.Unmarshal(recipesYAML, &file); err != nil {
		return 0, fmt.Errorf("parse embedded recipes: %w", err)
	}

	for _, fx := range file.Recipes {
		recipe := models.Recipe{
			Slug:         fx.Slug,
			Title:        fx.Title,
			Description:  fx.Description,
			Category:     fx.Category,
			Difficulty:   fx.Difficulty,
			PrepTime:     fx.PrepTime,
			Calories:     fx.Calories,
			Image:        fx.Image,
			Instructions: models.StringList(fx.Instructions),
			Rating:       fx.Rating,
			ReviewsCount: fx.ReviewsCount,
		}
		for _, ing := range fx.Ingredients {
			recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
				Name:   ing.Name,
				Amount: ing.Amount,
				Unit:   ing.Unit,
			})
		}

		err := s.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "category", "difficulty", "prep_time",
				"calories", "image", "ingredients", "instructions", "updated_at",
			}),
		}).Create(&recipe).Error
		if err != nil {
			return 0, fmt.Errorf("seed recipe %s: %w", fx.Slug, err)
		}
	}

	return len(file.Recipes), nil
}

// AdminCredentials configures the default admin account created by Admin.
type AdminCredentials struct {
	Username string
	Email    string
	Password string
}

// Admin ensures an admin account exists. If any admin is already present
// the database is left untouched and the existing account is returned.
func (s *Seeder) Admin(creds AdminCredentials) (*models.User, bool, error) {
	var existing models.User
	err := s.db.Where("role = ?", models.RoleAdmin).First(&existing).Error
	switch {
	case err == nil:
		return &existing, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	admin := models.User{
		Username: creds.Username,
		Email:    creds.Email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, false, fmt.Errorf("create admin user: %w", err)
	}
	return &admin, true, nil
}
