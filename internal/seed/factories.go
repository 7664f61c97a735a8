package seed

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"brewvibe/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	fakeCategories   = []string{models.CategoryCoffee, models.CategoryTea, models.CategoryMocktail}
	fakeDifficulties = []string{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}

	brewAdjectives = []string{
		"Iced", "Spiced", "Double", "Velvet", "Golden", "Smoky", "Honeyed",
		"Frothy", "Midnight", "Summer", "Winter", "Salted", "Toasted",
	}
	brewBases = []string{
		"Latte", "Brew", "Infusion", "Fizz", "Cooler", "Tonic", "Cordial",
		"Steamer", "Macchiato", "Blend", "Spritz", "Chai",
	}
	brewUnits = []string{"ml", "g", "tsp", "tbsp", "shot", "cup", "leaves", ""}
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the fake seeder and by tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
// All factory users share the password "password123".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Role:     models.RoleUser,
		IsActive: true,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRecipe constructs and persists a sample `models.Recipe` with a
// generated title, ingredient list, and instructions.
func (f *Factory) CreateRecipe(overrides ...func(*models.Recipe)) (*models.Recipe, error) {
	title := fmt.Sprintf("%s %s %s",
		brewAdjectives[f.r.Intn(len(brewAdjectives))],
		gofakeit.Fruit(),
		brewBases[f.r.Intn(len(brewBases))],
	)

	calories := gofakeit.Number(5, 350)
	recipe := &models.Recipe{
		Title: title,
		// Titles repeat across fruits; a random suffix keeps slugs unique.
		Slug:        fmt.Sprintf("%s-%d", models.Slugify(title), gofakeit.Number(1000, 9999)),
		Description: gofakeit.Sentence(12),
		Category:    fakeCategories[f.r.Intn(len(fakeCategories))],
		Difficulty:  fakeDifficulties[f.r.Intn(len(fakeDifficulties))],
		PrepTime:    gofakeit.Number(2, 45),
		Calories:    &calories,
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
	}

	numIngredients := f.r.Intn(4) + 2
	for i := 0; i < numIngredients; i++ {
		name := gofakeit.Fruit()
		if i%2 == 1 {
			name = gofakeit.Vegetable()
		}
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Name:   name,
			Amount: fmt.Sprintf("%d", gofakeit.Number(1, 200)),
			Unit:   brewUnits[f.r.Intn(len(brewUnits))],
		})
	}
	numSteps := f.r.Intn(4) + 3
	for i := 0; i < numSteps; i++ {
		recipe.Instructions = append(recipe.Instructions, gofakeit.Sentence(8))
	}

	// realistic created_at spread
	daysBack := f.r.Intn(90)
	recipe.CreatedAt = time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour)

	for _, override := range overrides {
		override(recipe)
	}

	if err := f.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided recipe authored by the provided user. Roughly two thirds of
// generated comments carry a star rating.
func (f *Factory) CreateComment(user *models.User, recipe *models.Recipe, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		RecipeID: recipe.ID,
		UserID:   user.ID,
		Username: user.Username,
		Content:  gofakeit.Sentence(10),
	}
	if f.r.Float32() < 0.66 {
		rating := f.r.Intn(5) + 1
		comment.Rating = &rating
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// Fake seeds numRecipes generated recipes with a handful of users and
// comments, then refreshes each recipe's aggregate rating from its comments.
func (s *Seeder) Fake(numRecipes int) error {
	f := NewFactory(s.db)

	numUsers := numRecipes/4 + 3
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create fake user: %v", err)
			continue
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("no fake users could be created")
	}
	log.Printf("✓ %d fake users created", len(users))

	for i := 0; i < numRecipes; i++ {
		recipe, err := f.CreateRecipe()
		if err != nil {
			return fmt.Errorf("create fake recipe: %w", err)
		}

		numComments := f.r.Intn(8)
		sum := 0
		for j := 0; j < numComments; j++ {
			user := users[f.r.Intn(len(users))]
			comment, err := f.CreateComment(user, recipe)
			if err != nil {
				return fmt.Errorf("create fake comment: %w", err)
			}
			if comment.Rating != nil {
				sum += *comment.Rating
			}
		}

		if numComments > 0 {
			avg := math.Round(float64(sum)/float64(numComments)*10) / 10
			err := s.db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).
				Updates(map[string]interface{}{
					"rating":        avg,
					"reviews_count": numComments,
				}).Error
			if err != nil {
				return fmt.Errorf("refresh fake recipe rating: %w", err)
			}
		}

		if i > 0 && i%50 == 0 {
			log.Printf("Created %d recipes...", i)
		}
	}

	return nil
}
