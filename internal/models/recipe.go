package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Recipe categories. The set is closed.
const (
	CategoryCoffee   = "Coffee"
	CategoryTea      = "Tea"
	CategoryMocktail = "Mocktail"
)

// Recipe difficulties.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// PlaceholderImage is served when a recipe has no images at all.
const PlaceholderImage = "/images/recipe-placeholder.webp"

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCoffee, CategoryTea, CategoryMocktail:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is one of the difficulty set.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe represents a beverage recipe in the BrewVibe catalog.
// Rating and ReviewsCount are derived fields maintained by the rating
// aggregator; they are never written directly by recipe CRUD.
type Recipe struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Slug         string         `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Category     string         `gorm:"type:varchar(20);not null;index" json:"category"`
	Difficulty   string         `gorm:"type:varchar(10);not null;default:'Medium'" json:"difficulty"`
	PrepTime     int            `gorm:"not null" json:"prep_time"`
	Calories     *int           `json:"calories,omitempty"`
	Ingredients  IngredientList `gorm:"type:jsonb" json:"ingredients"`
	Instructions StringList     `gorm:"type:jsonb" json:"instructions"`
	Images       StringList     `gorm:"type:jsonb" json:"images"`
	// Image is the legacy single-image field, kept for backward
	// compatibility with documents created before Images existed.
	Image        string         `json:"image,omitempty"`
	Rating       float64        `gorm:"not null;default:0" json:"rating"`
	ReviewsCount int            `gorm:"not null;default:0" json:"reviews_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// PrimaryImage resolves the display image: first of Images, else the legacy
// Image field, else the placeholder.
func (r *Recipe) PrimaryImage() string {
	if len(r.Images) > 0 {
		return r.Images[0]
	}
	if r.Image != "" {
		return r.Image
	}
	return PlaceholderImage
}

// BeforeSave generates the slug from the title when none is set.
func (r *Recipe) BeforeSave(_ *gorm.DB) error {
	if r.Slug == "" {
		r.Slug = Slugify(r.Title)
	}
	return nil
}

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped. Titles that normalize to nothing fall back to a
// generated placeholder so the column's NOT NULL + unique constraints hold.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = fmt.Sprintf("recipe-%d", time.Now().UnixNano())
	}
	return slug
}
