package models

import "time"

// WishlistItem records that a user saved a recipe.
// The combination of UserID and RecipeID must be unique.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`
	Recipe    Recipe    `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
