package database

import "brewvibe/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Recipe{},
		&models.Comment{},
		&models.CommentLike{},
		&models.WishlistItem{},
		&models.RecipeView{},
		&models.Visitor{},
	}
}
