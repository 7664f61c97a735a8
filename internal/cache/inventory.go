package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	RecipeKeyPrefix     = "recipe:%d"
	RecipeSlugKeyPrefix = "recipe:slug:%s"
)

const (
	RecipeTTL = 30 * time.Minute
)

func RecipeKey(recipeID uint) string {
	return fmt.Sprintf(RecipeKeyPrefix, recipeID)
}

func RecipeSlugKey(slug string) string {
	return fmt.Sprintf(RecipeSlugKeyPrefix, slug)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateRecipe drops both cache entries for a recipe. Called on every
// recipe write, including rating recomputes.
func InvalidateRecipe(ctx context.Context, recipeID uint, slug string) {
	Invalidate(ctx, RecipeKey(recipeID))
	if slug != "" {
		Invalidate(ctx, RecipeSlugKey(slug))
	}
}
