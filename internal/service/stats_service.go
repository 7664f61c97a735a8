package service

import (
	"context"
	"log/slog"
	"time"

	"brewvibe/internal/middleware"
	"brewvibe/internal/models"
	"brewvibe/internal/observability"
	"brewvibe/internal/repository"
)

const topRecipesLimit = 10

type StatsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// TrackRecipeView records a recipe page view. Fire-and-forget: tracking
// must never break the page it instruments, so failures are only logged.
func (s *StatsService) TrackRecipeView(ctx context.Context, recipeID uint, ip, userAgent string) {
	if recipeID == 0 {
		return
	}
	err := s.statsRepo.TrackRecipeView(ctx, &models.RecipeView{
		RecipeID:  recipeID,
		IPAddress: ip,
		UserAgent: userAgent,
	})
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Failed to track recipe view",
			slog.Uint64("recipe_id", uint64(recipeID)),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.RecipeViewsTracked.Inc()
}

// TrackVisitor records a site visit, same fire-and-forget contract.
func (s *StatsService) TrackVisitor(ctx context.Context, ip, userAgent, path, sessionID string) {
	err := s.statsRepo.TrackVisitor(ctx, &models.Visitor{
		IPAddress: ip,
		UserAgent: userAgent,
		Path:      path,
		SessionID: sessionID,
	})
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Failed to track visitor",
			slog.String("error", err.Error()),
		)
		return
	}
	observability.VisitorsTracked.Inc()
}

// Dashboard assembles the admin statistics payload.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	now := time.Now().UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.Add(-30 * 24 * time.Hour)

	stats := &models.DashboardStats{}
	var err error

	if stats.TotalRecipes, err = s.statsRepo.CountRecipes(ctx); err != nil {
		return nil, err
	}
	if stats.RecipesByCategory, err = s.statsRepo.RecipesByCategory(ctx); err != nil {
		return nil, err
	}
	if stats.TotalViews, err = s.statsRepo.CountViews(ctx, time.Time{}); err != nil {
		return nil, err
	}
	if stats.ViewsLast7Days, err = s.statsRepo.CountViews(ctx, weekAgo); err != nil {
		return nil, err
	}
	if stats.ViewsLast30Days, err = s.statsRepo.CountViews(ctx, monthAgo); err != nil {
		return nil, err
	}
	if stats.TopRecipes, err = s.statsRepo.TopViewedRecipes(ctx, topRecipesLimit); err != nil {
		return nil, err
	}
	if stats.TotalVisitors, err = s.statsRepo.CountVisitors(ctx, time.Time{}); err != nil {
		return nil, err
	}
	if stats.UniqueVisitors, err = s.statsRepo.CountUniqueVisitors(ctx); err != nil {
		return nil, err
	}
	if stats.VisitorsLast7Days, err = s.statsRepo.CountVisitors(ctx, weekAgo); err != nil {
		return nil, err
	}
	if stats.DailyVisitors, err = s.statsRepo.DailyVisitors(ctx, weekAgo); err != nil {
		return nil, err
	}
	return stats, nil
}
