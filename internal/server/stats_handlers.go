package server

import (
	"brewvibe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TrackRecipeView handles POST /api/v1/statistics/view/:recipeId
// Fire-and-forget: insert failures are logged by the service, never surfaced.
func (s *Server) TrackRecipeView(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}

	s.statsService.TrackRecipeView(c.Context(), recipeID, c.IP(), c.Get("User-Agent"))

	return c.JSON(fiber.Map{"message": "View tracked"})
}

// TrackVisitor handles POST /api/v1/statistics/visitor
// Fire-and-forget; a malformed body is ignored rather than rejected.
func (s *Server) TrackVisitor(c *fiber.Ctx) error {
	var req struct {
		Path      string `json:"path"`
		SessionID string `json:"session_id"`
	}
	_ = c.BodyParser(&req)

	s.statsService.TrackVisitor(c.Context(), c.IP(), c.Get("User-Agent"), req.Path, req.SessionID)

	return c.JSON(fiber.Map{"message": "Visit tracked"})
}

// GetDashboardStats handles GET /api/v1/statistics/dashboard (admin)
func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := s.statsService.Dashboard(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(stats)
}
