package server

import (
	"brewvibe/internal/models"

	"github.com/gofiber/fiber/v2"
)

const defaultUserListLimit = 20

// GetUsers handles GET /api/v1/users (admin)
func (s *Server) GetUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultUserListLimit)
	if limit <= 0 {
		limit = defaultUserListLimit
	}
	if limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.userRepo.List(c.Context(), limit, offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
	})
}

// GetUser handles GET /api/v1/users/:id (admin)
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(user)
}

// GetUserStats handles GET /api/v1/users/stats (admin)
func (s *Server) GetUserStats(c *fiber.Ctx) error {
	stats, err := s.userRepo.Stats(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(stats)
}

// DeleteUser handles DELETE /api/v1/users/:id (admin)
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	println("DEBUG DeleteUser adminID:", adminID, "targetID:", targetID, "path:", c.Path())

	if targetID == adminID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot delete your own account"))
	}

	if err := s.userRepo.Delete(c.Context(), targetID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateUserRole handles PUT /api/v1/users/:id/role (admin)
func (s *Server) UpdateUserRole(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Role must be 'admin' or 'user'"))
	}

	// An admin cannot remove their own privileges.
	if targetID == adminID && req.Role != models.RoleAdmin {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot demote yourself"))
	}

	user, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	user.Role = req.Role
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(user)
}

// UpdateUserActive handles PUT /api/v1/users/:id/active (admin)
func (s *Server) UpdateUserActive(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_active is required"))
	}

	if targetID == adminID && !*req.IsActive {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot deactivate yourself"))
	}

	user, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	user.IsActive = *req.IsActive
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(user)
}
