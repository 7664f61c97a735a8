package server

import (
	"brewvibe/internal/models"
	"brewvibe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/v1/comments/recipe/:recipeId
// Public; when a valid bearer token is supplied the caller's like state is
// resolved on each comment.
func (s *Server) GetComments(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}

	currentUserID, _ := s.optionalUserID(c)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 0)

	comments, pagination, err := s.commentService.ListComments(c.Context(), recipeID, page, limit, currentUserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"comments":   comments,
		"pagination": pagination,
	})
}

// CreateComment handles POST /api/v1/comments/recipe/:recipeId
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "recipeId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
		Rating  *int   `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:   userID,
		Username: user.Username,
		RecipeID: recipeID,
		Content:  req.Content,
		Rating:   req.Rating,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /api/v1/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
		Rating  *int   `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    userID,
		CommentID: commentID,
		Content:   req.Content,
		Rating:    req.Rating,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/v1/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    userID,
		CommentID: commentID,
	}); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LikeComment handles POST /api/v1/comments/:id/like
// Toggles the caller's like and returns the new state.
func (s *Server) LikeComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.commentService.ToggleLike(c.Context(), userID, commentID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(result)
}

// ReplyToComment handles POST /api/v1/comments/:id/reply
func (s *Server) ReplyToComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	comment, err := s.commentService.AddReply(c.Context(), service.AddReplyInput{
		UserID:    userID,
		Username:  user.Username,
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
