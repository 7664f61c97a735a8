package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"brewvibe/internal/middleware"
	"brewvibe/internal/models"
	"brewvibe/internal/observability"
	"brewvibe/internal/repository"

	"gorm.io/gorm"
)

const (
	maxCommentLen       = 5000
	defaultCommentLimit = 10
	maxCommentLimit     = 100
)

type CommentService struct {
	commentRepo repository.CommentRepository
	recipeRepo  repository.RecipeRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateCommentInput struct {
	UserID   uint
	Username string
	RecipeID uint
	Content  string
	Rating   *int
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
	Rating    *int
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

type AddReplyInput struct {
	UserID    uint
	Username  string
	CommentID uint
	Content   string
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	recipeRepo repository.RecipeRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		recipeRepo:  recipeRepo,
		isAdmin:     isAdmin,
	}
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLen {
		return "", models.NewValidationError("Comment too long (max 5000 characters)")
	}
	return content, nil
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return models.NewValidationError("Rating must be between 1 and 5")
	}
	return nil
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.recipeRepo.GetByID(ctx, in.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", in.RecipeID)
		}
		return nil, err
	}

	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		RecipeID: in.RecipeID,
		UserID:   in.UserID,
		Username: in.Username,
		Content:  content,
		Rating:   in.Rating,
		Replies:  models.ReplyList{},
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if in.Rating != nil {
		s.refreshRecipeRating(ctx, in.RecipeID)
	}

	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

// ListComments returns one page of a recipe's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, recipeID uint, page, limit int, currentUserID uint) ([]*models.Comment, models.Pagination, error) {
	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Pagination{}, models.NewNotFoundError("Recipe", recipeID)
		}
		return nil, models.Pagination{}, err
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultCommentLimit
	}
	if limit > maxCommentLimit {
		limit = maxCommentLimit
	}

	comments, total, err := s.commentRepo.ListByRecipe(ctx, recipeID, limit, (page-1)*limit, currentUserID)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return comments, models.NewPagination(page, limit, total), nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID, in.UserID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}

	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}

	ratingChanged := !ratingsEqual(comment.Rating, in.Rating)
	comment.Content = content
	comment.Rating = in.Rating
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	if ratingChanged {
		s.refreshRecipeRating(ctx, comment.RecipeID)
	}

	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID, 0)
	if err != nil {
		return err
	}

	if comment.UserID != in.UserID {
		if s.isAdmin == nil {
			return models.NewForbiddenError("You can only delete your own comments")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return err
	}

	// Always recompute: removing an unrated comment still changes the
	// review count the average is divided by.
	s.refreshRecipeRating(ctx, comment.RecipeID)
	return nil
}

// ToggleLike flips the caller's like on a comment and returns the new state.
func (s *CommentService) ToggleLike(ctx context.Context, userID, commentID uint) (*LikeResult, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID, 0); err != nil {
		return nil, err
	}

	liked, err := s.commentRepo.IsLiked(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.commentRepo.Unlike(ctx, userID, commentID)
	} else {
		err = s.commentRepo.Like(ctx, userID, commentID)
	}
	if err != nil {
		return nil, err
	}

	count, err := s.commentRepo.LikesCount(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: !liked, LikesCount: count}, nil
}

// AddReply appends an immutable reply to a comment's embedded reply list.
func (s *CommentService) AddReply(ctx context.Context, in AddReplyInput) (*models.Comment, error) {
	content, err := validateCommentContent(in.Content)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID, in.UserID)
	if err != nil {
		return nil, err
	}

	comment.Replies = append(comment.Replies, models.Reply{
		UserID:    in.UserID,
		Username:  in.Username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// aggregateRating computes the derived recipe fields from the comment set:
// the sum of ratings over the count of ALL comments (unrated ones dilute
// the average), rounded to one decimal. No comments means 0 / 0.
func aggregateRating(ratingSum, totalComments int64) (float64, int) {
	if totalComments == 0 {
		return 0, 0
	}
	avg := float64(ratingSum) / float64(totalComments)
	return math.Round(avg*10) / 10, int(totalComments)
}

// refreshRecipeRating recomputes and stores a recipe's derived rating
// fields. Best-effort: the comment write that triggered it has already
// succeeded, so failures are logged and swallowed. Concurrent recomputes
// are last-writer-wins; both writers read a consistent comment set.
func (s *CommentService) refreshRecipeRating(ctx context.Context, recipeID uint) {
	total, sum, err := s.commentRepo.RatingStats(ctx, recipeID)
	if err == nil {
		rating, reviews := aggregateRating(sum, total)
		err = s.recipeRepo.UpdateRating(ctx, recipeID, rating, reviews)
	}
	if err != nil {
		observability.RatingRecomputes.WithLabelValues("error").Inc()
		middleware.Logger.ErrorContext(ctx, "Failed to refresh recipe rating",
			slog.Uint64("recipe_id", uint64(recipeID)),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.RatingRecomputes.WithLabelValues("ok").Inc()
}

func ratingsEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
