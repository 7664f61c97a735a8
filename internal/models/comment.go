package models

import (
	"time"
)

// Comment represents a user review on a recipe. Rating is optional: a
// comment without a star rating is a plain text review. Username is
// denormalized from the authoring user so listings do not depend on the
// users table staying unchanged. Deletion is hard: no DeletedAt column,
// the row and its likes are removed outright.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	UserID   uint   `gorm:"not null" json:"user_id"`
	Username string `gorm:"not null" json:"username"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Rating   *int   `json:"rating,omitempty"`
	// Replies are embedded value objects with no independent lifecycle.
	Replies ReplyList `gorm:"type:jsonb" json:"replies"`
	User    User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this comment (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentLike records one user's like on a comment.
// The combination of UserID and CommentID must be unique.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_user_comment" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}
