package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used by all model checks.
var validate = validator.New()

// PostTypeText is the only post type currently supported.
const PostTypeText = "text"

// User represents an account that can author posts and comments.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-" validate:"required"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post represents a piece of content published by a user.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	Content   string    `json:"content" validate:"required,min=1"`
	AuthorID  int       `json:"author" validate:"required,gt=0"`
	PostType  string    `json:"post_type" validate:"required,oneof=text"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment represents a reply attached to a post.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	Text      string    `json:"text" validate:"required,min=1"`
	AuthorID  int       `json:"author" validate:"required,gt=0"`
	PostID    int       `json:"post" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is a login token bound to a user.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
