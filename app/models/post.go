package models

import (
	"errors"
	"time"
)

// NewPost is the single construction path for posts. An empty postType
// defaults to text; the author is always the acting user.
func NewPost(author *User, content, postType string) (*Post, error) {
	if author == nil {
		return nil, errors.New("author cannot be nil")
	}
	if postType == "" {
		postType = PostTypeText
	}
	return &Post{
		Content:   content,
		AuthorID:  author.ID,
		PostType:  postType,
		CreatedAt: time.Now(),
	}, nil
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// IsAuthoredBy reports whether the given user wrote this post.
func (p *Post) IsAuthoredBy(u *User) bool {
	if u == nil {
		return false
	}
	return p.AuthorID == u.ID
}
