package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:        1,
				Content:   "hello world",
				AuthorID:  1,
				PostType:  PostTypeText,
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "empty content",
			post: &Post{
				ID:        1,
				Content:   "",
				AuthorID:  1,
				PostType:  PostTypeText,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "unknown post type",
			post: &Post{
				ID:        1,
				Content:   "hello",
				AuthorID:  1,
				PostType:  "video",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing author",
			post: &Post{
				ID:        1,
				Content:   "hello",
				PostType:  PostTypeText,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero creation time",
			post: &Post{
				ID:       1,
				Content:  "hello",
				AuthorID: 1,
				PostType: PostTypeText,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPost(t *testing.T) {
	author := &User{ID: 7, Username: "alice"}

	t.Run("defaults post type to text", func(t *testing.T) {
		post, err := NewPost(author, "hello", "")
		require.NoError(t, err)
		assert.Equal(t, PostTypeText, post.PostType)
		assert.Equal(t, 7, post.AuthorID)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("keeps explicit post type", func(t *testing.T) {
		post, err := NewPost(author, "hello", PostTypeText)
		require.NoError(t, err)
		assert.Equal(t, PostTypeText, post.PostType)
	})

	t.Run("rejects nil author", func(t *testing.T) {
		_, err := NewPost(nil, "hello", "")
		assert.Error(t, err)
	})
}

func TestPostIsAuthoredBy(t *testing.T) {
	post := &Post{ID: 1, AuthorID: 2}

	assert.True(t, post.IsAuthoredBy(&User{ID: 2}))
	assert.False(t, post.IsAuthoredBy(&User{ID: 3}))
	assert.False(t, post.IsAuthoredBy(nil))
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Content: "hello", AuthorID: 1, PostType: PostTypeText}
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())

	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	post = &Post{CreatedAt: fixed}
	post.BeforeCreate()
	assert.Equal(t, fixed, post.CreatedAt)
}
