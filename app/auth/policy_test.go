package auth

import (
	"context"
	"testing"

	"connectly/app/models"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	policy := NewPolicy()

	assert.True(t, policy.IsAdmin(&models.User{ID: 1, IsAdmin: true}))
	assert.False(t, policy.IsAdmin(&models.User{ID: 1}))
	assert.False(t, policy.IsAdmin(nil))
}

func TestIsAuthor(t *testing.T) {
	policy := NewPolicy()
	post := &models.Post{ID: 1, AuthorID: 5}

	assert.True(t, policy.IsAuthor(&models.User{ID: 5}, post))
	assert.False(t, policy.IsAuthor(&models.User{ID: 6}, post))
	assert.False(t, policy.IsAuthor(nil, post))
	assert.False(t, policy.IsAuthor(&models.User{ID: 5}, nil))

	// Admin role grants nothing here; ownership is the only input
	assert.False(t, policy.IsAuthor(&models.User{ID: 6, IsAdmin: true}, post))
}

func TestIsAuthenticated(t *testing.T) {
	policy := NewPolicy()

	assert.True(t, policy.IsAuthenticated(&models.User{ID: 1}))
	assert.False(t, policy.IsAuthenticated(nil))
}

func TestPrincipalContext(t *testing.T) {
	user := &models.User{ID: 3, Username: "carol"}

	ctx := WithPrincipal(context.Background(), user)
	assert.Same(t, user, PrincipalFrom(ctx))

	assert.Nil(t, PrincipalFrom(context.Background()))
}
