// Package auth holds the authorization policy and request principal plumbing.
package auth

import (
	"context"

	"connectly/app/models"
)

// Policy decides whether an acting user may perform an action on a resource.
// Decisions are never cached; every call evaluates the state it is handed.
type Policy struct{}

// NewPolicy creates a new Policy
func NewPolicy() *Policy {
	return &Policy{}
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Policy) IsAdmin(principal *models.User) bool {
	return principal != nil && principal.IsAdmin
}

// IsAuthor reports whether the principal wrote the given post.
func (p *Policy) IsAuthor(principal *models.User, post *models.Post) bool {
	if principal == nil || post == nil {
		return false
	}
	return post.IsAuthoredBy(principal)
}

// IsAuthenticated reports whether a principal was resolved at all.
func (p *Policy) IsAuthenticated(principal *models.User) bool {
	return principal != nil
}

type contextKey struct{}

var principalKey = contextKey{}

// WithPrincipal returns a context carrying the resolved acting user.
func WithPrincipal(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// PrincipalFrom extracts the acting user from the context, or nil when the
// request was not authenticated.
func PrincipalFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(principalKey).(*models.User)
	return user
}
