package models

import (
	"errors"
	"time"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// CheckIdentity reports whether the user is the same account as other.
func (u *User) CheckIdentity(other *User) bool {
	if other == nil {
		return false
	}
	return u.ID == other.ID
}

// NewSession builds a login session for the user with the given token.
func (u *User) NewSession(token string) (*Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	return &Session{
		Token:     token,
		UserID:    u.ID,
		CreatedAt: time.Now(),
	}, nil
}
