package services

import (
	"connectly/app/logging"
	"connectly/app/models"
	"connectly/app/repositories"

	"github.com/google/uuid"
)

// AuthService issues and resolves login sessions.
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	log         *logging.Sink
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	log *logging.Sink,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// Login verifies the credentials and returns a fresh session. Unknown
// usernames and wrong passwords produce the same failure.
func (s *AuthService) Login(username, password string) (*models.Session, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if err == ErrNotFound {
			s.log.Warning("login failed", "username", username)
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if !checkPassword(user.PasswordHash, password) {
		s.log.Warning("login failed", "username", username)
		return nil, ErrUnauthenticated
	}

	session, err := user.NewSession(uuid.NewString())
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	s.log.Info("login succeeded", "username", username, "id", user.ID)
	return session, nil
}

// Logout discards the session behind the token.
func (s *AuthService) Logout(actor *models.User, token string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if err := s.sessionRepo.Delete(token); err != nil && err != ErrNotFound {
		return err
	}
	s.log.Info("logout", "username", actor.Username, "id", actor.ID)
	return nil
}

// Resolve maps a session token to its user. Used by the authentication
// middleware; a dangling token resolves to no principal.
func (s *AuthService) Resolve(token string) (*models.User, error) {
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(session.UserID)
}
