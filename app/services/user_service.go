package services

import (
	"connectly/app/auth"
	"connectly/app/logging"
	"connectly/app/models"
	"connectly/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// UserService handles account management. List, update and delete are
// admin-gated; creation is open for self-registration.
type UserService struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	sessionRepo repositories.SessionRepository
	policy      *auth.Policy
	log         *logging.Sink
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	sessionRepo repositories.SessionRepository,
	policy *auth.Policy,
	log *logging.Sink,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		sessionRepo: sessionRepo,
		policy:      policy,
		log:         log,
	}
}

// List returns all users. Admin only.
func (s *UserService) List(actor *models.User) ([]*models.User, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}
	if !s.policy.IsAdmin(actor) {
		s.log.Warning("user list denied", "actor", actor.Username)
		return nil, ErrForbidden
	}
	s.log.Info("retrieving user list", "actor", actor.Username)
	return s.userRepo.List()
}

// Create registers a new user. Open to unauthenticated callers. The password
// is stored only as a bcrypt hash.
func (s *UserService) Create(username, email, password string) (*models.User, error) {
	s.log.Info("attempting to create user", "username", username)

	if len(password) < minPasswordLength {
		s.log.Warning("invalid user creation attempt", "username", username)
		return nil, newValidationError("password", "must be at least 8 characters")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := user.Validate(); err != nil {
		s.log.Warning("invalid user creation attempt", "username", username)
		return nil, asValidationError(err)
	}

	user.BeforeCreate()
	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrDuplicateUsername {
			s.log.Warning("invalid user creation attempt", "username", username)
			return nil, newValidationError("username", "already taken")
		}
		return nil, err
	}

	s.log.Info("user created successfully", "username", user.Username, "id", user.ID)
	return user, nil
}

// Update applies a partial change to the target user. Admin only. Only the
// supplied fields change; a new password is rehashed before storage.
func (s *UserService) Update(actor *models.User, id int, email, password *string) (*models.User, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}
	if !s.policy.IsAdmin(actor) {
		s.log.Warning("user update denied", "actor", actor.Username, "id", id)
		return nil, ErrForbidden
	}

	s.log.Info("attempting to update user", "actor", actor.Username, "id", id)
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		s.log.Warning("user update failed: not found", "id", id)
		return nil, err
	}

	if email != nil {
		user.Email = *email
	}
	if password != nil {
		if len(*password) < minPasswordLength {
			return nil, newValidationError("password", "must be at least 8 characters")
		}
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := user.Validate(); err != nil {
		s.log.Warning("invalid user update attempt", "id", id)
		return nil, asValidationError(err)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.log.Info("user updated successfully", "username", user.Username, "id", user.ID)
	return user, nil
}

// Delete removes the target user together with everything the account owns:
// posts (and their comments), the user's own comments, and login sessions.
// Dependents go first so a failure never leaves orphans pointing at a
// missing user. Admin only.
func (s *UserService) Delete(actor *models.User, id int) error {
	if !s.policy.IsAuthenticated(actor) {
		return ErrUnauthenticated
	}
	if !s.policy.IsAdmin(actor) {
		s.log.Warning("user deletion denied", "actor", actor.Username, "id", id)
		return ErrForbidden
	}

	s.log.Info("attempting to delete user", "actor", actor.Username, "id", id)
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		s.log.Warning("user deletion failed: not found", "id", id)
		return err
	}

	posts, err := s.postRepo.ListByAuthor(id)
	if err != nil {
		return err
	}
	for _, post := range posts {
		comments, err := s.commentRepo.ListByPost(post.ID)
		if err != nil {
			return err
		}
		for _, comment := range comments {
			if err := s.commentRepo.Delete(comment.ID); err != nil {
				return err
			}
		}
		if err := s.postRepo.Delete(post.ID); err != nil {
			return err
		}
	}

	comments, err := s.commentRepo.ListByAuthor(id)
	if err != nil {
		return err
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			// Already removed with one of the posts above
			if err != ErrNotFound {
				return err
			}
		}
	}

	if err := s.sessionRepo.DeleteByUser(id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	s.log.Info("user deleted successfully", "username", user.Username, "id", user.ID)
	return nil
}

// hashPassword applies the one-way transform used for stored credentials.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword compares a candidate password against a stored hash.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
