package services

import (
	"connectly/app/auth"
	"connectly/app/logging"
	"connectly/app/models"
	"connectly/app/repositories"
)

// CommentService handles business logic for comments. Comments can be listed
// and created by any authenticated user; there is no update or delete
// surface for them.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	policy      *auth.Policy
	log         *logging.Sink
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	policy *auth.Policy,
	log *logging.Sink,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		policy:      policy,
		log:         log,
	}
}

// List returns all comments for any authenticated user.
func (s *CommentService) List(actor *models.User) ([]*models.Comment, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}
	s.log.Info("retrieving all comments", "actor", actor.Username)
	return s.commentRepo.List()
}

// Create attaches a comment to an existing post. The post reference is
// checked explicitly so a dangling id surfaces as a field error instead of a
// storage failure. The author is always the acting user.
func (s *CommentService) Create(actor *models.User, text string, postID int) (*models.Comment, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}

	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if err == ErrNotFound {
			s.log.Warning("invalid comment creation attempt", "actor", actor.Username, "post", postID)
			return nil, newValidationError("post", "Post not found.")
		}
		return nil, err
	}

	comment := &models.Comment{
		Text:     text,
		AuthorID: actor.ID,
	}
	if err := comment.SetPost(post); err != nil {
		return nil, err
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		s.log.Warning("invalid comment creation attempt", "actor", actor.Username, "post", postID)
		return nil, asValidationError(err)
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	s.log.Info("comment created", "actor", actor.Username, "post", postID, "id", comment.ID)
	return comment, nil
}
