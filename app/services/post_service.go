package services

import (
	"connectly/app/auth"
	"connectly/app/logging"
	"connectly/app/models"
	"connectly/app/repositories"
)

// PostService handles business logic for posts. Reads of the collection are
// open to any authenticated user; everything addressing a single post is
// restricted to its author, with misses and foreign posts both reported as
// not found.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	policy      *auth.Policy
	log         *logging.Sink
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	policy *auth.Policy,
	log *logging.Sink,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		policy:      policy,
		log:         log,
	}
}

// List returns all posts for any authenticated user.
func (s *PostService) List(actor *models.User) ([]*models.Post, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}
	s.log.Info("retrieving all posts", "actor", actor.Username)
	return s.postRepo.List()
}

// Create publishes a new post. The author is always the acting user; any
// client-supplied author is ignored by construction.
func (s *PostService) Create(actor *models.User, content, postType string) (*models.Post, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}

	post, err := models.NewPost(actor, content, postType)
	if err != nil {
		return nil, err
	}
	if err := post.Validate(); err != nil {
		s.log.Warning("invalid post creation attempt", "actor", actor.Username)
		return nil, asValidationError(err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	s.log.Info("post created", "actor", actor.Username, "id", post.ID)
	return post, nil
}

// Get returns the post only to its author. A missing id and a foreign post
// are indistinguishable to the caller.
func (s *PostService) Get(actor *models.User, id int) (*models.Post, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}

	s.log.Info("retrieving post", "actor", actor.Username, "id", id)
	post, err := s.getOwned(actor, id)
	if err != nil {
		s.log.Warning("post retrieval failed: not found or unauthorized", "actor", actor.Username, "id", id)
		return nil, err
	}
	return post, nil
}

// Update replaces the post content. Author only, masked as not found.
func (s *PostService) Update(actor *models.User, id int, content string) (*models.Post, error) {
	if !s.policy.IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}

	s.log.Info("attempting to update post", "actor", actor.Username, "id", id)
	post, err := s.getOwned(actor, id)
	if err != nil {
		s.log.Warning("post update failed: not found or unauthorized", "actor", actor.Username, "id", id)
		return nil, err
	}

	// Author and creation time stay as written
	post.Content = content
	if err := post.Validate(); err != nil {
		s.log.Warning("invalid post update attempt", "actor", actor.Username, "id", id)
		return nil, asValidationError(err)
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	s.log.Info("post updated successfully", "actor", actor.Username, "id", post.ID)
	return post, nil
}

// Delete removes the post and its comments, comments first. Author only,
// masked as not found.
func (s *PostService) Delete(actor *models.User, id int) error {
	if !s.policy.IsAuthenticated(actor) {
		return ErrUnauthenticated
	}

	s.log.Info("attempting to delete post", "actor", actor.Username, "id", id)
	post, err := s.getOwned(actor, id)
	if err != nil {
		s.log.Warning("post deletion failed: not found or unauthorized", "actor", actor.Username, "id", id)
		return err
	}

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

	s.log.Info("post deleted successfully", "actor", actor.Username, "id", id)
	return nil
}

// getOwned fetches a post and applies the ownership check, collapsing
// "absent" and "not yours" into the same not-found result. The existence
// check always runs first.
func (s *PostService) getOwned(actor *models.User, id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !s.policy.IsAuthor(actor, post) {
		return nil, ErrNotFound
	}
	return post, nil
}
