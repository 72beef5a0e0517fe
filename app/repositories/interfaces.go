package repositories

import "connectly/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]*models.User, error)
	Update(user *models.User) error
	Delete(id int) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	ListByAuthor(authorID int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	List() ([]*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	ListByAuthor(authorID int) ([]*models.Comment, error)
	Delete(id int) error
}

// SessionRepository defines the interface for login session storage
type SessionRepository interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	Delete(token string) error
	DeleteByUser(userID int) error
}
