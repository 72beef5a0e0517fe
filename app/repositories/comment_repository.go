package repositories

import (
	"fmt"

	"connectly/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		comment.ID = id

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", CommentKeyPrefix, comment.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id int) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", CommentKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
	})

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// List retrieves all comments
func (r *BadgerCommentRepository) List() ([]*models.Comment, error) {
	return r.scan(func(*models.Comment) bool { return true })
}

// ListByPost retrieves all comments attached to the given post
func (r *BadgerCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	return r.scan(func(c *models.Comment) bool { return c.PostID == postID })
}

// ListByAuthor retrieves all comments written by the given user
func (r *BadgerCommentRepository) ListByAuthor(authorID int) ([]*models.Comment, error) {
	return r.scan(func(c *models.Comment) bool { return c.AuthorID == authorID })
}

func (r *BadgerCommentRepository) scan(keep func(*models.Comment) bool) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			if keep(&comment) {
				comments = append(comments, &comment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete deletes a comment by ID
func (r *BadgerCommentRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", CommentKeyPrefix, id))

		// Verify comment exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
