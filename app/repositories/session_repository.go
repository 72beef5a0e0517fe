package repositories

import (
	"connectly/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerSessionRepository implements SessionRepository using BadgerDB
type BadgerSessionRepository struct {
	db *badger.DB
}

// NewBadgerSessionRepository creates a new BadgerSessionRepository
func NewBadgerSessionRepository(db *badger.DB) *BadgerSessionRepository {
	return &BadgerSessionRepository{db: db}
}

func sessionKey(token string) []byte {
	return []byte(SessionKeyPrefix + token)
}

// Create stores a login session under its token
func (r *BadgerSessionRepository) Create(session *models.Session) error {
	data, err := marshalEntity(session)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(session.Token), data)
	})
}

// GetByToken retrieves a session by its token
func (r *BadgerSessionRepository) GetByToken(token string) (*models.Session, error) {
	var session models.Session

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &session)
		})
	})

	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session by token
func (r *BadgerSessionRepository) Delete(token string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(sessionKey(token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return txn.Delete(sessionKey(token))
	})
}

// DeleteByUser removes every session belonging to the given user
func (r *BadgerSessionRepository) DeleteByUser(userID int) error {
	var stale [][]byte

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(SessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var session models.Session
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &session)
			})
			if err != nil {
				return err
			}
			if session.UserID == userID {
				stale = append(stale, item.KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
