package repositories

import (
	"fmt"
	"strings"

	"connectly/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

func usernameKey(username string) []byte {
	return []byte(UsernameKeyPrefix + strings.ToLower(username))
}

// Create creates a new user, enforcing username uniqueness.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		// Reject taken usernames before allocating an ID
		_, err := txn.Get(usernameKey(user.Username))
		if err == nil {
			return ErrDuplicateUsername
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		if err := txn.Set(key, data); err != nil {
			return err
		}

		idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
		return txn.Set(usernameKey(user.Username), idBytes)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user through the username index
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	var id int

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// List retrieves all users
func (r *BadgerUserRepository) List() ([]*models.User, error) {
	var users []*models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return err
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates an existing user
func (r *BadgerUserRepository) Update(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))

		// Verify user exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a user by ID, dropping the username index entry with it.
func (r *BadgerUserRepository) Delete(id int) error {
	user, err := r.GetByID(id)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(usernameKey(user.Username))
	})
}
