package repositories

import (
	"context"
	"errors"

	"lifefit/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Store groups the repositories sharing one database handle and opens
// transactional scopes over them.
type Store interface {
	Accounts() AccountRepository
	Posts() PostRepository
	Comments() CommentRepository
	// RunInTransaction runs fn with a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back on error or panic.
	RunInTransaction(ctx context.Context, fn func(tx Store) error) error
}

// GORMStore is the GORM-backed Store.
type GORMStore struct {
	db       *gorm.DB
	accounts *GORMAccountRepository
	posts    *GORMPostRepository
	comments *GORMCommentRepository
}

// NewGORMStore creates a Store over db.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{
		db:       db,
		accounts: NewGORMAccountRepository(db),
		posts:    NewGORMPostRepository(db),
		comments: NewGORMCommentRepository(db),
	}
}

func (s *GORMStore) Accounts() AccountRepository { return s.accounts }
func (s *GORMStore) Posts() PostRepository       { return s.posts }
func (s *GORMStore) Comments() CommentRepository { return s.comments }

// RunInTransaction implements Store.
func (s *GORMStore) RunInTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStore(tx))
	})
}

// AutoMigrate creates or updates the tables backing the store.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Account{}, &models.Post{}, &models.Comment{})
}
