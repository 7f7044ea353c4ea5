package services_test

import (
	"context"
	"testing"

	"lifefit/internal/database"
	"lifefit/internal/models"
	"lifefit/internal/repositories"
	"lifefit/pkg/rabbitmq"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock implementation of repositories.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindBySocialID(ctx context.Context, socialID int64) (*models.Account, error) {
	args := m.Called(ctx, socialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByWriterID(ctx context.Context, writerID uint) ([]models.Post, error) {
	args := m.Called(ctx, writerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) DeleteByWriterID(ctx context.Context, writerID uint) (int64, error) {
	args := m.Called(ctx, writerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByWriterID(ctx context.Context, writerID uint) ([]models.Comment, error) {
	args := m.Called(ctx, writerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteByWriterID(ctx context.Context, writerID uint) (int64, error) {
	args := m.Called(ctx, writerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repositories.Store = (*MockStore)(nil)

// MockStore hands out the mock repositories and runs transactions inline.
type MockStore struct {
	accounts *MockAccountRepository
	posts    *MockPostRepository
	comments *MockCommentRepository
}

func newMockStore() *MockStore {
	return &MockStore{
		accounts: new(MockAccountRepository),
		posts:    new(MockPostRepository),
		comments: new(MockCommentRepository),
	}
}

func (m *MockStore) Accounts() repositories.AccountRepository { return m.accounts }
func (m *MockStore) Posts() repositories.PostRepository       { return m.posts }
func (m *MockStore) Comments() repositories.CommentRepository { return m.comments }

func (m *MockStore) RunInTransaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	return fn(m)
}

// MockHasher is a mock implementation of services.PasswordHasher
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hashed, plaintext string) error {
	args := m.Called(hashed, plaintext)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.AccountEventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishAccountEvent(event rabbitmq.AccountEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e rabbitmq.AccountEvent) bool { return e.Type == eventType })
}

// newSQLiteStore opens an isolated in-memory database with the schema applied.
func newSQLiteStore(t *testing.T) *repositories.GORMStore {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, repositories.AutoMigrate(db))
	return repositories.NewGORMStore(db)
}
