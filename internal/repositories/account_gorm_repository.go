package repositories

import (
	"context"
	"errors"
	"fmt"

	"lifefit/internal/models"

	"gorm.io/gorm"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// FindByID retrieves an account by its ID.
func (r *GORMAccountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	return r.first(ctx, fmt.Sprintf("ID %d", id), "id = ?", id)
}

// FindByEmail retrieves an account by its email.
func (r *GORMAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.first(ctx, "email "+email, "email = ?", email)
}

// FindBySocialID retrieves an account by its social-login identifier.
func (r *GORMAccountRepository) FindBySocialID(ctx context.Context, socialID int64) (*models.Account, error) {
	return r.first(ctx, fmt.Sprintf("social ID %d", socialID), "social_id = ?", socialID)
}

func (r *GORMAccountRepository) first(ctx context.Context, key string, query string, args ...interface{}) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where(query, args...).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by %s: %w", key, err)
	}
	return &account, nil
}

// Save inserts or fully updates the account.
func (r *GORMAccountRepository) Save(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// DeleteByID deletes the account with the given ID.
func (r *GORMAccountRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Account{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete account %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
