package repositories

import (
	"context"

	"lifefit/internal/models"
)

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindBySocialID(ctx context.Context, socialID int64) (*models.Account, error)
	// Save inserts the account when it has no ID yet, otherwise overwrites every column.
	Save(ctx context.Context, account *models.Account) error
	// DeleteByID removes the account and reports how many rows were deleted.
	// Deleting an unknown ID is not an error.
	DeleteByID(ctx context.Context, id uint) (int64, error)
}
