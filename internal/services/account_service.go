package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lifefit/internal/models"
	"lifefit/internal/repositories"
	"lifefit/pkg/rabbitmq"

	"go.uber.org/zap"
)

// AdminAccountID is the single account treated as an administrator.
const AdminAccountID uint = 1

// AccountEventPublisher publishes account lifecycle events.
type AccountEventPublisher interface {
	PublishAccountEvent(event rabbitmq.AccountEvent) error
}

// AccountService handles registration, profile management and deletion of accounts.
type AccountService struct {
	store     repositories.Store
	hasher    PasswordHasher
	publisher AccountEventPublisher // optional
	log       *zap.Logger
}

// NewAccountService creates a new AccountService. publisher may be nil.
func NewAccountService(store repositories.Store, hasher PasswordHasher, publisher AccountEventPublisher, log *zap.Logger) *AccountService {
	return &AccountService{
		store:     store,
		hasher:    hasher,
		publisher: publisher,
		log:       log,
	}
}

// Register creates a USER account with a hashed credential. It fails with
// ErrDuplicateEmail when the email is already on file.
//
// The email check and the insert run in one transaction but are not atomic
// against a concurrent registration; the unique index on email rejects the
// loser with a store error.
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	var account *models.Account
	err := s.store.RunInTransaction(ctx, func(tx repositories.Store) error {
		_, err := tx.Accounts().FindByEmail(ctx, req.Email)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, req.Email)
		case !errors.Is(err, repositories.ErrNotFound):
			return err
		}

		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			return err
		}

		account = models.NewAccount(models.AccountFields{
			Email:          req.Email,
			HashedPassword: hashed,
			Nickname:       req.Nickname,
			Name:           req.Name,
			PhoneNumber:    req.PhoneNumber,
			Role:           models.RoleUser,
		})
		return tx.Accounts().Save(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("account registered", zap.Uint("account_id", account.ID))
	s.publish(rabbitmq.NewAccountEvent(rabbitmq.EventAccountRegistered, account.ID, account.Email))
	return account, nil
}

// GetProfileByEmail returns the profile of the account registered under email.
func (s *AccountService) GetProfileByEmail(ctx context.Context, email string) (models.ProfileView, error) {
	account, err := s.store.Accounts().FindByEmail(ctx, email)
	if err != nil {
		return models.ProfileView{}, accountLookupError(err)
	}
	return models.NewProfileView(account), nil
}

// GetProfileBySocialID returns the profile linked to a social-login identifier.
func (s *AccountService) GetProfileBySocialID(ctx context.Context, socialID int64) (models.ProfileView, error) {
	account, err := s.store.Accounts().FindBySocialID(ctx, socialID)
	if err != nil {
		return models.ProfileView{}, accountLookupError(err)
	}
	return models.NewProfileView(account), nil
}

// GetProfileByID returns the profile of the account with the given ID.
func (s *AccountService) GetProfileByID(ctx context.Context, accountID uint) (models.ProfileView, error) {
	account, err := s.store.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return models.ProfileView{}, accountLookupError(err)
	}
	return models.NewProfileView(account), nil
}

// UpdateProfile overwrites nickname, phone number, name and email of the account
// currently registered under email. The credential is replaced only when
// req.Password is not blank.
func (s *AccountService) UpdateProfile(ctx context.Context, email string, req models.UpdateRequest) (models.ProfileView, error) {
	return s.updateProfile(ctx, req, func(accounts repositories.AccountRepository) (*models.Account, error) {
		return accounts.FindByEmail(ctx, email)
	})
}

// UpdateProfileByID applies the same overwrite as UpdateProfile to the account
// with the given ID, whatever email it currently holds.
func (s *AccountService) UpdateProfileByID(ctx context.Context, accountID uint, req models.UpdateRequest) (models.ProfileView, error) {
	return s.updateProfile(ctx, req, func(accounts repositories.AccountRepository) (*models.Account, error) {
		return accounts.FindByID(ctx, accountID)
	})
}

func (s *AccountService) updateProfile(ctx context.Context, req models.UpdateRequest, find func(repositories.AccountRepository) (*models.Account, error)) (models.ProfileView, error) {
	var view models.ProfileView
	err := s.store.RunInTransaction(ctx, func(tx repositories.Store) error {
		account, err := find(tx.Accounts())
		if err != nil {
			return accountLookupError(err)
		}

		account.Nickname = req.Nickname
		account.PhoneNumber = req.PhoneNumber
		account.Name = req.Name
		account.Email = req.Email

		if strings.TrimSpace(req.Password) != "" {
			hashed, err := s.hasher.Hash(req.Password)
			if err != nil {
				return err
			}
			account.Password = hashed
		}

		if err := tx.Accounts().Save(ctx, account); err != nil {
			return err
		}
		view = models.NewProfileView(account)
		return nil
	})
	if err != nil {
		return models.ProfileView{}, err
	}
	return view, nil
}

// DeleteAccount removes the account's comments, then its posts, then the
// account itself in one transaction. Deleting an unknown ID is a no-op.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID uint) error {
	var comments, posts, accounts int64
	err := s.store.RunInTransaction(ctx, func(tx repositories.Store) error {
		var err error
		if comments, err = tx.Comments().DeleteByWriterID(ctx, accountID); err != nil {
			return err
		}
		if posts, err = tx.Posts().DeleteByWriterID(ctx, accountID); err != nil {
			return err
		}
		accounts, err = tx.Accounts().DeleteByID(ctx, accountID)
		return err
	})
	if err != nil {
		return err
	}

	s.log.Info("account deleted",
		zap.Uint("account_id", accountID),
		zap.Int64("comments", comments),
		zap.Int64("posts", posts),
		zap.Bool("existed", accounts > 0))
	if accounts > 0 {
		s.publish(rabbitmq.NewAccountEvent(rabbitmq.EventAccountDeleted, accountID, ""))
	}
	return nil
}

// GetFavorites is not backed by any data yet and always returns an empty list.
func (s *AccountService) GetFavorites(accountID uint) []string {
	return []string{}
}

// IsAdmin reports whether accountID is the administrator account.
func (s *AccountService) IsAdmin(accountID uint) bool {
	return accountID == AdminAccountID
}

// publish sends event after the transaction committed. Failures are logged only.
func (s *AccountService) publish(event rabbitmq.AccountEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishAccountEvent(event); err != nil {
		s.log.Warn("failed to publish account event",
			zap.String("type", event.Type),
			zap.Uint("account_id", event.AccountID),
			zap.Error(err))
	}
}

func accountLookupError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrAccountNotFound, err)
	}
	return err
}
