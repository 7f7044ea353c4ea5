package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifefit/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

// TokenClaims is the identity carried by an access token.
type TokenClaims struct {
	AccountID uint
	Email     string
	Role      string
}

// AuthService issues and validates access tokens.
type AuthService struct {
	accounts  repositories.AccountRepository
	hasher    PasswordHasher
	jwtSecret []byte
	tokenTTL  time.Duration
	log       *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts repositories.AccountRepository, hasher PasswordHasher, jwtSecret string, tokenTTL time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		accounts:  accounts,
		hasher:    hasher,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login checks the credential of the account registered under email and
// returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.log.Error("login lookup failed", zap.Error(err))
		}
		// Do not reveal whether the email exists.
		return "", ErrInvalidCredentials
	}

	if err := s.hasher.Compare(account.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": account.ID,
		"email":      account.Email,
		"role":       account.Role,
		"exp":        now.Add(s.tokenTTL).Unix(),
		"iat":        now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// JSON numbers decode as float64.
	id, ok := claims["account_id"].(float64)
	if !ok || id <= 0 {
		return nil, fmt.Errorf("%w: missing account_id", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{
		AccountID: uint(id),
		Email:     email,
		Role:      role,
	}, nil
}
