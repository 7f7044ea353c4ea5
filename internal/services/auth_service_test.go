package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifefit/internal/models"
	"lifefit/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func newAuthFixture(t *testing.T) (*services.AuthService, *models.Account) {
	t.Helper()
	ctx := context.Background()
	store := newSQLiteStore(t)
	hasher := services.NewBcryptHasher(bcrypt.MinCost)
	accounts := services.NewAccountService(store, hasher, nil, zap.NewNop())

	account, err := accounts.Register(ctx, models.RegisterRequest{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)

	return services.NewAuthService(store.Accounts(), hasher, testJWTSecret, time.Hour, zap.NewNop()), account
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	authService, account := newAuthFixture(t)

	token, err := authService.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)

	// Wrong password
	_, err = authService.Login(ctx, "test@example.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown email gets the same answer
	_, err = authService.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login_ExpiryFollowsTokenTTL(t *testing.T) {
	authService, _ := newAuthFixture(t)

	token, err := authService.Login(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte(testJWTSecret), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	accounts.On("FindByEmail", ctx, "test@example.com").Return(nil, errors.New("connection reset")).Once()
	authService := services.NewAuthService(accounts, new(MockHasher), testJWTSecret, time.Hour, zap.NewNop())

	_, err := authService.Login(ctx, "test@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	accounts.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockAccountRepository), new(MockHasher), testJWTSecret, time.Hour, zap.NewNop())

	sign := func(claims jwt.MapClaims, secret string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	valid := sign(jwt.MapClaims{
		"account_id": 7,
		"email":      "seven@example.com",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}, testJWTSecret)
	claims, err := authService.ValidateToken(valid)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AccountID)
	assert.Equal(t, "seven@example.com", claims.Email)

	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	wrongSecret := sign(jwt.MapClaims{"account_id": 7, "exp": time.Now().Add(time.Hour).Unix()}, "other_secret")
	_, err = authService.ValidateToken(wrongSecret)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	expired := sign(jwt.MapClaims{"account_id": 7, "exp": time.Now().Add(-time.Hour).Unix()}, testJWTSecret)
	_, err = authService.ValidateToken(expired)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	noAccount := sign(jwt.MapClaims{"email": "x@example.com", "exp": time.Now().Add(time.Hour).Unix()}, testJWTSecret)
	_, err = authService.ValidateToken(noAccount)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	hasher := services.NewBcryptHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hashed)
	assert.NoError(t, hasher.Compare(hashed, "p1"))
	assert.Error(t, hasher.Compare(hashed, "p2"))

	again, err := hasher.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "bcrypt salts every hash")
}
