package services

import (
	"testing"
	"time"

	"restaurant-backend/repository"
	"restaurant-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestSignupAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Signup("ravi", "Ravi@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "customer", user.Role)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)

	token, got, err := svc.Login("ravi", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestSignupDuplicates(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Signup("ravi", "ravi@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Signup("ravi", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Signup("other", "ravi@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Signup("ravi", "ravi@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login("ravi", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginRejectsCustomers(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Signup("ravi", "ravi@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.AdminLogin("ravi", "secret123")
	assert.ErrorIs(t, err, ErrNotStaff)
}
