// file: service/auth_service_test.go

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestAuthService() *AuthService {
	return NewAuthService([]byte("test-access-secret"), []byte("test-refresh-secret"), 30*time.Minute, 60*time.Minute)
}

// TestAuthService_HashAndCheckPassword ensures that password hashing and verification methods work correctly.
func TestAuthService_HashAndCheckPassword(t *testing.T) {
	authService := newTestAuthService()
	password := "mySecretPassword123"

	// 1. Test Hashing
	hashedPassword, err := authService.HashPassword(password)
	if err != nil {
		t.Fatalf("authService.HashPassword() returned an unexpected error: %v", err)
	}

	if hashedPassword == password {
		t.Errorf("Hashed password should not be the same as the original password.")
	}

	// 2. Test Successful Verification
	match := authService.CheckPasswordHash(password, hashedPassword)
	if !match {
		t.Errorf("authService.CheckPasswordHash() should have returned true for a matching password, but got false.")
	}

	// 3. Test Failed Verification
	wrongPassword := "notMyPassword"
	match = authService.CheckPasswordHash(wrongPassword, hashedPassword)
	if match {
		t.Errorf("authService.CheckPasswordHash() should have returned false for a non-matching password, but got true.")
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	authService := newTestAuthService()

	accessToken, err := authService.GenerateAccessToken(42)
	assert.NoError(t, err)
	refreshToken, err := authService.GenerateRefreshToken(42)
	assert.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	userID, err := authService.VerifyAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)

	userID, err = authService.VerifyRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

// An access token must not pass refresh verification or vice versa: the two
// classes are signed with distinct secrets.
func TestAuthService_TokenClassesAreNotInterchangeable(t *testing.T) {
	authService := newTestAuthService()

	accessToken, err := authService.GenerateAccessToken(7)
	assert.NoError(t, err)
	refreshToken, err := authService.GenerateRefreshToken(7)
	assert.NoError(t, err)

	_, err = authService.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = authService.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// A token whose embedded expiry has passed fails verification even though the
// signature is correct.
func TestAuthService_ExpiredTokenIsRejected(t *testing.T) {
	expired := NewAuthService([]byte("test-access-secret"), []byte("test-refresh-secret"), -time.Second, -time.Second)

	accessToken, err := expired.GenerateAccessToken(7)
	assert.NoError(t, err)
	refreshToken, err := expired.GenerateRefreshToken(7)
	assert.NoError(t, err)

	_, err = expired.VerifyAccessToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = expired.VerifyRefreshToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_MalformedTokenIsRejected(t *testing.T) {
	authService := newTestAuthService()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := authService.VerifyAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

// A token signed with a different secret must be rejected.
func TestAuthService_ForgedTokenIsRejected(t *testing.T) {
	authService := newTestAuthService()
	forger := NewAuthService([]byte("other-access-secret"), []byte("other-refresh-secret"), 30*time.Minute, 60*time.Minute)

	forged, err := forger.GenerateAccessToken(7)
	assert.NoError(t, err)

	_, err = authService.VerifyAccessToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
