package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"portfolio-api/logger"
	"portfolio-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the token codec and password hasher. Both signing secrets are
// injected at construction; the two token classes use distinct secrets, so an
// access token can never pass refresh verification or vice versa.
type AuthService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateAccessToken mints a short-lived access token for the user.
func (s *AuthService) GenerateAccessToken(userID int) (string, error) {
	return s.sign(userID, s.accessSecret, s.accessTTL)
}

// GenerateRefreshToken mints a refresh token for the user. The caller is
// responsible for persisting it as the user's current session token.
func (s *AuthService) GenerateRefreshToken(userID int) (string, error) {
	return s.sign(userID, s.refreshSecret, s.refreshTTL)
}

// VerifyAccessToken returns the user ID embedded in the token, or
// ErrInvalidToken if the signature, encoding or expiry is bad.
func (s *AuthService) VerifyAccessToken(tokenString string) (int, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken is VerifyAccessToken for the refresh-token secret.
func (s *AuthService) VerifyRefreshToken(tokenString string) (int, error) {
	return s.verify(tokenString, s.refreshSecret)
}

func (s *AuthService) sign(userID int, secret []byte, ttl time.Duration) (string, error) {
	// A random jti makes every minted token unique even within the same
	// second, so rotation always replaces the stored value with a new string.
	jti := make([]byte, 8)
	if _, err := rand.Read(jti); err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	claims := &model.AppClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        hex.EncodeToString(jti),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

func (s *AuthService) verify(tokenString string, secret []byte) (int, error) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
