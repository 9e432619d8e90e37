// file: model/session.go

package model

import "time"

// SessionRecord is the single currently-valid refresh token for a user.
// There is at most one row per user; every login or refresh overwrites it.
type SessionRecord struct {
	UserID       int       `json:"user_id"`
	RefreshToken string    `json:"-"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair is one freshly minted access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
