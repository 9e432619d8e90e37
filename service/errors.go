// file: service/errors.go

package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes; anything else is treated as a storage failure.
var (
	ErrEmailTaken      = errors.New("email already registered, use another email")
	ErrUsernameTaken   = errors.New("username not available, please use another username")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrPhotoNotFound   = errors.New("photo not found")
)
