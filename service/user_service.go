package service

import (
	"database/sql"
	"errors"
	"portfolio-api/logger"
	"portfolio-api/model"
	"portfolio-api/repository"
)

// UserService is the session manager. It is the only component that touches
// the password hash on user rows and the session token store.
type UserService struct {
	userRepo    repository.IUserRepository
	sessionRepo repository.ISessionRepository
	auth        *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.IUserRepository, sessionRepo repository.ISessionRepository, auth *AuthService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		auth:        auth,
	}
}

// Register creates a new user and opens a session for it. Email collision is
// reported before username collision so the caller learns which field to fix.
func (s *UserService) Register(req *model.RegisterRequest) (*model.User, *model.TokenPair, error) {
	emailInUse, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, nil, err
	}
	if emailInUse {
		return nil, nil, ErrEmailTaken
	}

	usernameInUse, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, nil, err
	}
	if usernameInUse {
		return nil, nil, ErrUsernameTaken
	}

	hashedPassword, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, nil, err
	}

	pair, err := s.openSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("User registered")
	return user, pair, nil
}

// Login verifies the credentials and rotates the user's session.
func (s *UserService) Login(req *model.LoginRequest) (*model.User, *model.TokenPair, error) {
	user, err := s.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidUsername
		}
		return nil, nil, err
	}

	if !s.auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, nil, ErrInvalidPassword
	}

	pair, err := s.openSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The
// presented token must both verify and exactly match the stored session
// record; a token superseded by a newer login or refresh fails here even
// though its own expiry has not passed. On success the session record is
// overwritten, so every refresh token is single-use.
func (s *UserService) Refresh(refreshToken string) (*model.User, *model.TokenPair, error) {
	userID, err := s.auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	record, err := s.sessionRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidToken
		}
		return nil, nil, err
	}
	if record.RefreshToken != refreshToken {
		return nil, nil, ErrInvalidToken
	}

	pair, err := s.openSession(userID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Logout deletes the session record holding the presented token. It succeeds
// even when no record matches.
func (s *UserService) Logout(refreshToken string) error {
	return s.sessionRepo.DeleteByToken(refreshToken)
}

// openSession mints a token pair and stores the refresh token as the user's
// sole session record. Minting happens before the write so a signing failure
// leaves the store untouched.
func (s *UserService) openSession(userID int) (*model.TokenPair, error) {
	accessToken, err := s.auth.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.auth.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Upsert(userID, refreshToken); err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
