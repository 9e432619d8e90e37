// file: repository/session_repository.go

package repository

import (
	"database/sql"
	"portfolio-api/logger"
	"portfolio-api/model"
)

// ISessionRepository defines the contract for the single-slot refresh token
// store. Each user has at most one row; Upsert overwrites it in place.
type ISessionRepository interface {
	Upsert(userID int, refreshToken string) error
	GetByUserID(userID int) (*model.SessionRecord, error)
	DeleteByToken(refreshToken string) error
}

// SessionRepository implements ISessionRepository.
type SessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Upsert stores refreshToken as the user's current session token, replacing
// any previous one. A replaced token is unusable from this point on.
func (r *SessionRepository) Upsert(userID int, refreshToken string) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to upsert session record")

	query := `INSERT INTO sessions (user_id, refresh_token, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET refresh_token = EXCLUDED.refresh_token, updated_at = NOW()`
	_, err := r.DB.Exec(query, userID, refreshToken)
	if err != nil {
		log.WithError(err).Error("Failed to execute upsert session query")
		return err
	}
	return nil
}

// GetByUserID retrieves the session record for a user.
func (r *SessionRepository) GetByUserID(userID int) (*model.SessionRecord, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to get session record by user ID")

	record := &model.SessionRecord{}
	query := `SELECT user_id, refresh_token, updated_at FROM sessions WHERE user_id = $1`
	err := r.DB.QueryRow(query, userID).Scan(&record.UserID, &record.RefreshToken, &record.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get session record query")
		}
		return nil, err // Return sql.ErrNoRows if not found
	}
	return record, nil
}

// DeleteByToken deletes the session record holding the given token.
// Deleting zero rows is not an error, which makes logout idempotent.
func (r *SessionRepository) DeleteByToken(refreshToken string) error {
	query := `DELETE FROM sessions WHERE refresh_token = $1`
	_, err := r.DB.Exec(query, refreshToken)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete session query")
		return err
	}
	return nil
}
