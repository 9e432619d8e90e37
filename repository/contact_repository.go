package repository

import (
	"database/sql"
	"portfolio-api/model"
)

// IContactRepository defines the contract for contact message persistence.
type IContactRepository interface {
	CreateMessage(msg *model.ContactMessage) error
}

// ContactRepository implements IContactRepository.
type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) CreateMessage(msg *model.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, message) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.DB.QueryRow(query, msg.Name, msg.Email, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
}
