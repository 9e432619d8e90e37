package repository

import (
	"database/sql"
	"portfolio-api/logger"
	"portfolio-api/model"

	"github.com/sirupsen/logrus"
)

// IPhotoRepository defines the contract for photo database operations.
type IPhotoRepository interface {
	CreatePhoto(photo *model.Photo) error
	GetAllPhotos() ([]*model.Photo, error)
	GetPhotoByID(id int) (*model.Photo, error)
	GetPhotoByTitle(title string) (*model.Photo, error)
	UpdatePhoto(photo *model.Photo) error
	DeletePhoto(id int) error
}

// PhotoRepository implements IPhotoRepository.
type PhotoRepository struct {
	DB *sql.DB
}

func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{DB: db}
}

// CreatePhoto adds a new photo row to the database.
func (r *PhotoRepository) CreatePhoto(photo *model.Photo) error {
	log := logger.Log.WithFields(logrus.Fields{
		"title":       photo.Title,
		"provider_id": photo.ProviderID,
	})
	log.Info("Executing query to create a new photo")

	query := `INSERT INTO photos (title, description, link, image_url, provider_id) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.DB.QueryRow(query, photo.Title, photo.Description, photo.Link, photo.ImageURL, photo.ProviderID).Scan(&photo.ID, &photo.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create photo query")
		return err
	}
	return nil
}

// GetAllPhotos retrieves all photos, newest first.
func (r *PhotoRepository) GetAllPhotos() ([]*model.Photo, error) {
	query := `SELECT id, title, description, link, image_url, provider_id, created_at FROM photos ORDER BY created_at DESC`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all photos")
		return nil, err
	}
	defer rows.Close()

	var photos []*model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.ImageURL, &p.ProviderID, &p.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan photo row")
			return nil, err
		}
		photos = append(photos, &p)
	}
	return photos, rows.Err()
}

// GetPhotoByID retrieves a single photo by its id.
func (r *PhotoRepository) GetPhotoByID(id int) (*model.Photo, error) {
	photo := &model.Photo{}
	query := `SELECT id, title, description, link, image_url, provider_id, created_at FROM photos WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&photo.ID, &photo.Title, &photo.Description, &photo.Link, &photo.ImageURL, &photo.ProviderID, &photo.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("photo_id", id).Error("Failed to execute get photo by ID query")
		}
		return nil, err
	}
	return photo, nil
}

// GetPhotoByTitle retrieves a single photo by its title.
func (r *PhotoRepository) GetPhotoByTitle(title string) (*model.Photo, error) {
	photo := &model.Photo{}
	query := `SELECT id, title, description, link, image_url, provider_id, created_at FROM photos WHERE title = $1`
	err := r.DB.QueryRow(query, title).Scan(&photo.ID, &photo.Title, &photo.Description, &photo.Link, &photo.ImageURL, &photo.ProviderID, &photo.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("title", title).Error("Failed to execute get photo by title query")
		}
		return nil, err
	}
	return photo, nil
}

// UpdatePhoto overwrites the mutable fields of a photo row.
func (r *PhotoRepository) UpdatePhoto(photo *model.Photo) error {
	log := logger.Log.WithField("photo_id", photo.ID)
	log.Info("Executing query to update photo")

	query := `UPDATE photos SET title = $1, description = $2, link = $3, image_url = $4, provider_id = $5 WHERE id = $6`
	_, err := r.DB.Exec(query, photo.Title, photo.Description, photo.Link, photo.ImageURL, photo.ProviderID, photo.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update photo query")
		return err
	}
	return nil
}

// DeletePhoto removes a photo row.
func (r *PhotoRepository) DeletePhoto(id int) error {
	log := logger.Log.WithField("photo_id", id)
	log.Info("Executing query to delete photo")

	query := `DELETE FROM photos WHERE id = $1`
	_, err := r.DB.Exec(query, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete photo query")
		return err
	}
	return nil
}
