package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"portfolio-api/logger"
	"portfolio-api/model"
	"portfolio-api/repository"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	photosCacheKey = "photos:all"
	photosCacheTTL = 10 * time.Minute
)

// PhotoService handles the photo gallery: provider uploads, persistence and
// the cached listing.
type PhotoService struct {
	photoRepo repository.IPhotoRepository
	uploader  IImageUploader
	cache     ICacheClient
}

func NewPhotoService(photoRepo repository.IPhotoRepository, uploader IImageUploader, cache ICacheClient) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		uploader:  uploader,
		cache:     cache,
	}
}

// UploadPhoto relays the image to the hosting provider and persists the
// resulting gallery entry.
func (s *PhotoService) UploadPhoto(ctx context.Context, title, description, link string, file io.Reader) (*model.Photo, error) {
	uploaded, err := s.uploader.Upload(ctx, file)
	if err != nil {
		return nil, err
	}

	photo := &model.Photo{
		Title:       title,
		Description: description,
		Link:        link,
		ImageURL:    uploaded.URL,
		ProviderID:  uploaded.PublicID,
	}
	if err := s.photoRepo.CreatePhoto(photo); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return photo, nil
}

// GetAllPhotos returns the gallery, newest first. The listing is served from
// cache when possible; cache failures fall back to the database.
func (s *PhotoService) GetAllPhotos(ctx context.Context) ([]*model.Photo, error) {
	if cached, err := s.cache.Get(ctx, photosCacheKey).Result(); err == nil {
		var photos []*model.Photo
		if err := json.Unmarshal([]byte(cached), &photos); err == nil {
			return photos, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Log.WithError(err).Warn("Failed to read photo listing from cache")
	}

	photos, err := s.photoRepo.GetAllPhotos()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(photos); err == nil {
		if err := s.cache.Set(ctx, photosCacheKey, data, photosCacheTTL).Err(); err != nil {
			logger.Log.WithError(err).Warn("Failed to cache photo listing")
		}
	}

	return photos, nil
}

// UpdatePhoto overwrites the text fields of a photo and, when a replacement
// file is supplied, swaps the provider asset as well.
func (s *PhotoService) UpdatePhoto(ctx context.Context, id int, req *model.UpdatePhotoRequest, file io.Reader) (*model.Photo, error) {
	photo, err := s.photoRepo.GetPhotoByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	if file != nil {
		if err := s.uploader.Destroy(ctx, photo.ProviderID); err != nil {
			return nil, err
		}
		uploaded, err := s.uploader.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		photo.ImageURL = uploaded.URL
		photo.ProviderID = uploaded.PublicID
	}

	photo.Title = req.Title
	photo.Description = req.Description
	photo.Link = req.Link

	if err := s.photoRepo.UpdatePhoto(photo); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return photo, nil
}

// DeletePhoto removes the photo row and its provider asset.
func (s *PhotoService) DeletePhoto(ctx context.Context, id int) error {
	photo, err := s.photoRepo.GetPhotoByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPhotoNotFound
		}
		return err
	}
	return s.deletePhoto(ctx, photo)
}

// DeletePhotoByTitle removes the photo whose title matches exactly.
func (s *PhotoService) DeletePhotoByTitle(ctx context.Context, title string) error {
	photo, err := s.photoRepo.GetPhotoByTitle(title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPhotoNotFound
		}
		return err
	}
	return s.deletePhoto(ctx, photo)
}

func (s *PhotoService) deletePhoto(ctx context.Context, photo *model.Photo) error {
	if err := s.uploader.Destroy(ctx, photo.ProviderID); err != nil {
		return err
	}
	if err := s.photoRepo.DeletePhoto(photo.ID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *PhotoService) invalidateCache(ctx context.Context) {
	if err := s.cache.Del(ctx, photosCacheKey).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to invalidate photo listing cache")
	}
}
