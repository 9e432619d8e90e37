package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"portfolio-api/model"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPhotoRepo struct{ mock.Mock }

func (m *mockPhotoRepo) CreatePhoto(photo *model.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}
func (m *mockPhotoRepo) GetAllPhotos() ([]*model.Photo, error) {
	args := m.Called()
	if p := args.Get(0); p != nil {
		return p.([]*model.Photo), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPhotoRepo) GetPhotoByID(id int) (*model.Photo, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*model.Photo), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPhotoRepo) GetPhotoByTitle(title string) (*model.Photo, error) {
	args := m.Called(title)
	if p := args.Get(0); p != nil {
		return p.(*model.Photo), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPhotoRepo) UpdatePhoto(photo *model.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}
func (m *mockPhotoRepo) DeletePhoto(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) Upload(ctx context.Context, file io.Reader) (*UploadedImage, error) {
	args := m.Called(ctx, file)
	if img := args.Get(0); img != nil {
		return img.(*UploadedImage), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUploader) Destroy(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// fakeCache is an in-memory stand-in for the Redis client.
type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if val, ok := f.values[key]; ok {
		return redis.NewStringResult(val, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case string:
		f.values[key] = v
	case []byte:
		f.values[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func TestPhotoService_UploadPhoto(t *testing.T) {
	t.Run("relays the file and persists the entry", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		up := new(mockUploader)
		cache := newFakeCache()
		cache.values[photosCacheKey] = "[]" // stale listing to invalidate

		up.On("Upload", mock.Anything, mock.Anything).Return(&UploadedImage{
			URL:      "https://cdn.example.com/photos/abc.jpg",
			PublicID: "photos/abc",
		}, nil).Once()
		repo.On("CreatePhoto", mock.AnythingOfType("*model.Photo")).Run(func(args mock.Arguments) {
			photo := args.Get(0).(*model.Photo)
			photo.ID = 1
			photo.CreatedAt = time.Now()
		}).Return(nil).Once()

		photoService := NewPhotoService(repo, up, cache)
		photo, err := photoService.UploadPhoto(context.Background(), "Sunset", "desc", "https://example.com", strings.NewReader("img"))

		assert.NoError(t, err)
		assert.Equal(t, 1, photo.ID)
		assert.Equal(t, "https://cdn.example.com/photos/abc.jpg", photo.ImageURL)
		assert.Equal(t, "photos/abc", photo.ProviderID)
		// Listing cache must be invalidated by the write.
		_, ok := cache.values[photosCacheKey]
		assert.False(t, ok)
		repo.AssertExpectations(t)
		up.AssertExpectations(t)
	})

	t.Run("provider failure stops before the database", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		up := new(mockUploader)
		up.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("provider down")).Once()

		photoService := NewPhotoService(repo, up, newFakeCache())
		_, err := photoService.UploadPhoto(context.Background(), "Sunset", "", "", strings.NewReader("img"))

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreatePhoto")
	})
}

func TestPhotoService_GetAllPhotos(t *testing.T) {
	t.Run("cache miss falls through to the database and fills the cache", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		cache := newFakeCache()
		stored := []*model.Photo{{ID: 2, Title: "Newest"}, {ID: 1, Title: "Oldest"}}
		repo.On("GetAllPhotos").Return(stored, nil).Once()

		photoService := NewPhotoService(repo, new(mockUploader), cache)
		photos, err := photoService.GetAllPhotos(context.Background())

		assert.NoError(t, err)
		assert.Len(t, photos, 2)
		assert.Contains(t, cache.values, photosCacheKey)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		cache := newFakeCache()
		data, err := json.Marshal([]*model.Photo{{ID: 1, Title: "Cached"}})
		assert.NoError(t, err)
		cache.values[photosCacheKey] = string(data)

		photoService := NewPhotoService(repo, new(mockUploader), cache)
		photos, getErr := photoService.GetAllPhotos(context.Background())

		assert.NoError(t, getErr)
		assert.Len(t, photos, 1)
		assert.Equal(t, "Cached", photos[0].Title)
		repo.AssertNotCalled(t, "GetAllPhotos")
	})
}

func TestPhotoService_UpdatePhoto(t *testing.T) {
	req := &model.UpdatePhotoRequest{Title: "New title", Description: "New desc", Link: "https://example.com"}

	t.Run("missing photo", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		repo.On("GetPhotoByID", 99).Return(nil, sql.ErrNoRows).Once()

		photoService := NewPhotoService(repo, new(mockUploader), newFakeCache())
		_, err := photoService.UpdatePhoto(context.Background(), 99, req, nil)

		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})

	t.Run("text-only update keeps the provider asset", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		up := new(mockUploader)
		repo.On("GetPhotoByID", 1).Return(&model.Photo{ID: 1, Title: "Old", ProviderID: "photos/abc"}, nil).Once()
		repo.On("UpdatePhoto", mock.AnythingOfType("*model.Photo")).Return(nil).Once()

		photoService := NewPhotoService(repo, up, newFakeCache())
		photo, err := photoService.UpdatePhoto(context.Background(), 1, req, nil)

		assert.NoError(t, err)
		assert.Equal(t, "New title", photo.Title)
		assert.Equal(t, "photos/abc", photo.ProviderID)
		up.AssertNotCalled(t, "Destroy")
		up.AssertNotCalled(t, "Upload")
	})

	t.Run("replacement file swaps the provider asset", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		up := new(mockUploader)
		repo.On("GetPhotoByID", 1).Return(&model.Photo{ID: 1, Title: "Old", ProviderID: "photos/abc"}, nil).Once()
		up.On("Destroy", mock.Anything, "photos/abc").Return(nil).Once()
		up.On("Upload", mock.Anything, mock.Anything).Return(&UploadedImage{
			URL:      "https://cdn.example.com/photos/def.jpg",
			PublicID: "photos/def",
		}, nil).Once()
		repo.On("UpdatePhoto", mock.AnythingOfType("*model.Photo")).Return(nil).Once()

		photoService := NewPhotoService(repo, up, newFakeCache())
		photo, err := photoService.UpdatePhoto(context.Background(), 1, req, strings.NewReader("new img"))

		assert.NoError(t, err)
		assert.Equal(t, "photos/def", photo.ProviderID)
		assert.Equal(t, "https://cdn.example.com/photos/def.jpg", photo.ImageURL)
		up.AssertExpectations(t)
	})
}

func TestPhotoService_Delete(t *testing.T) {
	t.Run("by id destroys the provider asset first", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		up := new(mockUploader)
		cache := newFakeCache()
		cache.values[photosCacheKey] = "[]"
		repo.On("GetPhotoByID", 1).Return(&model.Photo{ID: 1, ProviderID: "photos/abc"}, nil).Once()
		up.On("Destroy", mock.Anything, "photos/abc").Return(nil).Once()
		repo.On("DeletePhoto", 1).Return(nil).Once()

		photoService := NewPhotoService(repo, up, cache)
		err := photoService.DeletePhoto(context.Background(), 1)

		assert.NoError(t, err)
		_, ok := cache.values[photosCacheKey]
		assert.False(t, ok)
		up.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("by title", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		up := new(mockUploader)
		repo.On("GetPhotoByTitle", "Sunset").Return(&model.Photo{ID: 3, Title: "Sunset", ProviderID: "photos/xyz"}, nil).Once()
		up.On("Destroy", mock.Anything, "photos/xyz").Return(nil).Once()
		repo.On("DeletePhoto", 3).Return(nil).Once()

		photoService := NewPhotoService(repo, up, newFakeCache())
		err := photoService.DeletePhotoByTitle(context.Background(), "Sunset")

		assert.NoError(t, err)
	})

	t.Run("missing title", func(t *testing.T) {
		repo := new(mockPhotoRepo)
		repo.On("GetPhotoByTitle", "Nope").Return(nil, sql.ErrNoRows).Once()

		photoService := NewPhotoService(repo, new(mockUploader), newFakeCache())
		err := photoService.DeletePhotoByTitle(context.Background(), "Nope")

		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})
}
