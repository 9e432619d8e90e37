package model

import "time"

// Photo is one gallery entry. ProviderID is the image host's public id for the
// uploaded asset, needed to destroy it when the photo is replaced or deleted.
type Photo struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	ImageURL    string    `json:"image_url"`
	ProviderID  string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
