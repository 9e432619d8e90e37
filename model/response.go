// file: model/response.go

package model

// AuthResponse is the body returned by every auth endpoint. User is nil and
// Auth false after logout.
type AuthResponse struct {
	User *User `json:"user"`
	Auth bool  `json:"auth"`
}

// ContactResponse acknowledges a relayed contact message.
type ContactResponse struct {
	Message string          `json:"message"`
	Contact *ContactMessage `json:"contact"`
}
