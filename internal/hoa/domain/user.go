package domain

import "time"

type User struct {
	ID           string
	Email        string // lower case, unique
	Name         string
	PasswordHash string // argon2 encoded
	Phone        string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordResetToken is a single use credential for the forgot password
// flow. Only the fingerprint of the token is ever stored.
type PasswordResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Person is the public face of a user shown next to things they created.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
