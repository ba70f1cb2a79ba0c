package models

import "time"

// User is a vault service account. The service never sees the master
// password or the key deriving key; it stores only a keyed hash of the auth
// key the client derives from both.
type User struct {
	// UserID is the subject of the caller's identity token.
	UserID string `json:"user_id"`

	// Verifier is the hex HMAC-SHA256 of the client auth key.
	// It is never exposed via JSON.
	Verifier string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
