package models

import "time"

// User represents an account record used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique, case-sensitive login identifier.
	Username string `json:"username"`

	// PasswordHash is the bcrypt-hashed credential. It is opaque to every
	// layer above the store and MUST never be serialized or logged.
	PasswordHash string `json:"-"`

	// Role is an optional authorization tag (e.g. "admin").
	// Empty for ordinary users; signup never assigns one.
	Role string `json:"role,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
