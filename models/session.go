package models

import "time"

// SessionPayload is the minimal authenticated-identity projection stored per
// session. It deliberately carries nothing beyond username and role: the
// password hash and any other sensitive user fields must never end up here.
type SessionPayload struct {
	// Username identifies the authenticated user.
	Username string `json:"username"`

	// Role is the authorization tag copied from the user record at login.
	// Omitted from JSON when the user has no role.
	Role string `json:"role,omitempty"`
}

// Session is a server-side session entry: an opaque token mapped to the
// payload handed out at login or signup.
type Session struct {
	// Token is the opaque session identifier sent to the client in a cookie.
	// It carries no information by itself; the mapping lives server-side.
	Token string `json:"-"`

	// Payload is the identity projection attached to gated requests.
	Payload SessionPayload `json:"payload"`

	// ExpiresAt is the moment after which the session is no longer valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry time.
func (s Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
