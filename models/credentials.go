package models

// Credentials is the transient request body of login and signup calls.
// It exists only for the duration of a single request and must never be
// persisted or logged: Password is the user's plaintext secret.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
