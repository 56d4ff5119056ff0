package models

// ErrorResponse is the JSON envelope used for every client-visible failure,
// e.g. {"error": "User not found"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
