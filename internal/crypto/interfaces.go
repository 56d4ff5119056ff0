package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher provides one-way password hashing and verification.
//
// Implementations must embed a fresh random salt and the work-factor
// parameters into every hash they produce, so that Verify needs nothing
// beyond the password and the stored hash, and so that the cost can be
// raised over time without changing this interface.
type PasswordHasher interface {
	// Hash produces a salted, self-describing hash of password.
	// Two calls with the same input yield different outputs.
	// An empty password or a primitive failure is an error; callers must
	// never proceed with an undefined hash.
	Hash(password string) (string, error)

	// Verify reports whether password matches hashed.
	// A mismatch is a normal (false, nil) result, not an error; only a
	// malformed hash or a primitive failure returns a non-nil error.
	Verify(password, hashed string) (bool, error)
}
