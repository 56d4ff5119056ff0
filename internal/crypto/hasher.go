// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

// Package crypto provides the password-hashing primitive used by the
// authentication service.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
// bcrypt output is self-describing: the cost and the per-call random salt
// are embedded in the hash string, and comparison is constant-time.
type bcryptHasher struct {
	// cost is the bcrypt work factor applied by Hash. Verification reads
	// the cost out of the stored hash, so raising cost only affects newly
	// created hashes.
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// A cost outside bcrypt's supported range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. It rejects empty input and wraps any
// bcrypt failure (e.g. a password longer than 72 bytes) so the caller can
// abort instead of continuing with an undefined hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hashing failed: %w", err)
	}

	return string(hashed), nil
}

// Verify implements [PasswordHasher]. bcrypt re-derives the hash from the
// salt and cost embedded in hashed and compares in constant time.
func (h *bcryptHasher) Verify(password, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("bcrypt verification failed: %w", err)
}
