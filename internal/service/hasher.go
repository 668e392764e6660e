package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the minimal hashing interface so the algorithm
// can be swapped without touching the auth flows.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of password. The same plaintext
	// yields a different hash on each call.
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. Never compares raw strings.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	// Cost is the bcrypt cost factor. Zero means the default of 12.
	Cost int
}

// Hash hashes password with bcrypt at the configured cost.
func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = 12
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify checks password against hash using bcrypt's own comparison.
func (b BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
