package services

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost stays low on purpose; the work factor the legacy deployment
// ran with, and enough for this domain.
const bcryptCost = 5

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain password matches the stored
// bcrypt hash. Comparison is constant-time inside bcrypt.
func VerifyPassword(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
