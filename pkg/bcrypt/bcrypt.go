package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

// HashPassword derives a one-way salted credential from the plain password.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword checks the plain password against a stored hash.
func ComparePassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
